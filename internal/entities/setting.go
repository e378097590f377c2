package entities

import (
	"time"
)

// Setting stores one JSON-encoded value per key.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	SettingKeyCurrentVersion = "currentVersion"
	SettingKeyFontSize       = "fontSize"
	SettingKeyDarkMode       = "darkMode"
	SettingKeySpeechRate     = "speechRate"
	SettingKeyLastRead       = "lastRead"

	// Offline sync bookkeeping
	SettingKeyOfflineSyncLastAt     = "offlineSyncLastAt"
	SettingKeyOfflineSyncLastStatus = "offlineSyncLastStatus"
)
