package entities

import (
	"strings"
	"time"
)

type SyncType string

const (
	// SyncTypePrefetchPrefix is followed by the version id, e.g. "prefetch:krv".
	SyncTypePrefetchPrefix = "prefetch:"
)

func PrefetchSyncType(version string) SyncType {
	return SyncType(SyncTypePrefetchPrefix + version)
}

// Version returns the version a prefetch sync type refers to.
func (t SyncType) Version() (string, bool) {
	return strings.CutPrefix(string(t), SyncTypePrefetchPrefix)
}

type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusFailed    SyncStatus = "failed"
	SyncStatusCancelled SyncStatus = "cancelled"
)

type SyncProgress struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	SyncType    SyncType   `gorm:"size:50;uniqueIndex" json:"syncType"`
	Status      SyncStatus `gorm:"size:20" json:"status"`
	TotalItems  int        `json:"totalItems"`
	Processed   int        `json:"processed"`
	Failed      int        `json:"failed"`
	CurrentItem string     `gorm:"size:64" json:"currentItem,omitempty"`
	Error       string     `gorm:"type:text" json:"error,omitempty"`
	StartedAt   time.Time  `json:"startedAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (SyncProgress) TableName() string {
	return "sync_progress"
}
