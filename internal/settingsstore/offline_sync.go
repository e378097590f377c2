package settingsstore

import (
	"encoding/json"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/mybible/internal/entities"
)

// OfflineSyncStatus is the outcome of the last scheduled offline sync.
type OfflineSyncStatus struct {
	LastSyncAt *time.Time `json:"lastSyncAt,omitempty"`
	Status     string     `json:"status,omitempty"`
}

// GetOfflineSyncStatus returns the last recorded scheduled sync.
func (s *SettingsStore) GetOfflineSyncStatus() OfflineSyncStatus {
	status := OfflineSyncStatus{}

	if raw, ok, err := s.Get(entities.SettingKeyOfflineSyncLastAt); err == nil && ok {
		var ts time.Time
		if json.Unmarshal(raw, &ts) == nil {
			status.LastSyncAt = &ts
		}
	}

	if raw, ok, err := s.Get(entities.SettingKeyOfflineSyncLastStatus); err == nil && ok {
		_ = json.Unmarshal(raw, &status.Status)
	}

	return status
}

// SetOfflineSyncStatus records a scheduled sync outcome at the current time.
func (s *SettingsStore) SetOfflineSyncStatus(status string) error {
	if err := s.SetValue(entities.SettingKeyOfflineSyncLastAt, time.Now().UTC()); err != nil {
		return err
	}
	return s.SetValue(entities.SettingKeyOfflineSyncLastStatus, status)
}

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule validates a cron schedule string
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// GetNextRunTime calculates when the next sync will run based on the schedule
func GetNextRunTime(schedule string, from time.Time) (*time.Time, error) {
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		return nil, err
	}
	next := sched.Next(from)
	return &next, nil
}
