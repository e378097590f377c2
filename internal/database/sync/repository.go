// Package sync provides database operations for prefetch progress tracking.
//
// One record is kept per sync type, so the last run of every version
// survives restarts.
//
// # Interface Implementation
//
//	var _ prefetch.ProgressReporter = (*Repository)(nil)
//
// # Usage
//
//	repo := sync.NewRepository(db)
//	err := repo.StartSync(entities.PrefetchSyncType("krv"), 1189, 200)
package sync

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/mybible/internal/entities"
)

// staleAfter marks a running record as interrupted when it stops updating.
const staleAfter = 10 * time.Minute

// Repository handles all sync progress database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sync repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSyncProgress retrieves the sync progress for a sync type.
func (r *Repository) GetSyncProgress(syncType entities.SyncType) (*entities.SyncProgress, error) {
	var progress entities.SyncProgress
	err := r.db.Where("sync_type = ?", syncType).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// ListSyncProgress returns every recorded sync ordered by type.
func (r *Repository) ListSyncProgress() ([]entities.SyncProgress, error) {
	var all []entities.SyncProgress
	err := r.db.Order("sync_type").Find(&all).Error
	return all, err
}

// StartSync creates or resets a sync progress record.
// Implements ProgressReporter.StartSync.
func (r *Repository) StartSync(syncType entities.SyncType, totalItems, processed int) error {
	var progress entities.SyncProgress
	result := r.db.Where("sync_type = ?", syncType).First(&progress)

	now := time.Now()
	if result.Error == gorm.ErrRecordNotFound {
		progress = entities.SyncProgress{
			SyncType:   syncType,
			Status:     entities.SyncStatusRunning,
			TotalItems: totalItems,
			Processed:  processed,
			StartedAt:  now,
			UpdatedAt:  now,
		}
		return r.db.Create(&progress).Error
	} else if result.Error != nil {
		return result.Error
	}

	// Reset existing record
	progress.Status = entities.SyncStatusRunning
	progress.TotalItems = totalItems
	progress.Processed = processed
	progress.Failed = 0
	progress.CurrentItem = ""
	progress.Error = ""
	progress.StartedAt = now
	progress.UpdatedAt = now
	progress.CompletedAt = nil

	return r.db.Save(&progress).Error
}

// UpdateProgress updates the progress of an ongoing sync.
// Implements ProgressReporter.UpdateProgress.
func (r *Repository) UpdateProgress(syncType entities.SyncType, processed, failed int, currentItem string) error {
	return r.db.Model(&entities.SyncProgress{}).
		Where("sync_type = ?", syncType).
		Updates(map[string]any{
			"processed":    processed,
			"failed":       failed,
			"current_item": currentItem,
			"updated_at":   time.Now(),
		}).Error
}

// CompleteSync records the terminal status of a sync.
// Implements ProgressReporter.CompleteSync.
func (r *Repository) CompleteSync(syncType entities.SyncType, status entities.SyncStatus, errorMsg string) error {
	now := time.Now()
	updates := map[string]any{
		"status":       status,
		"current_item": "",
		"updated_at":   now,
		"completed_at": now,
	}
	if errorMsg != "" {
		updates["error"] = errorMsg
	}
	return r.db.Model(&entities.SyncProgress{}).
		Where("sync_type = ?", syncType).
		Updates(updates).Error
}

// IsSyncRunning checks if a sync is currently in progress.
// A sync is considered stale if not updated in 10 minutes.
func (r *Repository) IsSyncRunning(syncType entities.SyncType) (bool, error) {
	var progress entities.SyncProgress
	err := r.db.Where("sync_type = ? AND status = ?", syncType, entities.SyncStatusRunning).First(&progress).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if progress.UpdatedAt.Before(time.Now().Add(-staleAfter)) {
		_ = r.CompleteSync(syncType, entities.SyncStatusFailed, "sync was interrupted")
		return false, nil
	}

	return true, nil
}

// MarkInterrupted fails every record left running by a previous process.
func (r *Repository) MarkInterrupted() (int64, error) {
	now := time.Now()
	result := r.db.Model(&entities.SyncProgress{}).
		Where("status = ?", entities.SyncStatusRunning).
		Updates(map[string]any{
			"status":       entities.SyncStatusFailed,
			"error":        "sync was interrupted",
			"updated_at":   now,
			"completed_at": now,
		})
	return result.RowsAffected, result.Error
}
