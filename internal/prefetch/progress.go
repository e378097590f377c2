package prefetch

import "github.com/mrlokans/mybible/internal/entities"

type Status string

const (
	StatusIdle        Status = "idle"
	StatusDownloading Status = "downloading"
	StatusDone        Status = "done"
	StatusError       Status = "error"
	StatusCancelled   Status = "cancelled"
)

// Terminal reports whether no further progress follows.
func (s Status) Terminal() bool {
	return s == StatusDone || s == StatusError || s == StatusCancelled
}

// Progress is a snapshot of one download run.
type Progress struct {
	Version  string `json:"version"`
	Current  int    `json:"current"`
	Total    int    `json:"total"`
	Failed   int    `json:"failed"`
	BookName string `json:"bookName,omitempty"`
	Status   Status `json:"status"`
	Error    string `json:"error,omitempty"`
}

// ProgressFunc receives progress in the order it is produced. It should
// return quickly since workers wait on it.
type ProgressFunc func(Progress)

// ProgressReporter persists run progress so it survives restarts.
type ProgressReporter interface {
	StartSync(syncType entities.SyncType, totalItems, processed int) error
	UpdateProgress(syncType entities.SyncType, processed, failed int, currentItem string) error
	CompleteSync(syncType entities.SyncType, status entities.SyncStatus, errorMsg string) error
}

func syncStatus(s Status) entities.SyncStatus {
	switch s {
	case StatusDone:
		return entities.SyncStatusCompleted
	case StatusCancelled:
		return entities.SyncStatusCancelled
	default:
		return entities.SyncStatusFailed
	}
}
