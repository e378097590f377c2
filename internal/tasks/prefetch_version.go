package tasks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/mybible/internal/prefetch"
)

const PrefetchVersionQueue = "prefetch_version"

// VersionDownloader downloads every missing chapter of a version.
type VersionDownloader interface {
	Run(ctx context.Context, version string, onProgress prefetch.ProgressFunc) (prefetch.Progress, error)
}

// PrefetchVersionTask downloads a whole version for offline reading.
type PrefetchVersionTask struct {
	Version string `json:"version"`
}

func (t PrefetchVersionTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        PrefetchVersionQueue,
		MaxAttempts: 2,
		Backoff:     10 * time.Minute,
		Timeout:     90 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   7 * 24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// PrefetchVersionProcessor runs the download. A version already being
// downloaded by someone else counts as success; a run that ends with missing
// chapters fails the task so it is retried.
func PrefetchVersionProcessor(downloader VersionDownloader) backlite.QueueProcessor[PrefetchVersionTask] {
	return func(ctx context.Context, task PrefetchVersionTask) error {
		if downloader == nil {
			return fmt.Errorf("prefetch downloader not configured")
		}
		if task.Version == "" {
			return fmt.Errorf("prefetch task without version")
		}

		final, err := downloader.Run(ctx, task.Version, nil)
		if errors.Is(err, prefetch.ErrAlreadyRunning) {
			log.Printf("[TASK] Prefetch %s skipped: already running", task.Version)
			return nil
		}
		if err != nil {
			return fmt.Errorf("prefetch %s: %w", task.Version, err)
		}

		switch final.Status {
		case prefetch.StatusDone:
			log.Printf("[TASK] Prefetch %s complete: %d/%d chapters", task.Version, final.Current, final.Total)
			return nil
		case prefetch.StatusCancelled:
			return fmt.Errorf("prefetch %s cancelled at %d/%d", task.Version, final.Current, final.Total)
		default:
			return fmt.Errorf("prefetch %s: %s", task.Version, final.Error)
		}
	}
}

func NewPrefetchVersionQueue(downloader VersionDownloader) backlite.Queue {
	return backlite.NewQueue(PrefetchVersionProcessor(downloader))
}
