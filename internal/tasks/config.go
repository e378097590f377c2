package tasks

import "time"

// Config holds configuration for the background task queue.
type Config struct {
	// Workers is the number of queue workers. A prefetch task already fans
	// out over its own pool, so one worker is usually enough. Default: 1
	Workers int

	// ReleaseAfter is when a claimed task that never finished is handed back
	// to the queue. It must exceed the longest full-version download. Default: 2h
	ReleaseAfter time.Duration

	// CleanupInterval is how often finished tasks are purged. Default: 1h
	CleanupInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Workers:         1,
		ReleaseAfter:    2 * time.Hour,
		CleanupInterval: time.Hour,
	}
}
