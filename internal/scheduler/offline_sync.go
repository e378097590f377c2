// Package scheduler runs recurring jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/settingsstore"
)

const (
	OfflineSyncQueued = "queued"
	OfflineSyncFailed = "failed"
)

// OfflineSyncConfig selects which versions are kept downloaded and when.
type OfflineSyncConfig struct {
	Enabled  bool
	Schedule string
	Versions []string
}

// PrefetchEnqueuer queues full-version downloads.
type PrefetchEnqueuer interface {
	EnqueuePrefetch(versions ...string) ([]string, error)
}

// StatusRecorder persists the outcome of each scheduled run.
type StatusRecorder interface {
	SetOfflineSyncStatus(status string) error
}

// OfflineSyncScheduler periodically queues prefetch tasks so configured
// versions stay available offline.
type OfflineSyncScheduler struct {
	config   OfflineSyncConfig
	enqueuer PrefetchEnqueuer
	status   StatusRecorder

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewOfflineSyncScheduler creates a scheduler. status may be nil.
func NewOfflineSyncScheduler(config OfflineSyncConfig, enqueuer PrefetchEnqueuer, status StatusRecorder) *OfflineSyncScheduler {
	return &OfflineSyncScheduler{
		config:   config,
		enqueuer: enqueuer,
		status:   status,
		cron:     cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// ParseVersions splits a comma-separated list, dropping blanks, duplicates
// and unknown versions.
func ParseVersions(list string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, part := range strings.Split(list, ",") {
		v := strings.ToLower(strings.TrimSpace(part))
		if v == "" || seen[v] {
			continue
		}
		if _, ok := bible.VersionByID(v); !ok {
			log.Printf("[SYNC] Ignoring unknown offline version %q", v)
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Start schedules the job if offline sync is enabled. The scheduler stops
// when ctx is cancelled.
func (s *OfflineSyncScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if !s.config.Enabled {
		log.Printf("[SYNC] Offline sync scheduler: disabled")
		return nil
	}
	if len(s.config.Versions) == 0 {
		log.Printf("[SYNC] Offline sync scheduler: no versions configured, skipping")
		return nil
	}
	if err := settingsstore.ValidateCronSchedule(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		if _, err := s.RunNow(); err != nil {
			log.Printf("[SYNC] Offline sync failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule offline sync: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := settingsstore.GetNextRunTime(s.config.Schedule, time.Now())
	log.Printf("[SYNC] Offline sync scheduler: started with schedule '%s' for %s. Next run: %v",
		s.config.Schedule, strings.Join(s.config.Versions, ","), nextRun)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()
	return nil
}

// Stop waits for a job in progress and removes the schedule.
func (s *OfflineSyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	<-s.cron.Stop().Done()
	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.isRunning = false
	log.Printf("[SYNC] Offline sync scheduler: stopped")
}

// RunNow queues a prefetch of every configured version and records the
// outcome.
func (s *OfflineSyncScheduler) RunNow() ([]string, error) {
	ids, err := s.enqueuer.EnqueuePrefetch(s.config.Versions...)
	status := OfflineSyncQueued
	if err != nil {
		status = OfflineSyncFailed
	}
	if s.status != nil {
		if recErr := s.status.SetOfflineSyncStatus(status); recErr != nil {
			log.Printf("[SYNC] Failed to record offline sync status: %v", recErr)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("enqueue prefetch: %w", err)
	}
	log.Printf("[SYNC] Queued offline sync for %s", strings.Join(s.config.Versions, ","))
	return ids, nil
}

func (s *OfflineSyncScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the job fires next, or nil when not scheduled.
func (s *OfflineSyncScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}
