// Package prefetch downloads every chapter of a version that is not yet
// persisted, using a small pool of workers over the retrieval engine.
//
// A run is resumable: chapters already in the verse store are skipped, and
// the first progress event reports them as completed.
package prefetch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/entities"
)

const (
	DefaultWorkers = 3

	// reportEvery throttles persisted progress updates.
	reportEvery = 25
)

var ErrAlreadyRunning = errors.New("prefetch already running for version")

// ChapterFetcher retrieves a chapter and persists it as a side effect.
type ChapterFetcher interface {
	FetchChapter(ctx context.Context, version, book string, chapter int) (*bible.Chapter, error)
}

// ChapterStore lists the chapters persisted for a version.
type ChapterStore interface {
	PersistedChapters(version string) ([]bible.ChapterRef, error)
}

type Controller struct {
	fetcher  ChapterFetcher
	store    ChapterStore
	reporter ProgressReporter
	workers  int

	mu   sync.Mutex
	runs map[string]*Run
}

// NewController creates a controller. reporter may be nil.
func NewController(fetcher ChapterFetcher, store ChapterStore, reporter ProgressReporter, workers int) *Controller {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Controller{
		fetcher:  fetcher,
		store:    store,
		reporter: reporter,
		workers:  workers,
		runs:     make(map[string]*Run),
	}
}

// Start launches a background run derived from ctx. Only one run per
// version may be active.
func (c *Controller) Start(ctx context.Context, version string, onProgress ProgressFunc) (*Run, error) {
	c.mu.Lock()
	if _, busy := c.runs[version]; busy {
		c.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, version)
	}
	runCtx, cancel := context.WithCancel(ctx)
	run := newRun(version, cancel, onProgress)
	c.runs[version] = run
	c.mu.Unlock()

	go func() {
		defer func() {
			c.mu.Lock()
			delete(c.runs, version)
			c.mu.Unlock()
			cancel()
			run.finish()
		}()
		c.execute(runCtx, run)
	}()
	return run, nil
}

// Run downloads a version and blocks until the run ends.
func (c *Controller) Run(ctx context.Context, version string, onProgress ProgressFunc) (Progress, error) {
	run, err := c.Start(ctx, version, onProgress)
	if err != nil {
		return Progress{}, err
	}
	return run.Wait(), nil
}

// Active returns the in-flight run for a version.
func (c *Controller) Active(version string) (*Run, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	run, ok := c.runs[version]
	return run, ok
}

// Abort cancels the active run for a version, reporting whether one existed.
func (c *Controller) Abort(version string) bool {
	run, ok := c.Active(version)
	if ok {
		run.Abort()
	}
	return ok
}

// AbortAll cancels every active run and returns how many there were.
func (c *Controller) AbortAll() int {
	c.mu.Lock()
	runs := make([]*Run, 0, len(c.runs))
	for _, run := range c.runs {
		runs = append(runs, run)
	}
	c.mu.Unlock()

	for _, run := range runs {
		run.Abort()
	}
	return len(runs)
}

// CachedChapterCount returns how many chapters of a version are persisted.
func (c *Controller) CachedChapterCount(version string) (int, error) {
	refs, err := c.store.PersistedChapters(version)
	if err != nil {
		return 0, err
	}
	return len(refs), nil
}

// Status reports the active run's progress, or a snapshot derived from the
// store when nothing is running.
func (c *Controller) Status(version string) (Progress, error) {
	if run, ok := c.Active(version); ok {
		return run.Progress(), nil
	}
	if _, ok := bible.VersionByID(version); !ok {
		return Progress{}, fmt.Errorf("unknown version: %s", version)
	}
	count, err := c.CachedChapterCount(version)
	if err != nil {
		return Progress{}, err
	}
	p := Progress{Version: version, Current: count, Total: bible.TotalChapters, Status: StatusIdle}
	if count >= bible.TotalChapters {
		p.Current = bible.TotalChapters
		p.Status = StatusDone
	}
	return p, nil
}

func (c *Controller) missing(version string) ([]bible.ChapterRef, error) {
	persisted, err := c.store.PersistedChapters(version)
	if err != nil {
		return nil, err
	}
	have := make(map[bible.ChapterRef]struct{}, len(persisted))
	for _, ref := range persisted {
		have[ref] = struct{}{}
	}
	var gap []bible.ChapterRef
	for _, ref := range bible.AllChapters() {
		if _, ok := have[ref]; !ok {
			gap = append(gap, ref)
		}
	}
	return gap, nil
}

func (c *Controller) execute(ctx context.Context, run *Run) {
	version := run.version
	syncType := entities.PrefetchSyncType(version)
	total := bible.TotalChapters

	fail := func(current int, err error) {
		log.Printf("[PREFETCH] %s failed: %v", version, err)
		run.emit(Progress{Version: version, Current: current, Total: total, Status: StatusError, Error: err.Error()})
		c.complete(syncType, StatusError, err.Error())
	}

	if _, ok := bible.VersionByID(version); !ok {
		fail(0, fmt.Errorf("unknown version: %s", version))
		return
	}

	gap, err := c.missing(version)
	if err != nil {
		fail(0, fmt.Errorf("list persisted chapters: %w", err))
		return
	}

	current := total - len(gap)
	log.Printf("[PREFETCH] %s: %d/%d chapters persisted, %d to download with %d workers",
		version, current, total, len(gap), c.workers)
	run.emit(Progress{Version: version, Current: current, Total: total, Status: StatusDownloading})
	if c.reporter != nil {
		if err := c.reporter.StartSync(syncType, total, current); err != nil {
			log.Printf("[PREFETCH] Failed to record start for %s: %v", version, err)
		}
	}

	var (
		next   atomic.Int64
		mu     sync.Mutex
		failed int
	)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < c.workers; i++ {
		g.Go(func() error {
			for {
				if gctx.Err() != nil {
					return nil
				}
				idx := int(next.Add(1) - 1)
				if idx >= len(gap) {
					return nil
				}
				ref := gap[idx]

				_, err := c.fetcher.FetchChapter(gctx, version, ref.Book, ref.Chapter)
				if gctx.Err() != nil {
					return nil
				}
				if err != nil {
					log.Printf("[PREFETCH] %s %s: %v", version, ref, err)
				}

				bookName := ref.Book
				if b, ok := bible.BookByID(ref.Book); ok {
					bookName = b.Name
				}

				mu.Lock()
				current++
				if err != nil {
					failed++
				}
				run.emit(Progress{Version: version, Current: current, Total: total, Failed: failed, BookName: bookName, Status: StatusDownloading})
				if c.reporter != nil && current%reportEvery == 0 {
					if err := c.reporter.UpdateProgress(syncType, current, failed, ref.String()); err != nil {
						log.Printf("[PREFETCH] Failed to record progress for %s: %v", version, err)
					}
				}
				mu.Unlock()
			}
		})
	}
	_ = g.Wait()

	mu.Lock()
	completed, failures := current, failed
	mu.Unlock()

	if ctx.Err() != nil {
		log.Printf("[PREFETCH] %s cancelled at %d/%d", version, completed, total)
		run.emit(Progress{Version: version, Current: completed, Total: total, Failed: failures, Status: StatusCancelled})
		c.complete(syncType, StatusCancelled, "")
		return
	}

	remaining, err := c.missing(version)
	if err != nil {
		fail(completed, fmt.Errorf("recount persisted chapters: %w", err))
		return
	}
	if len(remaining) > 0 {
		fail(total-len(remaining), fmt.Errorf("%d chapters could not be downloaded", len(remaining)))
		return
	}

	log.Printf("[PREFETCH] %s complete: %d chapters", version, total)
	run.emit(Progress{Version: version, Current: total, Total: total, Failed: failures, Status: StatusDone})
	c.complete(syncType, StatusDone, "")
}

func (c *Controller) complete(syncType entities.SyncType, status Status, msg string) {
	if c.reporter == nil {
		return
	}
	if err := c.reporter.CompleteSync(syncType, syncStatus(status), msg); err != nil {
		log.Printf("[PREFETCH] Failed to record completion for %s: %v", syncType, err)
	}
}
