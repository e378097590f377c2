package prefetch

import (
	"context"
	"sync"
)

const subscriberBuffer = 64

// Run is one in-flight or finished download of a version.
type Run struct {
	version    string
	cancel     context.CancelFunc
	onProgress ProgressFunc
	done       chan struct{}

	mu          sync.Mutex
	progress    Progress
	subscribers map[chan Progress]struct{}
}

func newRun(version string, cancel context.CancelFunc, onProgress ProgressFunc) *Run {
	return &Run{
		version:     version,
		cancel:      cancel,
		onProgress:  onProgress,
		done:        make(chan struct{}),
		progress:    Progress{Version: version, Status: StatusDownloading},
		subscribers: make(map[chan Progress]struct{}),
	}
}

func (r *Run) Version() string {
	return r.version
}

// Abort stops scheduling new chapters and cancels in-flight requests.
// It is safe to call more than once and after the run has finished.
func (r *Run) Abort() {
	r.cancel()
}

// Wait blocks until the run ends and returns the terminal progress.
func (r *Run) Wait() Progress {
	<-r.done
	return r.Progress()
}

func (r *Run) Done() <-chan struct{} {
	return r.done
}

func (r *Run) Progress() Progress {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.progress
}

// Subscribe returns a channel of progress events and a function to stop
// receiving them. The channel is closed when the run ends; slow subscribers
// miss intermediate events but can read the terminal state from Progress.
func (r *Run) Subscribe() (<-chan Progress, func()) {
	ch := make(chan Progress, subscriberBuffer)

	r.mu.Lock()
	select {
	case <-r.done:
		r.mu.Unlock()
		close(ch)
		return ch, func() {}
	default:
	}
	ch <- r.progress
	r.subscribers[ch] = struct{}{}
	r.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if _, ok := r.subscribers[ch]; ok {
				delete(r.subscribers, ch)
				close(ch)
			}
		})
	}
}

// emit records p and fans it out. Callers serialize emits, so the callback
// sees events in order; it runs after the lock is released and may read the
// run.
func (r *Run) emit(p Progress) {
	r.mu.Lock()
	r.progress = p
	for ch := range r.subscribers {
		select {
		case ch <- p:
		default:
		}
	}
	onProgress := r.onProgress
	r.mu.Unlock()

	if onProgress != nil {
		onProgress(p)
	}
}

func (r *Run) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	close(r.done)
	for ch := range r.subscribers {
		close(ch)
		delete(r.subscribers, ch)
	}
}
