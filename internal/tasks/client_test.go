package tasks

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/mybible/internal/prefetch"
)

func TestTasksDBPath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "mybible-tasks.db"), TasksDBPath(filepath.Join("data", "mybible.db")))
	assert.Equal(t, "store-tasks", TasksDBPath("store"))
}

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	client, err := NewClient(dbPath, DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, client)

	_, err = os.Stat(filepath.Join(tmpDir, "test-tasks.db"))
	assert.NoError(t, err, "tasks database should be created")

	assert.NoError(t, client.Close())
}

func TestClientStartStop(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"), DefaultConfig())
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()
	assert.True(t, client.Stop(stopCtx), "stop should succeed gracefully")
}

func TestClientStopWithoutStart(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"), DefaultConfig())
	require.NoError(t, err)
	defer client.Close()

	assert.True(t, client.Stop(context.Background()))
}

type fakeDownloader struct {
	mu       sync.Mutex
	versions []string
	final    prefetch.Progress
	err      error
	ran      chan string
}

func (d *fakeDownloader) Run(ctx context.Context, version string, onProgress prefetch.ProgressFunc) (prefetch.Progress, error) {
	d.mu.Lock()
	d.versions = append(d.versions, version)
	d.mu.Unlock()
	if d.ran != nil {
		d.ran <- version
	}
	final := d.final
	final.Version = version
	return final, d.err
}

func TestEnqueuePrefetch_RunsDownloader(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"), DefaultConfig())
	require.NoError(t, err)
	defer client.Close()

	downloader := &fakeDownloader{final: prefetch.Progress{Status: prefetch.StatusDone}, ran: make(chan string, 2)}
	client.Register(NewPrefetchVersionQueue(downloader))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	ids, err := client.EnqueuePrefetch("krv", "kjv")
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	got := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case v := <-downloader.ran:
			got[v] = true
		case <-time.After(5 * time.Second):
			t.Fatal("prefetch task was not executed within timeout")
		}
	}
	assert.Equal(t, map[string]bool{"krv": true, "kjv": true}, got)
}

func TestEnqueuePrefetch_NoVersions(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"), DefaultConfig())
	require.NoError(t, err)
	defer client.Close()

	ids, err := client.EnqueuePrefetch()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPrefetchVersionProcessor(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		dl      VersionDownloader
		task    PrefetchVersionTask
		wantErr bool
	}{
		{"done", &fakeDownloader{final: prefetch.Progress{Status: prefetch.StatusDone}}, PrefetchVersionTask{Version: "krv"}, false},
		{"already running", &fakeDownloader{err: prefetch.ErrAlreadyRunning}, PrefetchVersionTask{Version: "krv"}, false},
		{"missing chapters", &fakeDownloader{final: prefetch.Progress{Status: prefetch.StatusError, Error: "3 chapters could not be downloaded"}}, PrefetchVersionTask{Version: "krv"}, true},
		{"cancelled", &fakeDownloader{final: prefetch.Progress{Status: prefetch.StatusCancelled}}, PrefetchVersionTask{Version: "krv"}, true},
		{"no version", &fakeDownloader{}, PrefetchVersionTask{}, true},
		{"no downloader", nil, PrefetchVersionTask{Version: "krv"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PrefetchVersionProcessor(tt.dl)(ctx, tt.task)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPrefetchVersionTaskConfig(t *testing.T) {
	cfg := PrefetchVersionTask{Version: "krv"}.Config()

	assert.Equal(t, PrefetchVersionQueue, cfg.Name)
	assert.Equal(t, 2, cfg.MaxAttempts)
	assert.Equal(t, 90*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 2*time.Hour, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", StatusString(backlite.TaskStatusPending))
	assert.Equal(t, "success", StatusString(backlite.TaskStatusSuccess))
	assert.Equal(t, "not_found", StatusString(backlite.TaskStatusNotFound))
}
