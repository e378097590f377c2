package retrieval

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/providers"
)

type fakeProvider struct {
	name bible.SourceAPI

	mu    sync.Mutex
	calls int
	// errs are returned for successive calls; a nil entry or running past the end succeeds.
	errs   []error
	onCall func()
}

func (f *fakeProvider) Name() bible.SourceAPI { return f.name }

func (f *fakeProvider) FetchChapter(ctx context.Context, version, book string, chapter int) (*bible.Chapter, error) {
	f.mu.Lock()
	idx := f.calls
	f.calls++
	f.mu.Unlock()

	if f.onCall != nil {
		f.onCall()
	}
	if idx < len(f.errs) && f.errs[idx] != nil {
		return nil, f.errs[idx]
	}
	return &bible.Chapter{
		Book:    book,
		Chapter: chapter,
		Version: version,
		Verses: []bible.Verse{
			{Book: book, Chapter: chapter, Verse: 1, Text: fmt.Sprintf("%s from %s", book, f.name), Version: version},
		},
	}, nil
}

func (f *fakeProvider) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingWriter struct {
	mu    sync.Mutex
	saved []string
	err   error
}

func (w *recordingWriter) SaveChapter(ch *bible.Chapter) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.saved = append(w.saved, ch.Key())
	return w.err
}

func newTestEngine(capacity int, w VerseWriter) (*Engine, *fakeProvider, *fakeProvider) {
	wl := &fakeProvider{name: bible.SourceWldeh}
	ha := &fakeProvider{name: bible.SourceHelloao}
	return NewEngine(providers.NewRegistry(wl, ha), NewChapterCache(capacity), w), wl, ha
}

func TestEngine_CacheHitMakesOneNetworkCall(t *testing.T) {
	engine, wl, _ := newTestEngine(10, nil)

	first, err := engine.FetchChapter(context.Background(), "kjv", "JHN", 3)
	require.NoError(t, err)
	second, err := engine.FetchChapter(context.Background(), "kjv", "JHN", 3)
	require.NoError(t, err)

	assert.Equal(t, 1, wl.Calls())
	assert.Same(t, first, second)
}

func TestEngine_LRUEviction(t *testing.T) {
	engine, wl, _ := newTestEngine(DefaultCacheCapacity, nil)
	ctx := context.Background()

	refs := bible.AllChapters()[:DefaultCacheCapacity+1]
	for _, ref := range refs {
		_, err := engine.FetchChapter(ctx, "kjv", ref.Book, ref.Chapter)
		require.NoError(t, err)
	}
	assert.Equal(t, DefaultCacheCapacity, engine.CacheLen())

	// The oldest entry was evicted and must be fetched again.
	calls := wl.Calls()
	_, err := engine.FetchChapter(ctx, "kjv", refs[0].Book, refs[0].Chapter)
	require.NoError(t, err)
	assert.Equal(t, calls+1, wl.Calls())

	// The newest entry is still cached.
	calls = wl.Calls()
	_, err = engine.FetchChapter(ctx, "kjv", refs[len(refs)-1].Book, refs[len(refs)-1].Chapter)
	require.NoError(t, err)
	assert.Equal(t, calls, wl.Calls())
}

func TestEngine_GetPromotesEntry(t *testing.T) {
	engine, wl, _ := newTestEngine(2, nil)
	ctx := context.Background()

	_, _ = engine.FetchChapter(ctx, "kjv", "GEN", 1)
	_, _ = engine.FetchChapter(ctx, "kjv", "GEN", 2)
	_, _ = engine.FetchChapter(ctx, "kjv", "GEN", 1) // promote GEN 1
	_, _ = engine.FetchChapter(ctx, "kjv", "GEN", 3) // evicts GEN 2
	require.Equal(t, 3, wl.Calls())

	_, _ = engine.FetchChapter(ctx, "kjv", "GEN", 1)
	assert.Equal(t, 3, wl.Calls())
	_, _ = engine.FetchChapter(ctx, "kjv", "GEN", 2)
	assert.Equal(t, 4, wl.Calls())
}

func TestEngine_RetryThenFallback(t *testing.T) {
	engine, wl, ha := newTestEngine(10, nil)
	firstErr := errors.New("primary down")
	wl.errs = []error{firstErr, errors.New("still down")}

	ch, err := engine.FetchChapter(context.Background(), "kjv", "GEN", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, wl.Calls())
	assert.Equal(t, 1, ha.Calls())
	assert.Contains(t, ch.Verses[0].Text, "helloao")
}

func TestEngine_RetrySucceeds(t *testing.T) {
	engine, wl, ha := newTestEngine(10, nil)
	wl.errs = []error{errors.New("transient")}

	_, err := engine.FetchChapter(context.Background(), "kjv", "GEN", 1)
	require.NoError(t, err)
	assert.Equal(t, 2, wl.Calls())
	assert.Zero(t, ha.Calls())
}

func TestEngine_AllAttemptsFailReturnsFirstError(t *testing.T) {
	writer := &recordingWriter{}
	engine, wl, ha := newTestEngine(10, writer)
	firstErr := errors.New("first failure")
	wl.errs = []error{firstErr, errors.New("second failure")}
	ha.errs = []error{errors.New("fallback failure")}

	_, err := engine.FetchChapter(context.Background(), "kjv", "GEN", 1)
	require.Error(t, err)
	assert.Same(t, firstErr, err)
	assert.Equal(t, 2, wl.Calls())
	assert.Equal(t, 1, ha.Calls())
	assert.Zero(t, engine.CacheLen())
	assert.Empty(t, writer.saved)
}

func TestEngine_CancellationStopsRetries(t *testing.T) {
	engine, wl, ha := newTestEngine(10, nil)
	ctx, cancel := context.WithCancel(context.Background())
	firstErr := errors.New("aborted")
	wl.errs = []error{firstErr}
	wl.onCall = cancel

	_, err := engine.FetchChapter(ctx, "kjv", "GEN", 1)
	assert.Same(t, firstErr, err)
	assert.Equal(t, 1, wl.Calls())
	assert.Zero(t, ha.Calls())
}

func TestEngine_UnknownVersionAndBook(t *testing.T) {
	engine, wl, ha := newTestEngine(10, nil)
	ctx := context.Background()

	_, err := engine.FetchChapter(ctx, "niv", "GEN", 1)
	assert.ErrorIs(t, err, ErrUnknownVersion)

	_, err = engine.FetchChapter(ctx, "kjv", "XYZ", 1)
	assert.ErrorIs(t, err, ErrUnknownBook)

	_, err = engine.FetchChapter(ctx, "kjv", "GEN", 51)
	assert.ErrorIs(t, err, ErrInvalidChapter)

	assert.Zero(t, wl.Calls())
	assert.Zero(t, ha.Calls())
}

func TestEngine_WriteThrough(t *testing.T) {
	t.Run("saves fetched chapter", func(t *testing.T) {
		writer := &recordingWriter{}
		engine, _, _ := newTestEngine(10, writer)

		_, err := engine.FetchChapter(context.Background(), "krv", "PSA", 23)
		require.NoError(t, err)
		_, err = engine.FetchChapter(context.Background(), "krv", "PSA", 23)
		require.NoError(t, err)
		assert.Equal(t, []string{"krv:PSA:23"}, writer.saved)
	})

	t.Run("persistence failure is swallowed", func(t *testing.T) {
		writer := &recordingWriter{err: errors.New("disk full")}
		engine, _, _ := newTestEngine(10, writer)

		ch, err := engine.FetchChapter(context.Background(), "krv", "PSA", 23)
		require.NoError(t, err)
		assert.NotEmpty(t, ch.Verses)
		assert.Equal(t, 1, engine.CacheLen())
	})
}

type memoryOffline struct {
	chapters map[string]*bible.Chapter
	reads    int
}

func (m *memoryOffline) ChapterVerses(version, book string, chapter int) (*bible.Chapter, error) {
	m.reads++
	return m.chapters[bible.ChapterKey(version, book, chapter)], nil
}

func TestEngine_OfflineFallback(t *testing.T) {
	stored := &bible.Chapter{
		Book: "JHN", Chapter: 11, Version: "kjv",
		Verses: []bible.Verse{{Book: "JHN", Chapter: 11, Verse: 35, Text: "Jesus wept.", Version: "kjv"}},
	}
	offline := &memoryOffline{chapters: map[string]*bible.Chapter{stored.Key(): stored}}

	t.Run("network healthy skips the store", func(t *testing.T) {
		engine, _, _ := newTestEngine(10, nil)
		engine.SetOfflineSource(offline)
		ch, err := engine.FetchChapter(context.Background(), "kjv", "JHN", 11)
		require.NoError(t, err)
		assert.Contains(t, ch.Verses[0].Text, "from")
		assert.Zero(t, offline.reads)
	})

	t.Run("network down serves persisted copy", func(t *testing.T) {
		engine, wl, ha := newTestEngine(10, nil)
		down := errors.New("offline")
		wl.errs = []error{down, down}
		ha.errs = []error{down}
		engine.SetOfflineSource(offline)

		ch, err := engine.FetchChapter(context.Background(), "kjv", "JHN", 11)
		require.NoError(t, err)
		assert.Equal(t, "Jesus wept.", ch.Verses[0].Text)
		assert.Equal(t, 1, engine.CacheLen())
	})

	t.Run("missing from store returns network error", func(t *testing.T) {
		engine, wl, ha := newTestEngine(10, nil)
		down := errors.New("offline")
		wl.errs = []error{down, down}
		ha.errs = []error{down}
		engine.SetOfflineSource(offline)

		_, err := engine.FetchChapter(context.Background(), "kjv", "JHN", 12)
		assert.ErrorIs(t, err, down)
	})
}

func TestEngine_CachedChaptersAndClear(t *testing.T) {
	engine, _, _ := newTestEngine(10, nil)
	ctx := context.Background()

	_, _ = engine.FetchChapter(ctx, "kjv", "GEN", 1)
	_, _ = engine.FetchChapter(ctx, "kjv", "GEN", 2)
	_, _ = engine.FetchChapter(ctx, "krv", "GEN", 1)

	assert.Len(t, engine.CachedChapters("kjv"), 2)
	assert.Len(t, engine.CachedChapters("krv"), 1)
	assert.Empty(t, engine.CachedChapters("web"))

	engine.ClearCache()
	assert.Zero(t, engine.CacheLen())
}

func TestEngine_CompareChapter(t *testing.T) {
	engine, _, _ := newTestEngine(10, nil)

	chapters, err := engine.CompareChapter(context.Background(), []string{"krv", "kjv"}, "JHN", 1)
	require.NoError(t, err)
	require.Len(t, chapters, 2)
	assert.Equal(t, "krv", chapters[0].Version)
	assert.Equal(t, "kjv", chapters[1].Version)

	_, err = engine.CompareChapter(context.Background(), []string{"krv", "niv"}, "JHN", 1)
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestEngine_ConcurrentFetches(t *testing.T) {
	engine, _, _ := newTestEngine(5, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(chapter int) {
			defer wg.Done()
			_, err := engine.FetchChapter(ctx, "kjv", "PSA", chapter)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, engine.CacheLen(), 5)
}
