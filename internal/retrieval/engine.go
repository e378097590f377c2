// Package retrieval serves chapters through a bounded in-memory cache backed
// by the upstream providers, with one retry on the primary provider and one
// fallback attempt on the alternate.
package retrieval

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/providers"
)

var (
	ErrUnknownVersion = errors.New("unknown version")
	ErrUnknownBook    = errors.New("unknown book")
	ErrInvalidChapter = errors.New("chapter out of range")
)

// VerseWriter persists fetched chapters for offline reading and search.
type VerseWriter interface {
	SaveChapter(ch *bible.Chapter) error
}

// OfflineSource serves persisted chapters when every provider fails.
type OfflineSource interface {
	ChapterVerses(version, book string, chapter int) (*bible.Chapter, error)
}

// ProviderSource resolves the provider for a source API.
type ProviderSource interface {
	Get(api bible.SourceAPI) (providers.Provider, bool)
	Alternate(api bible.SourceAPI) (providers.Provider, bool)
}

// Engine is safe for concurrent use.
type Engine struct {
	providers ProviderSource
	cache     *ChapterCache
	writer    VerseWriter
	offline   OfflineSource
}

// NewEngine creates an engine. writer may be nil to disable write-through.
func NewEngine(providers ProviderSource, cache *ChapterCache, writer VerseWriter) *Engine {
	if cache == nil {
		cache = NewChapterCache(DefaultCacheCapacity)
	}
	return &Engine{providers: providers, cache: cache, writer: writer}
}

// SetOfflineSource enables reading persisted chapters after the network
// fails. It must be called before the engine is shared.
func (e *Engine) SetOfflineSource(src OfflineSource) {
	e.offline = src
}

// FetchChapter returns a chapter from cache or the network. On total failure
// the persisted copy is served if one exists, otherwise the error of the
// first attempt is returned.
func (e *Engine) FetchChapter(ctx context.Context, version, book string, chapter int) (*bible.Chapter, error) {
	key := bible.ChapterKey(version, book, chapter)
	if ch, ok := e.cache.Get(key); ok {
		return ch, nil
	}

	v, ok := bible.VersionByID(version)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVersion, version)
	}
	b, ok := bible.BookByID(book)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBook, book)
	}
	if chapter < 1 || chapter > b.Chapters {
		return nil, fmt.Errorf("%w: %s %d", ErrInvalidChapter, book, chapter)
	}

	ch, err := e.fetchWithFallback(ctx, v, book, chapter)
	if err != nil {
		if stored := e.readOffline(ctx, key, version, book, chapter); stored != nil {
			e.cache.Put(stored)
			return stored, nil
		}
		return nil, err
	}

	e.cache.Put(ch)
	if e.writer != nil {
		if err := e.writer.SaveChapter(ch); err != nil {
			log.Printf("[BIBLE] Failed to persist %s: %v", key, err)
		}
	}
	return ch, nil
}

func (e *Engine) readOffline(ctx context.Context, key, version, book string, chapter int) *bible.Chapter {
	if e.offline == nil || ctx.Err() != nil {
		return nil
	}
	ch, err := e.offline.ChapterVerses(version, book, chapter)
	if err != nil {
		log.Printf("[BIBLE] Failed to read persisted %s: %v", key, err)
		return nil
	}
	if ch == nil || len(ch.Verses) == 0 {
		return nil
	}
	log.Printf("[BIBLE] Serving %s from the verse store", key)
	return ch
}

func (e *Engine) fetchWithFallback(ctx context.Context, v bible.Version, book string, chapter int) (*bible.Chapter, error) {
	var firstErr error
	attempt := func(p providers.Provider) (*bible.Chapter, bool) {
		ch, err := p.FetchChapter(ctx, v.ID, book, chapter)
		if err == nil {
			return ch, true
		}
		if firstErr == nil {
			firstErr = err
		}
		return nil, false
	}

	primary, ok := e.providers.Get(v.SourceAPI)
	if ok {
		if ch, ok := attempt(primary); ok {
			return ch, nil
		}
		if ctx.Err() != nil {
			return nil, firstErr
		}
		if ch, ok := attempt(primary); ok {
			return ch, nil
		}
		if ctx.Err() != nil {
			return nil, firstErr
		}
	}

	if alt, ok := e.providers.Alternate(v.SourceAPI); ok {
		if ch, ok := attempt(alt); ok {
			return ch, nil
		}
	}

	if firstErr == nil {
		firstErr = fmt.Errorf("no provider registered for %s", v.SourceAPI)
	}
	return nil, firstErr
}

// CompareChapter fetches the same chapter in several versions, in order.
// The first failing version aborts the comparison.
func (e *Engine) CompareChapter(ctx context.Context, versions []string, book string, chapter int) ([]*bible.Chapter, error) {
	out := make([]*bible.Chapter, 0, len(versions))
	for _, version := range versions {
		ch, err := e.FetchChapter(ctx, version, book, chapter)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", version, err)
		}
		out = append(out, ch)
	}
	return out, nil
}

// CachedChapters returns a snapshot of the cached chapters for a version.
func (e *Engine) CachedChapters(version string) []*bible.Chapter {
	return e.cache.Chapters(version)
}

func (e *Engine) ClearCache() {
	e.cache.Clear()
}

func (e *Engine) CacheLen() int {
	return e.cache.Len()
}
