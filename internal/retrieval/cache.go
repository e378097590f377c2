package retrieval

import (
	"strings"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/mrlokans/mybible/internal/bible"
)

const DefaultCacheCapacity = 100

// ChapterCache is a bounded LRU of chapters keyed by "version:book:chapter".
// The underlying cache is guarded by its own mutex.
type ChapterCache struct {
	lru      cache.Cache[string, *bible.Chapter]
	capacity int
}

func NewChapterCache(capacity int) *ChapterCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &ChapterCache{
		lru:      cache.NewCache[string, *bible.Chapter]().WithMaxKeys(capacity).WithLRU(),
		capacity: capacity,
	}
}

// Get returns the chapter and marks it most recently used.
func (c *ChapterCache) Get(key string) (*bible.Chapter, bool) {
	return c.lru.Get(key)
}

// Put inserts or replaces a chapter, evicting the least recently used entry
// once capacity is exceeded.
func (c *ChapterCache) Put(ch *bible.Chapter) {
	c.lru.Set(ch.Key(), ch, 0)
}

func (c *ChapterCache) Len() int {
	return c.lru.Len()
}

func (c *ChapterCache) Capacity() int {
	return c.capacity
}

func (c *ChapterCache) Clear() {
	c.lru.Purge()
}

// Chapters returns the cached chapters of one version without touching
// recency.
func (c *ChapterCache) Chapters(version string) []*bible.Chapter {
	prefix := version + ":"
	var out []*bible.Chapter
	for _, key := range c.lru.Keys() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if ch, ok := c.lru.Peek(key); ok {
			out = append(out, ch)
		}
	}
	return out
}
