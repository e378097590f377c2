package http

import (
	"context"

	"github.com/mrlokans/mybible/internal/database"
)

// RouterConfig contains all dependencies needed to build the router.
// Optional stores left nil disable their routes.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Chapters ChapterReader
	Searcher Searcher
	Prefetch PrefetchController
	Cache    CacheInspector

	// User data
	Notes      NoteStore
	Highlights HighlightStore
	Bookmarks  BookmarkStore
	Progress   ProgressStore
	Sessions   SessionStore
	Settings   SettingsService
	Backup     BackupService

	// Task queue and offline sync (optional)
	Tasks       TaskQueue
	OfflineSync OfflineSyncTrigger

	// BaseContext parents background work started from requests, so it
	// outlives the request and stops on shutdown.
	BaseContext context.Context

	DefaultVersion string
	Version        string

	RateLimitEnabled bool
	RateLimitRPS     float64
}
