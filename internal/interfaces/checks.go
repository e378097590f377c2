package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/mybible/internal/backup"
	"github.com/mrlokans/mybible/internal/database/bookmarks"
	"github.com/mrlokans/mybible/internal/database/highlights"
	"github.com/mrlokans/mybible/internal/database/notes"
	"github.com/mrlokans/mybible/internal/database/progress"
	"github.com/mrlokans/mybible/internal/database/sessions"
	"github.com/mrlokans/mybible/internal/database/settings"
	syncdb "github.com/mrlokans/mybible/internal/database/sync"
	"github.com/mrlokans/mybible/internal/database/verses"
	"github.com/mrlokans/mybible/internal/exporters"
	"github.com/mrlokans/mybible/internal/http"
	"github.com/mrlokans/mybible/internal/prefetch"
	"github.com/mrlokans/mybible/internal/providers"
	"github.com/mrlokans/mybible/internal/retrieval"
	"github.com/mrlokans/mybible/internal/scheduler"
	"github.com/mrlokans/mybible/internal/search"
	"github.com/mrlokans/mybible/internal/settingsstore"
	"github.com/mrlokans/mybible/internal/tasks"
)

// =============================================================================
// Upstream Providers
// =============================================================================

var _ providers.Provider = (*providers.WldehClient)(nil)
var _ providers.Provider = (*providers.HelloaoClient)(nil)
var _ retrieval.ProviderSource = (*providers.Registry)(nil)

// =============================================================================
// Retrieval, Search and Prefetch
// =============================================================================

var _ retrieval.VerseWriter = (*verses.Repository)(nil)
var _ retrieval.OfflineSource = (*verses.Repository)(nil)
var _ search.VerseSource = (*verses.Repository)(nil)
var _ search.ChapterSource = (*retrieval.Engine)(nil)
var _ prefetch.ChapterFetcher = (*retrieval.Engine)(nil)
var _ prefetch.ChapterStore = (*verses.Repository)(nil)

// ProgressReporter implementations
var _ prefetch.ProgressReporter = (*syncdb.Repository)(nil)

// =============================================================================
// Data Access Layer
// =============================================================================

var _ http.NoteStore = (*notes.Repository)(nil)
var _ http.HighlightStore = (*highlights.Repository)(nil)
var _ http.BookmarkStore = (*bookmarks.Repository)(nil)
var _ http.ProgressStore = (*progress.Repository)(nil)
var _ http.SessionStore = (*sessions.Repository)(nil)
var _ settingsstore.Repository = (*settings.Repository)(nil)

var _ backup.NoteStore = (*notes.Repository)(nil)
var _ backup.HighlightStore = (*highlights.Repository)(nil)
var _ backup.BookmarkStore = (*bookmarks.Repository)(nil)
var _ backup.ProgressStore = (*progress.Repository)(nil)
var _ backup.SessionStore = (*sessions.Repository)(nil)
var _ backup.SettingsStore = (*settingsstore.SettingsStore)(nil)

// =============================================================================
// HTTP Services
// =============================================================================

var _ http.ChapterReader = (*retrieval.Engine)(nil)
var _ http.CacheInspector = (*retrieval.Engine)(nil)
var _ http.Searcher = (*search.Engine)(nil)
var _ http.PrefetchController = (*prefetch.Controller)(nil)
var _ http.SettingsService = (*settingsstore.SettingsStore)(nil)
var _ http.BackupService = (*backup.Service)(nil)
var _ http.TaskQueue = (*tasks.Client)(nil)
var _ http.OfflineSyncTrigger = (*scheduler.OfflineSyncScheduler)(nil)

// =============================================================================
// Background Work
// =============================================================================

var _ tasks.VersionDownloader = (*prefetch.Controller)(nil)
var _ scheduler.PrefetchEnqueuer = (*tasks.Client)(nil)
var _ scheduler.StatusRecorder = (*settingsstore.SettingsStore)(nil)
var _ exporters.NotesExporter = (*exporters.MarkdownExporter)(nil)
