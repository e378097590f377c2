// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Upstream Providers
//
//   - providers.Provider: one upstream Bible text service (internal/providers/provider.go)
//   - retrieval.ProviderSource: provider lookup with fallback (internal/retrieval/engine.go)
//
// ## Retrieval and Storage
//
//   - retrieval.VerseWriter: write-through persistence of fetched chapters
//   - search.VerseSource, search.ChapterSource: verses scanned by search
//   - prefetch.ChapterFetcher, prefetch.ChapterStore: what a download run needs
//   - prefetch.ProgressReporter: durable run progress (internal/database/sync)
//
// ## HTTP Stores
//
//   - NoteStore, HighlightStore, BookmarkStore, ProgressStore, SessionStore
//   - SettingsService, BackupService, TaskQueue, OfflineSyncTrigger
//
// All are declared in internal/http/stores.go.
//
// # Adding a New Provider
//
// To add another upstream text service:
//
//  1. Implement Provider in internal/providers/
//
//     type ExampleClient struct {
//         baseURL    string
//         httpClient *http.Client
//     }
//
//     func (c *ExampleClient) Name() bible.SourceAPI
//     func (c *ExampleClient) FetchChapter(ctx context.Context, version, book string, chapter int) (*bible.Chapter, error)
//
//     var _ Provider = (*ExampleClient)(nil)
//
//  2. Add a bible.SourceAPI constant and map versions to it in internal/bible/versions.go
//
//  3. Register it with providers.NewRegistry in entrypoint.go
//
// # Adding a New Database Domain
//
//  1. Create sub-package: internal/database/<domain>/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods
//
//  4. Add compile-time check:
//
//     var _ http.SomeStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the full list.
package interfaces
