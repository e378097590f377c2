// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── verses/          # Persisted chapter text for offline reading and search
//	├── notes/           # Verse memos and sermon notes
//	├── highlights/      # Colored verse highlights
//	├── bookmarks/       # Verse bookmarks
//	├── progress/        # Chapters marked as read
//	├── sessions/        # Reading sessions for statistics
//	├── settings/        # Key/value application settings
//	└── sync/            # Prefetch progress tracking
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase("./mybible.db")
//
//	versesRepo := verses.NewRepository(db.DB)
//	notesRepo := notes.NewRepository(db.DB)
//
//	chapter, err := versesRepo.ChapterVerses("krv", "JHN", 3)
//
// # Interface Implementations
//
//   - verses.Repository: implements retrieval.VerseWriter, search.VerseSource, prefetch.ChapterStore
//   - sync.Repository: implements prefetch.ProgressReporter
//   - notes, highlights, bookmarks, progress, sessions: implement the http stores and backup.Store
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register the entity in models in database.go
//  5. Add compile-time interface check in internal/interfaces/checks.go
package database
