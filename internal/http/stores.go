package http

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/mybible/internal/backup"
	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/database/notes"
	"github.com/mrlokans/mybible/internal/database/progress"
	"github.com/mrlokans/mybible/internal/entities"
	"github.com/mrlokans/mybible/internal/prefetch"
	"github.com/mrlokans/mybible/internal/search"
	"github.com/mrlokans/mybible/internal/settingsstore"
)

// This file collects the store interfaces the controllers depend on.

type ChapterReader interface {
	FetchChapter(ctx context.Context, version, book string, chapter int) (*bible.Chapter, error)
	CompareChapter(ctx context.Context, versions []string, book string, chapter int) ([]*bible.Chapter, error)
}

type Searcher interface {
	Search(ctx context.Context, q search.Query) (*search.Result, error)
}

type PrefetchController interface {
	Start(ctx context.Context, version string, onProgress prefetch.ProgressFunc) (*prefetch.Run, error)
	Active(version string) (*prefetch.Run, bool)
	Abort(version string) bool
	Status(version string) (prefetch.Progress, error)
}

type NoteStore interface {
	AddNote(note *entities.Note) (*entities.Note, error)
	UpdateNote(id string, update notes.Update) (*entities.Note, error)
	DeleteNote(id string) error
	GetNoteByID(id string) (*entities.Note, error)
	GetNotesByChapter(book string, chapter int) ([]entities.Note, error)
	GetNotesByVerse(book string, chapter, verse int) ([]entities.Note, error)
	GetSermonNotes() ([]entities.Note, error)
	GetAllNotes() ([]entities.Note, error)
	SearchNotes(query string) ([]entities.Note, error)
}

type HighlightStore interface {
	AddHighlight(h *entities.Highlight) (*entities.Highlight, error)
	ToggleHighlight(h *entities.Highlight) (*entities.Highlight, bool, error)
	RemoveHighlight(id string) error
	GetHighlightsByChapter(book string, chapter int) ([]entities.Highlight, error)
	GetHighlightByVerse(book string, chapter, verse int) (*entities.Highlight, error)
	GetAllHighlights() ([]entities.Highlight, error)
}

type BookmarkStore interface {
	AddBookmark(b *entities.Bookmark) (*entities.Bookmark, error)
	ToggleBookmark(b *entities.Bookmark) (*entities.Bookmark, bool, error)
	RemoveBookmark(id string) error
	GetAllBookmarks() ([]entities.Bookmark, error)
	GetBookmarksByChapter(book string, chapter int) ([]entities.Bookmark, error)
	GetBookmarkByVerse(book string, chapter, verse int) (*entities.Bookmark, error)
}

type ProgressStore interface {
	MarkChapterRead(book string, chapter int) (*entities.ReadingProgress, error)
	UnmarkChapterRead(book string, chapter int) error
	GetReadingProgress() ([]entities.ReadingProgress, error)
	GetRecentReading(limit int) ([]entities.ReadingProgress, error)
	GetBookProgress(book string) (progress.BookProgress, error)
}

type SessionStore interface {
	AddSession(s *entities.ReadingSession) (*entities.ReadingSession, error)
	GetSessionsByDateRange(start, end string) ([]entities.ReadingSession, error)
	GetAllSessions() ([]entities.ReadingSession, error)
}

type SettingsService interface {
	GetAll() (settingsstore.AppSettings, error)
	Get(key string) (json.RawMessage, bool, error)
	Set(key string, value json.RawMessage) error
	Update(values map[string]json.RawMessage) (settingsstore.AppSettings, error)
	SetLastRead(book string, chapter int) error
	Reset(key string) error
	GetOfflineSyncStatus() settingsstore.OfflineSyncStatus
}

type BackupService interface {
	Export() (*backup.ExportData, error)
	Import(data *backup.ExportData) (backup.ImportResult, error)
}

type TaskQueue interface {
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
	EnqueuePrefetch(versions ...string) ([]string, error)
}

type OfflineSyncTrigger interface {
	RunNow() ([]string, error)
	IsRunning() bool
	NextRunTime() *time.Time
}
