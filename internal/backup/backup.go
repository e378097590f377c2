// Package backup exports the reader's data to a single JSON document and
// restores it again.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"

	"github.com/mrlokans/mybible/internal/entities"
	"github.com/mrlokans/mybible/internal/settingsstore"
)

// FormatVersion is the only export layout Import accepts.
const FormatVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported backup version")

type ExportData struct {
	Version         int                        `json:"version"`
	ExportedAt      string                     `json:"exportedAt"`
	Notes           []entities.Note            `json:"notes"`
	Highlights      []entities.Highlight       `json:"highlights"`
	Bookmarks       []entities.Bookmark        `json:"bookmarks"`
	ReadingProgress []entities.ReadingProgress `json:"readingProgress"`
	Sessions        []entities.ReadingSession  `json:"sessions,omitempty"`
	Settings        []settingsstore.KeyValue   `json:"settings"`
}

// ImportResult counts the records written by Import.
type ImportResult struct {
	Notes           int `json:"notes"`
	Highlights      int `json:"highlights"`
	Bookmarks       int `json:"bookmarks"`
	ReadingProgress int `json:"readingProgress"`
	Sessions        int `json:"sessions"`
	Settings        int `json:"settings"`
}

type NoteStore interface {
	GetAllNotes() ([]entities.Note, error)
	UpsertNotes([]entities.Note) error
}

type HighlightStore interface {
	GetAllHighlights() ([]entities.Highlight, error)
	UpsertHighlights([]entities.Highlight) error
}

type BookmarkStore interface {
	GetAllBookmarks() ([]entities.Bookmark, error)
	UpsertBookmarks([]entities.Bookmark) error
}

type ProgressStore interface {
	GetReadingProgress() ([]entities.ReadingProgress, error)
	UpsertProgress([]entities.ReadingProgress) error
}

type SessionStore interface {
	GetAllSessions() ([]entities.ReadingSession, error)
	UpsertSessions([]entities.ReadingSession) error
}

type SettingsStore interface {
	Export() ([]settingsstore.KeyValue, error)
	Set(key string, value json.RawMessage) error
}

// Stores groups the repositories a backup reads from and writes to.
// Sessions is optional.
type Stores struct {
	Notes      NoteStore
	Highlights HighlightStore
	Bookmarks  BookmarkStore
	Progress   ProgressStore
	Sessions   SessionStore
	Settings   SettingsStore
}

type Service struct {
	stores Stores
	now    func() time.Time
}

func NewService(stores Stores) *Service {
	return &Service{stores: stores, now: time.Now}
}

func (s *Service) Export() (*ExportData, error) {
	data := &ExportData{
		Version:    FormatVersion,
		ExportedAt: s.now().UTC().Format(time.RFC3339),
	}

	var err error
	if data.Notes, err = s.stores.Notes.GetAllNotes(); err != nil {
		return nil, fmt.Errorf("export notes: %w", err)
	}
	if data.Highlights, err = s.stores.Highlights.GetAllHighlights(); err != nil {
		return nil, fmt.Errorf("export highlights: %w", err)
	}
	if data.Bookmarks, err = s.stores.Bookmarks.GetAllBookmarks(); err != nil {
		return nil, fmt.Errorf("export bookmarks: %w", err)
	}
	if data.ReadingProgress, err = s.stores.Progress.GetReadingProgress(); err != nil {
		return nil, fmt.Errorf("export reading progress: %w", err)
	}
	if s.stores.Sessions != nil {
		if data.Sessions, err = s.stores.Sessions.GetAllSessions(); err != nil {
			return nil, fmt.Errorf("export sessions: %w", err)
		}
	}
	if data.Settings, err = s.stores.Settings.Export(); err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}
	return data, nil
}

// Import upserts every record in data. Records sharing an id with existing
// ones replace them; settings that fail validation are skipped.
func (s *Service) Import(data *ExportData) (ImportResult, error) {
	var res ImportResult
	if data == nil {
		return res, errors.New("empty backup")
	}
	if data.Version != FormatVersion {
		return res, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data.Version)
	}

	if len(data.Notes) > 0 {
		if err := s.stores.Notes.UpsertNotes(data.Notes); err != nil {
			return res, fmt.Errorf("import notes: %w", err)
		}
		res.Notes = len(data.Notes)
	}
	if len(data.Highlights) > 0 {
		if err := s.stores.Highlights.UpsertHighlights(data.Highlights); err != nil {
			return res, fmt.Errorf("import highlights: %w", err)
		}
		res.Highlights = len(data.Highlights)
	}
	if len(data.Bookmarks) > 0 {
		if err := s.stores.Bookmarks.UpsertBookmarks(data.Bookmarks); err != nil {
			return res, fmt.Errorf("import bookmarks: %w", err)
		}
		res.Bookmarks = len(data.Bookmarks)
	}
	if len(data.ReadingProgress) > 0 {
		if err := s.stores.Progress.UpsertProgress(data.ReadingProgress); err != nil {
			return res, fmt.Errorf("import reading progress: %w", err)
		}
		res.ReadingProgress = len(data.ReadingProgress)
	}
	if len(data.Sessions) > 0 && s.stores.Sessions != nil {
		if err := s.stores.Sessions.UpsertSessions(data.Sessions); err != nil {
			return res, fmt.Errorf("import sessions: %w", err)
		}
		res.Sessions = len(data.Sessions)
	}
	for _, kv := range data.Settings {
		if err := s.stores.Settings.Set(kv.Key, kv.Value); err != nil {
			if errors.Is(err, settingsstore.ErrInvalidSetting) {
				log.Printf("[BACKUP] Skipping setting %s: %v", kv.Key, err)
				continue
			}
			return res, fmt.Errorf("import setting %s: %w", kv.Key, err)
		}
		res.Settings++
	}

	log.Printf("[BACKUP] Imported %d notes, %d highlights, %d bookmarks, %d progress, %d sessions, %d settings",
		res.Notes, res.Highlights, res.Bookmarks, res.ReadingProgress, res.Sessions, res.Settings)
	return res, nil
}

// ParseExport decodes a backup document. Comments and trailing commas are
// accepted so hand-edited files still load.
func ParseExport(raw []byte) (*ExportData, error) {
	standard, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	var data ExportData
	if err := json.Unmarshal(standard, &data); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	return &data, nil
}

// Marshal renders a backup as indented JSON.
func Marshal(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// WriteFile writes a backup so that a crash never leaves a partial file.
func WriteFile(path string, data *ExportData) error {
	encoded, err := Marshal(data)
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(encoded)); err != nil {
		return fmt.Errorf("write backup %s: %w", path, err)
	}
	return nil
}
