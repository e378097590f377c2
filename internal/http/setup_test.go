package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/mybible/internal/backup"
	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/database"
	"github.com/mrlokans/mybible/internal/database/bookmarks"
	"github.com/mrlokans/mybible/internal/database/highlights"
	"github.com/mrlokans/mybible/internal/database/notes"
	"github.com/mrlokans/mybible/internal/database/progress"
	"github.com/mrlokans/mybible/internal/database/sessions"
	"github.com/mrlokans/mybible/internal/database/settings"
	"github.com/mrlokans/mybible/internal/settingsstore"
)

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test_http_"+strings.ReplaceAll(t.Name(), "/", "_")+".db")
	db, err := database.NewTestDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeChapters serves generated chapters and records requests.
type fakeChapters struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeChapters) FetchChapter(ctx context.Context, version, book string, chapter int) (*bible.Chapter, error) {
	f.mu.Lock()
	f.calls = append(f.calls, bible.ChapterKey(version, book, chapter))
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return &bible.Chapter{
		Book: book, Chapter: chapter, Version: version,
		Verses: []bible.Verse{{Book: book, Chapter: chapter, Verse: 1, Text: fmt.Sprintf("%s %d", book, chapter), Version: version}},
	}, nil
}

func (f *fakeChapters) CompareChapter(ctx context.Context, versions []string, book string, chapter int) ([]*bible.Chapter, error) {
	out := make([]*bible.Chapter, 0, len(versions))
	for _, v := range versions {
		ch, err := f.FetchChapter(ctx, v, book, chapter)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}

type testServer struct {
	db       *database.Database
	router   *gin.Engine
	chapters *fakeChapters
	settings *settingsstore.SettingsStore
	notes    *notes.Repository
}

// newTestServer builds the full router over a fresh database. mutate may
// adjust the config before the router is built.
func newTestServer(t *testing.T, mutate func(*RouterConfig)) *testServer {
	t.Helper()
	db := setupTestDB(t)

	s := &testServer{
		db:       db,
		chapters: &fakeChapters{},
		settings: settingsstore.New(settings.NewRepository(db.DB), bible.DefaultVersion),
		notes:    notes.NewRepository(db.DB),
	}
	cfg := RouterConfig{
		Database:       db,
		Chapters:       s.chapters,
		Notes:          s.notes,
		Highlights:     highlights.NewRepository(db.DB),
		Bookmarks:      bookmarks.NewRepository(db.DB),
		Progress:       progress.NewRepository(db.DB),
		Sessions:       sessions.NewRepository(db.DB),
		Settings:       s.settings,
		BaseContext:    context.Background(),
		DefaultVersion: bible.DefaultVersion,
		Version:        "test",
	}
	cfg.Backup = backup.NewService(backup.Stores{
		Notes:      s.notes,
		Highlights: highlights.NewRepository(db.DB),
		Bookmarks:  bookmarks.NewRepository(db.DB),
		Progress:   progress.NewRepository(db.DB),
		Sessions:   sessions.NewRepository(db.DB),
		Settings:   s.settings,
	})
	if mutate != nil {
		mutate(&cfg)
	}
	s.router = NewRouter(cfg)
	return s
}

// do sends a request with an optional JSON body.
func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	case []byte:
		reader = bytes.NewReader(b)
	default:
		encoded, _ := json.Marshal(b)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

