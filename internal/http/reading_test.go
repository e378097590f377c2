package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/mybible/internal/database/progress"
	"github.com/mrlokans/mybible/internal/database/sessions"
	"github.com/mrlokans/mybible/internal/entities"
	"github.com/mrlokans/mybible/internal/stats"
)

func TestReadingController_Progress(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do("POST", "/api/progress/rut/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[entities.ReadingProgress](t, w)
	assert.Equal(t, "RUT", first.Book)
	assert.NotZero(t, first.CompletedAt)

	// Marking again keeps the original record.
	again := decode[entities.ReadingProgress](t, s.do("POST", "/api/progress/RUT/1", nil))
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, first.CompletedAt, again.CompletedAt)

	require.Equal(t, http.StatusOK, s.do("POST", "/api/progress/RUT/2", nil).Code)

	book := decode[progress.BookProgress](t, s.do("GET", "/api/progress/RUT", nil))
	assert.Equal(t, progress.BookProgress{Book: "RUT", Read: 2, Total: 4}, book)

	assert.Len(t, decode[[]entities.ReadingProgress](t, s.do("GET", "/api/progress", nil)), 2)
	assert.Len(t, decode[[]entities.ReadingProgress](t, s.do("GET", "/api/progress/recent?limit=1", nil)), 1)

	assert.Equal(t, http.StatusNoContent, s.do("DELETE", "/api/progress/RUT/2", nil).Code)
	book = decode[progress.BookProgress](t, s.do("GET", "/api/progress/RUT", nil))
	assert.Equal(t, 1, book.Read)

	assert.Equal(t, http.StatusNotFound, s.do("POST", "/api/progress/XYZ/1", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do("POST", "/api/progress/RUT/0", nil).Code)
	assert.Equal(t, http.StatusBadRequest, s.do("GET", "/api/progress/recent?limit=none", nil).Code)
}

func TestReadingController_RecordSession(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do("POST", "/api/sessions", map[string]any{"book": "jhn", "chapter": 1, "durationMs": 120000, "date": "2024-03-01"})
	require.Equal(t, http.StatusCreated, w.Code)
	saved := decode[entities.ReadingSession](t, w)
	assert.Equal(t, "JHN", saved.Book)
	assert.Equal(t, "2024-03-01", saved.Date)
	assert.NotZero(t, saved.EndedAt)
	assert.Equal(t, saved.EndedAt-120000, saved.StartedAt)

	w = s.do("POST", "/api/sessions", map[string]any{"durationMs": 3000})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"skipped": true}`, w.Body.String())

	assert.Equal(t, http.StatusBadRequest, s.do("POST", "/api/sessions", map[string]any{"durationMs": -1}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do("POST", "/api/sessions", map[string]any{"durationMs": 60000, "date": "03/01/2024"}).Code)
	assert.Equal(t, http.StatusNotFound, s.do("POST", "/api/sessions", map[string]any{"durationMs": 60000, "book": "XYZ"}).Code)
}

func TestReadingController_ListSessions(t *testing.T) {
	s := newTestServer(t, nil)
	for _, date := range []string{"2024-02-28", "2024-03-01", "2024-03-02"} {
		require.Equal(t, http.StatusCreated, s.do("POST", "/api/sessions", map[string]any{"durationMs": 60000, "date": date}).Code)
	}

	assert.Len(t, decode[[]entities.ReadingSession](t, s.do("GET", "/api/sessions", nil)), 3)

	inRange := decode[[]entities.ReadingSession](t, s.do("GET", "/api/sessions?start=2024-03-01&end=2024-03-31", nil))
	require.Len(t, inRange, 2)
	assert.Equal(t, "2024-03-01", inRange[0].Date)

	assert.Equal(t, http.StatusBadRequest, s.do("GET", "/api/sessions?start=2024-03-01", nil).Code)
}

func TestReadingController_Stats(t *testing.T) {
	s := newTestServer(t, nil)
	repo := sessions.NewRepository(s.db.DB)
	for _, sess := range []entities.ReadingSession{
		{Date: "2024-03-09", DurationMs: 30 * 60000, StartedAt: 1},
		{Date: "2024-03-10", DurationMs: 45 * 60000, StartedAt: 2},
		{Date: "2024-03-10", DurationMs: 45 * 60000, StartedAt: 3},
	} {
		session := sess
		_, err := repo.AddSession(&session)
		require.NoError(t, err)
	}

	controller := NewReadingController(progress.NewRepository(s.db.DB), repo)
	controller.now = func() time.Time { return time.Date(2024, 3, 10, 21, 0, 0, 0, time.UTC) }
	s.router.GET("/test/stats", controller.Stats)

	w := s.do("GET", "/test/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode[stats.Summary](t, w)
	assert.Equal(t, int64(120*60000), summary.TotalMs)
	assert.Equal(t, "2시간", summary.TotalFormatted)
	assert.Equal(t, 2, summary.Streak)
	assert.Len(t, summary.Daily, 2)
}
