package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybible/internal/entities"
	"github.com/mrlokans/mybible/internal/stats"
)

const dateLayout = "2006-01-02"

type ReadingController struct {
	progress ProgressStore
	sessions SessionStore
	now      func() time.Time
}

func NewReadingController(progress ProgressStore, sessions SessionStore) *ReadingController {
	return &ReadingController{progress: progress, sessions: sessions, now: time.Now}
}

// --- Progress ---

// POST /api/progress/:book/:chapter
func (rc *ReadingController) MarkRead(c *gin.Context) {
	book, chapter, ok := parseChapterRef(c)
	if !ok {
		return
	}
	p, err := rc.progress.MarkChapterRead(book, chapter)
	if err != nil {
		respondInternalError(c, err, "mark chapter read")
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/progress/:book/:chapter
func (rc *ReadingController) UnmarkRead(c *gin.Context) {
	book, chapter, ok := parseChapterRef(c)
	if !ok {
		return
	}
	if err := rc.progress.UnmarkChapterRead(book, chapter); err != nil {
		respondInternalError(c, err, "unmark chapter read")
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/progress
func (rc *ReadingController) ListProgress(c *gin.Context) {
	records, err := rc.progress.GetReadingProgress()
	if err != nil {
		respondInternalError(c, err, "list progress")
		return
	}
	if records == nil {
		records = []entities.ReadingProgress{}
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/progress/recent?limit=
func (rc *ReadingController) RecentReading(c *gin.Context) {
	limit, ok := optionalQueryInt(c, "limit")
	if !ok {
		return
	}
	records, err := rc.progress.GetRecentReading(limit)
	if err != nil {
		respondInternalError(c, err, "recent reading")
		return
	}
	if records == nil {
		records = []entities.ReadingProgress{}
	}
	c.JSON(http.StatusOK, records)
}

// GET /api/progress/:book
func (rc *ReadingController) BookProgress(c *gin.Context) {
	book, ok := parseBook(c, c.Param("book"))
	if !ok {
		return
	}
	p, err := rc.progress.GetBookProgress(book)
	if err != nil {
		respondInternalError(c, err, "book progress")
		return
	}
	c.JSON(http.StatusOK, p)
}

// --- Sessions ---

type sessionRequest struct {
	Book       string `json:"book"`
	Chapter    int    `json:"chapter"`
	DurationMs int64  `json:"durationMs"`
	StartedAt  int64  `json:"startedAt"`
	EndedAt    int64  `json:"endedAt"`
	Date       string `json:"date"`
}

// RecordSession stores a reading session. Sessions under five seconds are
// acknowledged but not stored.
// POST /api/sessions
func (rc *ReadingController) RecordSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.DurationMs < 0 {
		respondBadRequest(c, "durationMs must not be negative")
		return
	}
	if req.Date != "" {
		if _, err := time.Parse(dateLayout, req.Date); err != nil {
			respondBadRequest(c, "date must be YYYY-MM-DD")
			return
		}
	}
	if req.Book != "" {
		book, ok := parseBook(c, req.Book)
		if !ok {
			return
		}
		req.Book = book
	}

	saved, err := rc.sessions.AddSession(&entities.ReadingSession{
		Date:       req.Date,
		Book:       req.Book,
		Chapter:    req.Chapter,
		DurationMs: req.DurationMs,
		StartedAt:  req.StartedAt,
		EndedAt:    req.EndedAt,
	})
	if err != nil {
		respondInternalError(c, err, "record session")
		return
	}
	if saved == nil {
		c.JSON(http.StatusOK, gin.H{"skipped": true})
		return
	}
	respondCreated(c, saved)
}

// ListSessions returns sessions in ?start=&end= (inclusive) or all.
// GET /api/sessions
func (rc *ReadingController) ListSessions(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	var (
		sessions []entities.ReadingSession
		err      error
	)
	if start != "" || end != "" {
		if !validDate(start) || !validDate(end) {
			respondBadRequest(c, "start and end must be YYYY-MM-DD")
			return
		}
		sessions, err = rc.sessions.GetSessionsByDateRange(start, end)
	} else {
		sessions, err = rc.sessions.GetAllSessions()
	}
	if err != nil {
		respondInternalError(c, err, "list sessions")
		return
	}
	if sessions == nil {
		sessions = []entities.ReadingSession{}
	}
	c.JSON(http.StatusOK, sessions)
}

// GET /api/stats
func (rc *ReadingController) Stats(c *gin.Context) {
	sessions, err := rc.sessions.GetAllSessions()
	if err != nil {
		respondInternalError(c, err, "reading stats")
		return
	}
	c.JSON(http.StatusOK, stats.Summarize(sessions, rc.now()))
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
