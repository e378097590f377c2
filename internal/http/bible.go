package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/retrieval"
)

const suggestionLimit = 3

// BibleController serves the registry and chapter text.
type BibleController struct {
	chapters       ChapterReader
	defaultVersion string
	now            func() time.Time
}

func NewBibleController(chapters ChapterReader, defaultVersion string) *BibleController {
	if defaultVersion == "" {
		defaultVersion = bible.DefaultVersion
	}
	return &BibleController{chapters: chapters, defaultVersion: defaultVersion, now: time.Now}
}

// ReferenceResponse is a parsed reference with its display forms.
type ReferenceResponse struct {
	bible.Reference
	Display string `json:"display"`
	Short   string `json:"short"`
}

// GET /api/versions?language=ko|en
func (bc *BibleController) ListVersions(c *gin.Context) {
	versions := bible.Versions()
	if lang := c.Query("language"); lang != "" {
		versions = bible.VersionsByLanguage(bible.Language(lang))
	}
	c.JSON(http.StatusOK, gin.H{"versions": versions, "default": bc.defaultVersion})
}

// GET /api/books?testament=old|new
func (bc *BibleController) ListBooks(c *gin.Context) {
	var books []bible.Book
	switch bible.Testament(c.Query("testament")) {
	case "":
		books = bible.Books()
	case bible.TestamentOld:
		books = bible.OldTestamentBooks()
	case bible.TestamentNew:
		books = bible.NewTestamentBooks()
	default:
		respondBadRequest(c, "invalid testament")
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books, "totalChapters": bible.TotalChapters})
}

// GET /api/books/:id
func (bc *BibleController) GetBook(c *gin.Context) {
	book, ok := bible.BookByID(strings.ToUpper(c.Param("id")))
	if !ok {
		respondNotFound(c, "book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// GET /api/reference?q=요한복음 3:16
func (bc *BibleController) ParseReference(c *gin.Context) {
	q := c.Query("q")
	if strings.TrimSpace(q) == "" {
		respondBadRequest(c, "q is required")
		return
	}
	ref, ok := bible.ParseReference(q)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "reference not recognized",
			Code:    "unknown_reference",
			Details: gin.H{"suggestions": bible.SuggestBooks(q, suggestionLimit)},
		})
		return
	}
	c.JSON(http.StatusOK, referenceResponse(ref))
}

// GET /api/daily-verse
func (bc *BibleController) DailyVerse(c *gin.Context) {
	entry := bible.DailyVerse(bc.now())
	c.JSON(http.StatusOK, gin.H{
		"book":      entry.Book,
		"chapter":   entry.Chapter,
		"verse":     entry.Verse,
		"preview":   entry.Preview,
		"reference": bible.FormatReference(entry.Book, entry.Chapter, entry.Verse),
	})
}

// GET /api/commandments
func (bc *BibleController) Commandments(c *gin.Context) {
	list := bible.Commandments()
	items := make([]gin.H, 0, len(list))
	for _, cmd := range list {
		items = append(items, gin.H{
			"number":    cmd.Number,
			"title":     cmd.Title,
			"text":      cmd.Text,
			"book":      cmd.Book(),
			"chapter":   cmd.Chapter,
			"reference": cmd.Reference(),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"passage":      bible.CommandmentsPassage(),
		"commandments": items,
	})
}

// GET /api/bible/:version/:book/:chapter
func (bc *BibleController) GetChapter(c *gin.Context) {
	version, ok := parseVersion(c, c.Param("version"), bc.defaultVersion)
	if !ok {
		return
	}
	book, chapter, ok := parseChapterRef(c)
	if !ok {
		return
	}

	ch, err := bc.chapters.FetchChapter(c.Request.Context(), version, book, chapter)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// GET /api/compare/:book/:chapter?versions=krv,kjv
func (bc *BibleController) CompareChapter(c *gin.Context) {
	book, chapter, ok := parseChapterRef(c)
	if !ok {
		return
	}

	var versions []string
	for _, raw := range strings.Split(c.Query("versions"), ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		v, ok := parseVersion(c, raw, "")
		if !ok {
			return
		}
		versions = append(versions, v)
	}
	if len(versions) == 0 {
		respondBadRequest(c, "versions is required")
		return
	}

	chapters, err := bc.chapters.CompareChapter(c.Request.Context(), versions, book, chapter)
	if err != nil {
		respondFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"book": book, "chapter": chapter, "chapters": chapters})
}

func referenceResponse(ref bible.Reference) ReferenceResponse {
	return ReferenceResponse{
		Reference: ref,
		Display:   bible.FormatReference(ref.Book, ref.Chapter, ref.Verse),
		Short:     bible.FormatReferenceShort(ref.Book, ref.Chapter, ref.Verse),
	}
}

// respondFetchError maps retrieval failures to statuses. Upstream failures
// carry their message so the client can show a retry prompt.
func respondFetchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, retrieval.ErrUnknownVersion):
		respondError(c, http.StatusBadRequest, "unknown_version", err.Error())
	case errors.Is(err, retrieval.ErrUnknownBook):
		respondError(c, http.StatusNotFound, "unknown_book", err.Error())
	case errors.Is(err, retrieval.ErrInvalidChapter):
		respondError(c, http.StatusNotFound, "invalid_chapter", err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusGatewayTimeout, "cancelled", err.Error())
	default:
		respondError(c, http.StatusBadGateway, "fetch_failed", err.Error())
	}
}
