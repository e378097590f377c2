package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybible/internal/entities"
)

// verseRequest is the body shared by highlight and bookmark writes.
type verseRequest struct {
	Book    string                  `json:"book"`
	Chapter int                     `json:"chapter"`
	Verse   int                     `json:"verse"`
	Color   entities.HighlightColor `json:"color"`
	Version string                  `json:"version"`
	Label   string                  `json:"label"`
}

// bindVerse decodes and validates a verse-addressed request body.
func bindVerse(c *gin.Context) (verseRequest, bool) {
	var req verseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return req, false
	}
	book, ok := parseBook(c, req.Book)
	if !ok {
		return req, false
	}
	if req.Chapter < 1 || req.Verse < 1 {
		respondBadRequest(c, "chapter and verse are required")
		return req, false
	}
	req.Book = book
	return req, true
}

type HighlightsController struct {
	store          HighlightStore
	defaultVersion string
}

func NewHighlightsController(store HighlightStore, defaultVersion string) *HighlightsController {
	return &HighlightsController{store: store, defaultVersion: defaultVersion}
}

// GET /api/highlights/colors
func (hc *HighlightsController) Colors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"colors": entities.HighlightColors})
}

// ListHighlights returns a chapter's highlights with ?book=&chapter=, or all.
// GET /api/highlights
func (hc *HighlightsController) ListHighlights(c *gin.Context) {
	var (
		result []entities.Highlight
		err    error
	)
	if c.Query("book") != "" {
		book, ok := parseBook(c, c.Query("book"))
		if !ok {
			return
		}
		chapter, ok := parsePositiveInt(c, "chapter", c.Query("chapter"))
		if !ok {
			return
		}
		result, err = hc.store.GetHighlightsByChapter(book, chapter)
	} else {
		result, err = hc.store.GetAllHighlights()
	}
	if err != nil {
		respondInternalError(c, err, "list highlights")
		return
	}
	if result == nil {
		result = []entities.Highlight{}
	}
	c.JSON(http.StatusOK, result)
}

func (hc *HighlightsController) bind(c *gin.Context) (*entities.Highlight, bool) {
	req, ok := bindVerse(c)
	if !ok {
		return nil, false
	}
	if req.Color == "" {
		req.Color = entities.HighlightColorYellow
	}
	if !req.Color.Valid() {
		respondError(c, http.StatusBadRequest, "invalid_color", "unknown highlight color: "+string(req.Color))
		return nil, false
	}
	version, ok := parseVersion(c, req.Version, hc.defaultVersion)
	if !ok {
		return nil, false
	}
	return &entities.Highlight{
		Book:    req.Book,
		Chapter: req.Chapter,
		Verse:   req.Verse,
		Color:   req.Color,
		Version: version,
	}, true
}

// POST /api/highlights
func (hc *HighlightsController) AddHighlight(c *gin.Context) {
	h, ok := hc.bind(c)
	if !ok {
		return
	}
	saved, err := hc.store.AddHighlight(h)
	if err != nil {
		respondInternalError(c, err, "add highlight")
		return
	}
	respondCreated(c, saved)
}

// POST /api/highlights/toggle
func (hc *HighlightsController) ToggleHighlight(c *gin.Context) {
	h, ok := hc.bind(c)
	if !ok {
		return
	}
	saved, highlighted, err := hc.store.ToggleHighlight(h)
	if err != nil {
		respondInternalError(c, err, "toggle highlight")
		return
	}
	c.JSON(http.StatusOK, gin.H{"highlighted": highlighted, "highlight": saved})
}

// DELETE /api/highlights/:id
func (hc *HighlightsController) RemoveHighlight(c *gin.Context) {
	if err := hc.store.RemoveHighlight(c.Param("id")); err != nil {
		respondStoreError(c, err, "highlight")
		return
	}
	c.Status(http.StatusNoContent)
}

type BookmarksController struct {
	store BookmarkStore
}

func NewBookmarksController(store BookmarkStore) *BookmarksController {
	return &BookmarksController{store: store}
}

// ListBookmarks returns a chapter's bookmarks with ?book=&chapter=, or all
// newest first.
// GET /api/bookmarks
func (bc *BookmarksController) ListBookmarks(c *gin.Context) {
	var (
		result []entities.Bookmark
		err    error
	)
	if c.Query("book") != "" {
		book, ok := parseBook(c, c.Query("book"))
		if !ok {
			return
		}
		chapter, ok := parsePositiveInt(c, "chapter", c.Query("chapter"))
		if !ok {
			return
		}
		result, err = bc.store.GetBookmarksByChapter(book, chapter)
	} else {
		result, err = bc.store.GetAllBookmarks()
	}
	if err != nil {
		respondInternalError(c, err, "list bookmarks")
		return
	}
	if result == nil {
		result = []entities.Bookmark{}
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/bookmarks/check?book=&chapter=&verse=
func (bc *BookmarksController) CheckBookmark(c *gin.Context) {
	book, ok := parseBook(c, c.Query("book"))
	if !ok {
		return
	}
	chapter, ok := parsePositiveInt(c, "chapter", c.Query("chapter"))
	if !ok {
		return
	}
	verse, ok := parsePositiveInt(c, "verse", c.Query("verse"))
	if !ok {
		return
	}
	b, err := bc.store.GetBookmarkByVerse(book, chapter, verse)
	if err != nil && !isNotFound(err) {
		respondInternalError(c, err, "check bookmark")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": b != nil, "bookmark": b})
}

func (bc *BookmarksController) bind(c *gin.Context) (*entities.Bookmark, bool) {
	req, ok := bindVerse(c)
	if !ok {
		return nil, false
	}
	return &entities.Bookmark{Book: req.Book, Chapter: req.Chapter, Verse: req.Verse, Label: req.Label}, true
}

// POST /api/bookmarks
func (bc *BookmarksController) AddBookmark(c *gin.Context) {
	b, ok := bc.bind(c)
	if !ok {
		return
	}
	saved, err := bc.store.AddBookmark(b)
	if err != nil {
		respondInternalError(c, err, "add bookmark")
		return
	}
	respondCreated(c, saved)
}

// POST /api/bookmarks/toggle
func (bc *BookmarksController) ToggleBookmark(c *gin.Context) {
	b, ok := bc.bind(c)
	if !ok {
		return
	}
	saved, bookmarked, err := bc.store.ToggleBookmark(b)
	if err != nil {
		respondInternalError(c, err, "toggle bookmark")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookmarked": bookmarked, "bookmark": saved})
}

// DELETE /api/bookmarks/:id
func (bc *BookmarksController) RemoveBookmark(c *gin.Context) {
	if err := bc.store.RemoveBookmark(c.Param("id")); err != nil {
		respondStoreError(c, err, "bookmark")
		return
	}
	c.Status(http.StatusNoContent)
}
