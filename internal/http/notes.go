package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybible/internal/database/notes"
	"github.com/mrlokans/mybible/internal/entities"
)

type NotesController struct {
	store NoteStore
}

func NewNotesController(store NoteStore) *NotesController {
	return &NotesController{store: store}
}

type createNoteRequest struct {
	Type    entities.NoteType `json:"type"`
	Book    string            `json:"book"`
	Chapter int               `json:"chapter"`
	Verse   *int              `json:"verse"`
	Title   string            `json:"title"`
	Content string            `json:"content"`
	Date    string            `json:"date"`
	Tags    []string          `json:"tags"`
}

// ListNotes filters by ?q=, ?type=sermon, or ?book=&chapter=[&verse=].
// Without filters every note is returned, newest first.
// GET /api/notes
func (nc *NotesController) ListNotes(c *gin.Context) {
	var (
		result []entities.Note
		err    error
	)

	switch {
	case c.Query("q") != "":
		result, err = nc.store.SearchNotes(c.Query("q"))
	case c.Query("type") == string(entities.NoteTypeSermon):
		result, err = nc.store.GetSermonNotes()
	case c.Query("book") != "":
		book, ok := parseBook(c, c.Query("book"))
		if !ok {
			return
		}
		chapter, ok := parsePositiveInt(c, "chapter", c.Query("chapter"))
		if !ok {
			return
		}
		verse, ok := optionalQueryInt(c, "verse")
		if !ok {
			return
		}
		if verse > 0 {
			result, err = nc.store.GetNotesByVerse(book, chapter, verse)
		} else {
			result, err = nc.store.GetNotesByChapter(book, chapter)
		}
	default:
		result, err = nc.store.GetAllNotes()
	}
	if err != nil {
		respondInternalError(c, err, "list notes")
		return
	}
	if result == nil {
		result = []entities.Note{}
	}
	c.JSON(http.StatusOK, result)
}

// GET /api/notes/:id
func (nc *NotesController) GetNote(c *gin.Context) {
	note, err := nc.store.GetNoteByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "note")
		return
	}
	c.JSON(http.StatusOK, note)
}

// POST /api/notes
func (nc *NotesController) CreateNote(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if req.Type == "" {
		req.Type = entities.NoteTypeVerse
	}
	if !req.Type.Valid() {
		respondBadRequest(c, "type must be verse or sermon")
		return
	}
	if strings.TrimSpace(req.Content) == "" && strings.TrimSpace(req.Title) == "" {
		respondBadRequest(c, "title or content is required")
		return
	}

	note := &entities.Note{
		Type:    req.Type,
		Title:   req.Title,
		Content: req.Content,
		Date:    req.Date,
		Tags:    req.Tags,
	}
	if req.Type == entities.NoteTypeVerse || req.Book != "" {
		if req.Book == "" {
			respondBadRequest(c, "book is required")
			return
		}
		book, ok := parseBook(c, req.Book)
		if !ok {
			return
		}
		if req.Chapter < 1 {
			respondBadRequest(c, "chapter is required")
			return
		}
		if req.Verse != nil && *req.Verse < 1 {
			respondBadRequest(c, "invalid verse")
			return
		}
		note.Book, note.Chapter, note.Verse = book, req.Chapter, req.Verse
	}

	created, err := nc.store.AddNote(note)
	if err != nil {
		respondInternalError(c, err, "create note")
		return
	}
	respondCreated(c, created)
}

// PATCH /api/notes/:id
func (nc *NotesController) UpdateNote(c *gin.Context) {
	var update notes.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	note, err := nc.store.UpdateNote(c.Param("id"), update)
	if err != nil {
		respondStoreError(c, err, "note")
		return
	}
	c.JSON(http.StatusOK, note)
}

// DELETE /api/notes/:id
func (nc *NotesController) DeleteNote(c *gin.Context) {
	if err := nc.store.DeleteNote(c.Param("id")); err != nil {
		respondStoreError(c, err, "note")
		return
	}
	c.Status(http.StatusNoContent)
}
