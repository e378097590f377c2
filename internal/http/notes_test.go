package http

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/mybible/internal/entities"
)

func TestNotesController_CreateAndGet(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do("POST", "/api/notes", map[string]any{
		"book": "jhn", "chapter": 3, "verse": 16, "content": "복음의 핵심", "tags": []string{"복음"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[entities.Note](t, w)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entities.NoteTypeVerse, created.Type)
	assert.Equal(t, "JHN", created.Book)
	require.NotNil(t, created.Verse)
	assert.Equal(t, 16, *created.Verse)
	assert.NotZero(t, created.CreatedAt)
	assert.NotEmpty(t, created.Date)

	w = s.do("GET", "/api/notes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"복음"}, decode[entities.Note](t, w).Tags)

	assert.Equal(t, http.StatusNotFound, s.do("GET", "/api/notes/missing", nil).Code)
}

func TestNotesController_CreateValidation(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name string
		body any
		code int
	}{
		{"malformed", "{", http.StatusBadRequest},
		{"unknown type", map[string]any{"type": "memo", "content": "x"}, http.StatusBadRequest},
		{"empty", map[string]any{"book": "JHN", "chapter": 3}, http.StatusBadRequest},
		{"verse without book", map[string]any{"content": "x"}, http.StatusBadRequest},
		{"unknown book", map[string]any{"book": "XYZ", "chapter": 1, "content": "x"}, http.StatusNotFound},
		{"missing chapter", map[string]any{"book": "JHN", "content": "x"}, http.StatusBadRequest},
		{"bad verse", map[string]any{"book": "JHN", "chapter": 3, "verse": 0, "content": "x"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, s.do("POST", "/api/notes", tt.body).Code)
		})
	}
}

func TestNotesController_SermonNote(t *testing.T) {
	s := newTestServer(t, nil)

	w := s.do("POST", "/api/notes", map[string]any{
		"type": "sermon", "title": "은혜의 강", "content": "에베소서 2장 강해", "date": "2024-06-16",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	sermon := decode[entities.Note](t, w)
	assert.Empty(t, sermon.Book)
	assert.Equal(t, "2024-06-16", sermon.Date)

	_, err := s.notes.AddNote(&entities.Note{Type: entities.NoteTypeVerse, Book: "GEN", Chapter: 1, Content: "창조"})
	require.NoError(t, err)

	w = s.do("GET", "/api/notes?type=sermon", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]entities.Note](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, sermon.ID, list[0].ID)
}

func TestNotesController_ListFilters(t *testing.T) {
	s := newTestServer(t, nil)
	v16, v17 := 16, 17
	for _, n := range []entities.Note{
		{Type: entities.NoteTypeVerse, Book: "JHN", Chapter: 3, Verse: &v16, Content: "하나님의 사랑"},
		{Type: entities.NoteTypeVerse, Book: "JHN", Chapter: 3, Verse: &v17, Content: "구원"},
		{Type: entities.NoteTypeVerse, Book: "ROM", Chapter: 8, Content: "성령의 법"},
	} {
		note := n
		_, err := s.notes.AddNote(&note)
		require.NoError(t, err)
	}

	assert.Len(t, decode[[]entities.Note](t, s.do("GET", "/api/notes", nil)), 3)
	assert.Len(t, decode[[]entities.Note](t, s.do("GET", "/api/notes?book=JHN&chapter=3", nil)), 2)
	assert.Len(t, decode[[]entities.Note](t, s.do("GET", "/api/notes?book=JHN&chapter=3&verse=17", nil)), 1)

	found := decode[[]entities.Note](t, s.do("GET", "/api/notes?q="+url.QueryEscape("사랑"), nil))
	require.Len(t, found, 1)
	assert.Equal(t, "하나님의 사랑", found[0].Content)

	w := s.do("GET", "/api/notes?book=PSA&chapter=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	assert.Equal(t, http.StatusBadRequest, s.do("GET", "/api/notes?book=JHN", nil).Code)
}

func TestNotesController_UpdateAndDelete(t *testing.T) {
	s := newTestServer(t, nil)
	note, err := s.notes.AddNote(&entities.Note{Type: entities.NoteTypeVerse, Book: "PSA", Chapter: 23, Content: "목자"})
	require.NoError(t, err)

	w := s.do("PATCH", "/api/notes/"+note.ID, map[string]any{"content": "여호와는 나의 목자"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[entities.Note](t, w)
	assert.Equal(t, "여호와는 나의 목자", updated.Content)
	assert.Equal(t, "PSA", updated.Book)
	assert.GreaterOrEqual(t, updated.UpdatedAt, note.CreatedAt)

	assert.Equal(t, http.StatusNotFound, s.do("PATCH", "/api/notes/missing", map[string]any{"content": "x"}).Code)
	assert.Equal(t, http.StatusBadRequest, s.do("PATCH", "/api/notes/"+note.ID, "[").Code)

	assert.Equal(t, http.StatusNoContent, s.do("DELETE", "/api/notes/"+note.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do("DELETE", "/api/notes/"+note.ID, nil).Code)
}
