package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_OptionalGroups(t *testing.T) {
	s := newTestServer(t, func(cfg *RouterConfig) {
		cfg.Notes = nil
		cfg.Sessions = nil
		cfg.Backup = nil
	})

	assert.Equal(t, http.StatusOK, s.do("GET", "/health", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do("GET", "/api/notes", nil).Code)
	// Progress routes need both the progress and session stores.
	assert.Equal(t, http.StatusNotFound, s.do("GET", "/api/progress", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do("GET", "/api/export", nil).Code)
	assert.Equal(t, http.StatusNotFound, s.do("GET", "/api/search?q=x", nil).Code)
	assert.Equal(t, http.StatusOK, s.do("GET", "/api/highlights", nil).Code)
}

func TestRouter_Ping(t *testing.T) {
	s := newTestServer(t, nil)
	w := s.do("GET", "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "pong"}`, w.Body.String())
}
