package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mrlokans/mybible/internal/bible"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (suggestions, validation errors)
}

type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 without exposing it.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: message, Code: code})
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// respondStoreError maps a missing record to 404 and anything else to 500.
func respondStoreError(c *gin.Context, err error, resource string) {
	if isNotFound(err) {
		respondNotFound(c, resource)
		return
	}
	respondInternalError(c, err, resource)
}

// --- Success Response Helpers ---

func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message, Data: data})
}

// --- Parameter Parsing ---

// parsePositiveInt parses a value that must be >= 1, responding with 400 on
// failure.
func parsePositiveInt(c *gin.Context, name, raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return n, true
}

// parseBook normalizes a book id and checks it against the registry.
func parseBook(c *gin.Context, raw string) (string, bool) {
	id := strings.ToUpper(strings.TrimSpace(raw))
	if _, ok := bible.BookByID(id); !ok {
		respondError(c, http.StatusNotFound, "unknown_book", "unknown book: "+raw)
		return "", false
	}
	return id, true
}

// parseChapterRef reads book and chapter from path parameters.
func parseChapterRef(c *gin.Context) (string, int, bool) {
	book, ok := parseBook(c, c.Param("book"))
	if !ok {
		return "", 0, false
	}
	chapter, ok := parsePositiveInt(c, "chapter", c.Param("chapter"))
	if !ok {
		return "", 0, false
	}
	return book, chapter, true
}

// optionalQueryInt returns 0 when the parameter is absent.
func optionalQueryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	return parsePositiveInt(c, name, raw)
}

// parseVersion accepts a known version id, substituting fallback when raw is
// empty.
func parseVersion(c *gin.Context, raw, fallback string) (string, bool) {
	id := strings.ToLower(strings.TrimSpace(raw))
	if id == "" {
		id = fallback
	}
	if _, ok := bible.VersionByID(id); !ok {
		respondError(c, http.StatusBadRequest, "unknown_version", "unknown version: "+raw)
		return "", false
	}
	return id, true
}
