package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/search"
)

type SearchController struct {
	searcher       Searcher
	defaultVersion string
}

func NewSearchController(searcher Searcher, defaultVersion string) *SearchController {
	if defaultVersion == "" {
		defaultVersion = bible.DefaultVersion
	}
	return &SearchController{searcher: searcher, defaultVersion: defaultVersion}
}

// GET /api/search?version=&q=&scope=&limit=
func (sc *SearchController) Search(c *gin.Context) {
	version, ok := parseVersion(c, c.Query("version"), sc.defaultVersion)
	if !ok {
		return
	}
	scope, err := bible.ParseScope(c.Query("scope"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "invalid limit")
			return
		}
	}

	res, err := sc.searcher.Search(c.Request.Context(), search.Query{
		Version: version,
		Text:    c.Query("q"),
		Scope:   scope,
		Limit:   limit,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			respondError(c, http.StatusGatewayTimeout, "cancelled", err.Error())
			return
		}
		respondInternalError(c, err, "search")
		return
	}
	c.JSON(http.StatusOK, res)
}
