package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.RateLimitEnabled && cfg.RateLimitRPS > 0 {
		router.Use(LimitHandler(NewRateLimiter(cfg.RateLimitRPS)))
	}

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Cache, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")

	// Registry and chapter text
	bibleController := NewBibleController(cfg.Chapters, cfg.DefaultVersion)
	api.GET("/versions", bibleController.ListVersions)
	api.GET("/books", bibleController.ListBooks)
	api.GET("/books/:id", bibleController.GetBook)
	api.GET("/reference", bibleController.ParseReference)
	api.GET("/daily-verse", bibleController.DailyVerse)
	api.GET("/commandments", bibleController.Commandments)
	if cfg.Chapters != nil {
		api.GET("/bible/:version/:book/:chapter", bibleController.GetChapter)
		api.GET("/compare/:book/:chapter", bibleController.CompareChapter)
	}

	if cfg.Searcher != nil {
		searchController := NewSearchController(cfg.Searcher, cfg.DefaultVersion)
		api.GET("/search", searchController.Search)
	}

	// Offline download
	if cfg.Prefetch != nil {
		prefetchHandlers := NewPrefetchHandlers(cfg.Prefetch, cfg.BaseContext)
		api.POST("/prefetch/:version", prefetchHandlers.Start)
		api.GET("/prefetch/:version", prefetchHandlers.Status)
		api.DELETE("/prefetch/:version", prefetchHandlers.Abort)
		router.GET("/ws/prefetch/:version", prefetchHandlers.Stream)
	}

	// Notes
	if cfg.Notes != nil {
		notesController := NewNotesController(cfg.Notes)
		api.GET("/notes", notesController.ListNotes)
		api.POST("/notes", notesController.CreateNote)
		api.GET("/notes/:id", notesController.GetNote)
		api.PATCH("/notes/:id", notesController.UpdateNote)
		api.DELETE("/notes/:id", notesController.DeleteNote)
	}

	// Highlights
	if cfg.Highlights != nil {
		highlightsController := NewHighlightsController(cfg.Highlights, cfg.DefaultVersion)
		api.GET("/highlights", highlightsController.ListHighlights)
		api.GET("/highlights/colors", highlightsController.Colors)
		api.POST("/highlights", highlightsController.AddHighlight)
		api.POST("/highlights/toggle", highlightsController.ToggleHighlight)
		api.DELETE("/highlights/:id", highlightsController.RemoveHighlight)
	}

	// Bookmarks
	if cfg.Bookmarks != nil {
		bookmarksController := NewBookmarksController(cfg.Bookmarks)
		api.GET("/bookmarks", bookmarksController.ListBookmarks)
		api.GET("/bookmarks/check", bookmarksController.CheckBookmark)
		api.POST("/bookmarks", bookmarksController.AddBookmark)
		api.POST("/bookmarks/toggle", bookmarksController.ToggleBookmark)
		api.DELETE("/bookmarks/:id", bookmarksController.RemoveBookmark)
	}

	// Reading progress, sessions and statistics
	if cfg.Progress != nil && cfg.Sessions != nil {
		readingController := NewReadingController(cfg.Progress, cfg.Sessions)
		api.GET("/progress", readingController.ListProgress)
		api.GET("/progress/recent", readingController.RecentReading)
		api.GET("/progress/:book", readingController.BookProgress)
		api.POST("/progress/:book/:chapter", readingController.MarkRead)
		api.DELETE("/progress/:book/:chapter", readingController.UnmarkRead)
		api.POST("/sessions", readingController.RecordSession)
		api.GET("/sessions", readingController.ListSessions)
		api.GET("/stats", readingController.Stats)
	}

	// Settings
	if cfg.Settings != nil {
		settingsController := NewSettingsController(cfg.Settings, cfg.OfflineSync)
		api.GET("/settings", settingsController.GetSettings)
		api.PATCH("/settings", settingsController.UpdateSettings)
		api.PUT("/settings/last-read", settingsController.SetLastRead)
		api.GET("/settings/offline-sync", settingsController.OfflineSyncStatus)
		api.POST("/settings/offline-sync/run", settingsController.RunOfflineSync)
		api.GET("/settings/:key", settingsController.GetSetting)
		api.PUT("/settings/:key", settingsController.SetSetting)
		api.DELETE("/settings/:key", settingsController.ResetSetting)
	}

	// Backup
	if cfg.Backup != nil {
		backupController := NewBackupController(cfg.Backup)
		api.GET("/export", backupController.Export)
		api.POST("/import", backupController.Import)
	}

	// Task management endpoints
	if cfg.Tasks != nil {
		tasksController := NewTasksController(cfg.Tasks)
		api.GET("/tasks/types", tasksController.ListTaskTypes)
		api.GET("/tasks/:id", tasksController.GetTaskStatus)
		api.POST("/tasks/prefetch", tasksController.EnqueuePrefetch)
	}

	return router
}
