package entrypoint

import (
	"fmt"
	"log"

	"github.com/mrlokans/mybible/internal/backup"
	"github.com/mrlokans/mybible/internal/config"
	"github.com/mrlokans/mybible/internal/database"
	"github.com/mrlokans/mybible/internal/database/bookmarks"
	"github.com/mrlokans/mybible/internal/database/highlights"
	"github.com/mrlokans/mybible/internal/database/notes"
	"github.com/mrlokans/mybible/internal/database/progress"
	"github.com/mrlokans/mybible/internal/database/sessions"
	"github.com/mrlokans/mybible/internal/database/settings"
	syncdb "github.com/mrlokans/mybible/internal/database/sync"
	"github.com/mrlokans/mybible/internal/database/verses"
	"github.com/mrlokans/mybible/internal/prefetch"
	"github.com/mrlokans/mybible/internal/providers"
	"github.com/mrlokans/mybible/internal/retrieval"
	"github.com/mrlokans/mybible/internal/search"
	"github.com/mrlokans/mybible/internal/settingsstore"
)

// App holds the services shared by the server and the CLI commands.
type App struct {
	DB *database.Database

	Verses     *verses.Repository
	Notes      *notes.Repository
	Highlights *highlights.Repository
	Bookmarks  *bookmarks.Repository
	Progress   *progress.Repository
	Sessions   *sessions.Repository
	SyncRepo   *syncdb.Repository

	Engine   *retrieval.Engine
	Search   *search.Engine
	Prefetch *prefetch.Controller
	Settings *settingsstore.SettingsStore
	Backup   *backup.Service
}

// NewApp opens the database and builds every service on top of it.
func NewApp(cfg *config.Config) (*App, error) {
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return newApp(db, cfg), nil
}

func newApp(db *database.Database, cfg *config.Config) *App {
	app := &App{
		DB:         db,
		Verses:     verses.NewRepository(db.DB),
		Notes:      notes.NewRepository(db.DB),
		Highlights: highlights.NewRepository(db.DB),
		Bookmarks:  bookmarks.NewRepository(db.DB),
		Progress:   progress.NewRepository(db.DB),
		Sessions:   sessions.NewRepository(db.DB),
		SyncRepo:   syncdb.NewRepository(db.DB),
	}

	registry := providers.NewRegistry(
		providers.NewWldehClient(cfg.Bible.WldehBaseURL, cfg.Bible.ProviderTimeout),
		providers.NewHelloaoClient(cfg.Bible.HelloaoBaseURL, cfg.Bible.ProviderTimeout),
	)
	app.Engine = retrieval.NewEngine(registry, retrieval.NewChapterCache(cfg.Cache.ChapterCapacity), app.Verses)
	app.Engine.SetOfflineSource(app.Verses)
	app.Search = search.NewEngine(app.Verses, app.Engine)
	app.Prefetch = prefetch.NewController(app.Engine, app.Verses, app.SyncRepo, cfg.Prefetch.Workers)

	app.Settings = settingsstore.New(settings.NewRepository(db.DB), cfg.Bible.DefaultVersion)
	app.Backup = backup.NewService(backup.Stores{
		Notes:      app.Notes,
		Highlights: app.Highlights,
		Bookmarks:  app.Bookmarks,
		Progress:   app.Progress,
		Sessions:   app.Sessions,
		Settings:   app.Settings,
	})

	// Runs cut short by a crash or restart would otherwise report running
	// forever.
	if n, err := app.SyncRepo.MarkInterrupted(); err != nil {
		log.Printf("WARNING: Failed to mark interrupted prefetch runs: %v", err)
	} else if n > 0 {
		log.Printf("Marked %d interrupted prefetch runs as failed", n)
	}

	return app
}

func (a *App) Close() error {
	return a.DB.Close()
}
