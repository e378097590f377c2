package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybible/internal/config"
	http_controllers "github.com/mrlokans/mybible/internal/http"
	"github.com/mrlokans/mybible/internal/scheduler"
	"github.com/mrlokans/mybible/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Background work stops first so no download outlives the server.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting MyBible v%s", version)

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Parents every download started from a request or the queue.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(tasks.NewPrefetchVersionQueue(app.Prefetch))
		go taskClient.Start(baseCtx)
	}

	// Offline sync needs the queue to hand downloads to.
	var offlineSync *scheduler.OfflineSyncScheduler
	if cfg.OfflineSync.Enabled {
		if taskClient == nil {
			log.Printf("WARNING: offline sync requires TASKS_ENABLED; scheduler disabled")
		} else {
			offlineSync = scheduler.NewOfflineSyncScheduler(scheduler.OfflineSyncConfig{
				Enabled:  true,
				Schedule: cfg.OfflineSync.Schedule,
				Versions: scheduler.ParseVersions(cfg.OfflineSync.Versions),
			}, taskClient, app.Settings)
			if err := offlineSync.Start(baseCtx); err != nil {
				log.Printf("WARNING: Failed to start offline sync scheduler: %v", err)
				offlineSync = nil
			}
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Database:         app.DB,
		Chapters:         app.Engine,
		Searcher:         app.Search,
		Prefetch:         app.Prefetch,
		Cache:            app.Engine,
		Notes:            app.Notes,
		Highlights:       app.Highlights,
		Bookmarks:        app.Bookmarks,
		Progress:         app.Progress,
		Sessions:         app.Sessions,
		Settings:         app.Settings,
		Backup:           app.Backup,
		BaseContext:      baseCtx,
		DefaultVersion:   cfg.Bible.DefaultVersion,
		Version:          version,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitRPS:     cfg.RateLimit.RPS,
	}
	// Typed nils would defeat the router's nil checks.
	if taskClient != nil {
		routerCfg.Tasks = taskClient
	}
	if offlineSync != nil {
		routerCfg.OfflineSync = offlineSync
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		if offlineSync != nil {
			offlineSync.Stop()
		}
		if n := app.Prefetch.AbortAll(); n > 0 {
			log.Printf("Cancelled %d running prefetch downloads", n)
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
		}
		cancelBase()
	}

	Serve(router, cfg, onShutdown)
}
