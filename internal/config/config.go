package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Bible
		Cache
		Prefetch
		Tasks
		OfflineSync
		RateLimit
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Bible struct {
		DefaultVersion  string
		WldehBaseURL    string
		HelloaoBaseURL  string
		ProviderTimeout time.Duration
	}
	Cache struct {
		ChapterCapacity int
	}
	Prefetch struct {
		Workers int
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	OfflineSync struct {
		Enabled  bool
		Schedule string
		Versions string // Comma-separated, e.g. "krv,kjv"
	}
	RateLimit struct {
		Enabled bool
		RPS     float64
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	v.SetDefault("default_version", DefaultVersion)
	v.SetDefault("wldeh_base_url", DefaultWldehBaseURL)
	v.SetDefault("helloao_base_url", DefaultHelloaoBaseURL)
	v.SetDefault("provider_timeout", DefaultProviderTimeout.String())
	v.SetDefault("chapter_cache_size", DefaultChapterCacheSize)
	v.SetDefault("prefetch_workers", DefaultPrefetchWorkers)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "2h")
	v.SetDefault("task_cleanup_interval", "1h")

	v.SetDefault("offline_sync_enabled", false)
	v.SetDefault("offline_sync_schedule", DefaultOfflineSyncSchedule)
	v.SetDefault("offline_sync_versions", DefaultVersion)

	v.SetDefault("rate_limit_enabled", false)
	v.SetDefault("rate_limit_rps", 10)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Bible: Bible{
			DefaultVersion:  v.GetString("DEFAULT_VERSION"),
			WldehBaseURL:    v.GetString("WLDEH_BASE_URL"),
			HelloaoBaseURL:  v.GetString("HELLOAO_BASE_URL"),
			ProviderTimeout: v.GetDuration("PROVIDER_TIMEOUT"),
		},
		Cache: Cache{
			ChapterCapacity: v.GetInt("CHAPTER_CACHE_SIZE"),
		},
		Prefetch: Prefetch{
			Workers: v.GetInt("PREFETCH_WORKERS"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		OfflineSync: OfflineSync{
			Enabled:  v.GetBool("OFFLINE_SYNC_ENABLED"),
			Schedule: v.GetString("OFFLINE_SYNC_SCHEDULE"),
			Versions: v.GetString("OFFLINE_SYNC_VERSIONS"),
		},
		RateLimit: RateLimit{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
		},
	}
}
