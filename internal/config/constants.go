package config

import "time"

const (
	DefaultDatabasePath = "./mybible.db"

	DefaultWldehBaseURL    = "https://raw.githubusercontent.com/wldeh/bible-api/refs/heads/main/bibles"
	DefaultHelloaoBaseURL  = "https://bible.helloao.org/api"
	DefaultProviderTimeout = 15 * time.Second

	DefaultChapterCacheSize = 100
	DefaultPrefetchWorkers  = 3
	DefaultVersion          = "krv"

	// Daily at 03:00
	DefaultOfflineSyncSchedule = "0 3 * * *"
)
