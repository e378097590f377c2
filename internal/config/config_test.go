package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.EqualValues(t, 8190, cfg.HTTP.Port)
	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, DefaultVersion, cfg.Bible.DefaultVersion)
	assert.Equal(t, DefaultWldehBaseURL, cfg.Bible.WldehBaseURL)
	assert.Equal(t, 15*time.Second, cfg.Bible.ProviderTimeout)
	assert.Equal(t, 100, cfg.Cache.ChapterCapacity)
	assert.Equal(t, 3, cfg.Prefetch.Workers)
	assert.True(t, cfg.Tasks.Enabled)
	assert.Equal(t, 2*time.Hour, cfg.Tasks.ReleaseAfter)
	assert.False(t, cfg.OfflineSync.Enabled)
	assert.Equal(t, "0 3 * * *", cfg.OfflineSync.Schedule)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10.0, cfg.RateLimit.RPS)
}

func TestNewConfig_Environment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CHAPTER_CACHE_SIZE", "250")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("OFFLINE_SYNC_ENABLED", "true")
	t.Setenv("OFFLINE_SYNC_VERSIONS", "krv,kjv")

	cfg := NewConfig()

	assert.EqualValues(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, 250, cfg.Cache.ChapterCapacity)
	assert.Equal(t, 3*time.Second, cfg.Bible.ProviderTimeout)
	assert.True(t, cfg.OfflineSync.Enabled)
	assert.Equal(t, "krv,kjv", cfg.OfflineSync.Versions)
}
