package settingsstore

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/mybible/internal/database"
	"github.com/mrlokans/mybible/internal/database/settings"
	"github.com/mrlokans/mybible/internal/entities"
)

func setupTestStore(t *testing.T, defaultVersion string) (*SettingsStore, *settings.Repository, func()) {
	t.Helper()
	dbPath := "./test_settings_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewTestDatabase(dbPath)
	require.NoError(t, err)

	repo := settings.NewRepository(db.DB)
	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return New(repo, defaultVersion), repo, cleanup
}

func TestGetAll_Defaults(t *testing.T) {
	store, _, cleanup := setupTestStore(t, "")
	defer cleanup()

	got, err := store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, AppSettings{CurrentVersion: "krv", FontSize: 18, SpeechRate: 1.0}, got)
}

func TestNew_ConfiguredDefaultVersion(t *testing.T) {
	t.Run("known version", func(t *testing.T) {
		store, _, cleanup := setupTestStore(t, "kjv")
		defer cleanup()
		assert.Equal(t, "kjv", store.Defaults().CurrentVersion)
	})

	t.Run("unknown version keeps built-in default", func(t *testing.T) {
		store, _, cleanup := setupTestStore(t, "niv")
		defer cleanup()
		assert.Equal(t, "krv", store.Defaults().CurrentVersion)
	})
}

func TestSet_TypedValues(t *testing.T) {
	store, _, cleanup := setupTestStore(t, "")
	defer cleanup()

	require.NoError(t, store.Set(entities.SettingKeyFontSize, json.RawMessage(`22`)))
	require.NoError(t, store.Set(entities.SettingKeyDarkMode, json.RawMessage(`true`)))
	require.NoError(t, store.Set(entities.SettingKeyCurrentVersion, json.RawMessage(`"web"`)))
	require.NoError(t, store.SetLastRead("JHN", 3))

	got, err := store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 22, got.FontSize)
	assert.True(t, got.DarkMode)
	assert.Equal(t, "web", got.CurrentVersion)
	require.NotNil(t, got.LastRead)
	assert.Equal(t, LastRead{Book: "JHN", Chapter: 3}, *got.LastRead)
}

func TestSet_Rejects(t *testing.T) {
	store, _, cleanup := setupTestStore(t, "")
	defer cleanup()

	cases := map[string]string{
		entities.SettingKeyCurrentVersion: `"niv"`,
		entities.SettingKeyFontSize:       `"big"`,
		entities.SettingKeySpeechRate:     `0`,
		entities.SettingKeyLastRead:       `{"book":"XYZ","chapter":1}`,
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, store.Set(key, json.RawMessage(value)), ErrInvalidSetting)
		})
	}

	assert.ErrorIs(t, store.Set("custom", json.RawMessage(`{broken`)), ErrInvalidSetting)
}

func TestSet_UnknownKeyRoundTrips(t *testing.T) {
	store, _, cleanup := setupTestStore(t, "")
	defer cleanup()

	require.NoError(t, store.Set("readingPlan", json.RawMessage(`{"day":12}`)))

	raw, ok, err := store.Get("readingPlan")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"day":12}`, string(raw))

	_, ok, err = store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdate(t *testing.T) {
	store, _, cleanup := setupTestStore(t, "")
	defer cleanup()

	got, err := store.Update(map[string]json.RawMessage{
		entities.SettingKeySpeechRate: json.RawMessage(`1.5`),
		entities.SettingKeyLastRead:   json.RawMessage(`null`),
	})
	require.NoError(t, err)
	assert.Equal(t, 1.5, got.SpeechRate)
	assert.Nil(t, got.LastRead)
}

func TestUpdate_InvalidKeyStoresNothing(t *testing.T) {
	store, repo, cleanup := setupTestStore(t, "")
	defer cleanup()

	_, err := store.Update(map[string]json.RawMessage{
		entities.SettingKeyDarkMode:   json.RawMessage(`true`),
		entities.SettingKeySpeechRate: json.RawMessage(`0`),
	})
	assert.ErrorIs(t, err, ErrInvalidSetting)

	all, err := repo.GetAllSettings()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetAll_IgnoresCorruptValues(t *testing.T) {
	store, repo, cleanup := setupTestStore(t, "")
	defer cleanup()

	require.NoError(t, repo.SetSetting(entities.SettingKeyFontSize, "not json"))

	got, err := store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 18, got.FontSize)
}

func TestExportAndReset(t *testing.T) {
	store, repo, cleanup := setupTestStore(t, "")
	defer cleanup()

	require.NoError(t, store.SetValue(entities.SettingKeyFontSize, 20))
	require.NoError(t, repo.SetSetting("legacy", "plain text"))

	exported, err := store.Export()
	require.NoError(t, err)
	require.Len(t, exported, 2)
	assert.Equal(t, KeyValue{Key: "fontSize", Value: json.RawMessage(`20`)}, exported[0])
	assert.JSONEq(t, `"plain text"`, string(exported[1].Value))

	require.NoError(t, store.Reset(entities.SettingKeyFontSize))
	require.NoError(t, store.Reset(entities.SettingKeyFontSize))
	got, err := store.GetAll()
	require.NoError(t, err)
	assert.Equal(t, 18, got.FontSize)
}

func TestOfflineSyncStatus(t *testing.T) {
	store, _, cleanup := setupTestStore(t, "")
	defer cleanup()

	assert.Equal(t, OfflineSyncStatus{}, store.GetOfflineSyncStatus())

	require.NoError(t, store.SetOfflineSyncStatus("done"))
	status := store.GetOfflineSyncStatus()
	assert.Equal(t, "done", status.Status)
	require.NotNil(t, status.LastSyncAt)
	assert.WithinDuration(t, time.Now(), *status.LastSyncAt, time.Minute)
}

func TestCronHelpers(t *testing.T) {
	assert.NoError(t, ValidateCronSchedule("0 3 * * *"))
	assert.Error(t, ValidateCronSchedule("every day"))

	from := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	next, err := GetNextRunTime("0 3 * * *", from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC), *next)
}
