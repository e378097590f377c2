package progress

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/mybible/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_progress_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.ReadingProgress{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_MarkChapterRead_Idempotent(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.MarkChapterRead("GEN", 1)
	require.NoError(t, err)
	second, err := repo.MarkChapterRead("GEN", 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CompletedAt, second.CompletedAt)

	all, err := repo.GetReadingProgress()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_GetBookProgress(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, ch := range []int{1, 2, 3} {
		_, err := repo.MarkChapterRead("RUT", ch)
		require.NoError(t, err)
	}
	_, err := repo.MarkChapterRead("GEN", 1)
	require.NoError(t, err)

	p, err := repo.GetBookProgress("RUT")
	require.NoError(t, err)
	assert.Equal(t, BookProgress{Book: "RUT", Read: 3, Total: 4}, p)

	p, err = repo.GetBookProgress("XYZ")
	require.NoError(t, err)
	assert.Equal(t, BookProgress{Book: "XYZ"}, p)
}

func TestRepository_UnmarkChapterRead(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.MarkChapterRead("GEN", 1)
	require.NoError(t, err)
	require.NoError(t, repo.UnmarkChapterRead("GEN", 1))
	require.NoError(t, repo.UnmarkChapterRead("GEN", 1))

	all, err := repo.GetReadingProgress()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_UpsertProgress(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	existing, err := repo.MarkChapterRead("JHN", 1)
	require.NoError(t, err)

	err = repo.UpsertProgress([]entities.ReadingProgress{
		{ID: "p1", Book: "JHN", Chapter: 1, CompletedAt: 1},
		{ID: "p2", Book: "JHN", Chapter: 2, CompletedAt: 2},
	})
	require.NoError(t, err)

	all, err := repo.GetReadingProgress()
	require.NoError(t, err)
	require.Len(t, all, 2)

	ids := []string{all[0].ID, all[1].ID}
	assert.ElementsMatch(t, []string{existing.ID, "p2"}, ids)
}

func TestRepository_GetRecentReading(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	for _, ch := range []int{1, 2, 3} {
		_, err := repo.MarkChapterRead("MRK", ch)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	recent, err := repo.GetRecentReading(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 3, recent[0].Chapter)
	assert.Equal(t, 2, recent[1].Chapter)

	all, err := repo.GetRecentReading(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
