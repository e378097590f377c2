package bookmarks

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
	dbPath := "./test_bookmarks_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Bookmark{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_Bookmarks(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.AddBookmark(&entities.Bookmark{Book: "ROM", Chapter: 8, Verse: 28, Label: "all things"})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = repo.AddBookmark(&entities.Bookmark{Book: "ROM", Chapter: 8, Verse: 38})
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = repo.AddBookmark(&entities.Bookmark{Book: "PHP", Chapter: 4, Verse: 13})
	require.NoError(t, err)

	all, err := repo.GetAllBookmarks()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "PHP", all[0].Book)

	byChapter, err := repo.GetBookmarksByChapter("ROM", 8)
	require.NoError(t, err)
	require.Len(t, byChapter, 2)
	assert.Equal(t, 28, byChapter[0].Verse)

	ok, err := repo.IsBookmarked("ROM", 8, 28)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IsBookmarked("ROM", 8, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	byVerse, err := repo.GetBookmarkByVerse("ROM", 8, 28)
	require.NoError(t, err)
	assert.Equal(t, "all things", byVerse.Label)

	require.NoError(t, repo.RemoveBookmark(first.ID))
	assert.ErrorIs(t, repo.RemoveBookmark(first.ID), gorm.ErrRecordNotFound)

	ok, err = repo.IsBookmarked("ROM", 8, 28)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_UpsertBookmarks(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.UpsertBookmarks([]entities.Bookmark{
		{ID: "b1", Book: "GEN", Chapter: 1, Verse: 1, CreatedAt: 5},
		{ID: "b2", Book: "GEN", Chapter: 1, Verse: 2, CreatedAt: 6},
	}))
	require.NoError(t, repo.UpsertBookmarks([]entities.Bookmark{
		{ID: "b1", Book: "GEN", Chapter: 1, Verse: 1, Label: "start", CreatedAt: 5},
	}))

	all, err := repo.GetAllBookmarks()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b1", all[1].ID)
	assert.Equal(t, "start", all[1].Label)
}

func TestRepository_ToggleBookmark(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	b, on, err := repo.ToggleBookmark(&entities.Bookmark{Book: "ISA", Chapter: 40, Verse: 31})
	require.NoError(t, err)
	assert.True(t, on)
	assert.NotEmpty(t, b.ID)

	b, on, err = repo.ToggleBookmark(&entities.Bookmark{Book: "ISA", Chapter: 40, Verse: 31})
	require.NoError(t, err)
	assert.False(t, on)
	assert.Nil(t, b)

	ok, err := repo.IsBookmarked("ISA", 40, 31)
	require.NoError(t, err)
	assert.False(t, ok)
}
