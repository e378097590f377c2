package verses

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_verses_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.VerseRecord{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func chapter(version, book string, number int, texts ...string) *bible.Chapter {
	ch := &bible.Chapter{Book: book, Chapter: number, Version: version}
	for i, text := range texts {
		ch.Verses = append(ch.Verses, bible.Verse{Book: book, Chapter: number, Verse: i + 1, Text: text, Version: version})
	}
	return ch
}

func TestRepository_SaveChapter(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveChapter(chapter("kjv", "JHN", 11, "Now a certain man was sick", "It was that Mary", "Jesus wept.")))

	got, err := repo.ChapterVerses("kjv", "JHN", 11)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Verses, 3)
	assert.Equal(t, "Jesus wept.", got.Verses[2].Text)
	assert.Equal(t, "kjv", got.Verses[0].Version)
}

func TestRepository_SaveChapter_Idempotent(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ch := chapter("kjv", "GEN", 1, "In the beginning", "And the earth was without form")
	require.NoError(t, repo.SaveChapter(ch))
	require.NoError(t, repo.SaveChapter(ch))

	all, err := repo.VersesByVersion("kjv", nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_SaveChapter_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	assert.NoError(t, repo.SaveChapter(nil))
	assert.NoError(t, repo.SaveChapter(&bible.Chapter{Book: "GEN", Chapter: 1, Version: "kjv"}))
}

func TestRepository_VersesByVersion(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveChapter(chapter("kjv", "GEN", 1, "a", "b")))
	require.NoError(t, repo.SaveChapter(chapter("kjv", "JHN", 3, "c")))
	require.NoError(t, repo.SaveChapter(chapter("krv", "GEN", 1, "태초에")))

	all, err := repo.VersesByVersion("kjv", nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	nt, err := repo.VersesByVersion("kjv", bible.ScopeNew.BookIDs())
	require.NoError(t, err)
	require.Len(t, nt, 1)
	assert.Equal(t, "JHN", nt[0].Book)

	none, err := repo.VersesByVersion("web", nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepository_HasVersion(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	has, err := repo.HasVersion("kjv")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, repo.SaveChapter(chapter("kjv", "JHN", 3, "For God so loved the world")))

	has, err = repo.HasVersion("kjv")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = repo.HasVersion("krv")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestRepository_ChapterVerses_Missing(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	got, err := repo.ChapterVerses("kjv", "GEN", 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_PersistedChapters(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveChapter(chapter("krv", "GEN", 2, "a", "b", "c")))
	require.NoError(t, repo.SaveChapter(chapter("krv", "GEN", 1, "a")))
	require.NoError(t, repo.SaveChapter(chapter("kjv", "EXO", 1, "a")))

	refs, err := repo.PersistedChapters("krv")
	require.NoError(t, err)
	assert.Equal(t, []bible.ChapterRef{{Book: "GEN", Chapter: 1}, {Book: "GEN", Chapter: 2}}, refs)

	count, err := repo.CountChapters("krv")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRepository_DeleteVersion(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.SaveChapter(chapter("krv", "GEN", 1, "a", "b")))
	require.NoError(t, repo.SaveChapter(chapter("kjv", "GEN", 1, "a")))

	deleted, err := repo.DeleteVersion("krv")
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	count, err := repo.CountChapters("krv")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = repo.CountChapters("kjv")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
