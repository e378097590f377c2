package notes

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
	dbPath := "./test_notes_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Note{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func intPtr(v int) *int { return &v }

func TestRepository_AddNote(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	note, err := repo.AddNote(&entities.Note{
		Type:    entities.NoteTypeVerse,
		Book:    "JHN",
		Chapter: 3,
		Verse:   intPtr(16),
		Content: "God's love for the world",
		Tags:    []string{"love", "gospel"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.NotZero(t, note.CreatedAt)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
	assert.NotEmpty(t, note.Date)

	got, err := repo.GetNoteByID(note.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"love", "gospel"}, got.Tags)
	require.NotNil(t, got.Verse)
	assert.Equal(t, 16, *got.Verse)
}

func TestRepository_UpdateNote(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	note, err := repo.AddNote(&entities.Note{Type: entities.NoteTypeSermon, Book: "ROM", Chapter: 8, Content: "draft"})
	require.NoError(t, err)
	created := note.UpdatedAt

	time.Sleep(2 * time.Millisecond)
	content := "final"
	tags := []string{"grace"}
	updated, err := repo.UpdateNote(note.ID, Update{Content: &content, Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Content)
	assert.Equal(t, []string{"grace"}, updated.Tags)
	assert.Greater(t, updated.UpdatedAt, created)

	_, err = repo.UpdateNote("missing", Update{Content: &content})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DeleteNote(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	note, err := repo.AddNote(&entities.Note{Type: entities.NoteTypeVerse, Book: "GEN", Chapter: 1, Content: "x"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteNote(note.ID))
	assert.ErrorIs(t, repo.DeleteNote(note.ID), gorm.ErrRecordNotFound)
}

func TestRepository_NoteQueries(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	add := func(n entities.Note) {
		_, err := repo.AddNote(&n)
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}
	add(entities.Note{Type: entities.NoteTypeVerse, Book: "JHN", Chapter: 3, Verse: intPtr(16), Content: "For God so loved"})
	add(entities.Note{Type: entities.NoteTypeVerse, Book: "JHN", Chapter: 3, Verse: intPtr(17), Content: "not to condemn"})
	add(entities.Note{Type: entities.NoteTypeSermon, Book: "JHN", Chapter: 3, Title: "Born Again", Content: "Nicodemus"})
	add(entities.Note{Type: entities.NoteTypeSermon, Book: "PSA", Chapter: 23, Title: "The Shepherd", Content: "rest 100% assured"})

	byChapter, err := repo.GetNotesByChapter("JHN", 3)
	require.NoError(t, err)
	assert.Len(t, byChapter, 3)

	byVerse, err := repo.GetNotesByVerse("JHN", 3, 16)
	require.NoError(t, err)
	require.Len(t, byVerse, 1)
	assert.Equal(t, "For God so loved", byVerse[0].Content)

	sermons, err := repo.GetSermonNotes()
	require.NoError(t, err)
	require.Len(t, sermons, 2)
	assert.Equal(t, "The Shepherd", sermons[0].Title)

	all, err := repo.GetAllNotes()
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "PSA", all[0].Book)

	found, err := repo.SearchNotes("born")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Born Again", found[0].Title)

	found, err = repo.SearchNotes("GOD")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	found, err = repo.SearchNotes("100%")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestRepository_UpsertNotes(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	notes := []entities.Note{
		{ID: "n1", Type: entities.NoteTypeVerse, Book: "GEN", Chapter: 1, Content: "first", CreatedAt: 1, UpdatedAt: 1},
		{ID: "n2", Type: entities.NoteTypeSermon, Book: "EXO", Chapter: 3, Content: "second", CreatedAt: 2, UpdatedAt: 2},
	}
	require.NoError(t, repo.UpsertNotes(notes))

	notes[0].Content = "replaced"
	require.NoError(t, repo.UpsertNotes(notes[:1]))

	got, err := repo.GetNoteByID("n1")
	require.NoError(t, err)
	assert.Equal(t, "replaced", got.Content)
	assert.EqualValues(t, 1, got.CreatedAt)

	all, err := repo.GetAllNotes()
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.NoError(t, repo.UpsertNotes(nil))
}
