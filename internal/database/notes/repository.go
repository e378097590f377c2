// Package notes provides database operations for verse memos and sermon notes.
//
// # Usage
//
//	repo := notes.NewRepository(db)
//	note, err := repo.AddNote(&entities.Note{Type: entities.NoteTypeVerse, Book: "JHN", Chapter: 3})
package notes

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/mybible/internal/entities"
)

// Update lists the mutable fields of a note; nil fields are left unchanged.
type Update struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Date    *string   `json:"date"`
	Tags    *[]string `json:"tags"`
}

// Repository handles all note database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new notes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddNote assigns an id and timestamps and stores the note.
func (r *Repository) AddNote(note *entities.Note) (*entities.Note, error) {
	now := time.Now()
	note.ID = uuid.NewString()
	note.CreatedAt = now.UnixMilli()
	note.UpdatedAt = note.CreatedAt
	if note.Date == "" {
		note.Date = now.UTC().Format(time.RFC3339)
	}
	if err := r.db.Create(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote applies the update and bumps UpdatedAt.
func (r *Repository) UpdateNote(id string, update Update) (*entities.Note, error) {
	note, err := r.GetNoteByID(id)
	if err != nil {
		return nil, err
	}
	if update.Title != nil {
		note.Title = *update.Title
	}
	if update.Content != nil {
		note.Content = *update.Content
	}
	if update.Date != nil {
		note.Date = *update.Date
	}
	if update.Tags != nil {
		note.Tags = *update.Tags
	}
	note.UpdatedAt = time.Now().UnixMilli()

	if err := r.db.Save(note).Error; err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a note, returning gorm.ErrRecordNotFound if absent.
func (r *Repository) DeleteNote(id string) error {
	result := r.db.Where("id = ?", id).Delete(&entities.Note{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) GetNoteByID(id string) (*entities.Note, error) {
	var note entities.Note
	if err := r.db.Where("id = ?", id).First(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *Repository) GetNotesByChapter(book string, chapter int) ([]entities.Note, error) {
	var notes []entities.Note
	err := r.db.Where("book = ? AND chapter = ?", book, chapter).
		Order("created_at").
		Find(&notes).Error
	return notes, err
}

func (r *Repository) GetNotesByVerse(book string, chapter, verse int) ([]entities.Note, error) {
	var notes []entities.Note
	err := r.db.Where("book = ? AND chapter = ? AND verse = ?", book, chapter, verse).
		Order("created_at").
		Find(&notes).Error
	return notes, err
}

// GetSermonNotes returns sermon notes, newest first.
func (r *Repository) GetSermonNotes() ([]entities.Note, error) {
	var notes []entities.Note
	err := r.db.Where("type = ?", entities.NoteTypeSermon).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// GetAllNotes returns every note, newest first.
func (r *Repository) GetAllNotes() ([]entities.Note, error) {
	var notes []entities.Note
	err := r.db.Order("created_at DESC").Find(&notes).Error
	return notes, err
}

// SearchNotes matches content or title case-insensitively.
func (r *Repository) SearchNotes(query string) ([]entities.Note, error) {
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	var notes []entities.Note
	err := r.db.Where("LOWER(content) LIKE ? ESCAPE '\\' OR LOWER(title) LIKE ? ESCAPE '\\'", pattern, pattern).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

// UpsertNotes stores notes as given, replacing records with the same id.
func (r *Repository) UpsertNotes(notes []entities.Note) error {
	if len(notes) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&notes).Error
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
