// Package highlights provides database operations for colored verse highlights.
package highlights

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/mybible/internal/entities"
)

// Repository handles all highlight database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new highlights repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddHighlight stores a highlight. A verse carries at most one highlight per
// version; highlighting it again replaces the color.
func (r *Repository) AddHighlight(h *entities.Highlight) (*entities.Highlight, error) {
	var existing entities.Highlight
	err := r.db.Where("book = ? AND chapter = ? AND verse = ? AND version = ?", h.Book, h.Chapter, h.Verse, h.Version).
		First(&existing).Error
	switch {
	case err == nil:
		existing.Color = h.Color
		if err := r.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	case err != gorm.ErrRecordNotFound:
		return nil, err
	}

	h.ID = uuid.NewString()
	h.CreatedAt = time.Now().UnixMilli()
	if err := r.db.Create(h).Error; err != nil {
		return nil, err
	}
	return h, nil
}

// ToggleHighlight applies a color to a verse. Applying the color the verse
// already has removes the highlight, reported as (nil, false).
func (r *Repository) ToggleHighlight(h *entities.Highlight) (*entities.Highlight, bool, error) {
	var existing entities.Highlight
	err := r.db.Where("book = ? AND chapter = ? AND verse = ? AND version = ?", h.Book, h.Chapter, h.Verse, h.Version).
		First(&existing).Error
	if err == nil && existing.Color == h.Color {
		if err := r.db.Delete(&existing).Error; err != nil {
			return nil, false, err
		}
		return nil, false, nil
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, false, err
	}
	added, err := r.AddHighlight(h)
	if err != nil {
		return nil, false, err
	}
	return added, true, nil
}

// RemoveHighlight deletes a highlight, returning gorm.ErrRecordNotFound if absent.
func (r *Repository) RemoveHighlight(id string) error {
	result := r.db.Where("id = ?", id).Delete(&entities.Highlight{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) GetHighlightsByChapter(book string, chapter int) ([]entities.Highlight, error) {
	var highlights []entities.Highlight
	err := r.db.Where("book = ? AND chapter = ?", book, chapter).
		Order("verse").
		Find(&highlights).Error
	return highlights, err
}

// GetHighlightByVerse returns the first highlight on a verse.
func (r *Repository) GetHighlightByVerse(book string, chapter, verse int) (*entities.Highlight, error) {
	var h entities.Highlight
	err := r.db.Where("book = ? AND chapter = ? AND verse = ?", book, chapter, verse).
		Order("created_at").
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *Repository) GetAllHighlights() ([]entities.Highlight, error) {
	var highlights []entities.Highlight
	err := r.db.Order("created_at DESC").Find(&highlights).Error
	return highlights, err
}

// UpsertHighlights stores highlights as given, replacing records with the same id.
func (r *Repository) UpsertHighlights(highlights []entities.Highlight) error {
	if len(highlights) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&highlights).Error
}
