// Package bookmarks provides database operations for verse bookmarks.
package bookmarks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/mybible/internal/entities"
)

// Repository handles all bookmark database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookmarks repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) AddBookmark(b *entities.Bookmark) (*entities.Bookmark, error) {
	b.ID = uuid.NewString()
	b.CreatedAt = time.Now().UnixMilli()
	if err := r.db.Create(b).Error; err != nil {
		return nil, err
	}
	return b, nil
}

// RemoveBookmark deletes a bookmark, returning gorm.ErrRecordNotFound if absent.
func (r *Repository) RemoveBookmark(id string) error {
	result := r.db.Where("id = ?", id).Delete(&entities.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetAllBookmarks returns bookmarks, newest first.
func (r *Repository) GetAllBookmarks() ([]entities.Bookmark, error) {
	var bookmarks []entities.Bookmark
	err := r.db.Order("created_at DESC").Find(&bookmarks).Error
	return bookmarks, err
}

func (r *Repository) GetBookmarksByChapter(book string, chapter int) ([]entities.Bookmark, error) {
	var bookmarks []entities.Bookmark
	err := r.db.Where("book = ? AND chapter = ?", book, chapter).
		Order("verse").
		Find(&bookmarks).Error
	return bookmarks, err
}

func (r *Repository) IsBookmarked(book string, chapter, verse int) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Bookmark{}).
		Where("book = ? AND chapter = ? AND verse = ?", book, chapter, verse).
		Count(&count).Error
	return count > 0, err
}

func (r *Repository) GetBookmarkByVerse(book string, chapter, verse int) (*entities.Bookmark, error) {
	var b entities.Bookmark
	err := r.db.Where("book = ? AND chapter = ? AND verse = ?", book, chapter, verse).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ToggleBookmark removes the bookmark on a verse if there is one and adds
// it otherwise. The returned bool reports whether the verse is now
// bookmarked.
func (r *Repository) ToggleBookmark(b *entities.Bookmark) (*entities.Bookmark, bool, error) {
	existing, err := r.GetBookmarkByVerse(b.Book, b.Chapter, b.Verse)
	switch {
	case err == nil:
		if err := r.RemoveBookmark(existing.ID); err != nil {
			return nil, false, err
		}
		return nil, false, nil
	case err != gorm.ErrRecordNotFound:
		return nil, false, err
	}
	added, err := r.AddBookmark(b)
	if err != nil {
		return nil, false, err
	}
	return added, true, nil
}

// UpsertBookmarks stores bookmarks as given, replacing records with the same id.
func (r *Repository) UpsertBookmarks(bookmarks []entities.Bookmark) error {
	if len(bookmarks) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&bookmarks).Error
}
