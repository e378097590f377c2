// Package progress tracks which chapters have been read.
package progress

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/entities"
)

// BookProgress is the read count of one book.
type BookProgress struct {
	Book  string `json:"book"`
	Read  int    `json:"read"`
	Total int    `json:"total"`
}

// Repository handles reading progress database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new progress repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// MarkChapterRead records a chapter as read. Marking it again keeps the
// original completion time.
func (r *Repository) MarkChapterRead(book string, chapter int) (*entities.ReadingProgress, error) {
	var existing entities.ReadingProgress
	err := r.db.Where("book = ? AND chapter = ?", book, chapter).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	p := &entities.ReadingProgress{
		ID:          uuid.NewString(),
		Book:        book,
		Chapter:     chapter,
		CompletedAt: time.Now().UnixMilli(),
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// UnmarkChapterRead removes the read mark of a chapter if present.
func (r *Repository) UnmarkChapterRead(book string, chapter int) error {
	return r.db.Where("book = ? AND chapter = ?", book, chapter).Delete(&entities.ReadingProgress{}).Error
}

func (r *Repository) GetReadingProgress() ([]entities.ReadingProgress, error) {
	var records []entities.ReadingProgress
	err := r.db.Order("completed_at").Find(&records).Error
	return records, err
}

// GetRecentReading returns the most recently read chapters, newest first.
func (r *Repository) GetRecentReading(limit int) ([]entities.ReadingProgress, error) {
	if limit <= 0 {
		limit = 5
	}
	var records []entities.ReadingProgress
	err := r.db.Order("completed_at DESC").Limit(limit).Find(&records).Error
	return records, err
}

// GetBookProgress returns how many chapters of a book were read. Unknown
// books report zero of zero.
func (r *Repository) GetBookProgress(book string) (BookProgress, error) {
	info, ok := bible.BookByID(book)
	if !ok {
		return BookProgress{Book: book}, nil
	}
	var count int64
	if err := r.db.Model(&entities.ReadingProgress{}).Where("book = ?", book).Count(&count).Error; err != nil {
		return BookProgress{}, err
	}
	return BookProgress{Book: book, Read: int(count), Total: info.Chapters}, nil
}

// UpsertProgress stores records as given, replacing records with the same id.
// Records for an already-read chapter are skipped.
func (r *Repository) UpsertProgress(records []entities.ReadingProgress) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range records {
			rec := records[i]
			err := tx.Where("book = ? AND chapter = ? AND id <> ?", rec.Book, rec.Chapter, rec.ID).
				First(&entities.ReadingProgress{}).Error
			if err == nil {
				continue
			}
			if err != gorm.ErrRecordNotFound {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
