// Package verses persists chapter text so chapters can be read and searched
// offline.
//
// # Interface Implementation
//
//	var _ retrieval.VerseWriter = (*Repository)(nil)
//	var _ search.VerseSource = (*Repository)(nil)
//	var _ prefetch.ChapterStore = (*Repository)(nil)
package verses

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/entities"
)

// Repository handles verse storage.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new verses repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SaveChapter upserts every verse of a chapter in one transaction.
func (r *Repository) SaveChapter(ch *bible.Chapter) error {
	if ch == nil || len(ch.Verses) == 0 {
		return nil
	}
	records := make([]entities.VerseRecord, 0, len(ch.Verses))
	for _, v := range ch.Verses {
		records = append(records, entities.NewVerseRecord(v))
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"text"}),
		}).CreateInBatches(records, 200).Error
	})
}

// VersesByVersion returns all persisted verses of a version, optionally
// limited to the given books, in canonical storage order.
func (r *Repository) VersesByVersion(version string, books []string) ([]bible.Verse, error) {
	query := r.db.Where("version = ?", version)
	if books != nil {
		query = query.Where("book IN ?", books)
	}

	var records []entities.VerseRecord
	if err := query.Order("book, chapter, verse").Find(&records).Error; err != nil {
		return nil, err
	}
	return toVerses(records), nil
}

// HasVersion reports whether any verse of the version is stored.
func (r *Repository) HasVersion(version string) (bool, error) {
	var record entities.VerseRecord
	result := r.db.Where("version = ?", version).Limit(1).Find(&record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ChapterVerses returns the persisted chapter, or nil if no verse of it is
// stored.
func (r *Repository) ChapterVerses(version, book string, chapter int) (*bible.Chapter, error) {
	var records []entities.VerseRecord
	err := r.db.Where("version = ? AND book = ? AND chapter = ?", version, book, chapter).
		Order("verse").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &bible.Chapter{Book: book, Chapter: chapter, Version: version, Verses: toVerses(records)}, nil
}

// PersistedChapters returns the distinct chapters stored for a version.
func (r *Repository) PersistedChapters(version string) ([]bible.ChapterRef, error) {
	var refs []bible.ChapterRef
	err := r.db.Model(&entities.VerseRecord{}).
		Distinct("book", "chapter").
		Where("version = ?", version).
		Order("book, chapter").
		Scan(&refs).Error
	if err != nil {
		return nil, err
	}
	return refs, nil
}

// CountChapters returns the number of distinct chapters stored for a version.
func (r *Repository) CountChapters(version string) (int, error) {
	refs, err := r.PersistedChapters(version)
	if err != nil {
		return 0, err
	}
	return len(refs), nil
}

// DeleteVersion removes every stored verse of a version.
func (r *Repository) DeleteVersion(version string) (int64, error) {
	result := r.db.Where("version = ?", version).Delete(&entities.VerseRecord{})
	return result.RowsAffected, result.Error
}

func toVerses(records []entities.VerseRecord) []bible.Verse {
	verses := make([]bible.Verse, 0, len(records))
	for _, rec := range records {
		verses = append(verses, rec.ToVerse())
	}
	return verses
}
