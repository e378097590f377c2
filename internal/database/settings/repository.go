// Package settings persists reader preferences as key/value rows.
//
// Values are opaque JSON text; decoding and validation belong to
// settingsstore. Writes are upserts on the unique key, so callers never need
// to look a row up before changing it.
package settings

import (
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/mybible/internal/entities"
)

var upsertOnKey = clause.OnConflict{
	Columns:   []clause.Column{{Name: "key"}},
	DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSetting returns gorm.ErrRecordNotFound for keys never written.
func (r *Repository) GetSetting(key string) (*entities.Setting, error) {
	var setting entities.Setting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetAllSettings returns every stored setting ordered by key.
func (r *Repository) GetAllSettings() ([]entities.Setting, error) {
	var all []entities.Setting
	err := r.db.Order("key").Find(&all).Error
	return all, err
}

func (r *Repository) SetSetting(key, value string) error {
	return r.SetSettings(map[string]string{key: value})
}

// SetSettings writes several keys in one transaction; either all of them
// are stored or none.
func (r *Repository) SetSettings(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	now := time.Now()
	rows := make([]entities.Setting, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, entities.Setting{Key: key, Value: values[key], CreatedAt: now, UpdatedAt: now})
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(upsertOnKey).Create(&rows).Error
	})
}

// DeleteSetting removes a key. Deleting a missing key is not an error.
func (r *Repository) DeleteSetting(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.Setting{}).Error
}
