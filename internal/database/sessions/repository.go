// Package sessions stores reading sessions used for reading statistics.
package sessions

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/mybible/internal/entities"
)

// Repository handles reading session database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sessions repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddSession stores a session. Sessions shorter than
// entities.MinSessionDuration are dropped and reported as (nil, nil).
func (r *Repository) AddSession(s *entities.ReadingSession) (*entities.ReadingSession, error) {
	if s.DurationMs < entities.MinSessionDuration {
		return nil, nil
	}
	if s.EndedAt == 0 {
		s.EndedAt = time.Now().UnixMilli()
	}
	if s.StartedAt == 0 {
		s.StartedAt = s.EndedAt - s.DurationMs
	}
	if s.Date == "" {
		s.Date = time.UnixMilli(s.StartedAt).Format("2006-01-02")
	}
	s.ID = uuid.NewString()
	if err := r.db.Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// GetSessionsByDateRange returns sessions with start <= date <= end
// (YYYY-MM-DD, inclusive).
func (r *Repository) GetSessionsByDateRange(start, end string) ([]entities.ReadingSession, error) {
	var sessions []entities.ReadingSession
	err := r.db.Where("date >= ? AND date <= ?", start, end).
		Order("date, started_at").
		Find(&sessions).Error
	return sessions, err
}

func (r *Repository) GetAllSessions() ([]entities.ReadingSession, error) {
	var sessions []entities.ReadingSession
	err := r.db.Order("date, started_at").Find(&sessions).Error
	return sessions, err
}

// UpsertSessions stores sessions as given, replacing records with the same id.
func (r *Repository) UpsertSessions(sessions []entities.ReadingSession) error {
	if len(sessions) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&sessions).Error
}
