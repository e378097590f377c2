package entities

// ReadingProgress records that a chapter was read. There is at most one
// record per (book, chapter).
type ReadingProgress struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Book        string `gorm:"size:8;uniqueIndex:idx_progress_ref,priority:1" json:"book"`
	Chapter     int    `gorm:"uniqueIndex:idx_progress_ref,priority:2" json:"chapter"`
	CompletedAt int64  `gorm:"index" json:"completedAt"`
}

func (ReadingProgress) TableName() string {
	return "reading_progress"
}

// ReadingSession is a span of active reading. Date is the local calendar
// day as YYYY-MM-DD.
type ReadingSession struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	Date       string `gorm:"size:10;index" json:"date"`
	Book       string `gorm:"size:8" json:"book"`
	Chapter    int    `json:"chapter"`
	DurationMs int64  `json:"durationMs"`
	StartedAt  int64  `json:"startedAt"`
	EndedAt    int64  `json:"endedAt"`
}

func (ReadingSession) TableName() string {
	return "reading_sessions"
}

// MinSessionDuration is the shortest session worth recording, in ms.
const MinSessionDuration int64 = 5000
