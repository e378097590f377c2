package entities

type NoteType string

const (
	NoteTypeVerse  NoteType = "verse"
	NoteTypeSermon NoteType = "sermon"
)

func (t NoteType) Valid() bool {
	return t == NoteTypeVerse || t == NoteTypeSermon
}

// Note is a verse memo or a sermon note. Timestamps are Unix milliseconds.
type Note struct {
	ID        string   `gorm:"primaryKey;size:36" json:"id"`
	Type      NoteType `gorm:"size:10;index" json:"type"`
	Book      string   `gorm:"size:8;index:idx_notes_ref,priority:1" json:"book"`
	Chapter   int      `gorm:"index:idx_notes_ref,priority:2" json:"chapter"`
	Verse     *int     `gorm:"index:idx_notes_ref,priority:3" json:"verse,omitempty"`
	Title     string   `gorm:"size:256" json:"title,omitempty"`
	Content   string   `gorm:"type:text" json:"content"`
	Date      string   `gorm:"size:32;index" json:"date"`
	Tags      []string `gorm:"serializer:json" json:"tags,omitempty"`
	CreatedAt int64    `gorm:"index;autoCreateTime:milli" json:"createdAt"`
	UpdatedAt int64    `gorm:"autoUpdateTime:milli" json:"updatedAt"`
}

func (Note) TableName() string {
	return "notes"
}
