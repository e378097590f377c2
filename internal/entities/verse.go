package entities

import "github.com/mrlokans/mybible/internal/bible"

// VerseRecord is a persisted verse keyed by "version:book:chapter:verse".
type VerseRecord struct {
	Key     string `gorm:"primaryKey;size:64" json:"key"`
	Version string `gorm:"size:16;index;index:idx_verses_lookup,priority:1" json:"version"`
	Book    string `gorm:"size:8;index:idx_verses_lookup,priority:2" json:"book"`
	Chapter int    `gorm:"index:idx_verses_lookup,priority:3" json:"chapter"`
	Verse   int    `gorm:"index:idx_verses_lookup,priority:4" json:"verse"`
	Text    string `gorm:"type:text" json:"text"`
}

func (VerseRecord) TableName() string {
	return "verses"
}

func NewVerseRecord(v bible.Verse) VerseRecord {
	return VerseRecord{
		Key:     v.Key(),
		Version: v.Version,
		Book:    v.Book,
		Chapter: v.Chapter,
		Verse:   v.Verse,
		Text:    v.Text,
	}
}

func (r VerseRecord) ToVerse() bible.Verse {
	return bible.Verse{
		Book:    r.Book,
		Chapter: r.Chapter,
		Verse:   r.Verse,
		Text:    r.Text,
		Version: r.Version,
	}
}
