package entities

type HighlightColor string

const (
	HighlightColorYellow HighlightColor = "yellow"
	HighlightColorGreen  HighlightColor = "green"
	HighlightColorBlue   HighlightColor = "blue"
	HighlightColorPink   HighlightColor = "pink"
	HighlightColorPurple HighlightColor = "purple"
)

// HighlightColors lists the palette in display order.
var HighlightColors = []HighlightColor{
	HighlightColorYellow,
	HighlightColorGreen,
	HighlightColorBlue,
	HighlightColorPink,
	HighlightColorPurple,
}

func (c HighlightColor) Valid() bool {
	for _, known := range HighlightColors {
		if c == known {
			return true
		}
	}
	return false
}

type Highlight struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Book      string         `gorm:"size:8;index:idx_highlights_ref,priority:1" json:"book"`
	Chapter   int            `gorm:"index:idx_highlights_ref,priority:2" json:"chapter"`
	Verse     int            `gorm:"index:idx_highlights_ref,priority:3" json:"verse"`
	Color     HighlightColor `gorm:"size:10" json:"color"`
	Version   string         `gorm:"size:16;index" json:"version"`
	CreatedAt int64          `gorm:"index;autoCreateTime:milli" json:"createdAt"`
}

func (Highlight) TableName() string {
	return "highlights"
}
