package entities

type Bookmark struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	Book      string `gorm:"size:8;index:idx_bookmarks_ref,priority:1" json:"book"`
	Chapter   int    `gorm:"index:idx_bookmarks_ref,priority:2" json:"chapter"`
	Verse     int    `gorm:"index:idx_bookmarks_ref,priority:3" json:"verse"`
	Label     string `gorm:"size:256" json:"label,omitempty"`
	CreatedAt int64  `gorm:"index;autoCreateTime:milli" json:"createdAt"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
