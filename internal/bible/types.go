package bible

import "fmt"

// Verse is a single verse of one version. Verses are immutable once fetched.
type Verse struct {
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
	Version string `json:"version"`
}

// Key returns the persistence key "version:book:chapter:verse".
func (v Verse) Key() string {
	return VerseKey(v.Version, v.Book, v.Chapter, v.Verse)
}

// Chapter holds the verses of one chapter sorted by verse number with no
// duplicate numbers.
type Chapter struct {
	Book    string  `json:"book"`
	Chapter int     `json:"chapter"`
	Version string  `json:"version"`
	Verses  []Verse `json:"verses"`
}

// Key returns the cache key "version:book:chapter".
func (c *Chapter) Key() string {
	return ChapterKey(c.Version, c.Book, c.Chapter)
}

func ChapterKey(version, book string, chapter int) string {
	return fmt.Sprintf("%s:%s:%d", version, book, chapter)
}

func VerseKey(version, book string, chapter, verse int) string {
	return fmt.Sprintf("%s:%s:%d:%d", version, book, chapter, verse)
}
