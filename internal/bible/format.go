package bible

import "fmt"

// FormatReference renders a reference with the Korean book name, e.g.
// "요한복음 3:16" or "요한복음 3장". Unknown books yield "".
func FormatReference(bookID string, chapter, verse int) string {
	b, ok := booksByID[bookID]
	if !ok {
		return ""
	}
	if verse > 0 {
		return fmt.Sprintf("%s %d:%d", b.Name, chapter, verse)
	}
	return fmt.Sprintf("%s %d장", b.Name, chapter)
}

// FormatReferenceShort uses the Korean abbreviation: "요 3:16", "요 3".
func FormatReferenceShort(bookID string, chapter, verse int) string {
	b, ok := booksByID[bookID]
	if !ok {
		return ""
	}
	if verse > 0 {
		return fmt.Sprintf("%s %d:%d", b.ShortName, chapter, verse)
	}
	return fmt.Sprintf("%s %d", b.ShortName, chapter)
}
