package exporters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/entities"
	"github.com/mrlokans/mybible/internal/utils"
)

const (
	versesDir  = "verses"
	sermonsDir = "sermons"
)

// MarkdownExporter writes one file per book holding its verse notes and
// highlights, and one file per sermon note.
type MarkdownExporter struct {
	ExportDir string
	now       func() time.Time
}

func NewMarkdownExporter(exportDir string) *MarkdownExporter {
	return &MarkdownExporter{ExportDir: exportDir, now: time.Now}
}

func (exporter *MarkdownExporter) ensureDirs() error {
	for _, dir := range []string{versesDir, sermonsDir} {
		if err := os.MkdirAll(filepath.Join(exporter.ExportDir, dir), 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}
	return nil
}

// bookEntries collects everything attached to one book.
type bookEntries struct {
	book       bible.Book
	notes      []entities.Note
	highlights []entities.Highlight
}

func groupByBook(notes []entities.Note, highlights []entities.Highlight) []*bookEntries {
	byID := make(map[string]*bookEntries)
	entry := func(id string) *bookEntries {
		if e, ok := byID[id]; ok {
			return e
		}
		book, ok := bible.BookByID(id)
		if !ok {
			return nil
		}
		e := &bookEntries{book: book}
		byID[id] = e
		return e
	}

	for _, n := range notes {
		if n.Type != entities.NoteTypeVerse {
			continue
		}
		if e := entry(n.Book); e != nil {
			e.notes = append(e.notes, n)
		}
	}
	for _, h := range highlights {
		if e := entry(h.Book); e != nil {
			e.highlights = append(e.highlights, h)
		}
	}

	out := make([]*bookEntries, 0, len(byID))
	for _, e := range byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].book.Order < out[j].book.Order })
	return out
}

func verseOf(n entities.Note) int {
	if n.Verse == nil {
		return 0
	}
	return *n.Verse
}

// GenerateBookMarkdown renders a book's verse notes and highlights in
// canonical order.
func GenerateBookMarkdown(book bible.Book, notes []entities.Note, highlights []entities.Highlight, exportedAt time.Time) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: bible_notes\n")
	fmt.Fprintf(&builder, "book: %s\n", book.ID)
	fmt.Fprintf(&builder, "title: \"%s\"\n", book.Name)
	fmt.Fprintf(&builder, "exported_at: %s\n", exportedAt.Format("2006-01-02"))
	fmt.Fprintf(&builder, "tags: [bible, notes]\n")
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# %s\n\n", book.Name)

	sorted := append([]entities.Note(nil), notes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Chapter != b.Chapter {
			return a.Chapter < b.Chapter
		}
		if verseOf(a) != verseOf(b) {
			return verseOf(a) < verseOf(b)
		}
		return a.CreatedAt < b.CreatedAt
	})
	if len(sorted) > 0 {
		fmt.Fprintf(&builder, "## 메모\n\n")
		for _, n := range sorted {
			fmt.Fprintf(&builder, "### %s\n\n", bible.FormatReferenceShort(book.ID, n.Chapter, verseOf(n)))
			if n.Title != "" {
				fmt.Fprintf(&builder, "**%s**\n\n", n.Title)
			}
			fmt.Fprintf(&builder, "%s\n\n", strings.TrimSpace(n.Content))
			if len(n.Tags) > 0 {
				fmt.Fprintf(&builder, "%s\n\n", hashtags(n.Tags))
			}
		}
	}

	marks := append([]entities.Highlight(nil), highlights...)
	sort.SliceStable(marks, func(i, j int) bool {
		if marks[i].Chapter != marks[j].Chapter {
			return marks[i].Chapter < marks[j].Chapter
		}
		return marks[i].Verse < marks[j].Verse
	})
	if len(marks) > 0 {
		fmt.Fprintf(&builder, "## 하이라이트\n\n")
		for _, h := range marks {
			fmt.Fprintf(&builder, "- %s (%s, %s)\n",
				bible.FormatReferenceShort(book.ID, h.Chapter, h.Verse), h.Color, strings.ToUpper(h.Version))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

// GenerateSermonMarkdown renders a sermon note with its frontmatter.
func GenerateSermonMarkdown(note entities.Note) string {
	var builder strings.Builder

	title := note.Title
	if title == "" {
		title = "설교 노트"
	}

	fmt.Fprintf(&builder, "---\n")
	fmt.Fprintf(&builder, "content_type: sermon_note\n")
	fmt.Fprintf(&builder, "title: \"%s\"\n", strings.ReplaceAll(title, "\"", "\\\""))
	fmt.Fprintf(&builder, "date: %s\n", note.Date)
	if note.Book != "" {
		fmt.Fprintf(&builder, "passage: %s\n", bible.FormatReference(note.Book, note.Chapter, verseOf(note)))
	}
	fmt.Fprintf(&builder, "tags: [%s]\n", strings.Join(append([]string{"sermon"}, note.Tags...), ", "))
	fmt.Fprintf(&builder, "---\n\n")
	fmt.Fprintf(&builder, "# %s\n\n", title)
	fmt.Fprintf(&builder, "%s\n", strings.TrimSpace(note.Content))

	return builder.String()
}

func hashtags(tags []string) string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, "#"+strings.ReplaceAll(strings.TrimSpace(tag), " ", "_"))
	}
	return strings.Join(out, " ")
}

// sermonFilename prefixes the note date so files sort chronologically.
func sermonFilename(note entities.Note) string {
	date := note.Date
	if t, err := time.Parse(time.RFC3339, note.Date); err == nil {
		date = t.Format("2006-01-02")
	}
	if len(date) > 10 {
		date = date[:10]
	}
	name := utils.SanitizeFilename(note.Title)
	if date != "" {
		name = date + " " + name
	}
	// Note ids keep same-day, same-title sermons apart.
	return fmt.Sprintf("%s %s.md", name, note.ID[:min(8, len(note.ID))])
}

func (exporter *MarkdownExporter) write(path, content string) error {
	return atomic.WriteFile(path, strings.NewReader(content))
}

// Export writes every file, counting the ones that fail rather than
// stopping at the first error.
func (exporter *MarkdownExporter) Export(notes []entities.Note, highlights []entities.Highlight) (ExportResult, error) {
	result := ExportResult{}
	if err := exporter.ensureDirs(); err != nil {
		return result, err
	}
	exportedAt := exporter.now()

	for _, e := range groupByBook(notes, highlights) {
		name := fmt.Sprintf("%02d %s.md", e.book.Order, utils.SanitizeFilename(e.book.Name))
		path := filepath.Join(exporter.ExportDir, versesDir, name)
		if err := exporter.write(path, GenerateBookMarkdown(e.book, e.notes, e.highlights, exportedAt)); err != nil {
			log.Printf("[EXPORT] Failed to write %s: %v", path, err)
			result.FilesFailed++
			continue
		}
		result.BooksProcessed++
		result.NotesProcessed += len(e.notes)
		result.HighlightsProcessed += len(e.highlights)
	}

	for _, n := range notes {
		if n.Type != entities.NoteTypeSermon {
			continue
		}
		path := filepath.Join(exporter.ExportDir, sermonsDir, sermonFilename(n))
		if err := exporter.write(path, GenerateSermonMarkdown(n)); err != nil {
			log.Printf("[EXPORT] Failed to write %s: %v", path, err)
			result.FilesFailed++
			continue
		}
		result.SermonsProcessed++
		result.NotesProcessed++
	}

	log.Printf("[EXPORT] Wrote %d book files and %d sermon files to %s",
		result.BooksProcessed, result.SermonsProcessed, exporter.ExportDir)
	return result, nil
}
