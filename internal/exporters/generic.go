// Package exporters renders notes and highlights as markdown files that can
// be dropped into a notes vault.
package exporters

import "github.com/mrlokans/mybible/internal/entities"

type NotesExporter interface {
	Export(notes []entities.Note, highlights []entities.Highlight) (ExportResult, error)
}

type ExportResult struct {
	BooksProcessed      int `json:"booksProcessed"`
	SermonsProcessed    int `json:"sermonsProcessed"`
	NotesProcessed      int `json:"notesProcessed"`
	HighlightsProcessed int `json:"highlightsProcessed"`
	FilesFailed         int `json:"filesFailed"`
}
