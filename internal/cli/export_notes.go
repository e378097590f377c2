package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mrlokans/mybible/internal/config"
	"github.com/mrlokans/mybible/internal/exporters"
)

// ExportNotesCommand renders notes and highlights as Obsidian-compatible
// markdown, one file per book and one per sermon note.
type ExportNotesCommand struct {
	OutputDir    string
	DatabasePath string

	Out io.Writer
}

func NewExportNotesCommand() *ExportNotesCommand {
	return &ExportNotesCommand{Out: os.Stdout}
}

func (cmd *ExportNotesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-notes", flag.ContinueOnError)

	fs.StringVar(&cmd.OutputDir, "dir", "", "Output directory for markdown files (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-notes -dir <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Write verses/<book>.md and sermons/<date title>.md files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s export-notes -dir ~/Obsidian/Bible\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputDir == "" {
		return fmt.Errorf("required flag -dir not provided")
	}
	return nil
}

func (cmd *ExportNotesCommand) Run() error {
	absOutputDir, err := filepath.Abs(cmd.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}

	app, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer app.Close()

	notes, err := app.Notes.GetAllNotes()
	if err != nil {
		return fmt.Errorf("failed to load notes: %w", err)
	}
	highlights, err := app.Highlights.GetAllHighlights()
	if err != nil {
		return fmt.Errorf("failed to load highlights: %w", err)
	}

	var exporter exporters.NotesExporter = exporters.NewMarkdownExporter(absOutputDir)
	result, err := exporter.Export(notes, highlights)
	if err != nil {
		return fmt.Errorf("failed to export to markdown: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Exported %d books and %d sermons to %s\n", result.BooksProcessed, result.SermonsProcessed, absOutputDir)
	if result.FilesFailed > 0 {
		fmt.Fprintf(cmd.Out, "%d files failed to export\n", result.FilesFailed)
	}
	return nil
}
