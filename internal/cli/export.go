package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mrlokans/mybible/internal/backup"
	"github.com/mrlokans/mybible/internal/config"
)

// ExportCommand writes a JSON backup of the user's data.
type ExportCommand struct {
	OutputPath   string
	DatabasePath string

	Out io.Writer
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{Out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)

	fs.StringVar(&cmd.OutputPath, "o", "", "Backup file to write (default mybible-backup-YYYYMMDD.json)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Back up notes, highlights, bookmarks, reading progress, sessions and settings.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputPath == "" {
		cmd.OutputPath = fmt.Sprintf("mybible-backup-%s.json", time.Now().Format("20060102"))
	}
	return nil
}

func (cmd *ExportCommand) Run() error {
	app, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer app.Close()

	data, err := app.Backup.Export()
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	absOutput, err := filepath.Abs(cmd.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for output: %w", err)
	}
	if err := backup.WriteFile(absOutput, data); err != nil {
		return err
	}

	fmt.Fprintf(cmd.Out, "Exported %d notes, %d highlights, %d bookmarks, %d progress entries, %d sessions, %d settings\n",
		len(data.Notes), len(data.Highlights), len(data.Bookmarks), len(data.ReadingProgress), len(data.Sessions), len(data.Settings))
	fmt.Fprintf(cmd.Out, "Backup written to %s\n", absOutput)
	return nil
}
