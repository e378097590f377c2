package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/mybible/internal/backup"
	"github.com/mrlokans/mybible/internal/config"
)

// ImportCommand restores a JSON backup into the database.
type ImportCommand struct {
	BackupPath   string
	DatabasePath string
	DryRun       bool

	Out io.Writer
}

func NewImportCommand() *ImportCommand {
	return &ImportCommand{Out: os.Stdout}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)

	fs.StringVar(&cmd.BackupPath, "file", "", "Backup file to restore (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Validate the backup without writing anything")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Restore a backup. Records with the same id are replaced.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.BackupPath == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	return nil
}

func (cmd *ImportCommand) Run() error {
	raw, err := os.ReadFile(cmd.BackupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}
	data, err := backup.ParseExport(raw)
	if err != nil {
		return err
	}
	if data.Version != backup.FormatVersion {
		return fmt.Errorf("%w: %d", backup.ErrUnsupportedVersion, data.Version)
	}

	fmt.Fprintf(cmd.Out, "Backup from %s: %d notes, %d highlights, %d bookmarks, %d progress entries, %d sessions, %d settings\n",
		data.ExportedAt, len(data.Notes), len(data.Highlights), len(data.Bookmarks), len(data.ReadingProgress), len(data.Sessions), len(data.Settings))
	if cmd.DryRun {
		fmt.Fprintln(cmd.Out, "Dry run complete. Use without -dry-run to import.")
		return nil
	}

	app, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer app.Close()

	res, err := app.Backup.Import(data)
	if err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}
	fmt.Fprintf(cmd.Out, "Imported %d notes, %d highlights, %d bookmarks, %d progress entries, %d sessions, %d settings\n",
		res.Notes, res.Highlights, res.Bookmarks, res.ReadingProgress, res.Sessions, res.Settings)
	return nil
}
