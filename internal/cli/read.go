package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mrlokans/mybible/internal/bible"
	"github.com/mrlokans/mybible/internal/config"
)

// ReadCommand prints a chapter or a single verse.
type ReadCommand struct {
	Reference    string
	Version      string
	DatabasePath string
	Timeout      time.Duration

	Out io.Writer
}

func NewReadCommand() *ReadCommand {
	return &ReadCommand{Out: os.Stdout}
}

func (cmd *ReadCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("read", flag.ContinueOnError)

	fs.StringVar(&cmd.Version, "version", config.DefaultVersion, "Bible version id, e.g. krv or kjv")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.DurationVar(&cmd.Timeout, "timeout", 30*time.Second, "Maximum time to wait for the providers")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s read [options] <reference>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print a chapter or verse. References may be Korean or English.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s read \"요 3:16\"\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s read -version kjv \"Romans 8\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Reference = strings.TrimSpace(strings.Join(fs.Args(), " "))
	if cmd.Reference == "" {
		return fmt.Errorf("a reference is required")
	}
	cmd.Version = strings.ToLower(cmd.Version)
	if _, ok := bible.VersionByID(cmd.Version); !ok {
		return fmt.Errorf("unknown version: %s", cmd.Version)
	}
	return nil
}

func (cmd *ReadCommand) Run() error {
	ref, ok := bible.ParseReference(cmd.Reference)
	if !ok {
		return fmt.Errorf("could not parse reference %q", cmd.Reference)
	}

	app, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	ch, err := app.Engine.FetchChapter(ctx, cmd.Version, ref.Book, ref.Chapter)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", ref, err)
	}
	return printChapter(cmd.Out, ch, ref)
}

func printChapter(w io.Writer, ch *bible.Chapter, ref bible.Reference) error {
	shortName := strings.ToUpper(ch.Version)
	if v, ok := bible.VersionByID(ch.Version); ok {
		shortName = v.ShortName
	}

	if ref.HasVerse() {
		for _, v := range ch.Verses {
			if v.Verse == ref.Verse {
				fmt.Fprintf(w, "%s (%s)\n%s\n", bible.FormatReference(ch.Book, ch.Chapter, v.Verse), shortName, v.Text)
				return nil
			}
		}
		return fmt.Errorf("verse %d not found in %s", ref.Verse, bible.FormatReference(ch.Book, ch.Chapter, 0))
	}

	fmt.Fprintf(w, "%s (%s)\n\n", bible.FormatReference(ch.Book, ch.Chapter, 0), shortName)
	for _, v := range ch.Verses {
		fmt.Fprintf(w, "%3d  %s\n", v.Verse, v.Text)
	}
	return nil
}
