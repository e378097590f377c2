package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrlokans/mybible/internal/config"
	"github.com/mrlokans/mybible/internal/prefetch"
	"github.com/mrlokans/mybible/internal/scheduler"
)

// PrefetchCommand downloads whole versions for offline reading and search.
type PrefetchCommand struct {
	Versions     []string
	DatabasePath string
	Workers      int

	Out io.Writer

	versionList string
}

func NewPrefetchCommand() *PrefetchCommand {
	return &PrefetchCommand{Out: os.Stdout}
}

func (cmd *PrefetchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("prefetch", flag.ContinueOnError)

	fs.StringVar(&cmd.versionList, "version", config.DefaultVersion, "Comma-separated version ids, e.g. krv,kjv")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.IntVar(&cmd.Workers, "workers", config.DefaultPrefetchWorkers, "Concurrent chapter downloads")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s prefetch [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Download every missing chapter of the given versions. Runs resume\n")
		fmt.Fprintf(os.Stderr, "where they stopped; press Ctrl+C to cancel.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cmd.Versions = scheduler.ParseVersions(cmd.versionList)
	if len(cmd.Versions) == 0 {
		return fmt.Errorf("no known version in %q", cmd.versionList)
	}
	if cmd.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	return nil
}

func (cmd *PrefetchCommand) Run() error {
	app, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctrl := prefetch.NewController(app.Engine, app.Verses, app.SyncRepo, cmd.Workers)

	var failed []string
	for _, version := range cmd.Versions {
		fmt.Fprintf(cmd.Out, "Downloading %s\n", version)
		final, err := ctrl.Run(ctx, version, progressPrinter(cmd.Out))
		if err != nil {
			return err
		}
		switch final.Status {
		case prefetch.StatusDone:
			fmt.Fprintf(cmd.Out, "%s: %d/%d chapters available offline\n", version, final.Current, final.Total)
		case prefetch.StatusCancelled:
			fmt.Fprintf(cmd.Out, "%s: cancelled at %d/%d\n", version, final.Current, final.Total)
			return ctx.Err()
		default:
			fmt.Fprintf(cmd.Out, "%s: %s\n", version, final.Error)
			failed = append(failed, version)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d versions did not finish: %v", len(failed), len(cmd.Versions), failed)
	}
	return nil
}

// progressPrinter reports every tenth of the canon and every book change
// rather than each chapter.
func progressPrinter(w io.Writer) prefetch.ProgressFunc {
	lastBook := ""
	lastStep := -1
	return func(p prefetch.Progress) {
		if p.Status != prefetch.StatusDownloading || p.Total == 0 {
			return
		}
		step := p.Current * 10 / p.Total
		if step == lastStep && p.BookName == lastBook {
			return
		}
		lastStep, lastBook = step, p.BookName
		if p.BookName == "" {
			fmt.Fprintf(w, "  %d/%d\n", p.Current, p.Total)
			return
		}
		fmt.Fprintf(w, "  %d/%d %s\n", p.Current, p.Total, p.BookName)
	}
}
