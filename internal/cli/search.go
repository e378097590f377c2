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
	"github.com/mrlokans/mybible/internal/search"
)

// SearchCommand runs a keyword search over the persisted verses.
type SearchCommand struct {
	Query        string
	Version      string
	Scope        bible.Scope
	Limit        int
	DatabasePath string

	Out io.Writer

	scope string
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{Out: os.Stdout}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)

	fs.StringVar(&cmd.Query, "q", "", "Search keywords; every keyword must match (required)")
	fs.StringVar(&cmd.Version, "version", config.DefaultVersion, "Bible version id")
	fs.StringVar(&cmd.scope, "scope", string(bible.ScopeAll), "Testament scope: all, old or new")
	fs.IntVar(&cmd.Limit, "limit", 20, "Maximum number of results; 0 for no limit")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search -q <keywords> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search verses downloaded with prefetch or read earlier.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.Query) == "" {
		return fmt.Errorf("required flag -q not provided")
	}
	cmd.Version = strings.ToLower(cmd.Version)
	if _, ok := bible.VersionByID(cmd.Version); !ok {
		return fmt.Errorf("unknown version: %s", cmd.Version)
	}
	scope, err := bible.ParseScope(cmd.scope)
	if err != nil {
		return err
	}
	cmd.Scope = scope
	if cmd.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	return nil
}

func (cmd *SearchCommand) Run() error {
	app, err := openApp(cmd.DatabasePath)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := app.Search.Search(ctx, search.Query{
		Version: cmd.Version,
		Text:    cmd.Query,
		Scope:   cmd.Scope,
		Limit:   cmd.Limit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	printResults(cmd.Out, res)
	return nil
}

func printResults(w io.Writer, res *search.Result) {
	if res.TotalFound == 0 {
		fmt.Fprintln(w, "No verses found")
		return
	}
	fmt.Fprintf(w, "Found %d verses", res.TotalFound)
	if len(res.Verses) < res.TotalFound {
		fmt.Fprintf(w, ", showing %d", len(res.Verses))
	}
	fmt.Fprintln(w)
	for _, v := range res.Verses {
		fmt.Fprintf(w, "\n%s\n  %s\n", bible.FormatReferenceShort(v.Book, v.Chapter, v.Verse.Verse), v.Text)
	}
}
