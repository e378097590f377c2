package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/mybible/internal/cli"
	"github.com/mrlokans/mybible/internal/config"
	"github.com/mrlokans/mybible/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "read":
		cmd = cli.NewReadCommand()
	case "search":
		cmd = cli.NewSearchCommand()
	case "prefetch":
		cmd = cli.NewPrefetchCommand()
	case "export":
		cmd = cli.NewExportCommand()
	case "export-notes":
		cmd = cli.NewExportNotesCommand()
	case "import":
		cmd = cli.NewImportCommand()

	case "version", "--version":
		fmt.Printf("mybible %s (%s)\n", Version, Commit)
		return

	case "-h", "--help", "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve          Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  read           Print a chapter or verse, e.g. read \"요 3:16\"\n")
	fmt.Fprintf(os.Stderr, "  search         Search downloaded verses by keyword\n")
	fmt.Fprintf(os.Stderr, "  prefetch       Download whole versions for offline use\n")
	fmt.Fprintf(os.Stderr, "  export         Write a JSON backup of notes, highlights and progress\n")
	fmt.Fprintf(os.Stderr, "  export-notes   Export notes and highlights as Obsidian markdown\n")
	fmt.Fprintf(os.Stderr, "  import         Restore a JSON backup\n")
	fmt.Fprintf(os.Stderr, "  version        Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
