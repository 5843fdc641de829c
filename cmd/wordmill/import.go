// CLAUDE:SUMMARY CLI subcommand that downloads and builds stopword packs from public word lists via import adapters.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/hazyhaar/wordmill/pkg/importer"
)

func cmdImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	source := fs.String("source", "", "adapter ID to import (e.g. stopwords-iso-nl)")
	all := fs.Bool("all", false, "import all available sources")
	check := fs.Bool("check", false, "check source availability instead of importing")
	outputDir := fs.String("output-dir", "packs", "output directory for language packs")
	fs.Parse(args)

	// Open source DB and seed defaults.
	sourcesDBPath := filepath.Join(*outputDir, "sources.db")
	sdb, err := importer.OpenSourceDB(sourcesDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sources.db: %v\n", err)
		os.Exit(1)
	}
	defer sdb.Close()

	if err := sdb.Seed(importer.All()); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding sources: %v\n", err)
		os.Exit(1)
	}

	if *check {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
		checker := importer.NewChecker(sdb, logger, time.Hour)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		sum := checker.CheckAll(ctx)
		sources, _ := sdb.ListSources()
		for _, src := range sources {
			status := "?"
			if src.LastStatus != nil {
				status = fmt.Sprintf("%d", *src.LastStatus)
			}
			fmt.Printf("  %-20s  [%s]  %s\n", src.AdapterID, status, src.SourceURL)
		}
		if sum.Failed > 0 {
			os.Exit(1)
		}
		return
	}

	if !*all && *source == "" {
		fmt.Println("Available sources:")
		fmt.Println()
		sources, _ := sdb.ListSources()
		for _, src := range sources {
			status := ""
			if src.LastStatus != nil {
				status = fmt.Sprintf("  [%d]", *src.LastStatus)
			}
			fmt.Printf("  %-20s  %s  (-> %s)%s\n", src.AdapterID, src.Description, src.PackID, status)
		}
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  wordmill import --source <id> [--output-dir <dir>]")
		fmt.Println("  wordmill import --all [--output-dir <dir>]")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	if *all {
		for _, a := range importer.All() {
			url, err := sdb.GetURL(a.ID())
			if err != nil {
				fmt.Fprintf(os.Stderr, "[%s] ERROR (URL): %v\n", a.ID(), err)
				continue
			}
			fmt.Printf("[%s] Importing...\n", a.ID())
			if err := a.Import(ctx, url, *outputDir); err != nil {
				fmt.Fprintf(os.Stderr, "[%s] ERROR: %v\n", a.ID(), err)
				continue
			}
			fmt.Printf("[%s] OK\n", a.ID())
		}
		return
	}

	a, err := importer.Get(*source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Println("\nAvailable sources:")
		for _, a := range importer.All() {
			fmt.Printf("  %s\n", a.ID())
		}
		os.Exit(1)
	}

	url, err := sdb.GetURL(a.ID())
	if err != nil {
		fmt.Fprintf(os.Stderr, "[%s] ERROR (URL): %v\n", a.ID(), err)
		os.Exit(1)
	}

	fmt.Printf("[%s] Importing...\n", a.ID())
	if err := a.Import(ctx, url, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "[%s] ERROR: %v\n", a.ID(), err)
		os.Exit(1)
	}
	fmt.Printf("[%s] OK -> %s/%s/\n", a.ID(), *outputDir, a.PackID())
}
