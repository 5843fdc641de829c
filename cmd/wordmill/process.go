// CLAUDE:SUMMARY CLI subcommand that streams text files through a filter pipeline, one output line per input line.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hazyhaar/wordmill/pkg/filters"
	"github.com/hazyhaar/wordmill/pkg/langpack"
	"github.com/hazyhaar/wordmill/pkg/textio"
)

func cmdProcess(args []string) {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	filterNames := fs.String("filters", "", "comma-separated filter names (default: full pipeline)")
	lang := fs.String("lang", "en", "language code selecting the stopword pack")
	packsDir := fs.String("packs-dir", "packs", "directory with language packs")
	fs.Parse(args)

	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: wordmill process [--filters <names>] [--lang <code>] <file|glob>...")
		os.Exit(1)
	}

	pipeline, err := resolvePipeline(*filterNames, *lang, *packsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, arg := range fs.Args() {
		paths, err := expandArg(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for _, path := range paths {
			err := textio.EachLine(path, func(line string) error {
				fmt.Println(strings.Join(pipeline.Tokens(line), " "))
				return nil
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
				os.Exit(1)
			}
		}
	}
}

// resolvePipeline builds the pipeline for the process command. An
// explicit --filters list wins; otherwise the language pack's default
// pipeline is used.
func resolvePipeline(filterNames, lang, packsDir string) (*filters.Pipeline, error) {
	if filterNames != "" {
		var names []string
		for _, n := range strings.Split(filterNames, ",") {
			names = append(names, strings.TrimSpace(n))
		}
		return filters.FromNames(names)
	}

	reg := langpack.NewRegistry(packsDir)
	if err := reg.Load(); err != nil {
		return nil, err
	}
	pack, err := reg.Get(lang)
	if err != nil {
		return nil, err
	}
	return pack.Pipeline(), nil
}

// expandArg treats an argument containing glob metacharacters as a
// pattern, anything else as a literal path. A pattern matching nothing
// is an error so typos don't silently process zero files.
func expandArg(arg string) ([]string, error) {
	if !strings.ContainsAny(arg, "*?[") {
		return []string{arg}, nil
	}
	paths, err := filepath.Glob(arg)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files match %q", arg)
	}
	return paths, nil
}
