// CLAUDE:SUMMARY Import adapters for stopwords-iso language lists (one word per line, UTF-8).
package importer

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hazyhaar/wordmill/pkg/langpack"
)

func init() {
	Register(newStopwordsISOAdapter("en", "English"))
	Register(newStopwordsISOAdapter("nl", "Dutch"))
	Register(newStopwordsISOAdapter("de", "German"))
	Register(newStopwordsISOAdapter("fr", "French"))
}

// stopwordsISOAdapter imports one language list from the stopwords-iso
// collection. The file format is one word per line, UTF-8.
type stopwordsISOAdapter struct {
	lang string
	name string
}

func newStopwordsISOAdapter(lang, name string) *stopwordsISOAdapter {
	return &stopwordsISOAdapter{lang: lang, name: name}
}

func (a *stopwordsISOAdapter) ID() string       { return "stopwords-iso-" + a.lang }
func (a *stopwordsISOAdapter) PackID() string   { return a.lang + "-stopwords-iso" }
func (a *stopwordsISOAdapter) Language() string { return a.lang }
func (a *stopwordsISOAdapter) Description() string {
	return fmt.Sprintf("stopwords-iso %s list", a.name)
}
func (a *stopwordsISOAdapter) DefaultURL() string {
	return fmt.Sprintf("https://raw.githubusercontent.com/stopwords-iso/stopwords-%s/master/stopwords-%s.txt", a.lang, a.lang)
}
func (a *stopwordsISOAdapter) License() string { return "MIT" }

func (a *stopwordsISOAdapter) Import(ctx context.Context, sourceURL, outputDir string) error {
	dlDir := filepath.Join(outputDir, "_download")
	if err := ensureDir(dlDir); err != nil {
		return err
	}
	defer os.RemoveAll(dlDir)

	listPath := filepath.Join(dlDir, "stopwords-"+a.lang+".txt")
	fmt.Printf("  downloading %s...\n", sourceURL)
	if err := downloadFile(ctx, sourceURL, listPath); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	words, err := parseWordList(listPath)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(words) == 0 {
		return fmt.Errorf("source %s produced an empty word list", sourceURL)
	}
	fmt.Printf("  %d %s stopwords\n", len(words), a.name)

	packDir := filepath.Join(outputDir, a.PackID())
	if err := ensureDir(packDir); err != nil {
		return err
	}

	if err := langpack.SaveGob(words, filepath.Join(packDir, "data.gob")); err != nil {
		return fmt.Errorf("save gob: %w", err)
	}

	return writeManifest(packDir, &langpack.Manifest{
		ID:        a.PackID(),
		Language:  a.lang,
		Version:   time.Now().Format("2006-01"),
		Source:    "stopwords-iso",
		SourceURL: sourceURL,
		License:   a.License(),
		DataFile:  "data.gob",
		Format:    langpack.FormatSpec{Normalize: "lowercase_utf8"},
	})
}

// parseWordList reads a one-word-per-line list, dropping blanks,
// comments and duplicates while preserving first-seen order.
func parseWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	seen := make(map[string]struct{})
	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		w = strings.ToLower(w)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words, scanner.Err()
}
