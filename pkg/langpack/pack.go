package langpack

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/hazyhaar/wordmill/pkg/filters"
	"github.com/hazyhaar/wordmill/pkg/stopwords"
)

// Pack is one loaded language pack: its manifest plus the stopword set
// built from the pack data. Packs are immutable after load.
type Pack struct {
	Manifest  *Manifest
	Stopwords stopwords.Set
}

// LoadPack reads a manifest.yaml and loads stopword data from gob or
// plain text. Gob takes priority when both are present.
func LoadPack(dir string) (*Pack, error) {
	manifest, err := LoadManifest(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		return nil, err
	}

	normalize := normalizerFor(manifest.Format.Normalize)

	gobPath := filepath.Join(dir, "data.gob")
	if _, err := os.Stat(gobPath); err == nil {
		words, err := loadGob(gobPath)
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", manifest.ID, err)
		}
		return &Pack{Manifest: manifest, Stopwords: buildSet(words, normalize)}, nil
	}

	words, err := loadText(filepath.Join(dir, manifest.DataFile), manifest.Format.Encoding)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", manifest.ID, err)
	}
	return &Pack{Manifest: manifest, Stopwords: buildSet(words, normalize)}, nil
}

// Builtin returns an in-memory pack for a compiled-in language, so the
// pipeline works with no packs directory at all.
func Builtin(language string) (*Pack, error) {
	set, ok := stopwords.ForLanguage(language)
	if !ok {
		return nil, fmt.Errorf("no built-in stopwords for language %q", language)
	}
	return &Pack{
		Manifest: &Manifest{
			ID:       language + "-builtin",
			Language: language,
			Source:   "built-in",
		},
		Stopwords: set,
	}, nil
}

// Pipeline returns the default filter chain with stopword removal bound
// to this pack's set.
func (p *Pack) Pipeline() *filters.Pipeline {
	pl, err := filters.New(
		filters.Lowercase,
		filters.StripTags,
		filters.StripPunctuation,
		filters.StripMultipleWhitespaces,
		filters.StripNumeric,
		filters.RemoveStopwordsFrom(p.Stopwords),
		filters.StripShort,
		filters.StemText,
	)
	if err != nil {
		// The chain above contains no nil filter.
		panic(err)
	}
	return pl
}

// loadText reads a newline-separated word list, transcoding to UTF-8
// first when the manifest declares another encoding.
func loadText(path, encoding string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if encoding != "" && !isUTF8(encoding) {
		e, err := htmlindex.Get(encoding)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", encoding, err)
		}
		reader = transform.NewReader(f, e.NewDecoder())
	}

	var words []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	return words, nil
}

func buildSet(words []string, normalize Normalizer) stopwords.Set {
	for i, w := range words {
		words[i] = normalize(w)
	}
	return stopwords.NewSet(words)
}

func isUTF8(enc string) bool {
	e := strings.ToLower(strings.ReplaceAll(enc, "-", ""))
	return e == "utf8" || e == ""
}
