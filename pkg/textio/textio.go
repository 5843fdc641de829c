// Package textio reads document text for the pipeline. It owns encoding
// normalization: whatever the on-disk encoding, the core only ever sees
// UTF-8 text.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// ReadFile returns the full text of one file as UTF-8.
func ReadFile(path string) (string, error) {
	return ReadFileEncoded(path, "")
}

// ReadFileEncoded returns the full text of one file, transcoding from
// the named encoding (any name the WHATWG encoding index knows) when it
// is not UTF-8.
func ReadFileEncoded(path, encoding string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r, err := decode(f, encoding)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// ReadFiles returns the text of every file matching the glob pattern,
// one document per file, in glob order.
func ReadFiles(pattern string) ([]string, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	docs := make([]string, 0, len(paths))
	for _, p := range paths {
		doc, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// EachLine streams a file line by line through fn, stopping at the
// first error fn returns. Useful for processing files too large to
// hold as one document.
func EachLine(path string, fn func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

func decode(r io.Reader, encoding string) (io.Reader, error) {
	e := strings.ToLower(strings.ReplaceAll(encoding, "-", ""))
	if e == "" || e == "utf8" {
		return r, nil
	}
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
