// CLAUDE:SUMMARY Gob serialization of stopword lists for fast pack loading.
package langpack

import (
	"encoding/gob"
	"fmt"
	"os"
)

// loadGob deserializes a word list from a gob-encoded file.
func loadGob(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gob file: %w", err)
	}
	defer f.Close()

	var words []string
	if err := gob.NewDecoder(f).Decode(&words); err != nil {
		return nil, fmt.Errorf("decode gob: %w", err)
	}
	return words, nil
}

// SaveGob serializes a word list to a gob-encoded file at path.
// The importer uses this to build pack data files.
func SaveGob(words []string, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gob file: %w", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(words); err != nil {
		return fmt.Errorf("encode gob: %w", err)
	}
	return nil
}
