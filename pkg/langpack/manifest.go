// CLAUDE:SUMMARY Manifest YAML schema describing a language pack: language code, data source and stopword file format.
package langpack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest describes a language pack: where its stopword list came from
// and how to read it.
type Manifest struct {
	ID        string     `yaml:"id" json:"id"`
	Language  string     `yaml:"language" json:"language"`
	Version   string     `yaml:"version" json:"version"`
	Source    string     `yaml:"source" json:"source"`
	SourceURL string     `yaml:"source_url" json:"source_url,omitempty"`
	License   string     `yaml:"license" json:"license"`
	DataFile  string     `yaml:"data_file" json:"data_file"`
	Format    FormatSpec `yaml:"format" json:"-"`
}

// FormatSpec describes the stopword file layout.
type FormatSpec struct {
	// Encoding names the text encoding of the data file when it is not
	// UTF-8 (any name the WHATWG encoding index knows).
	Encoding string `yaml:"encoding"`
	// Normalize selects the entry normalizer: lowercase_ascii (default),
	// lowercase_utf8 or none.
	Normalize string `yaml:"normalize"`
}

// LoadManifest reads and parses a manifest.yaml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if m.ID == "" {
		return nil, fmt.Errorf("manifest %s: missing id", path)
	}
	if m.Language == "" {
		return nil, fmt.Errorf("manifest %s: missing language", path)
	}
	if m.DataFile == "" {
		m.DataFile = "stopwords.txt"
	}
	return &m, nil
}
