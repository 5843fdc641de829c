package langpack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Registry holds all loaded language packs, keyed by language code.
// Lookups take a read lock so packs can be hot reloaded while serving.
type Registry struct {
	mu       sync.RWMutex
	packs    map[string]*Pack
	packsDir string
}

// NewRegistry creates an empty registry for the given packs directory.
// Built-in languages are always available, even before Load.
func NewRegistry(packsDir string) *Registry {
	r := &Registry{
		packs:    make(map[string]*Pack),
		packsDir: packsDir,
	}
	for _, lang := range []string{"en", "nl"} {
		p, _ := Builtin(lang)
		r.packs[lang] = p
	}
	return r
}

// Load scans the packs directory and loads every pack, replacing the
// registry contents. A loaded pack for a built-in language shadows the
// built-in set. A missing packs directory is not an error: the
// built-ins simply remain.
func (r *Registry) Load() error {
	newPacks := make(map[string]*Pack)
	for _, lang := range []string{"en", "nl"} {
		p, _ := Builtin(lang)
		newPacks[lang] = p
	}

	entries, err := os.ReadDir(r.packsDir)
	if err != nil {
		if os.IsNotExist(err) {
			r.swap(newPacks)
			return nil
		}
		return fmt.Errorf("read packs dir %s: %w", r.packsDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(r.packsDir, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, "manifest.yaml")); err != nil {
			continue
		}
		p, err := LoadPack(dir)
		if err != nil {
			return fmt.Errorf("load pack %s: %w", entry.Name(), err)
		}
		newPacks[p.Manifest.Language] = p
	}

	r.swap(newPacks)
	return nil
}

// Reload reloads all packs from disk (hot reload).
func (r *Registry) Reload() error {
	return r.Load()
}

func (r *Registry) swap(packs map[string]*Pack) {
	r.mu.Lock()
	r.packs = packs
	r.mu.Unlock()
}

// Get returns the pack for a language code.
func (r *Registry) Get(language string) (*Pack, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.packs[language]
	if !ok {
		return nil, fmt.Errorf("unknown language %q", language)
	}
	return p, nil
}

// PackInfo is the public metadata for a loaded pack.
type PackInfo struct {
	ID       string `json:"id"`
	Language string `json:"language"`
	Version  string `json:"version,omitempty"`
	Source   string `json:"source"`
	License  string `json:"license,omitempty"`
	Words    int    `json:"words"`
}

// ListPacks returns metadata for all loaded packs, sorted by language.
func (r *Registry) ListPacks() []PackInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]PackInfo, 0, len(r.packs))
	for _, p := range r.packs {
		infos = append(infos, PackInfo{
			ID:       p.Manifest.ID,
			Language: p.Manifest.Language,
			Version:  p.Manifest.Version,
			Source:   p.Manifest.Source,
			License:  p.Manifest.License,
			Words:    p.Stopwords.Len(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Language < infos[j].Language })
	return infos
}

// PackCount returns the number of loaded packs.
func (r *Registry) PackCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.packs)
}

// TotalWords returns the total stopword count across all packs.
func (r *Registry) TotalWords() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, p := range r.packs {
		total += p.Stopwords.Len()
	}
	return total
}
