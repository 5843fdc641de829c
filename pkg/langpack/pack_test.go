package langpack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writePack(t *testing.T, dir, manifest string, files map[string][]byte) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadPackText(t *testing.T) {
	dir := writePack(t, filepath.Join(t.TempDir(), "nl-test"), `
id: nl-test
language: nl
source: test fixture
`, map[string][]byte{
		"stopwords.txt": []byte("de\nhet\n# comment\n\nEen\n"),
	})

	p, err := LoadPack(dir)
	if err != nil {
		t.Fatalf("LoadPack: %v", err)
	}
	if p.Manifest.Language != "nl" {
		t.Errorf("Language = %q, want nl", p.Manifest.Language)
	}
	if p.Stopwords.Len() != 3 {
		t.Errorf("Stopwords.Len = %d, want 3", p.Stopwords.Len())
	}
	if !p.Stopwords.Contains("een") {
		t.Error("entry \"Een\" was not lowercased into the set")
	}
}

func TestLoadPackGobPriority(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "en-test")
	writePack(t, dir, `
id: en-test
language: en
source: test fixture
`, map[string][]byte{
		"stopwords.txt": []byte("fromtext\n"),
	})
	if err := SaveGob([]string{"fromgob"}, filepath.Join(dir, "data.gob")); err != nil {
		t.Fatalf("SaveGob: %v", err)
	}

	p, err := LoadPack(dir)
	if err != nil {
		t.Fatalf("LoadPack: %v", err)
	}
	if !p.Stopwords.Contains("fromgob") || p.Stopwords.Contains("fromtext") {
		t.Errorf("gob data did not take priority: %v", p.Stopwords.Words())
	}
}

func TestLoadPackEncoding(t *testing.T) {
	// ISO-8859-1 bytes: "één" as 0xE9 for é.
	latin1 := []byte{0xE9, 0xE9, 'n', '\n'}
	dir := writePack(t, filepath.Join(t.TempDir(), "nl-latin1"), `
id: nl-latin1
language: nl
source: test fixture
format:
  encoding: iso-8859-1
  normalize: lowercase_utf8
`, map[string][]byte{
		"stopwords.txt": latin1,
	})

	p, err := LoadPack(dir)
	if err != nil {
		t.Fatalf("LoadPack: %v", err)
	}
	if !p.Stopwords.Contains("één") {
		t.Errorf("latin-1 entry not transcoded: %v", p.Stopwords.Words())
	}
}

func TestLoadPackAccentStripDefault(t *testing.T) {
	dir := writePack(t, filepath.Join(t.TempDir(), "fr-test"), `
id: fr-test
language: fr
source: test fixture
`, map[string][]byte{
		"stopwords.txt": []byte("été\nà\n"),
	})

	p, err := LoadPack(dir)
	if err != nil {
		t.Fatalf("LoadPack: %v", err)
	}
	// Default normalize mode strips accents.
	if !p.Stopwords.Contains("ete") || !p.Stopwords.Contains("a") {
		t.Errorf("accents not stripped under default mode: %v", p.Stopwords.Words())
	}
}

func TestLoadPackMissingManifestFields(t *testing.T) {
	dir := writePack(t, filepath.Join(t.TempDir(), "bad"), `
id: bad
`, map[string][]byte{"stopwords.txt": []byte("x\n")})

	if _, err := LoadPack(dir); err == nil {
		t.Fatal("LoadPack without language: expected error")
	}
}

func TestBuiltin(t *testing.T) {
	p, err := Builtin("en")
	if err != nil {
		t.Fatalf("Builtin(en): %v", err)
	}
	if !p.Stopwords.Contains("the") {
		t.Error("built-in English pack missing \"the\"")
	}
	if _, err := Builtin("xx"); err == nil {
		t.Error("Builtin(xx): expected error")
	}
}

func TestPackPipeline(t *testing.T) {
	p, err := Builtin("nl")
	if err != nil {
		t.Fatal(err)
	}
	got := p.Pipeline().Tokens("De kat zat op het dak")
	// "de", "op" and "het" are Dutch stopwords.
	want := []string{"kat", "zat", "dak"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Pipeline tokens mismatch (-want +got):\n%s", diff)
	}
}
