package textio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("hello world\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "hello world\n" {
		t.Errorf("ReadFile = %q", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("ReadFile on missing path: expected error")
	}
}

func TestReadFileEncoded(t *testing.T) {
	// "café" in ISO-8859-1: é is 0xE9.
	path := filepath.Join(t.TempDir(), "latin1.txt")
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9}, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFileEncoded(path, "iso-8859-1")
	if err != nil {
		t.Fatalf("ReadFileEncoded: %v", err)
	}
	if got != "café" {
		t.Errorf("ReadFileEncoded = %q, want %q", got, "café")
	}
}

func TestReadFileEncodedUnknown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFileEncoded(path, "no-such-encoding"); err == nil {
		t.Fatal("expected error for unknown encoding")
	}
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"a.txt": "first",
		"b.txt": "second",
		"c.md":  "ignored",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	got, err := ReadFiles(filepath.Join(dir, "*.txt"))
	if err != nil {
		t.Fatalf("ReadFiles: %v", err)
	}
	if diff := cmp.Diff([]string{"first", "second"}, got); diff != "" {
		t.Errorf("ReadFiles mismatch (-want +got):\n%s", diff)
	}
}

func TestEachLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var lines []string
	err := EachLine(path, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		t.Fatalf("EachLine: %v", err)
	}
	if diff := cmp.Diff([]string{"one", "two", "three"}, lines); diff != "" {
		t.Errorf("EachLine mismatch (-want +got):\n%s", diff)
	}
}

func TestEachLineStopsOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sentinel := errors.New("stop")
	count := 0
	err := EachLine(path, func(string) error {
		count++
		if count == 2 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("EachLine error = %v, want sentinel", err)
	}
	if count != 2 {
		t.Errorf("fn called %d times, want 2", count)
	}
}
