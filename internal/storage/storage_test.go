package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s := NewLocalStorage(dir)

	path, err := s.Save("catalog.xml", []byte("<feed/>"))
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "catalog.xml") {
		t.Errorf(`Unexpected path %q`, path)
	}

	data, err := s.Load("catalog.xml")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<feed/>" {
		t.Errorf(`Unexpected content %q`, data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf(`Temporary files were left behind: %v`, entries)
	}
}

func TestSaveStaysInDirectory(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)

	path, err := s.Save("../../escape.html", []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "escape.html") {
		t.Errorf(`File escaped the storage directory: %q`, path)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	if _, err := s.Load("missing.xml"); err == nil {
		t.Error(`Expected an error for a missing file`)
	}
}
