package ggapp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app", stateFile)

	st := openFileStorageAt(path)
	if _, ok := st.GetString("backend"); ok {
		t.Error("GetString found a value in empty storage")
	}
	st.SetString("backend", "software")
	st.SetString("window.width", "1024")
	if err := st.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	reloaded := openFileStorageAt(path)
	if v, ok := reloaded.GetString("backend"); !ok || v != "software" {
		t.Errorf("GetString(backend) = %q, %v; want %q, true", v, ok, "software")
	}
	if v, ok := reloaded.GetString("window.width"); !ok || v != "1024" {
		t.Errorf("GetString(window.width) = %q, %v; want %q, true", v, ok, "1024")
	}
}

func TestFileStorageFlushNoopWhenClean(t *testing.T) {
	// Points at a directory that does not exist; a clean Flush must not
	// try to create it.
	path := filepath.Join(t.TempDir(), "missing", stateFile)
	st := openFileStorageAt(path)
	if err := st.Flush(); err != nil {
		t.Fatalf("Flush() on clean storage error = %v", err)
	}
	if _, err := os.Stat(filepath.Dir(path)); !os.IsNotExist(err) {
		t.Error("clean Flush created the state directory")
	}
}

func TestFileStorageCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), stateFile)
	if err := os.WriteFile(path, []byte("{not yaml: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	st := openFileStorageAt(path)
	if _, ok := st.GetString("anything"); ok {
		t.Error("GetString found a value after corrupt state file")
	}

	// Fresh state must still be writable over the corrupt file.
	st.SetString("k", "v")
	if err := st.Flush(); err != nil {
		t.Fatalf("Flush() over corrupt file error = %v", err)
	}
	if v, ok := openFileStorageAt(path).GetString("k"); !ok || v != "v" {
		t.Errorf("GetString(k) after rewrite = %q, %v; want %q, true", v, ok, "v")
	}
}

func TestFileStorageOverwriteValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), stateFile)
	st := openFileStorageAt(path)
	st.SetString("k", "first")
	st.SetString("k", "second")
	if err := st.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if v, _ := openFileStorageAt(path).GetString("k"); v != "second" {
		t.Errorf("GetString(k) = %q, want %q", v, "second")
	}
}
