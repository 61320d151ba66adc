package project

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteCreatesTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "app")
	s := Structure{
		Root: root,
		Entries: []Entry{
			DirEntry{Path: "src"},
			FileEntry{Path: "src/main.rs", Content: []byte("fn main() {}\n"), Mode: 0o644},
			FileEntry{Path: "run.sh", Content: []byte("#!/bin/sh\n"), Mode: 0o755},
		},
	}

	if err := NewFSWriter().Write(s); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "src", "main.rs"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "fn main() {}\n" {
		t.Errorf("content = %q", data)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Join(root, "run.sh"))
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode()&0o111 == 0 {
			t.Errorf("run.sh mode = %v, want executable bit", info.Mode())
		}
	}
}

func TestWriteCreatesParentDirsForFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "app")
	s := Structure{
		Root: root,
		Entries: []Entry{
			// No DirEntry for the parent on purpose.
			FileEntry{Path: "deep/nested/file.txt", Content: []byte("x")},
		},
	}
	if err := NewFSWriter().Write(s); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "deep", "nested", "file.txt")); err != nil {
		t.Errorf("file missing: %v", err)
	}
}

func TestWriteRefusesNonEmptyRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "existing.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := Structure{
		Root:    root,
		Entries: []Entry{FileEntry{Path: "a.txt", Content: []byte("x")}},
	}

	if err := NewFSWriter().Write(s); !errors.Is(err, ErrRootExists) {
		t.Errorf("Write = %v, want ErrRootExists", err)
	}
	if err := NewFSWriter(WithForce(true)).Write(s); err != nil {
		t.Errorf("forced Write: %v", err)
	}
}

func TestWriteValidatesFirst(t *testing.T) {
	s := Structure{Root: t.TempDir()}
	if err := NewFSWriter().Write(s); !errors.Is(err, ErrEmptyStructure) {
		t.Errorf("Write = %v, want ErrEmptyStructure", err)
	}
}
