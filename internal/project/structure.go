// Package project defines the rendered project structure and the writer
// that materializes it on disk.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Sentinel errors for structure validation and writing.
var (
	// ErrEmptyStructure indicates a structure with no entries.
	ErrEmptyStructure = errors.New("project: structure has no entries")

	// ErrDuplicatePath indicates two entries claiming the same path.
	ErrDuplicatePath = errors.New("project: duplicate path in structure")

	// ErrAbsolutePath indicates an entry with an absolute path.
	ErrAbsolutePath = errors.New("project: absolute path in structure")

	// ErrEmptyPath indicates an entry with an empty path.
	ErrEmptyPath = errors.New("project: entry with empty path")

	// ErrRootExists indicates the output root already exists and is not
	// empty.
	ErrRootExists = errors.New("project: output directory already exists and is not empty")
)

// Entry is one node of a rendered structure, either a FileEntry or a
// DirEntry. Paths are relative to the structure root.
type Entry interface {
	EntryPath() string
}

// FileEntry is a rendered file with final content.
type FileEntry struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

// EntryPath implements Entry.
func (f FileEntry) EntryPath() string { return f.Path }

// DirEntry is a directory to create.
type DirEntry struct {
	Path string
	Mode fs.FileMode
}

// EntryPath implements Entry.
func (d DirEntry) EntryPath() string { return d.Path }

// Structure is a fully rendered project layout, ready to write. Entries are
// ordered; parents come before children.
type Structure struct {
	Root    string
	Entries []Entry
}

// Validate checks the structure is writable: at least one entry, no
// duplicate paths, no absolute paths.
func (s Structure) Validate() error {
	if len(s.Entries) == 0 {
		return ErrEmptyStructure
	}
	seen := make(map[string]struct{}, len(s.Entries))
	for _, e := range s.Entries {
		p := e.EntryPath()
		if p == "" {
			return ErrEmptyPath
		}
		if path.IsAbs(p) {
			return fmt.Errorf("%w: %q", ErrAbsolutePath, p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicatePath, p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Files returns the file entries in order.
func (s Structure) Files() []FileEntry {
	var out []FileEntry
	for _, e := range s.Entries {
		if f, ok := e.(FileEntry); ok {
			out = append(out, f)
		}
	}
	return out
}

// Dirs returns the directory entries in order.
func (s Structure) Dirs() []DirEntry {
	var out []DirEntry
	for _, e := range s.Entries {
		if d, ok := e.(DirEntry); ok {
			out = append(out, d)
		}
	}
	return out
}
