package project

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Writer materializes a validated structure under its root.
type Writer interface {
	// Write creates the root and every entry beneath it. Parent
	// directories of files are created as needed.
	Write(s Structure) error
}

// fsWriter writes to the local filesystem.
type fsWriter struct {
	force  bool
	logger *slog.Logger
}

// WriterOption configures a Writer.
type WriterOption func(*fsWriter)

// WithForce allows writing into an existing non-empty root.
func WithForce(force bool) WriterOption {
	return func(w *fsWriter) { w.force = force }
}

// WithLogger sets the writer's logger.
func WithLogger(logger *slog.Logger) WriterOption {
	return func(w *fsWriter) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewFSWriter creates a filesystem Writer.
func NewFSWriter(opts ...WriterOption) Writer {
	w := &fsWriter{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write validates the structure, then creates directories and files in
// entry order.
func (w *fsWriter) Write(s Structure) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := w.ensureRoot(s.Root); err != nil {
		return err
	}

	for _, e := range s.Entries {
		switch entry := e.(type) {
		case DirEntry:
			mode := entry.Mode
			if mode == 0 {
				mode = 0o755
			}
			target := filepath.Join(s.Root, filepath.FromSlash(entry.Path))
			if err := os.MkdirAll(target, mode); err != nil {
				return fmt.Errorf("create directory %q: %w", entry.Path, err)
			}
			w.logger.Debug("created directory", "path", entry.Path)
		case FileEntry:
			mode := entry.Mode
			if mode == 0 {
				mode = 0o644
			}
			target := filepath.Join(s.Root, filepath.FromSlash(entry.Path))
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf("create parent of %q: %w", entry.Path, err)
			}
			if err := os.WriteFile(target, entry.Content, mode); err != nil {
				return fmt.Errorf("write file %q: %w", entry.Path, err)
			}
			w.logger.Debug("wrote file", "path", entry.Path, "bytes", len(entry.Content))
		}
	}
	return nil
}

// ensureRoot creates the root directory. An existing non-empty root is an
// error unless force is set.
func (w *fsWriter) ensureRoot(root string) error {
	entries, err := os.ReadDir(root)
	switch {
	case os.IsNotExist(err):
		return os.MkdirAll(root, 0o755)
	case err != nil:
		return fmt.Errorf("inspect output directory %q: %w", root, err)
	case len(entries) > 0 && !w.force:
		return fmt.Errorf("%w: %q", ErrRootExists, root)
	}
	return nil
}
