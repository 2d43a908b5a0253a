package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// GeneratedFile represents one output artifact.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "Road.hpp").
	Filename string
	// Content is the file content.
	Content []byte
}

// Writer writes generated files into one output directory. The directory
// is created on first use, at most once per Writer, and is safe to share
// between goroutines.
type Writer struct {
	dir    string
	once   sync.Once
	dirErr error
}

// NewWriter returns a Writer for dir. Nothing is created until Write.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write writes files into the output directory, creating it if absent.
func (w *Writer) Write(files ...GeneratedFile) error {
	w.once.Do(func() {
		if err := os.MkdirAll(w.dir, dirPerm); err != nil {
			w.dirErr = fmt.Errorf("creating output directory: %w", err)
		}
	})

	if w.dirErr != nil {
		return w.dirErr
	}

	for _, file := range files {
		outputPath := filepath.Join(w.dir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
