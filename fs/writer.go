// Package fs provides file-based storage for extracted text.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Quintaneishon/archtext"
)

// ResultPath returns the file name of a period's text, e.g. 3_2020.txt.
func ResultPath(p archtext.Period) string {
	return fmt.Sprintf("%d_%d.txt", p.Month, p.Year)
}

// FormatResult returns the file body of a result: its content, or a single
// "Error: <message>" line for the error variant.
func FormatResult(r *archtext.ExtractionResult) string {
	if r.Failed() {
		return "Error: " + r.Error + "\n"
	}
	return r.Content
}

// Ensure ResultWriter implements archtext.ResultStore at compile time.
var _ archtext.ResultStore = (*ResultWriter)(nil)

// ResultWriter writes one text file per period to a directory.
type ResultWriter struct {
	baseDir string
}

// NewResultWriter creates a new ResultWriter that writes to baseDir.
func NewResultWriter(baseDir string) *ResultWriter {
	return &ResultWriter{baseDir: baseDir}
}

// SaveResult writes the result's file, replacing any earlier one. Readers
// never observe a partially written file.
func (w *ResultWriter) SaveResult(ctx context.Context, r *archtext.ExtractionResult) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(w.baseDir, ResultPath(r.Period)), []byte(FormatResult(r)))
}

// writeFileAtomic writes data to a temporary file beside path and renames
// it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // No-op after a successful rename.

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
