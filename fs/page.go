package fs

import (
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/Quintaneishon/archtext"
)

// URLToPath converts an article URL to a relative file path.
// Example: https://unamglobal.unam.mx/2020/04/la-unam/ → 2020/04/la-unam.txt
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", archtext.Errorf(archtext.EINVALID, "invalid url %q", rawURL)
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return "index.txt", nil
	}
	return path + ".txt", nil
}

// FormatPage formats a page with a header block naming its source.
func FormatPage(page *archtext.Page, at time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(page.URL)
	b.WriteString("\ntitle: ")
	b.WriteString(page.Title)
	b.WriteString("\nauthor: ")
	b.WriteString(page.Author)
	b.WriteString("\nextracted: ")
	b.WriteString(at.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(page.Content)
	b.WriteString("\n")
	return b.String()
}

// PageWriter writes single article pages below a directory, mirroring the
// URL path.
type PageWriter struct {
	baseDir string
	now     func() time.Time
}

// NewPageWriter creates a new PageWriter that writes to baseDir.
func NewPageWriter(baseDir string) *PageWriter {
	return &PageWriter{baseDir: baseDir, now: time.Now}
}

// SavePage writes page to disk and returns the path written.
func (w *PageWriter) SavePage(page *archtext.Page) (string, error) {
	relPath, err := URLToPath(page.URL)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, filepath.FromSlash(relPath))
	if err := writeFileAtomic(fullPath, []byte(FormatPage(page, w.now()))); err != nil {
		return "", err
	}
	return fullPath, nil
}
