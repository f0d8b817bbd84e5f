package archtext

import (
	"fmt"
	"strings"
)

// Record block markers.
const (
	RecordMarker    = "=== ARTÍCULO"
	ContentMarker   = "--- CONTENIDO ---"
	RecordSeparator = "================================================================================"
)

// FormatRecord renders a record as a delimited text block. Author, date,
// and categories lines are only written when the field was found.
func FormatRecord(r *ArticleRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d: %s ===\n", RecordMarker, r.Index, r.Title)
	if r.Author != "" {
		b.WriteString("Autor: " + r.Author + "\n")
	}
	if r.Date != "" {
		b.WriteString("Fecha: " + r.Date + "\n")
	}
	if r.Categories != "" {
		b.WriteString("Categorías: " + r.Categories + "\n")
	}
	b.WriteString("\n" + ContentMarker + "\n")
	b.WriteString(r.Content)
	b.WriteString("\n" + RecordSeparator)
	return b.String()
}

// FormatRecords renders records as blocks separated by blank lines.
// Returns an empty string when there are no records.
func FormatRecords(records []*ArticleRecord) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, FormatRecord(r))
	}

	return strings.Join(parts, "\n\n")
}

// CountRecords returns the number of record blocks in formatted text.
func CountRecords(text string) int {
	return strings.Count(text, RecordMarker+" ")
}
