package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// timeFormat is the layout of timestamp columns.
const timeFormat = time.RFC3339Nano

// parseTime parses a timestamp column, naming the column on failure.
func parseTime(value, column string) (time.Time, error) {
	t, err := time.Parse(timeFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", column, value, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses for positive values.
// SQLite only accepts OFFSET after a LIMIT, so an offset alone gets an
// unbounded LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	switch {
	case limit > 0:
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	case offset > 0:
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
