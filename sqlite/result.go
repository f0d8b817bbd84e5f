package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/Quintaneishon/archtext"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ archtext.ResultService = (*ResultService)(nil)

// ResultService implements archtext.ResultService using SQLite.
// It keeps one row per period.
type ResultService struct {
	db *DB
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

const resultColumns = "id, year, month, url, content, word_count, records, error, content_hash, rules_version, extracted_at"

// SaveResult stores r, replacing the stored result of the same period.
// A replaced row keeps its ID. r.ID, r.ContentHash, and r.RulesVersion are
// set on success.
func (s *ResultService) SaveResult(ctx context.Context, r *archtext.ExtractionResult) error {
	if err := r.Validate(); err != nil {
		return err
	}

	var hash string
	if !r.Failed() {
		hash = hashContent(r.Content)
	}

	var id string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO results (`+resultColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (year, month) DO UPDATE SET
			url = excluded.url,
			content = excluded.content,
			word_count = excluded.word_count,
			records = excluded.records,
			error = excluded.error,
			content_hash = excluded.content_hash,
			rules_version = excluded.rules_version,
			extracted_at = excluded.extracted_at
		RETURNING id
	`, uuid.New().String(), r.Period.Year, r.Period.Month, r.URL, r.Content, r.WordCount, r.Records,
		r.Error, hash, archtext.RuleSetVersion, r.ExtractedAt.UTC().Format(timeFormat)).Scan(&id)
	if err != nil {
		return err
	}

	r.ID = id
	r.ContentHash = hash
	r.RulesVersion = archtext.RuleSetVersion
	return nil
}

// FindResultByPeriod retrieves the stored result of a period.
func (s *ResultService) FindResultByPeriod(ctx context.Context, period archtext.Period) (*archtext.ExtractionResult, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+resultColumns+`
		FROM results
		WHERE year = ? AND month = ?
	`, period.Year, period.Month)

	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, archtext.Errorf(archtext.ENOTFOUND, "no result for %s", period)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FindResults retrieves results matching the filter, ordered by period.
func (s *ResultService) FindResults(ctx context.Context, filter archtext.ResultFilter) ([]*archtext.ExtractionResult, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + resultColumns + " FROM results WHERE 1=1")

	if filter.Year != nil {
		query.WriteString(" AND year = ?")
		args = append(args, *filter.Year)
	}
	if filter.Failed != nil {
		if *filter.Failed {
			query.WriteString(" AND error != ''")
		} else {
			query.WriteString(" AND error = ''")
		}
	}

	query.WriteString(" ORDER BY year ASC, month ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*archtext.ExtractionResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return results, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (*archtext.ExtractionResult, error) {
	var r archtext.ExtractionResult
	var extractedAt string

	if err := row.Scan(&r.ID, &r.Period.Year, &r.Period.Month, &r.URL, &r.Content, &r.WordCount,
		&r.Records, &r.Error, &r.ContentHash, &r.RulesVersion, &extractedAt); err != nil {
		return nil, err
	}

	var err error
	r.ExtractedAt, err = parseTime(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}
	return &r, nil
}
