package archtext

import (
	"context"
	"encoding/json"
	"time"
)

// ExtractionResult is the outcome of extracting one period. It holds either
// content or an error, never both. Build it with NewContentResult or
// NewErrorResult.
type ExtractionResult struct {
	Period      Period
	URL         string
	Content     string
	WordCount   int
	Records     int
	Error       string
	ExtractedAt time.Time

	// Set by a ResultService when the result is stored.
	ID           string
	ContentHash  string
	RulesVersion string
}

// NewContentResult returns the content variant. WordCount and Records are
// derived from the content.
func NewContentResult(period Period, url, content string, at time.Time) *ExtractionResult {
	return &ExtractionResult{
		Period:      period,
		URL:         url,
		Content:     content,
		WordCount:   CountWords(content),
		Records:     CountRecords(content),
		ExtractedAt: at,
	}
}

// NewErrorResult returns the error variant carrying err's description.
// Application errors contribute their message without the code.
func NewErrorResult(period Period, url string, err error, at time.Time) *ExtractionResult {
	msg := ErrorMessage(err)
	if msg == "" {
		msg = "unknown error"
	}
	return &ExtractionResult{
		Period:      period,
		URL:         url,
		Error:       msg,
		ExtractedAt: at,
	}
}

// Failed reports whether r is the error variant.
func (r *ExtractionResult) Failed() bool {
	return r.Error != ""
}

type contentResultJSON struct {
	Period         Period    `json:"period"`
	URL            string    `json:"url"`
	Content        string    `json:"content"`
	WordCount      int       `json:"word_count"`
	Records        int       `json:"records"`
	ExtractionDate time.Time `json:"extraction_date"`
}

type errorResultJSON struct {
	Period         Period    `json:"period"`
	URL            string    `json:"url"`
	Error          string    `json:"error"`
	ExtractionDate time.Time `json:"extraction_date"`
}

// MarshalJSON encodes only the fields of the active variant.
func (r *ExtractionResult) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(errorResultJSON{
			Period:         r.Period,
			URL:            r.URL,
			Error:          r.Error,
			ExtractionDate: r.ExtractedAt,
		})
	}
	return json.Marshal(contentResultJSON{
		Period:         r.Period,
		URL:            r.URL,
		Content:        r.Content,
		WordCount:      r.WordCount,
		Records:        r.Records,
		ExtractionDate: r.ExtractedAt,
	})
}

// Validate returns an error if the result breaks the variant invariants.
func (r *ExtractionResult) Validate() error {
	if r.ExtractedAt.IsZero() {
		return Errorf(EINVALID, "result extraction date required")
	}
	if r.Failed() && (r.Content != "" || r.WordCount != 0) {
		return Errorf(EINVALID, "error result must not carry content")
	}
	if r.WordCount != CountWords(r.Content) {
		return Errorf(EINVALID, "result word count does not match content")
	}
	return nil
}

// ResultStore persists extraction results.
type ResultStore interface {
	// SaveResult stores the result for its period, replacing any earlier one.
	SaveResult(ctx context.Context, r *ExtractionResult) error
}

// MultiResultStore saves every result to each store in order and stops at
// the first failure.
type MultiResultStore []ResultStore

// SaveResult saves r to every store.
func (m MultiResultStore) SaveResult(ctx context.Context, r *ExtractionResult) error {
	for _, s := range m {
		if err := s.SaveResult(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

// ResultService represents a service for querying stored results.
type ResultService interface {
	ResultStore

	// FindResultByPeriod retrieves the stored result for a period.
	// Returns ENOTFOUND if no result exists.
	FindResultByPeriod(ctx context.Context, period Period) (*ExtractionResult, error)

	// FindResults retrieves results matching the filter, ordered by period.
	FindResults(ctx context.Context, filter ResultFilter) ([]*ExtractionResult, error)
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	Year   *int  `json:"year"`
	Failed *bool `json:"failed"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
