// Package crawl provides archive extraction orchestration.
// It coordinates fetching, parsing, decomposition, and storage of the
// monthly archive pages.
package crawl

import (
	"context"
	"time"

	"github.com/Quintaneishon/archtext"
)

// Pipeline turns one period into an ExtractionResult.
type Pipeline struct {
	Fetcher    archtext.Fetcher
	Parser     archtext.Parser
	Decomposer *archtext.Decomposer

	// URLTemplate builds the archive URL from year and month.
	// Defaults to archtext.DefaultURLTemplate.
	URLTemplate string

	// Now stamps results. Defaults to time.Now.
	Now func() time.Time
}

// Extract fetches, parses, and decomposes the archive page of period.
// Fetch and parse failures are returned as the error variant of the result,
// never as a Go error, so callers iterating periods can move on.
func (p *Pipeline) Extract(ctx context.Context, period archtext.Period) *archtext.ExtractionResult {
	url := p.SourceURL(period)

	body, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return archtext.NewErrorResult(period, url, err, p.now())
	}

	doc, err := p.Parser.Parse(body)
	if err != nil {
		return archtext.NewErrorResult(period, url, err, p.now())
	}

	d := p.Decomposer
	if d == nil {
		d = archtext.NewDecomposer()
	}
	content := archtext.FormatRecords(d.Decompose(doc))

	return archtext.NewContentResult(period, url, content, p.now())
}

// SourceURL returns the archive URL of period.
func (p *Pipeline) SourceURL(period archtext.Period) string {
	return period.SourceURL(p.URLTemplate)
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
