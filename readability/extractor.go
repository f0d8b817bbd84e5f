// Package readability implements archtext.Extractor with go-readability.
package readability

import (
	"strings"

	"github.com/Quintaneishon/archtext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements archtext.Extractor at compile time.
var _ archtext.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the article of a news page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the article with its byline.
func (e *Extractor) Extract(rawHTML string) (*archtext.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, archtext.Errorf(archtext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, archtext.Errorf(archtext.EPARSE, "readability: %v", err)
	}

	return &archtext.ExtractResult{
		Title:       article.Title,
		Author:      article.Byline,
		ContentHTML: article.Content,
	}, nil
}
