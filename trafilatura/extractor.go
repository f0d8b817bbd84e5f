// Package trafilatura implements archtext.Extractor with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/Quintaneishon/archtext"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements archtext.Extractor at compile time.
var _ archtext.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the article of a news page.
// Reader comments are excluded since they are not part of the article.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract processes raw HTML and returns the article with its metadata.
func (e *Extractor) Extract(rawHTML string) (*archtext.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, archtext.Errorf(archtext.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, archtext.Errorf(archtext.EPARSE, "trafilatura: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &archtext.ExtractResult{
		Title:       result.Metadata.Title,
		Author:      result.Metadata.Author,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
