package crawl

import (
	"context"
	"fmt"
	"strings"

	"github.com/Quintaneishon/archtext"
)

// PageExtractor extracts a single article page.
//
// Without an Extractor the page is resolved through the built-in locator
// chains. With one, the Extractor isolates the main content, the Converter
// turns it into Markdown, and the result is normalized.
type PageExtractor struct {
	Fetcher    archtext.Fetcher
	Parser     archtext.Parser
	Extractor  archtext.Extractor
	Converter  archtext.Converter
	Normalizer *archtext.Normalizer
}

// Extract fetches url and returns its article.
func (e *PageExtractor) Extract(ctx context.Context, url string) (*archtext.Page, error) {
	body, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := e.Parser.Parse(body)
	if err != nil {
		return nil, err
	}

	if e.Extractor == nil {
		return archtext.ExtractPage(doc, url, e.Normalizer), nil
	}

	extracted, err := e.Extractor.Extract(string(body))
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", url, err)
	}

	content := extracted.ContentHTML
	if e.Converter != nil {
		content, err = e.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			return nil, fmt.Errorf("convert %s: %w", url, err)
		}
	}

	norm := e.Normalizer
	if norm == nil {
		norm = archtext.NewNormalizer()
	}
	content = norm.Normalize(content)

	title := strings.TrimSpace(extracted.Title)
	if title == "" {
		title = archtext.Resolve(doc, archtext.TitleLocator, archtext.NoTitle)
	}

	author := strings.TrimSpace(extracted.Author)
	if author == "" {
		author = archtext.Resolve(doc, archtext.AuthorLocator, archtext.NoAuthor)
	}

	return &archtext.Page{
		URL:       url,
		Title:     title,
		Author:    author,
		Content:   content,
		WordCount: archtext.CountWords(content),
	}, nil
}
