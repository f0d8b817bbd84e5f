// Package htmltomarkdown implements archtext.Converter with html-to-markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/Quintaneishon/archtext"
)

// Ensure Converter implements archtext.Converter at compile time.
var _ archtext.Converter = (*Converter)(nil)

// mediaSelector matches embedded media that has no text to contribute.
const mediaSelector = "img, picture, video, audio, iframe, figure > noscript"

// Converter wraps html-to-markdown to turn article HTML into corpus text.
// Embedded media is dropped and, unless WithLinks is set, links are reduced
// to their text.
type Converter struct {
	conv  *converter.Converter
	links bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithLinks keeps links as Markdown link syntax.
func WithLinks() Option {
	return func(c *Converter) {
		c.links = true
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", archtext.Errorf(archtext.EINVALID, "empty HTML input")
	}

	html, err := c.prepare(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", archtext.Errorf(archtext.EPARSE, "html-to-markdown: %v", err)
	}

	return result, nil
}

// prepare strips media and, unless links are kept, unwraps anchors.
func (c *Converter) prepare(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", archtext.Errorf(archtext.EPARSE, "parse HTML: %v", err)
	}

	doc.Find(mediaSelector).Remove()
	if !c.links {
		doc.Find("a").Contents().Unwrap()
		// Anchors without content are left behind by Unwrap.
		doc.Find("a").Remove()
	}

	return doc.Find("body").Html()
}
