package goquery

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"github.com/Quintaneishon/archtext"
	"golang.org/x/net/html/charset"
)

// DefaultPrune lists elements dropped right after parsing. Their text is
// never content.
const DefaultPrune = "script, style, noscript, template"

// Ensure Parser implements archtext.Parser at compile time.
var _ archtext.Parser = (*Parser)(nil)

// Parser parses HTML into a Document. The input encoding is detected from a
// byte order mark or a meta charset declaration and defaults to UTF-8.
type Parser struct {
	prune string
}

// Option configures a Parser.
type Option func(*Parser)

// WithPrune sets the selector of elements removed after parsing.
// An empty selector keeps the whole tree.
func WithPrune(selector string) Option {
	return func(p *Parser) {
		p.prune = selector
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{prune: DefaultPrune}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse builds a Document from raw bytes.
func (p *Parser) Parse(data []byte) (archtext.Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, archtext.Errorf(archtext.EPARSE, "empty document")
	}
	if !bytes.Contains(trimmed, []byte("<")) {
		return nil, archtext.Errorf(archtext.EPARSE, "input is not markup")
	}

	r, err := charset.NewReader(bytes.NewReader(data), "")
	if err != nil {
		return nil, archtext.Errorf(archtext.EPARSE, "failed to detect encoding: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, archtext.Errorf(archtext.EPARSE, "failed to parse HTML: %v", err)
	}

	if p.prune != "" {
		doc.Find(p.prune).Remove()
	}

	return NewDocument(doc), nil
}
