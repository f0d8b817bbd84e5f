package archtext

import "strings"

// ExtractMode selects what a locator candidate reads from a matched element.
type ExtractMode int

// Extraction modes for a Candidate.
const (
	ModeText ExtractMode = iota
	ModeAttr
)

// Candidate is one selector of a FieldLocator together with how to read it.
type Candidate struct {
	Selector string
	Mode     ExtractMode
	Attr     string // attribute name, only used with ModeAttr
}

// Text returns a candidate that reads the text content of selector.
func Text(selector string) Candidate {
	return Candidate{Selector: selector, Mode: ModeText}
}

// Attr returns a candidate that reads attribute attr of selector.
func Attr(selector, attr string) Candidate {
	return Candidate{Selector: selector, Mode: ModeAttr, Attr: attr}
}

// Extract reads the candidate's value from an element, trimmed.
func (c Candidate) Extract(el Element) string {
	if c.Mode == ModeAttr {
		v, _ := el.Attr(c.Attr)
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(el.Text())
}

// FieldLocator is an ordered list of candidates for one logical field,
// highest priority first.
type FieldLocator []Candidate

// Fallback sentinels returned when no candidate matches.
const (
	NoTitle  = "No title found"
	NoAuthor = "No author found"
)

// TitleLocator finds a page title across the markup conventions the
// archive has used over time.
var TitleLocator = FieldLocator{
	Text("h1.page-title"),
	Text("h1.entry-title"),
	Text("h1.post-title"),
	Text("h1.article-title"),
	Text("h1"),
	Text("title"),
}

// AuthorLocator finds a page author, falling back to the author meta tag.
var AuthorLocator = FieldLocator{
	Text("span.author.vcard"),
	Text(".entry-author"),
	Text(".post-author"),
	Text(".article-author"),
	Text(".author"),
	Attr(`meta[name="author"]`, "content"),
}

// ContentLocator finds the main content block of a page.
var ContentLocator = FieldLocator{
	Text("main#primary"),
	Text("article .entry-content"),
	Text("article .post-content"),
	Text("article .article-content"),
	Text(".entry-content"),
	Text(".post-content"),
	Text(".article-content"),
	Text("article"),
	Text(".content"),
	Text("main"),
	Text("body"),
}

// Resolve evaluates the locator's candidates in order and returns the first
// non-empty value. Only the first element matching each selector is read.
// Returns fallback if no candidate matches.
func Resolve(root Element, loc FieldLocator, fallback string) string {
	if root == nil {
		return fallback
	}
	for _, c := range loc {
		matches := root.Find(c.Selector)
		if len(matches) == 0 {
			continue
		}
		if v := c.Extract(matches[0]); v != "" {
			return v
		}
	}
	return fallback
}
