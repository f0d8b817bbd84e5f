// Package goquery implements archtext.Parser and archtext.Document on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Quintaneishon/archtext"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Document implements archtext.Document at compile time.
var _ archtext.Document = (*Document)(nil)

// Element wraps a single-node goquery selection.
type Element struct {
	sel *goquery.Selection
}

// Find returns the descendants matching selector in document order.
// An invalid selector matches nothing.
func (e *Element) Find(selector string) []archtext.Element {
	return wrap(e.sel.Find(selector))
}

// Text returns the element's text with a line break around every block-level
// element, so paragraphs and widgets end up on lines of their own.
func (e *Element) Text() string {
	var b strings.Builder
	for _, n := range e.sel.Nodes {
		writeText(&b, n)
	}
	return b.String()
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Contains reports whether other is a strict descendant of e. Elements
// from another Document are never contained.
func (e *Element) Contains(other archtext.Element) bool {
	var o *Element
	switch v := other.(type) {
	case *Element:
		o = v
	case *Document:
		o = &v.Element
	default:
		return false
	}
	for _, n := range o.sel.Nodes {
		for p := n.Parent; p != nil; p = p.Parent {
			for _, a := range e.sel.Nodes {
				if p == a {
					return true
				}
			}
		}
	}
	return false
}

// Document is a parsed HTML page.
type Document struct {
	Element
	doc *goquery.Document
}

// NewDocument wraps a goquery document.
func NewDocument(doc *goquery.Document) *Document {
	return &Document{
		Element: Element{sel: doc.Selection},
		doc:     doc,
	}
}

// Remove detaches every element matching selector.
func (d *Document) Remove(selector string) {
	d.doc.Find(selector).Remove()
}

// HTML renders the document back to markup.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

func wrap(sel *goquery.Selection) []archtext.Element {
	if sel.Length() == 0 {
		return nil
	}
	els := make([]archtext.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		els = append(els, &Element{sel: s})
	})
	return els
}

var blockElements = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Aside:      true,
	atom.Blockquote: true,
	atom.Dd:         true,
	atom.Div:        true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Figcaption: true,
	atom.Figure:     true,
	atom.Footer:     true,
	atom.Form:       true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Header:     true,
	atom.Hr:         true,
	atom.Li:         true,
	atom.Main:       true,
	atom.Nav:        true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Section:    true,
	atom.Table:      true,
	atom.Td:         true,
	atom.Th:         true,
	atom.Tr:         true,
	atom.Ul:         true,
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br:
			b.WriteByte('\n')
			return
		case atom.Script, atom.Style, atom.Noscript, atom.Template:
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}
