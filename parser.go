package archtext

// Element is a node of a parsed document that supports locator lookups.
type Element interface {
	// Find returns the descendants matching a CSS selector, in document order.
	Find(selector string) []Element

	// Text returns the combined text of the element and its descendants.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Contains reports whether other is a descendant of the element.
	Contains(other Element) bool
}

// Document is a navigable tree produced by a Parser. A Document is created
// per fetch and discarded once the page has been extracted.
type Document interface {
	Element

	// Remove detaches every element matching the selector from the tree.
	Remove(selector string)
}

// Parser turns raw markup into a Document.
type Parser interface {
	// Parse builds a Document from raw bytes.
	// Returns EPARSE if the input cannot be parsed into a navigable tree.
	Parse(data []byte) (Document, error)
}
