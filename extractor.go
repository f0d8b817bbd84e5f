package archtext

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Author is the byline, empty when the page has none.
	Author string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, comments) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages using a generic
// readability-style heuristic instead of fixed locators.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns EINVALID for empty input and EPARSE when no content is found.
	Extract(html string) (*ExtractResult, error)
}
