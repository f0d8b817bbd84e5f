package archtext

// ChromeSelector matches page chrome that never holds article content.
const ChromeSelector = "script, style, noscript, nav, footer, header, aside"

// Page is a single article page.
type Page struct {
	URL       string `json:"url"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	WordCount int    `json:"word_count"`
}

// ExtractPage resolves title, author, and content of a single article page
// through the built-in locator chains. Title and author are read before the
// page chrome is removed since themes often place them in the header.
// The document is modified.
func ExtractPage(doc Document, url string, norm *Normalizer) *Page {
	if norm == nil {
		norm = defaultNormalizer
	}

	title := Resolve(doc, TitleLocator, NoTitle)
	author := Resolve(doc, AuthorLocator, NoAuthor)

	doc.Remove(ChromeSelector)
	raw := Resolve(doc, ContentLocator, "")
	if raw == "" {
		raw = doc.Text()
	}
	content := norm.Normalize(raw)

	return &Page{
		URL:       url,
		Title:     title,
		Author:    author,
		Content:   content,
		WordCount: CountWords(content),
	}
}
