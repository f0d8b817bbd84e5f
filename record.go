package archtext

// ArticleRecord is one article extracted from an archive page.
type ArticleRecord struct {
	// Index is the 1-based position among the records emitted for a page.
	Index      int    `json:"index"`
	Title      string `json:"title"`
	Author     string `json:"author,omitempty"`
	Date       string `json:"date,omitempty"`
	Categories string `json:"categories,omitempty"`
	Content    string `json:"content"`
	WordCount  int    `json:"word_count"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ArticleRecord) Validate() error {
	if r.Index < 1 {
		return Errorf(EINVALID, "record index must be positive")
	}
	if r.Title == "" {
		return Errorf(EINVALID, "record title required")
	}
	if r.WordCount != CountWords(r.Content) {
		return Errorf(EINVALID, "record word count does not match content")
	}
	return nil
}
