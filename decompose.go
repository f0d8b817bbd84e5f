package archtext

import "strings"

// Layout names the fixed selectors used to take an archive page apart.
// Unlike a FieldLocator there is no fallback: a field either matches its
// selector inside the record container or is absent.
type Layout struct {
	Record     string
	Title      string
	Author     string
	Date       string
	Categories string
	Content    string
}

// DefaultLayout returns the WordPress archive layout used by UNAM Global.
func DefaultLayout() Layout {
	return Layout{
		Record:     "article",
		Title:      "h2.entry-title",
		Author:     "span.author",
		Date:       "time.entry-date",
		Categories: "span.cat-links",
		Content:    "div.entry-content",
	}
}

// Validate returns an error if a required selector is missing.
func (l Layout) Validate() error {
	if l.Record == "" {
		return Errorf(EINVALID, "layout record selector required")
	}
	if l.Title == "" {
		return Errorf(EINVALID, "layout title selector required")
	}
	return nil
}

// Decomposer splits an archive document into article records.
type Decomposer struct {
	Layout     Layout
	Normalizer *Normalizer
}

// NewDecomposer returns a Decomposer with the default layout and rules.
func NewDecomposer() *Decomposer {
	return &Decomposer{
		Layout:     DefaultLayout(),
		Normalizer: NewNormalizer(),
	}
}

// Decompose returns the records found in doc, in document order.
//
// Only top-level containers are records: a container nested in another
// one, such as a related-posts teaser, belongs to its parent. Containers
// without a title are not articles and are skipped. Containers
// whose content is empty after normalization are dropped as well. Indices
// count only the records returned, so they always run 1..n.
func (d *Decomposer) Decompose(doc Element) []*ArticleRecord {
	if doc == nil {
		return nil
	}
	norm := d.Normalizer
	if norm == nil {
		norm = defaultNormalizer
	}

	var records []*ArticleRecord
	containers := doc.Find(d.Layout.Record)
	for i, c := range containers {
		if nested(containers[:i], c) {
			continue
		}
		title, ok := firstText(c, d.Layout.Title)
		if !ok || title == "" {
			continue
		}

		raw, ok := first(c, d.Layout.Content)
		if !ok {
			raw = c
		}
		content := norm.Normalize(raw.Text())
		if content == "" {
			continue
		}

		author, _ := firstText(c, d.Layout.Author)
		date, _ := firstText(c, d.Layout.Date)
		categories, _ := firstText(c, d.Layout.Categories)

		records = append(records, &ArticleRecord{
			Index:      len(records) + 1,
			Title:      title,
			Author:     author,
			Date:       date,
			Categories: categories,
			Content:    content,
			WordCount:  CountWords(content),
		})
	}
	return records
}

// nested reports whether el sits inside one of outer. Ancestors come
// before their descendants in document order.
func nested(outer []Element, el Element) bool {
	for _, o := range outer {
		if o.Contains(el) {
			return true
		}
	}
	return false
}

func first(el Element, selector string) (Element, bool) {
	if selector == "" {
		return nil, false
	}
	matches := el.Find(selector)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// firstText returns the text of the first match with whitespace runs
// squashed so metadata fits on one line.
func firstText(el Element, selector string) (string, bool) {
	m, ok := first(el, selector)
	if !ok {
		return "", false
	}
	return strings.Join(strings.Fields(m.Text()), " "), true
}
