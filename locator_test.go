package archtext_test

import (
	"testing"

	"github.com/Quintaneishon/archtext"
	"github.com/Quintaneishon/archtext/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, html string) archtext.Document {
	t.Helper()
	doc, err := goquery.NewParser().Parse([]byte(html))
	require.NoError(t, err)
	return doc
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("returns first candidate that matches", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><h1>Generic</h1><h1 class="entry-title">Entry</h1></body>`)

		got := archtext.Resolve(doc, archtext.TitleLocator, archtext.NoTitle)

		assert.Equal(t, "Entry", got)
	})

	t.Run("skips candidates whose text is blank", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><title>Page Title</title></head><body><h1 class="page-title">   </h1></body>`)

		got := archtext.Resolve(doc, archtext.TitleLocator, archtext.NoTitle)

		assert.Equal(t, "Page Title", got)
	})

	t.Run("reads only the first element of a selector", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><title>Fallback</title></head><body><h1> </h1><h1>Second</h1></body>`)

		got := archtext.Resolve(doc, archtext.FieldLocator{archtext.Text("h1"), archtext.Text("title")}, "none")

		assert.Equal(t, "Fallback", got)
	})

	t.Run("returns fallback when nothing matches", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body><p>No headings here</p></body>`)

		got := archtext.Resolve(doc, archtext.AuthorLocator, archtext.NoAuthor)

		assert.Equal(t, archtext.NoAuthor, got)
	})

	t.Run("reads attribute value in attribute mode", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><meta name="author" content=" Ana López "></head><body></body>`)

		got := archtext.Resolve(doc, archtext.AuthorLocator, archtext.NoAuthor)

		assert.Equal(t, "Ana López", got)
	})

	t.Run("prefers vcard author over meta tag", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<head><meta name="author" content="Meta Author"></head>
			<body><span class="author vcard">Card Author</span></body>`)

		got := archtext.Resolve(doc, archtext.AuthorLocator, archtext.NoAuthor)

		assert.Equal(t, "Card Author", got)
	})

	t.Run("returns fallback for nil root", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "x", archtext.Resolve(nil, archtext.TitleLocator, "x"))
	})
}
