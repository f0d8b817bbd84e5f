package readability_test

import (
	"testing"

	"github.com/Quintaneishon/archtext"
	"github.com/Quintaneishon/archtext/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements archtext.Extractor at compile time.
var _ archtext.Extractor = (*readability.Extractor)(nil)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("")

	require.Error(t, err)
	assert.Equal(t, archtext.EINVALID, archtext.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Título de la página</title></head>
<body><article><p>Contenido</p></article></body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Equal(t, "Título de la página", result.Title)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Nota</title></head>
<body>
<nav><a href="/inicio">Enlace de inicio</a><a href="/nosotros">Enlace nosotros</a></nav>
<article><p>Este es el contenido principal de la nota que debe conservarse en la salida.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Enlace de inicio")
	assert.NotContains(t, result.ContentHTML, "Enlace nosotros")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Nota</title></head>
<body>
<article><p>Este es el contenido principal de la nota que debe conservarse en la salida.</p></article>
<footer><p>Texto del pie de página 2020</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Texto del pie de página")
}

func TestExtractor_RemovesSidebar(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Nota</title></head>
<body>
<aside class="sidebar"><p>Comentarios recientes de la barra lateral</p></aside>
<article><p>Este es el contenido principal de la nota que debe conservarse en la salida.</p></article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "barra lateral")
}

func TestExtractor_KeepsMainArticleContent(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Nota</title></head>
<body>
<nav><a href="/inicio">Inicio</a></nav>
<article><p>Este es el párrafo importante de la nota que se debe mantener.</p></article>
<footer><p>Pie</p></footer>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "párrafo importante de la nota")
}

func TestExtractor_PreservesHeadings(t *testing.T) {
	t.Parallel()

	// go-readability may demote h1 to h2, but heading text is preserved
	html := `<!DOCTYPE html>
<html>
<head><title>Nota</title></head>
<body>
<article>
<h2>Antecedentes de la investigación</h2>
<p>El equipo comenzó a estudiar la propagación del virus en marzo, con muestras de varias entidades del país.</p>
<h2>Resultados preliminares</h2>
<p>Los primeros resultados muestran una reducción de contagios en las zonas con mayor distanciamiento.</p>
</article>
</body>
</html>`

	ext := readability.NewExtractor()
	result, err := ext.Extract(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "Antecedentes de la investigación")
	assert.Contains(t, result.ContentHTML, "Resultados preliminares")
}
