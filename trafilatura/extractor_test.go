package trafilatura_test

import (
	"testing"

	"github.com/Quintaneishon/archtext"
	"github.com/Quintaneishon/archtext/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements archtext.Extractor at compile time.
var _ archtext.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="es">
<head>
<title>Investigadores de la UNAM estudian el virus - UNAM Global</title>
<meta property="og:title" content="Investigadores de la UNAM estudian el virus">
</head>
<body>
<nav>Inicio</nav>
<main>
<h1>Investigadores de la UNAM estudian el virus</h1>
<p>Un grupo de investigadores del Instituto de Biotecnología analiza la estructura del virus.</p>
</main>
<footer>Pie de página</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="es">
<head><title>Nota</title></head>
<body>
<nav><a href="/">Inicio</a><a href="/ciencia">Ciencia</a></nav>
<article>
<h1>Cuidados en casa</h1>
<p>Especialistas de la Facultad de Medicina recomiendan lavarse las manos con frecuencia durante la contingencia.</p>
<p>También sugieren ventilar los espacios cerrados y mantener una sana distancia con otras personas.</p>
</article>
<aside>Lo más leído</aside>
<footer>Todos los derechos reservados</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "lavarse las manos")
		assert.Contains(t, result.ContentHTML, "ventilar los espacios")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="es">
<head><title>Nota</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Inicio</a></li>
<li><a href="/cultura">Cultura</a></li>
<li><a href="/deportes">Deportes</a></li>
</ul>
</nav>
<main>
<h1>Contenido principal</h1>
<p>Este párrafo contiene el texto de la nota que queremos conservar.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "texto de la nota que queremos conservar")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="es">
<head><title>Nota</title></head>
<body>
<article>
<h1>Título de la nota</h1>
<p>El cuerpo de la nota tiene contenido sustancial para los lectores.</p>
</article>
<footer>
<p>Hecho en México, Universidad Nacional Autónoma de México</p>
<nav>Privacidad | Términos | Contacto</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "contenido sustancial")
		assert.NotContains(t, result.ContentHTML, "Hecho en México")
	})

	t.Run("handles WordPress single post layout", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html lang="es">
<head>
<title>El ajolote en peligro | UNAM Global</title>
<meta property="og:title" content="El ajolote en peligro">
</head>
<body>
<header class="site-header">
<a href="/">UNAM Global</a>
</header>
<div id="secondary" class="widget-area">
<ul>
<li><a href="/2020/04/">abril 2020</a></li>
<li><a href="/2020/03/">marzo 2020</a></li>
</ul>
</div>
<main id="primary">
<article class="post">
<h1 class="entry-title">El ajolote en peligro</h1>
<div class="entry-content">
<p>El ajolote de Xochimilco es una especie endémica que enfrenta la pérdida de su hábitat.</p>
<h2>Acciones de conservación</h2>
<p>Biólogos de la UNAM trabajan con productores locales para crear refugios en los canales.</p>
</div>
</article>
</main>
<footer class="site-footer">
<p>Hecho en México</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "especie endémica")
		assert.Contains(t, result.ContentHTML, "refugios en los canales")
	})

	t.Run("returns invalid error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("  ")

		require.Error(t, err)
		assert.Equal(t, archtext.EINVALID, archtext.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Contenido simple</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Contenido simple")
	})
}
