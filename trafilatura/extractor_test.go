package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements faqmine.ContentExtractor at compile time.
var _ faqmine.ContentExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>FAQ - Example Shop</title>
<meta property="og:title" content="Frequently Asked Questions">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Frequently Asked Questions</h1>
<p>Answers to the questions our customers ask most often about orders and delivery.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts questions and answers", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Help</title></head>
<body>
<nav><a href="/">Home</a><a href="/shop">Shop</a></nav>
<article>
<h1>Help Centre</h1>
<h2>How long does shipping take?</h2>
<p>Standard shipping takes three to five business days within the European Union.</p>
<h2>Can I return an item?</h2>
<p>Unused items in their original packaging can be returned within thirty days.</p>
</article>
<footer>Copyright 2024 Example Shop</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "How long does shipping take?")
		assert.Contains(t, result.ContentHTML, "three to five business days")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, faqmine.EINVALID, faqmine.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content about our delivery times.</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
