package trafilatura_test

import (
	"testing"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/Birds-of-Eden/faqdoc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaExtractor_ExtractMeta(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and description from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Shipping FAQ - Example Store</title>
<meta property="og:title" content="Shipping FAQ">
<meta name="description" content="Answers to common shipping questions.">
</head>
<body>
<main>
<h1>Shipping FAQ</h1>
<p>Everything you need to know about how we ship orders to you.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewMetaExtractor()
		meta, err := ext.ExtractMeta(html)

		require.NoError(t, err)
		assert.NotEmpty(t, meta.Title)
		assert.Contains(t, meta.Description, "shipping questions")
	})

	t.Run("falls back to title element on minimal pages", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Plain FAQ Page</title></head><body><p>Short body text here.</p></body></html>`

		ext := trafilatura.NewMetaExtractor()
		meta, err := ext.ExtractMeta(html)

		require.NoError(t, err)
		assert.Equal(t, "Plain FAQ Page", meta.Title)
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewMetaExtractor()
		_, err := ext.ExtractMeta("")

		require.Error(t, err)
		assert.Equal(t, faqdoc.EINVALID, faqdoc.ErrorCode(err))
	})
}
