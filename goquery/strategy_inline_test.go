package goquery_test

import (
	"testing"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/Birds-of-Eden/faqdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ faqdoc.StrategyExtractor = (*goquery.InlineQAStrategy)(nil)
	_ faqdoc.StrategyExtractor = (*goquery.TextQAStrategy)(nil)
)

func TestInlineQAStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("question ends at paragraph close", func(t *testing.T) {
		t.Parallel()

		html := `<p>Q: Why is the sky blue?</p><p>A: Rayleigh scattering of sunlight.</p>`

		items := goquery.NewInlineQAStrategy().Extract(html)

		require.Len(t, items, 1)
		assert.Equal(t, "Why is the sky blue?", items[0].Question)
		assert.Equal(t, "Rayleigh scattering of sunlight.", items[0].Answer)
	})

	t.Run("line breaks separate multiple pairs", func(t *testing.T) {
		t.Parallel()

		html := "Q: How much does a move cost?<br>A: It depends on distance and volume.<br>Q: Are weekends busier?<br>A: Yes, weekends book out first."

		items := goquery.NewInlineQAStrategy().Extract(html)

		require.Len(t, items, 2)
		assert.Equal(t, "How much does a move cost?", items[0].Question)
		assert.Equal(t, "It depends on distance and volume.", items[0].Answer)
		assert.Equal(t, "Are weekends busier?", items[1].Question)
		assert.Equal(t, "Yes, weekends book out first.", items[1].Answer)
	})

	t.Run("FAQ does not trigger the Q marker", func(t *testing.T) {
		t.Parallel()

		html := "<p>Read our FAQ: it answers everything.</p>"

		assert.Empty(t, goquery.NewInlineQAStrategy().Extract(html))
	})

	t.Run("question without answer marker is dropped", func(t *testing.T) {
		t.Parallel()

		html := "<p>Q: A question with no answer at all?</p><p>Unrelated text follows.</p>"

		assert.Empty(t, goquery.NewInlineQAStrategy().Extract(html))
	})

	t.Run("answer marker must reuse the question separator", func(t *testing.T) {
		t.Parallel()

		mismatched := "<p>Q: Did the move go smoothly?</p><p>A. It went smoothly overall.</p>"
		assert.Empty(t, goquery.NewInlineQAStrategy().Extract(mismatched))

		matched := "<p>Q. Did the move go smoothly?</p><p>A. It went smoothly overall.</p>"
		items := goquery.NewInlineQAStrategy().Extract(matched)
		require.Len(t, items, 1)
		assert.Equal(t, "Did the move go smoothly?", items[0].Question)
		assert.Equal(t, "It went smoothly overall.", items[0].Answer)
	})
}

func TestTextQAStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("flattened markers need no block breaks", func(t *testing.T) {
		t.Parallel()

		input := "Q: Why red? A: Because stop signs. Q: Why blue? A: Because sky."

		items := goquery.NewTextQAStrategy().Extract(input)

		require.Len(t, items, 2)
		assert.Equal(t, "Why red?", items[0].Question)
		assert.Equal(t, "Because stop signs.", items[0].Answer)
		assert.Equal(t, "Why blue?", items[1].Question)
		assert.Equal(t, "Because sky.", items[1].Answer)
	})

	t.Run("strips tags before scanning", func(t *testing.T) {
		t.Parallel()

		html := `<div><span>Q:</span> Is packing included in quotes? <span>A:</span> Full packing is an optional add-on.</div>`

		items := goquery.NewTextQAStrategy().Extract(html)

		require.Len(t, items, 1)
		assert.Equal(t, "Is packing included in quotes?", items[0].Question)
		assert.Equal(t, "Full packing is an optional add-on.", items[0].Answer)
	})

	t.Run("no markers yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.NewTextQAStrategy().Extract("<p>Just ordinary prose.</p>"))
		assert.Empty(t, goquery.NewTextQAStrategy().Extract(""))
	})

	t.Run("mismatched separators do not pair", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.NewTextQAStrategy().Extract("Q: Why red though? A. Because stop signs."))

		items := goquery.NewTextQAStrategy().Extract("Q) Why red though? A) Because stop signs.")
		require.Len(t, items, 1)
		assert.Equal(t, "Why red though?", items[0].Question)
		assert.Equal(t, "Because stop signs.", items[0].Answer)
	})
}
