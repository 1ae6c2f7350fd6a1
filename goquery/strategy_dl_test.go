package goquery_test

import (
	"testing"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/Birds-of-Eden/faqdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ faqdoc.StrategyExtractor = (*goquery.DefinitionListStrategy)(nil)

func TestDefinitionListStrategy_Extract(t *testing.T) {
	t.Parallel()

	t.Run("pairs terms and definitions in order", func(t *testing.T) {
		t.Parallel()

		html := `<dl>
<dt>What is X?</dt>
<dd>X is a thing.</dd>
<dt>What is Y?</dt>
<dd>Y is another thing.</dd>
</dl>`

		items := goquery.NewDefinitionListStrategy().Extract(html)

		require.Len(t, items, 2)
		assert.Equal(t, "What is X?", items[0].Question)
		assert.Equal(t, "X is a thing.", items[0].Answer)
		assert.Equal(t, "What is Y?", items[1].Question)
		assert.Equal(t, "Y is another thing.", items[1].Answer)
	})

	t.Run("lopsided lists pair up to the shorter side", func(t *testing.T) {
		t.Parallel()

		html := `<dl>
<dt>First question?</dt>
<dt>Second question?</dt>
<dd>Only one definition here.</dd>
</dl>`

		items := goquery.NewDefinitionListStrategy().Extract(html)

		require.Len(t, items, 1)
		assert.Equal(t, "First question?", items[0].Question)
		assert.Equal(t, "Only one definition here.", items[0].Answer)
	})

	t.Run("scans every definition list in the document", func(t *testing.T) {
		t.Parallel()

		html := `<dl><dt>Q one is long?</dt><dd>Answer number one.</dd></dl>
<p>interlude</p>
<dl><dt>Q two is long?</dt><dd>Answer number two.</dd></dl>`

		items := goquery.NewDefinitionListStrategy().Extract(html)

		require.Len(t, items, 2)
		assert.Equal(t, "Answer number two.", items[1].Answer)
	})

	t.Run("no definition list yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.NewDefinitionListStrategy().Extract("<ul><li>not a dl</li></ul>"))
	})
}
