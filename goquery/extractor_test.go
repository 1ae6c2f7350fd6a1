package goquery_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/Birds-of-Eden/faqdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements faqdoc.FAQExtractor at compile time.
var _ faqdoc.FAQExtractor = (*goquery.Extractor)(nil)

func TestExtractor_ExtractFAQs(t *testing.T) {
	t.Parallel()

	t.Run("empty and whitespace input yield empty output", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewExtractor()
		for _, input := range []string{"", "   \n\t  "} {
			items, stats := ext.ExtractFAQs(input)
			assert.Empty(t, items)
			assert.Zero(t, stats.Total)
			assert.Len(t, stats.Candidates, len(faqdoc.StrategyOrder))
		}
	})

	t.Run("definition list example", func(t *testing.T) {
		t.Parallel()

		items, stats := goquery.NewExtractor().ExtractFAQs(`<dl><dt>What is X?</dt><dd>X is a thing.</dd></dl>`)

		require.Len(t, items, 1)
		assert.Equal(t, "What is X?", items[0].Question)
		assert.Equal(t, "X is a thing.", items[0].Answer)
		assert.Equal(t, 1, stats.Candidates[faqdoc.StrategyDefinitionList])
	})

	t.Run("flattened inline example", func(t *testing.T) {
		t.Parallel()

		input := "Q: Why red? A: Because stop signs. Q: Why blue? A: Because sky."
		items, _ := goquery.NewExtractor().ExtractFAQs(input)

		require.Len(t, items, 2)
		assert.Equal(t, faqdoc.FAQItem{Question: "Why red?", Answer: "Because stop signs."}, items[0])
		assert.Equal(t, faqdoc.FAQItem{Question: "Why blue?", Answer: "Because sky."}, items[1])
	})

	t.Run("deduplicates across strategies", func(t *testing.T) {
		t.Parallel()

		// The same pair is producible by both the definition-list and the
		// heading strategy; only the first-priority copy survives.
		html := `<dl><dt>What is X?</dt><dd>X is a thing.</dd></dl>
<h2>FAQ</h2>
<h3>What is X?</h3>
<p>X is a thing.</p>`

		items, stats := goquery.NewExtractor().ExtractFAQs(html)

		require.Len(t, items, 1)
		assert.Equal(t, 1, stats.Candidates[faqdoc.StrategyDefinitionList])
		assert.Equal(t, 1, stats.Candidates[faqdoc.StrategyHeading])
	})

	t.Run("dedup key is case-insensitive", func(t *testing.T) {
		t.Parallel()

		html := `<dl>
<dt>What is X?</dt><dd>X is a thing.</dd>
<dt>WHAT IS X?</dt><dd>X IS A THING.</dd>
</dl>`

		items, _ := goquery.NewExtractor().ExtractFAQs(html)

		require.Len(t, items, 1)
		assert.Equal(t, "What is X?", items[0].Question)
	})

	t.Run("caps output at twenty items in encounter order", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString("<h2>FAQ</h2>")
		for i := 1; i <= 30; i++ {
			fmt.Fprintf(&sb, "<h3>Question number %02d, yes?</h3><p>Answer number %02d, certainly.</p>", i, i)
		}

		items, stats := goquery.NewExtractor().ExtractFAQs(sb.String())

		require.Len(t, items, faqdoc.MaxItems)
		assert.Equal(t, 30, stats.Candidates[faqdoc.StrategyHeading])
		assert.Equal(t, "Question number 01, yes?", items[0].Question)
		assert.Equal(t, "Question number 20, yes?", items[19].Question)
	})

	t.Run("drops items below minimum length", func(t *testing.T) {
		t.Parallel()

		html := `<dl>
<dt>Why?</dt><dd>Too short a question to keep around.</dd>
<dt>A question of fine length?</dt><dd>tiny</dd>
<dt>A question kept intact?</dt><dd>An answer kept intact too.</dd>
</dl>`

		items, _ := goquery.NewExtractor().ExtractFAQs(html)

		require.Len(t, items, 1)
		assert.Equal(t, "A question kept intact?", items[0].Question)
	})

	t.Run("every output item satisfies the length invariants", func(t *testing.T) {
		t.Parallel()

		html := `<div class="accordion"><h4>A perfectly fine question?</h4><p>` +
			strings.Repeat("long answer text ", 400) + `</p></div>`

		items, _ := goquery.NewExtractor().ExtractFAQs(html)

		require.NotEmpty(t, items)
		for _, item := range items {
			assert.GreaterOrEqual(t, len(item.Question), faqdoc.MinFieldLen)
			assert.GreaterOrEqual(t, len(item.Answer), faqdoc.MinFieldLen)
			assert.LessOrEqual(t, len(item.Answer), faqdoc.MaxAnswerLen)
		}
	})

	t.Run("capped answers stay markup-free and valid UTF-8", func(t *testing.T) {
		t.Parallel()

		// The first answer puts a tag across the capture cap, the second a
		// multibyte rune; neither residue may survive into the cleaned text.
		html := `<h2>FAQ</h2><h3>What about very long answers?</h3>` +
			strings.Repeat("w", faqdoc.MaxAnswerLen-10) +
			`<a href="https://example.com/page">link text here</a>` +
			`<h3>And answers in other scripts?</h3>` +
			strings.Repeat("w", faqdoc.MaxAnswerLen-1) + "é plus a tail"

		items, _ := goquery.NewExtractor().ExtractFAQs(html)

		require.Len(t, items, 2)
		for _, item := range items {
			assert.NotContains(t, item.Answer, "<")
			assert.True(t, utf8.ValidString(item.Answer))
			assert.LessOrEqual(t, len(item.Answer), faqdoc.MaxAnswerLen)
		}
	})

	t.Run("stats report final questions", func(t *testing.T) {
		t.Parallel()

		input := "Q: Why red? A: Because stop signs. Q: Why blue? A: Because sky."
		_, stats := goquery.NewExtractor().ExtractFAQs(input)

		assert.Equal(t, 2, stats.Total)
		assert.Equal(t, []string{"Why red?", "Why blue?"}, stats.Questions)
	})

	t.Run("custom strategy order decides dedup winners", func(t *testing.T) {
		t.Parallel()

		html := `<dl><dt>What is X?</dt><dd>X is a thing.</dd></dl>
<h2>FAQ</h2><h3>What is X?</h3><p>X is a thing.</p>`

		ext := goquery.NewExtractorWithStrategies(
			goquery.NewHeadingStrategy(),
			goquery.NewDefinitionListStrategy(),
		)
		items, stats := ext.ExtractFAQs(html)

		require.Len(t, items, 1)
		assert.Len(t, stats.Candidates, 2)
	})

	t.Run("never panics on adversarial input", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"<dl><dt>",
			strings.Repeat("<div class='faq'>", 200),
			"<h2>FAQ</h2><h3>" + strings.Repeat("Q", 10000),
			"Q: " + strings.Repeat("A: ", 500),
		}
		ext := goquery.NewExtractor()
		for _, input := range inputs {
			assert.NotPanics(t, func() { ext.ExtractFAQs(input) })
		}
	})
}
