package faqdoc_test

import (
	"encoding/json"
	"testing"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFAQPage(t *testing.T) {
	t.Parallel()

	t.Run("single item is not eligible", func(t *testing.T) {
		t.Parallel()

		items := []faqdoc.FAQItem{
			{Question: "What is X?", Answer: "X is a thing."},
		}
		assert.Nil(t, faqdoc.NewFAQPage(items))
	})

	t.Run("empty list is not eligible", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, faqdoc.NewFAQPage(nil))
	})

	t.Run("maps items one to one", func(t *testing.T) {
		t.Parallel()

		items := []faqdoc.FAQItem{
			{Question: "Why red?", Answer: "Because stop signs."},
			{Question: "Why blue?", Answer: "Because sky."},
			{Question: "Why green?", Answer: "Because grass."},
		}

		page := faqdoc.NewFAQPage(items)
		require.NotNil(t, page)
		assert.Equal(t, "https://schema.org", page.Context)
		assert.Equal(t, "FAQPage", page.Type)
		require.Len(t, page.MainEntity, 3)
		assert.Equal(t, "Question", page.MainEntity[0].Type)
		assert.Equal(t, "Why red?", page.MainEntity[0].Name)
		assert.Equal(t, "Answer", page.MainEntity[0].AcceptedAnswer.Type)
		assert.Equal(t, "Because stop signs.", page.MainEntity[0].AcceptedAnswer.Text)
	})

	t.Run("serializes to JSON-LD", func(t *testing.T) {
		t.Parallel()

		items := []faqdoc.FAQItem{
			{Question: "Why red?", Answer: "Because stop signs."},
			{Question: "Why blue?", Answer: "Because sky."},
		}

		data, err := json.Marshal(faqdoc.NewFAQPage(items))
		require.NoError(t, err)
		assert.Contains(t, string(data), `"@context":"https://schema.org"`)
		assert.Contains(t, string(data), `"@type":"FAQPage"`)
		assert.Contains(t, string(data), `"mainEntity"`)
	})
}
