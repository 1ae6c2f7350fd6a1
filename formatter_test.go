package faqdoc_test

import (
	"errors"
	"testing"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/Birds-of-Eden/faqdoc/mock"
	"github.com/stretchr/testify/assert"
)

func TestFormatExtraction(t *testing.T) {
	t.Parallel()

	t.Run("renders title and question headings", func(t *testing.T) {
		t.Parallel()

		e := &faqdoc.Extraction{
			SourceURL: "https://example.com/faq",
			Title:     "Example FAQ",
			Items: []faqdoc.FAQItem{
				{Question: "What is shipping time?", Answer: "Three to five business days."},
			},
		}

		out := faqdoc.FormatExtraction(e, nil)
		assert.Contains(t, out, "# Example FAQ\n")
		assert.Contains(t, out, "## What is shipping time?\n")
		assert.Contains(t, out, "Three to five business days.\n")
	})

	t.Run("falls back to source URL when title is empty", func(t *testing.T) {
		t.Parallel()

		e := &faqdoc.Extraction{
			SourceURL: "https://example.com/faq",
			Items: []faqdoc.FAQItem{
				{Question: "What is shipping time?", Answer: "Three to five business days."},
			},
		}

		out := faqdoc.FormatExtraction(e, nil)
		assert.Contains(t, out, "# https://example.com/faq\n")
	})

	t.Run("converts answer markup through the converter", func(t *testing.T) {
		t.Parallel()

		e := &faqdoc.Extraction{
			SourceURL: "https://example.com/faq",
			Title:     "Example FAQ",
			Items: []faqdoc.FAQItem{
				{
					Question:   "Can I return items?",
					Answer:     "Yes, within thirty days.",
					AnswerHTML: "<p>Yes, within <strong>thirty days</strong>.</p>",
				},
			},
		}

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "Yes, within **thirty days**.", nil
			},
		}

		out := faqdoc.FormatExtraction(e, conv)
		assert.Contains(t, out, "Yes, within **thirty days**.\n")
	})

	t.Run("falls back to plain answer on conversion failure", func(t *testing.T) {
		t.Parallel()

		e := &faqdoc.Extraction{
			SourceURL: "https://example.com/faq",
			Title:     "Example FAQ",
			Items: []faqdoc.FAQItem{
				{
					Question:   "Can I return items?",
					Answer:     "Yes, within thirty days.",
					AnswerHTML: "<p>broken",
				},
			},
		}

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("conversion failed")
			},
		}

		out := faqdoc.FormatExtraction(e, conv)
		assert.Contains(t, out, "Yes, within thirty days.\n")
	})

	t.Run("empty extraction renders nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, faqdoc.FormatExtraction(nil, nil))
		assert.Empty(t, faqdoc.FormatExtraction(&faqdoc.Extraction{Title: "Empty"}, nil))
	})
}

func TestExtraction_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid extraction passes", func(t *testing.T) {
		t.Parallel()

		e := &faqdoc.Extraction{
			SourceURL: "https://example.com/faq",
			Items: []faqdoc.FAQItem{
				{Question: "What is shipping time?", Answer: "Three to five business days."},
			},
		}
		assert.NoError(t, e.Validate())
	})

	t.Run("missing source URL is EINVALID", func(t *testing.T) {
		t.Parallel()

		e := &faqdoc.Extraction{}
		assert.Equal(t, faqdoc.EINVALID, faqdoc.ErrorCode(e.Validate()))
	})

	t.Run("item below minimum length is EINVALID", func(t *testing.T) {
		t.Parallel()

		e := &faqdoc.Extraction{
			SourceURL: "https://example.com/faq",
			Items: []faqdoc.FAQItem{
				{Question: "Why?", Answer: "Because it matters a lot."},
			},
		}
		assert.Equal(t, faqdoc.EINVALID, faqdoc.ErrorCode(e.Validate()))
	})
}

func TestExtraction_Eligible(t *testing.T) {
	t.Parallel()

	one := &faqdoc.Extraction{Items: []faqdoc.FAQItem{{}}}
	two := &faqdoc.Extraction{Items: []faqdoc.FAQItem{{}, {}}}

	assert.False(t, one.Eligible())
	assert.True(t, two.Eligible())
}
