package goquery

import (
	"strings"

	"github.com/Birds-of-Eden/faqdoc"
)

var _ faqdoc.StrategyExtractor = (*TextQAStrategy)(nil)

// TextQAStrategy extracts "Q: ... A: ..." pairs from the document after
// full tag stripping, so no block separators are required. It is the
// lowest-priority net, catching markers that the block-aware strategy
// missed because the markup put no break between question and answer.
type TextQAStrategy struct{}

// NewTextQAStrategy creates a new TextQAStrategy.
func NewTextQAStrategy() *TextQAStrategy {
	return &TextQAStrategy{}
}

// Name returns the strategy's identifier.
func (s *TextQAStrategy) Name() faqdoc.StrategyName {
	return faqdoc.StrategyTextQA
}

// Extract flattens the document and pairs each Q marker with the first A
// marker after it that reuses the question's separator; the answer runs to
// the next Q marker or end of text.
func (s *TextQAStrategy) Extract(html string) []faqdoc.FAQItem {
	text := faqdoc.CleanText(html)
	qMarks := qMarkRe.FindAllStringSubmatchIndex(text, -1)

	var items []faqdoc.FAQItem
	for i, q := range qMarks {
		segEnd := len(text)
		if i+1 < len(qMarks) {
			segEnd = qMarks[i+1][0]
		}
		seg := text[q[1]:segEnd]

		a := aMarkRes[text[q[2]:q[3]]].FindStringIndex(seg)
		if a == nil {
			continue
		}

		question := strings.TrimSpace(seg[:a[0]])
		answer := strings.TrimSpace(faqdoc.Truncate(seg[a[1]:], faqdoc.MaxAnswerLen))
		if question == "" || answer == "" {
			continue
		}

		items = append(items, faqdoc.FAQItem{
			Question: question,
			Answer:   answer,
		})
	}
	return items
}
