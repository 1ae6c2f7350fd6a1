package goquery

import (
	"github.com/Birds-of-Eden/faqdoc"
	"github.com/PuerkitoBio/goquery"
)

var _ faqdoc.StrategyExtractor = (*DefinitionListStrategy)(nil)

// DefinitionListStrategy extracts FAQ pairs from definition lists: every
// <dl> in the document contributes its <dt> terms as questions paired by
// position with its <dd> definitions.
type DefinitionListStrategy struct{}

// NewDefinitionListStrategy creates a new DefinitionListStrategy.
func NewDefinitionListStrategy() *DefinitionListStrategy {
	return &DefinitionListStrategy{}
}

// Name returns the strategy's identifier.
func (s *DefinitionListStrategy) Name() faqdoc.StrategyName {
	return faqdoc.StrategyDefinitionList
}

// Extract pairs terms and definitions by index; a lopsided list yields
// min(#dt, #dd) candidates.
func (s *DefinitionListStrategy) Extract(html string) []faqdoc.FAQItem {
	doc := parseDoc(html)
	if doc == nil {
		return nil
	}

	var items []faqdoc.FAQItem
	doc.Find("dl").Each(func(_ int, dl *goquery.Selection) {
		terms := dl.Find("dt")
		defs := dl.Find("dd")

		n := terms.Length()
		if defs.Length() < n {
			n = defs.Length()
		}

		for i := 0; i < n; i++ {
			question := nodeText(terms.Eq(i))
			raw, answer := captureAnswer(defs.Eq(i))
			if question == "" || answer == "" {
				continue
			}
			items = append(items, faqdoc.FAQItem{
				Question:   question,
				Answer:     answer,
				AnswerHTML: raw,
			})
		}
	})
	return items
}
