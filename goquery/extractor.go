package goquery

import (
	"strings"

	"github.com/Birds-of-Eden/faqdoc"
)

var _ faqdoc.FAQExtractor = (*Extractor)(nil)

// Extractor runs the full extraction pipeline: every strategy scans the
// whole document in fixed priority order, and the concatenated candidates
// are trimmed, length-filtered, deduplicated (first occurrence wins) and
// capped at MaxItems.
//
// Strategies run strictly sequentially; their order decides which duplicate
// survives deduplication, so it is part of the contract, not a tuning knob.
type Extractor struct {
	strategies []faqdoc.StrategyExtractor
}

// NewExtractor creates an Extractor with the seven default strategies in
// faqdoc.StrategyOrder.
func NewExtractor() *Extractor {
	return NewExtractorWithStrategies(
		NewYoastStrategy(),
		NewRankMathStrategy(),
		NewDefinitionListStrategy(),
		NewHeadingStrategy(),
		NewAccordionStrategy(),
		NewInlineQAStrategy(),
		NewTextQAStrategy(),
	)
}

// NewExtractorWithStrategies creates an Extractor running the given
// strategies in the given order. Used by tests to isolate strategies.
func NewExtractorWithStrategies(strategies ...faqdoc.StrategyExtractor) *Extractor {
	return &Extractor{strategies: strategies}
}

// ExtractFAQs scans the document with every strategy and aggregates the
// results. It never fails: malformed or empty input yields an empty list.
// The stats record candidate counts per strategy before filtering, plus
// the final question list.
func (e *Extractor) ExtractFAQs(html string) ([]faqdoc.FAQItem, *faqdoc.ExtractStats) {
	stats := &faqdoc.ExtractStats{
		Candidates: make(map[faqdoc.StrategyName]int, len(e.strategies)),
	}

	var candidates []faqdoc.FAQItem
	for _, strategy := range e.strategies {
		found := strategy.Extract(html)
		stats.Candidates[strategy.Name()] = len(found)
		candidates = append(candidates, found...)
	}

	seen := make(map[string]bool, len(candidates))
	items := make([]faqdoc.FAQItem, 0, faqdoc.MaxItems)
	for _, c := range candidates {
		c.Question = strings.TrimSpace(c.Question)
		c.Answer = strings.TrimSpace(c.Answer)
		if !c.Valid() {
			continue
		}

		key := c.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true

		items = append(items, c)
		if len(items) == faqdoc.MaxItems {
			break
		}
	}

	stats.Total = len(items)
	stats.Questions = make([]string, 0, len(items))
	for _, item := range items {
		stats.Questions = append(stats.Questions, item.Question)
	}

	return items, stats
}
