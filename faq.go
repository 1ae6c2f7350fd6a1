package faqdoc

import "strings"

// Extraction limits enforced by the pipeline. Answers are truncated to
// MaxAnswerLen at capture time, before cleaning; the remaining limits are
// applied during aggregation.
const (
	// MinFieldLen is the minimum length of a question or answer after trimming.
	MinFieldLen = 8

	// MaxAnswerLen is the maximum length of a captured answer fragment.
	MaxAnswerLen = 2500

	// MaxItems caps the final extracted list.
	MaxItems = 20

	// MinSchemaItems is the minimum item count for FAQPage schema eligibility.
	MinSchemaItems = 2
)

// FAQItem is a single question/answer pair extracted from a page.
// Question and Answer hold cleaned plain text; AnswerHTML preserves the raw
// captured fragment (already truncated) for rich rendering and may be empty
// for strategies that operate on flattened text. Items are immutable once
// produced by a strategy: the pipeline filters and reorders but never
// rewrites field contents.
type FAQItem struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	AnswerHTML string `json:"answerHtml,omitempty"`
}

// StrategyName identifies an extraction strategy.
type StrategyName string

// Extraction strategies, one per recognized authoring convention.
const (
	StrategyYoast          StrategyName = "yoast"
	StrategyRankMath       StrategyName = "rank-math"
	StrategyDefinitionList StrategyName = "definition-list"
	StrategyHeading        StrategyName = "heading"
	StrategyAccordion      StrategyName = "accordion"
	StrategyInlineQA       StrategyName = "inline-qa"
	StrategyTextQA         StrategyName = "text-qa"
)

// StrategyOrder is the fixed priority order in which strategies run.
// Order is a correctness requirement, not a tuning knob: deduplication keeps
// the first occurrence, so an earlier strategy wins when two conventions
// match the same underlying markup.
var StrategyOrder = []StrategyName{
	StrategyYoast,
	StrategyRankMath,
	StrategyDefinitionList,
	StrategyHeading,
	StrategyAccordion,
	StrategyInlineQA,
	StrategyTextQA,
}

// StrategyExtractor recognizes one authoring convention for Q/A content.
// Extract scans the entire raw document and returns zero or more candidate
// items. Implementations are tolerant: malformed or trigger-free input
// yields an empty slice, never an error.
type StrategyExtractor interface {
	// Extract returns candidate items found in the document.
	Extract(html string) []FAQItem

	// Name returns the strategy's identifier (e.g., "yoast", "heading").
	Name() StrategyName
}

// ExtractStats reports what a single extraction invocation produced.
// Candidate counts are per strategy, pre-filter; Total and Questions
// describe the final deduplicated list.
type ExtractStats struct {
	Candidates map[StrategyName]int
	Total      int
	Questions  []string
}

// FAQExtractor runs the full extraction pipeline over a raw HTML document.
// The returned list is trimmed, filtered, deduplicated and capped at
// MaxItems; it may be empty but extraction itself never fails.
type FAQExtractor interface {
	ExtractFAQs(html string) ([]FAQItem, *ExtractStats)
}

// DedupKey returns the composite key used for duplicate detection:
// lowercased question and answer joined by "||". First occurrence wins.
func (i FAQItem) DedupKey() string {
	return strings.ToLower(i.Question) + "||" + strings.ToLower(i.Answer)
}

// Valid reports whether the item satisfies the minimum length invariants.
func (i FAQItem) Valid() bool {
	return len(i.Question) >= MinFieldLen && len(i.Answer) >= MinFieldLen
}
