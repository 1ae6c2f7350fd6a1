package goquery

import (
	"regexp"

	"github.com/Birds-of-Eden/faqdoc"
)

var _ faqdoc.StrategyExtractor = (*InlineQAStrategy)(nil)

var (
	// qMarkRe matches the literal Q prose marker: the letter followed by a
	// captured separator. The word boundary keeps "FAQ:" and similar words
	// from triggering.
	qMarkRe = regexp.MustCompile(`(?i)\bQ\s*([:.)])`)

	// aMarkRes maps a question separator to the A marker that pairs with
	// it. The answer marker must reuse the question's separator, so "Q:"
	// never pairs with "A." in prose that merely mentions both letters.
	aMarkRes = map[string]*regexp.Regexp{
		":": regexp.MustCompile(`(?i)\bA\s*:`),
		".": regexp.MustCompile(`(?i)\bA\s*\.`),
		")": regexp.MustCompile(`(?i)\bA\s*\)`),
	}

	// blockSepRe matches the block-level breaks that terminate an inline
	// question: explicit line breaks, paragraph/div closes, or newlines.
	blockSepRe = regexp.MustCompile(`(?i)<br\s*/?>|</p\s*>|</div\s*>|\r?\n`)
)

// InlineQAStrategy extracts FAQ pairs written as "Q: ... / A: ..." prose
// in the raw markup, where the question is terminated by a block-level
// break and the answer runs to the next Q marker or the end of the
// document.
type InlineQAStrategy struct{}

// NewInlineQAStrategy creates a new InlineQAStrategy.
func NewInlineQAStrategy() *InlineQAStrategy {
	return &InlineQAStrategy{}
}

// Name returns the strategy's identifier.
func (s *InlineQAStrategy) Name() faqdoc.StrategyName {
	return faqdoc.StrategyInlineQA
}

// Extract scans the raw document for Q markers. A question without a
// block break or without a following A marker carrying the same separator
// yields nothing.
func (s *InlineQAStrategy) Extract(html string) []faqdoc.FAQItem {
	qMarks := qMarkRe.FindAllStringSubmatchIndex(html, -1)

	var items []faqdoc.FAQItem
	for i, q := range qMarks {
		segEnd := len(html)
		if i+1 < len(qMarks) {
			segEnd = qMarks[i+1][0]
		}
		seg := html[q[1]:segEnd]

		sep := blockSepRe.FindStringIndex(seg)
		if sep == nil {
			continue
		}
		question := faqdoc.CleanText(seg[:sep[0]])

		rest := seg[sep[0]:]
		a := aMarkRes[html[q[2]:q[3]]].FindStringIndex(rest)
		if a == nil {
			continue
		}

		raw := faqdoc.Truncate(rest[a[1]:], faqdoc.MaxAnswerLen)
		answer := faqdoc.CleanText(raw)
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
