package goquery

import (
	"regexp"
	"strings"

	"github.com/Birds-of-Eden/faqdoc"
)

var _ faqdoc.StrategyExtractor = (*HeadingStrategy)(nil)

var headingRe = regexp.MustCompile(`(?is)<h([1-6])[^>]*>(.*?)</h[1-6]\s*>`)

// faqHeadings are the trigger titles, compared case-insensitively against
// the cleaned heading text.
var faqHeadings = []string{"faq", "faqs", "frequently asked questions"}

// HeadingStrategy extracts FAQ pairs from a heading-labeled section: the
// first heading titled "FAQ", "FAQs" or "Frequently Asked Questions" opens
// a scope that runs to the next same-or-higher heading or the end of the
// document. Every deeper heading inside the scope is a question; its
// answer is everything up to the next in-scope heading.
//
// An unterminated section (no closing heading before EOF) captures the
// rest of the document, mirroring how hand-authored FAQ pages usually end.
type HeadingStrategy struct{}

// NewHeadingStrategy creates a new HeadingStrategy.
func NewHeadingStrategy() *HeadingStrategy {
	return &HeadingStrategy{}
}

// Name returns the strategy's identifier.
func (s *HeadingStrategy) Name() faqdoc.StrategyName {
	return faqdoc.StrategyHeading
}

// heading is one matched heading tag with its position in the raw document.
type heading struct {
	start, end int
	level      int
	text       string
}

// findHeadings returns all h1-h6 headings in document order.
func findHeadings(html string) []heading {
	matches := headingRe.FindAllStringSubmatchIndex(html, -1)
	headings := make([]heading, 0, len(matches))
	for _, m := range matches {
		level := int(html[m[2]] - '0')
		headings = append(headings, heading{
			start: m[0],
			end:   m[1],
			level: level,
			text:  faqdoc.CleanText(html[m[4]:m[5]]),
		})
	}
	return headings
}

// Extract locates the FAQ heading scope and emits one candidate per
// subordinate heading inside it.
func (s *HeadingStrategy) Extract(html string) []faqdoc.FAQItem {
	headings := findHeadings(html)

	trigger := -1
	for i, h := range headings {
		if isFAQHeading(h.text) {
			trigger = i
			break
		}
	}
	if trigger == -1 {
		return nil
	}

	level := headings[trigger].level
	scopeEnd := len(html)
	last := len(headings)
	for j := trigger + 1; j < len(headings); j++ {
		if headings[j].level <= level {
			scopeEnd = headings[j].start
			last = j
			break
		}
	}

	var items []faqdoc.FAQItem
	for j := trigger + 1; j < last; j++ {
		q := headings[j]
		answerEnd := scopeEnd
		if j+1 < last {
			answerEnd = headings[j+1].start
		}

		raw := faqdoc.Truncate(html[q.end:answerEnd], faqdoc.MaxAnswerLen)
		answer := faqdoc.CleanText(raw)
		if q.text == "" || answer == "" {
			continue
		}

		items = append(items, faqdoc.FAQItem{
			Question:   q.text,
			Answer:     answer,
			AnswerHTML: strings.TrimSpace(raw),
		})
	}
	return items
}

func isFAQHeading(text string) bool {
	for _, want := range faqHeadings {
		if strings.EqualFold(text, want) {
			return true
		}
	}
	return false
}
