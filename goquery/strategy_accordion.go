package goquery

import (
	"regexp"
	"strings"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/PuerkitoBio/goquery"
)

var _ faqdoc.StrategyExtractor = (*AccordionStrategy)(nil)

// accordionWrappers matches the class-name substrings used by the common
// accordion/collapsible widget families (Bootstrap collapse, jQuery UI and
// theme-specific accordions, generic "faq" containers).
const accordionWrappers = "[class*='faq'], [class*='accordion'], [class*='collapse']"

// markerOpenRe matches the opening tag of a question marker: a heading, a
// button, or an emphasized run. <br>/<body> do not match: after "b" only
// whitespace or the closing bracket is allowed.
var markerOpenRe = regexp.MustCompile(`(?i)<(h[1-6]|button|strong|b|em)(\s[^>]*)?>`)

// AccordionStrategy extracts FAQ pairs from accordion and collapsible
// widgets. Inside each wrapper, question markers are scanned in document
// order; the answer is whatever sits between one marker and the next.
// Both sides must clear the minimum length so decorative buttons and
// emphasis runs don't produce noise candidates.
type AccordionStrategy struct{}

// NewAccordionStrategy creates a new AccordionStrategy.
func NewAccordionStrategy() *AccordionStrategy {
	return &AccordionStrategy{}
}

// Name returns the strategy's identifier.
func (s *AccordionStrategy) Name() faqdoc.StrategyName {
	return faqdoc.StrategyAccordion
}

// Extract scans every wrapper whose class mentions faq, accordion or
// collapse. Nested wrappers can emit the same pair twice; the pipeline's
// deduplication keeps the first.
func (s *AccordionStrategy) Extract(html string) []faqdoc.FAQItem {
	doc := parseDoc(html)
	if doc == nil {
		return nil
	}

	var items []faqdoc.FAQItem
	doc.Find(accordionWrappers).Each(func(_ int, wrapper *goquery.Selection) {
		fragment, err := wrapper.Html()
		if err != nil {
			return
		}
		items = append(items, scanMarkers(fragment)...)
	})
	return items
}

// marker is one question marker located inside a wrapper fragment.
type marker struct {
	start, end int // full element extent in the fragment
	text       string
}

// findMarkers locates question markers and their closing tags. Markers
// with no closing tag are dropped rather than guessed at.
func findMarkers(fragment string) []marker {
	lower := strings.ToLower(fragment)
	opens := markerOpenRe.FindAllStringSubmatchIndex(fragment, -1)

	markers := make([]marker, 0, len(opens))
	for _, m := range opens {
		tag := strings.ToLower(fragment[m[2]:m[3]])

		closeIdx := strings.Index(lower[m[1]:], "</"+tag)
		if closeIdx == -1 {
			continue
		}
		closeStart := m[1] + closeIdx
		gt := strings.IndexByte(lower[closeStart:], '>')
		if gt == -1 {
			continue
		}

		markers = append(markers, marker{
			start: m[0],
			end:   closeStart + gt + 1,
			text:  faqdoc.CleanText(fragment[m[1]:closeStart]),
		})
	}
	return markers
}

// scanMarkers turns a wrapper fragment into candidate pairs: each marker's
// text is the question, the content up to the next marker (or fragment
// end) is the answer.
func scanMarkers(fragment string) []faqdoc.FAQItem {
	markers := findMarkers(fragment)

	var items []faqdoc.FAQItem
	for i, m := range markers {
		if len(m.text) < faqdoc.MinFieldLen {
			continue
		}

		answerEnd := len(fragment)
		if i+1 < len(markers) {
			answerEnd = markers[i+1].start
		}
		if answerEnd <= m.end {
			continue
		}

		raw := faqdoc.Truncate(fragment[m.end:answerEnd], faqdoc.MaxAnswerLen)
		answer := faqdoc.CleanText(raw)
		if len(answer) < faqdoc.MinFieldLen {
			continue
		}

		items = append(items, faqdoc.FAQItem{
			Question:   m.text,
			Answer:     answer,
			AnswerHTML: strings.TrimSpace(raw),
		})
	}
	return items
}
