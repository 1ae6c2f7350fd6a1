// Package goquery implements the FAQ extraction strategies and the
// aggregation pipeline on top of a real HTML parse tree. Strategies that
// need boundary detection across sibling subtrees (headings, inline Q/A
// markers) fall back to linear regexp scans over the raw document; Go's
// RE2 engine keeps those scans free of catastrophic backtracking.
package goquery

import (
	"strings"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/PuerkitoBio/goquery"
)

// parseDoc parses raw HTML into a document. Returns nil when parsing is
// impossible; callers degrade to "no match".
func parseDoc(html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	return doc
}

// nodeText returns the cleaned text of a selection. The node's inner HTML
// is routed through the shared normalizer so every strategy cleans captured
// fragments the same way.
func nodeText(sel *goquery.Selection) string {
	h, err := sel.Html()
	if err != nil {
		return ""
	}
	return faqdoc.CleanText(h)
}

// captureAnswer returns the raw answer fragment of a selection, truncated
// to MaxAnswerLen at capture time, together with its cleaned text.
func captureAnswer(sel *goquery.Selection) (raw, text string) {
	h, err := sel.Html()
	if err != nil {
		return "", ""
	}
	raw = faqdoc.Truncate(h, faqdoc.MaxAnswerLen)
	return raw, faqdoc.CleanText(raw)
}

// blockRules describes a vendor FAQ block convention: a repeated wrapper
// plus class markers for the question and answer elements inside it.
type blockRules struct {
	Wrapper  string
	Question string
	Answer   string
}

// extractBlocks runs the generic vendor-block driver. Question precedence:
// the vendor's question marker, else the first subordinate heading.
// Answer precedence: the vendor's answer marker, else the first paragraph
// or div inside the block.
func extractBlocks(html string, rules blockRules) []faqdoc.FAQItem {
	doc := parseDoc(html)
	if doc == nil {
		return nil
	}

	var items []faqdoc.FAQItem
	doc.Find(rules.Wrapper).Each(func(_ int, block *goquery.Selection) {
		qSel := block.Find(rules.Question).First()
		if qSel.Length() == 0 {
			qSel = block.Find("h2, h3, h4, h5, h6").First()
		}
		aSel := block.Find(rules.Answer).First()
		if aSel.Length() == 0 {
			aSel = block.Find("p, div").First()
		}
		if qSel.Length() == 0 || aSel.Length() == 0 {
			return
		}

		question := nodeText(qSel)
		raw, answer := captureAnswer(aSel)
		if question == "" || answer == "" {
			return
		}

		items = append(items, faqdoc.FAQItem{
			Question:   question,
			Answer:     answer,
			AnswerHTML: raw,
		})
	})
	return items
}
