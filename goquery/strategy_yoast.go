package goquery

import (
	"github.com/Birds-of-Eden/faqdoc"
)

var _ faqdoc.StrategyExtractor = (*YoastStrategy)(nil)

// YoastStrategy extracts FAQ pairs authored with the Yoast SEO FAQ block.
// Validated against the Gutenberg block markup of Yoast 14+.
//
// It targets the plugin's class markers:
//   - schema-faq-section for the repeated Q/A wrapper
//   - schema-faq-question / schema-faq-answer inside each wrapper
type YoastStrategy struct{}

// NewYoastStrategy creates a new YoastStrategy.
func NewYoastStrategy() *YoastStrategy {
	return &YoastStrategy{}
}

// Name returns the strategy's identifier.
func (s *YoastStrategy) Name() faqdoc.StrategyName {
	return faqdoc.StrategyYoast
}

// Extract returns one candidate item per FAQ section wrapper.
// Wrappers missing both a question marker and a subordinate heading, or
// both an answer marker and a paragraph, yield nothing.
func (s *YoastStrategy) Extract(html string) []faqdoc.FAQItem {
	return extractBlocks(html, blockRules{
		Wrapper:  "[class*='schema-faq-section']",
		Question: "[class*='schema-faq-question']",
		Answer:   "[class*='schema-faq-answer']",
	})
}
