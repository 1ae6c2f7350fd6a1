package goquery

import (
	"github.com/Birds-of-Eden/faqdoc"
)

var _ faqdoc.StrategyExtractor = (*RankMathStrategy)(nil)

// RankMathStrategy extracts FAQ pairs authored with the Rank Math FAQ
// block. Same shape as the Yoast convention with Rank Math's markers:
//   - rank-math-list-item for the repeated Q/A wrapper
//   - rank-math-question / rank-math-answer inside each wrapper
type RankMathStrategy struct{}

// NewRankMathStrategy creates a new RankMathStrategy.
func NewRankMathStrategy() *RankMathStrategy {
	return &RankMathStrategy{}
}

// Name returns the strategy's identifier.
func (s *RankMathStrategy) Name() faqdoc.StrategyName {
	return faqdoc.StrategyRankMath
}

// Extract returns one candidate item per list-item wrapper.
func (s *RankMathStrategy) Extract(html string) []faqdoc.FAQItem {
	return extractBlocks(html, blockRules{
		Wrapper:  "[class*='rank-math-list-item']",
		Question: "[class*='rank-math-question']",
		Answer:   "[class*='rank-math-answer']",
	})
}
