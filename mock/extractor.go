// Package mock provides function-field mock implementations of faqdoc
// interfaces for testing.
package mock

import "github.com/Birds-of-Eden/faqdoc"

var _ faqdoc.FAQExtractor = (*FAQExtractor)(nil)

// FAQExtractor is a mock implementation of faqdoc.FAQExtractor.
type FAQExtractor struct {
	ExtractFAQsFn func(html string) ([]faqdoc.FAQItem, *faqdoc.ExtractStats)
}

func (e *FAQExtractor) ExtractFAQs(html string) ([]faqdoc.FAQItem, *faqdoc.ExtractStats) {
	return e.ExtractFAQsFn(html)
}

var _ faqdoc.StrategyExtractor = (*StrategyExtractor)(nil)

// StrategyExtractor is a mock implementation of faqdoc.StrategyExtractor.
type StrategyExtractor struct {
	ExtractFn func(html string) []faqdoc.FAQItem
	NameFn    func() faqdoc.StrategyName
}

func (s *StrategyExtractor) Extract(html string) []faqdoc.FAQItem {
	return s.ExtractFn(html)
}

func (s *StrategyExtractor) Name() faqdoc.StrategyName {
	return s.NameFn()
}

var _ faqdoc.MetaExtractor = (*MetaExtractor)(nil)

// MetaExtractor is a mock implementation of faqdoc.MetaExtractor.
type MetaExtractor struct {
	ExtractMetaFn func(html string) (*faqdoc.PageMeta, error)
}

func (e *MetaExtractor) ExtractMeta(html string) (*faqdoc.PageMeta, error) {
	return e.ExtractMetaFn(html)
}
