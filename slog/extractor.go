// Package slog provides logging decorators for faqdoc interfaces using
// the standard library's structured logger. The extraction engine itself
// performs no output; observability is injected here.
package slog

import (
	"log/slog"
	"slices"
	"time"

	"github.com/Birds-of-Eden/faqdoc"
)

// Ensure LoggingExtractor implements faqdoc.FAQExtractor at compile time.
var _ faqdoc.FAQExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a FAQExtractor and logs one structured record per
// invocation: candidate counts per strategy, the final deduplicated count,
// and the extracted questions.
type LoggingExtractor struct {
	next   faqdoc.FAQExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next faqdoc.FAQExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractFAQs delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractFAQs(html string) ([]faqdoc.FAQItem, *faqdoc.ExtractStats) {
	begin := time.Now()
	items, stats := e.next.ExtractFAQs(html)

	// Report the strategies that actually ran, in stable order.
	names := make([]faqdoc.StrategyName, 0, len(stats.Candidates))
	for name := range stats.Candidates {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]any, 0, 2*len(names)+6)
	for _, name := range names {
		attrs = append(attrs, "candidates."+string(name), stats.Candidates[name])
	}
	attrs = append(attrs,
		"total", stats.Total,
		"questions", stats.Questions,
		"duration", time.Since(begin),
	)
	e.logger.Info("faq extraction", attrs...)

	return items, stats
}
