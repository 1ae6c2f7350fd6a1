package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Birds-of-Eden/faqdoc"
)

// Ensure LoggingFetcher implements faqdoc.Fetcher at compile time.
var _ faqdoc.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging of URL, size and duration.
type LoggingFetcher struct {
	next   faqdoc.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next faqdoc.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch", "url", url, "err", err, "duration", time.Since(begin))
		return "", err
	}

	f.logger.Info("fetch", "url", url, "bytes", len(html), "duration", time.Since(begin))
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
