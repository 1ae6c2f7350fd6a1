package faqdoc

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered pages. The context carries the per-request time
// budget; the extraction core has no cancellation of its own, so hosts
// bound input size and time here.
type Fetcher interface {
	// Fetch returns the HTML of the page at url.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// MetaExtractor pulls page-level metadata (not FAQ content) out of HTML.
// It feeds the stored extraction record and the schema envelope; failures
// here don't block FAQ extraction.
type MetaExtractor interface {
	ExtractMeta(html string) (*PageMeta, error)
}

// PageMeta holds article-level metadata for a fetched page.
type PageMeta struct {
	Title       string
	Description string
}

// Converter converts HTML fragments to Markdown.
// Used when exporting stored FAQ lists as readable documents.
type Converter interface {
	Convert(html string) (string, error)
}
