// Package crawl orchestrates FAQ harvesting across a site: sitemap
// discovery, rate-limited fetching, extraction, and storage of pages
// that yield an eligible FAQ set.
package crawl

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/Birds-of-Eden/faqdoc"
	"golang.org/x/sync/errgroup"
)

// Frontier sizing for sitemap-driven crawls.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Crawler orchestrates crawling a site for FAQ content.
type Crawler struct {
	Sitemaps    faqdoc.SitemapService
	Fetcher     faqdoc.Fetcher
	Extractor   faqdoc.FAQExtractor
	Meta        faqdoc.MetaExtractor
	Extractions faqdoc.ExtractionService
	RateLimiter faqdoc.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Pages   int // URLs processed
	Saved   int // extractions stored
	Skipped int // pages without an eligible FAQ set
	Failed  int // fetch or storage failures
	Items   int // total FAQ items saved
}

// ProgressEvent reports progress during a crawl operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Items     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSaved
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	url   string
	title string
	items []faqdoc.FAQItem
	err   error
}

// CrawlSite discovers a site's URLs via its sitemap, fetches each page,
// and stores an extraction for every page that yields an eligible FAQ
// set. Pages below the eligibility threshold are skipped, not failed.
// The progress callback, if provided, receives events as crawling proceeds.
func (c *Crawler) CrawlSite(ctx context.Context, baseURL string, filter *faqdoc.URLFilter, progress ProgressFunc) (*Result, error) {
	discovered, err := c.Sitemaps.DiscoverURLs(ctx, baseURL, filter)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}

	// The frontier strips fragments and drops duplicates; sitemaps in the
	// wild repeat URLs across sub-sitemaps.
	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	for _, u := range discovered {
		frontier.Push(u)
	}
	var urls []string
	for {
		u, ok := frontier.Pop()
		if !ok {
			break
		}
		urls = append(urls, u)
	}

	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	total := len(urls)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan pageResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, pageURL := range urls {
			pageURL := pageURL
			g.Go(func() error {
				resultCh <- c.processURL(gctx, pageURL)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{Pages: total}
	for page := range resultCh {
		completed.Add(1)
		done := int(completed.Load())

		if page.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: done,
					Total:     total,
					URL:       page.url,
					Error:     page.err,
				})
			}
			continue
		}

		if len(page.items) < faqdoc.MinSchemaItems {
			result.Skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressSkipped,
					Completed: done,
					Total:     total,
					URL:       page.url,
				})
			}
			continue
		}

		extraction := &faqdoc.Extraction{
			SourceURL: page.url,
			Title:     page.title,
			Items:     page.items,
		}
		if err := c.Extractions.CreateExtraction(ctx, extraction); err != nil {
			// An unchanged page is not a failure; the stored copy is current.
			if faqdoc.ErrorCode(err) == faqdoc.ECONFLICT {
				result.Skipped++
				if progress != nil {
					progress(ProgressEvent{
						Type:      ProgressSkipped,
						Completed: done,
						Total:     total,
						URL:       page.url,
					})
				}
				continue
			}
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: done,
					Total:     total,
					URL:       page.url,
					Error:     err,
				})
			}
			continue
		}

		result.Saved++
		result.Items += len(page.items)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressSaved,
				Completed: done,
				Total:     total,
				URL:       page.url,
				Items:     len(page.items),
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

// processURL fetches a single URL and extracts its FAQ items.
func (c *Crawler) processURL(ctx context.Context, pageURL string) pageResult {
	result := pageResult{url: pageURL}

	if c.RateLimiter != nil {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			result.err = err
			return result
		}
		if err := c.RateLimiter.Wait(ctx, parsed.Host); err != nil {
			result.err = err
			return result
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, pageURL, c.Fetcher.Fetch, delays)
	if err != nil {
		result.err = err
		return result
	}

	items, _ := c.Extractor.ExtractFAQs(html)
	result.items = items

	if c.Meta != nil && len(items) >= faqdoc.MinSchemaItems {
		if meta, err := c.Meta.ExtractMeta(html); err == nil {
			result.title = meta.Title
		}
	}

	return result
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
