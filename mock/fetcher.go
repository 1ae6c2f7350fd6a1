package mock

import (
	"context"

	"github.com/Birds-of-Eden/faqdoc"
)

var _ faqdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of faqdoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}

var _ faqdoc.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of faqdoc.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *faqdoc.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *faqdoc.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

var _ faqdoc.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of faqdoc.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if l.WaitFn != nil {
		return l.WaitFn(ctx, domain)
	}
	return nil
}
