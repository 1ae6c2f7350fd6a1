package crawl

import (
	"strings"
	"sync"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/Birds-of-Eden/faqdoc/bloom"
)

// Compile-time interface verification.
var _ faqdoc.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO URL frontier with Bloom filter deduplication.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []string
}

// NewFrontier creates a new Frontier sized for n expected URLs
// with the given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// stripFragment removes the fragment portion of a URL. URLs differing only
// by fragment address the same page.
func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// Push adds a URL to the frontier.
// Returns false if the URL has already been seen.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	url = stripFragment(url)
	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)
	f.queue = append(f.queue, url)
	return true
}

// Pop returns the next URL in insertion order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued before.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(stripFragment(url))
}
