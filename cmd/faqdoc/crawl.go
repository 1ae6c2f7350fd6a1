package main

import (
	"fmt"
	"regexp"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/Birds-of-Eden/faqdoc/crawl"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	var urlFilter *faqdoc.URLFilter
	if len(c.Filter) > 0 {
		urlFilter = &faqdoc.URLFilter{}
		for _, pattern := range c.Filter {
			re, err := regexp.Compile(pattern)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: invalid filter pattern %q: %v\n", pattern, err)
				return err
			}
			urlFilter.Include = append(urlFilter.Include, re)
		}
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case crawl.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  saved %s (%d items)\n", crawl.TruncateURL(event.URL, 60), event.Items)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", crawl.TruncateURL(event.URL, 60), event.Error)
		}
	}

	result, err := deps.Crawler.CrawlSite(deps.Ctx, c.URL, urlFilter, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Crawled %d pages: %d FAQ sets saved (%d items), %d without FAQs, %d failed\n",
		result.Pages, result.Saved, result.Items, result.Skipped, result.Failed)

	return nil
}
