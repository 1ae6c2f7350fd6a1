package main

import (
	"context"
	"io"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/Birds-of-Eden/faqdoc/crawl"
	"github.com/Birds-of-Eden/faqdoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	DB          *sqlite.DB
	Extractions faqdoc.ExtractionService
	Extractor   faqdoc.FAQExtractor
	Meta        faqdoc.MetaExtractor
	Sitemaps    faqdoc.SitemapService
	Converter   faqdoc.Converter
	Fetcher     faqdoc.Fetcher
	Crawler     *crawl.Crawler
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log extraction and fetch details to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract FAQs from a URL, file, or stdin"`
	Crawl   CrawlCmd   `cmd:"" help:"Crawl a site and store FAQ extractions"`
	List    ListCmd    `cmd:"" help:"List stored extractions"`
	Export  ExportCmd  `cmd:"" help:"Export a stored extraction as Markdown"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored extraction"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source string `arg:"" help:"URL, file path, or '-' for stdin"`
	Render bool   `short:"r" help:"Render the page in a headless browser before extraction"`
	Save   bool   `short:"s" help:"Store the extraction in the database"`
	Items  bool   `help:"Print extracted items instead of FAQPage JSON-LD"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string   `arg:"" help:"Site URL to crawl"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Render      bool     `short:"r" help:"Render pages in a headless browser before extraction"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	RPS         float64  `default:"1.0" help:"Requests per second per domain"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Filter by source URL"`
	Limit int    `default:"20" help:"Maximum extractions to show"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID string `arg:"" help:"Extraction ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Extraction ID"`
	Force bool   `help:"Confirm deletion"`
}
