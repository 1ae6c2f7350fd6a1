package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/Birds-of-Eden/faqdoc/crawl"
	"github.com/Birds-of-Eden/faqdoc/goquery"
	"github.com/Birds-of-Eden/faqdoc/htmltomarkdown"
	faqhttp "github.com/Birds-of-Eden/faqdoc/http"
	"github.com/Birds-of-Eden/faqdoc/rod"
	faqslog "github.com/Birds-of-Eden/faqdoc/slog"
	"github.com/Birds-of-Eden/faqdoc/sqlite"
	"github.com/Birds-of-Eden/faqdoc/trafilatura"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ExtractionService faqdoc.ExtractionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("faqdoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'faqdoc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set FAQDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.ExtractionService = sqlite.NewExtractionService(m.DB)
	deps.DB = m.DB
	deps.Extractions = m.ExtractionService
	deps.Sitemaps = faqhttp.NewSitemapService(nil)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Meta = trafilatura.NewMetaExtractor()

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	var extractor faqdoc.FAQExtractor = goquery.NewExtractor()
	if cli.Verbose {
		extractor = faqslog.NewLoggingExtractor(extractor, logger)
	}
	deps.Extractor = extractor

	// A fetcher is only needed when the source is remote.
	needFetcher := cmd == "crawl" || (cmd == "extract" && isRemote(cli.Extract.Source))
	if needFetcher {
		render := cli.Extract.Render
		if cmd == "crawl" {
			render = cli.Crawl.Render
		}

		var fetcher faqdoc.Fetcher
		if render {
			f, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = f
		} else {
			fetcher = faqhttp.NewFetcher()
		}
		defer fetcher.Close()

		if cli.Verbose {
			fetcher = faqslog.NewLoggingFetcher(fetcher, logger)
		}
		deps.Fetcher = fetcher

		if cmd == "crawl" {
			deps.Crawler = &crawl.Crawler{
				Sitemaps:    deps.Sitemaps,
				Fetcher:     fetcher,
				Extractor:   extractor,
				Meta:        deps.Meta,
				Extractions: deps.Extractions,
				RateLimiter: crawl.NewDomainLimiter(cli.Crawl.RPS),
				Concurrency: cli.Crawl.Concurrency,
			}
		}
	}

	return kongCtx.Run(deps)
}

// isRemote reports whether the extract source is a URL rather than a
// local file or stdin.
func isRemote(source string) bool {
	return strings.Contains(source, "://")
}

func defaultDBPath() string {
	if path := os.Getenv("FAQDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "faqdoc.db"
	}
	dir := filepath.Join(home, ".faqdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "faqdoc.db")
}
