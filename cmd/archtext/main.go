package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/Quintaneishon/archtext"
	"github.com/Quintaneishon/archtext/crawl"
	"github.com/Quintaneishon/archtext/fs"
	"github.com/Quintaneishon/archtext/gemini"
	"github.com/Quintaneishon/archtext/goquery"
	"github.com/Quintaneishon/archtext/htmltomarkdown"
	archtexthttp "github.com/Quintaneishon/archtext/http"
	"github.com/Quintaneishon/archtext/readability"
	"github.com/Quintaneishon/archtext/rod"
	archslog "github.com/Quintaneishon/archtext/slog"
	"github.com/Quintaneishon/archtext/sqlite"
	"github.com/Quintaneishon/archtext/trafilatura"
	"github.com/Quintaneishon/archtext/yaml"
	"github.com/alecthomas/kong"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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

	// Services for end-to-end testing.
	Results archtext.ResultService
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
		kong.Name("archtext"),
		kong.Description("Extract article text from monthly web archives."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'archtext --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	cmd := kongCtx.Command()
	if cmd == "extract" || cmd == "results" {
		if m.Results == nil {
			m.DB = sqlite.NewDB(m.DBPath)
			if err := m.DB.Open(); err != nil {
				fmt.Fprintf(stderr, "Hint: Set ARCHTEXT_DB or --db to use a different database path\n")
				return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
			}
			defer m.Close()
			m.Results = sqlite.NewResultService(m.DB)
		}
		deps.Results = m.Results
	}

	switch cmd {
	case "extract":
		c := cli.Extract

		site := yaml.DefaultSite()
		if c.Layout != "" {
			site, err = yaml.LoadSite(c.Layout)
			if err != nil {
				return fmt.Errorf("failed to load layout: %w", err)
			}
		}

		fetcher, err := newFetcher(c.Browser, c.Timeout, stderr)
		if err != nil {
			return err
		}
		var f archtext.Fetcher = crawl.NewRetryFetcher(fetcher, c.Retries, logger)
		f = archslog.NewLoggingFetcher(f, logger)
		defer f.Close()

		store := archtext.MultiResultStore{fs.NewResultWriter(c.Out), m.Results}

		deps.Runner = &crawl.Runner{
			Pipeline: &crawl.Pipeline{
				Fetcher: f,
				Parser:  goquery.NewParser(),
				Decomposer: &archtext.Decomposer{
					Layout:     site.Layout,
					Normalizer: archtext.NewNormalizer(),
				},
				URLTemplate: site.URLTemplate,
			},
			Store:       archslog.NewLoggingResultStore(store, logger),
			Limiter:     crawl.NewHostLimiter(c.Rate),
			Concurrency: c.Concurrency,
			Logger:      logger,
		}

		if c.Tokens {
			tc, err := gemini.NewTokenCounter(gemini.DefaultModel)
			if err != nil {
				return fmt.Errorf("failed to create token counter: %w", err)
			}
			deps.Tokens = tc
		}

	case "page <url>":
		c := cli.Page

		fetcher, err := newFetcher(c.Browser, c.Timeout, stderr)
		if err != nil {
			return err
		}
		f := archslog.NewLoggingFetcher(fetcher, logger)
		defer f.Close()

		pages := &crawl.PageExtractor{
			Fetcher:    f,
			Parser:     goquery.NewParser(),
			Normalizer: archtext.NewNormalizer(),
		}
		switch c.Engine {
		case "trafilatura":
			pages.Extractor = trafilatura.NewExtractor()
		case "readability":
			pages.Extractor = readability.NewExtractor()
		}
		if pages.Extractor != nil {
			var opts []htmltomarkdown.Option
			if c.Links {
				opts = append(opts, htmltomarkdown.WithLinks())
			}
			pages.Converter = htmltomarkdown.NewConverter(opts...)
		}
		deps.Pages = pages
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the browser fetcher when browser is set and the plain
// HTTP fetcher otherwise.
func newFetcher(browser bool, timeout time.Duration, stderr io.Writer) (archtext.Fetcher, error) {
	if !browser {
		return archtexthttp.NewFetcher(archtexthttp.WithTimeout(timeout)), nil
	}
	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

func defaultDBPath() string {
	if path := os.Getenv("ARCHTEXT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "archtext.db"
	}
	dir := filepath.Join(home, ".archtext")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "archtext.db")
}
