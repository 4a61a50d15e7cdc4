package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/campscout"
	"github.com/fwojciec/campscout/crawl"
	"github.com/fwojciec/campscout/extract"
	"github.com/fwojciec/campscout/fs"
	"github.com/fwojciec/campscout/goquery"
	camphttp "github.com/fwojciec/campscout/http"
	"github.com/fwojciec/campscout/rod"
	campslog "github.com/fwojciec/campscout/slog"
	"github.com/fwojciec/campscout/sqlite"
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
	CampsiteService campscout.CampsiteService
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
		kong.Name("campscout"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'campscout --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CAMPSCOUT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	m.CampsiteService = sqlite.NewCampsiteService(m.DB)
	deps.DB = m.DB
	deps.Campsites = m.CampsiteService
	if cli.Verbose {
		deps.Campsites = campslog.NewLoggingCampsiteService(deps.Campsites, logger)
	}
	deps.Sitemaps = camphttp.NewSitemapService(nil)

	if cmd == "crawl" {
		var fetcher campscout.Fetcher = camphttp.NewFetcher()
		if cli.Verbose {
			fetcher = campslog.NewLoggingFetcher(fetcher, logger)
		}
		defer fetcher.Close()

		rps := 1.0
		if cli.Crawl.Delay > 0 {
			rps = 1.0 / cli.Crawl.Delay
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:     fetcher,
			Extractor:   extract.NewExtractor(goquery.NewParser()),
			Campsites:   deps.Campsites,
			RateLimiter: crawl.NewDomainLimiter(rps),
			Concurrency: cli.Crawl.Concurrency,
		}

		if cli.Crawl.Screenshot {
			renderer, err := rod.NewRenderer()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer renderer.Close()

			deps.Snapshotter = &crawl.Snapshotter{
				Renderer:  renderer,
				Blobs:     fs.NewBlobStore(screenshotDir(), "file://"+screenshotDir()),
				Campsites: deps.Campsites,
			}
		}
	}

	if cmd == "discover" {
		fetcher := camphttp.NewFetcher()
		defer fetcher.Close()

		deps.Discoverer = &crawl.Discoverer{
			Fetcher:  fetcher,
			Parser:   goquery.NewParser(),
			Sitemaps: deps.Sitemaps,
			Limiter:  crawl.NewDomainLimiter(1.0),
			MaxDepth: cli.Discover.MaxDepth,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CAMPSCOUT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "campscout.db"
	}
	dir := filepath.Join(home, ".campscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "campscout.db")
}

func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".campscout", "screenshots")
}
