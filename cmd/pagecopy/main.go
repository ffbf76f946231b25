package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagecopy"
	"github.com/fwojciec/pagecopy/clipboard"
	"github.com/fwojciec/pagecopy/fs"
	"github.com/fwojciec/pagecopy/goquery"
	"github.com/fwojciec/pagecopy/htmltomarkdown"
	pchttp "github.com/fwojciec/pagecopy/http"
	"github.com/fwojciec/pagecopy/readability"
	"github.com/fwojciec/pagecopy/rod"
	"github.com/fwojciec/pagecopy/scrape"
	pcslog "github.com/fwojciec/pagecopy/slog"
	"github.com/fwojciec/pagecopy/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if cerr := m.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Failed runs have already printed their status line.
		var perr *pagecopy.Error
		if !errors.As(err, &perr) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when the target is "-". Set before calling Run().
	Stdin io.Reader

	// Clipboard replaces the publisher selected by flags when set.
	Clipboard pagecopy.Clipboard

	// Fetcher loads target documents. Opened by Run().
	Fetcher pagecopy.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
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
		kong.Name("pagecopy"),
		kong.Description("Copy the content of a web page to the clipboard"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagecopy --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := pcslog.NewLogger(stderr, cli.Verbose)
	deps.Actions = newRegistry(&cli.Article, logger)

	cmd := strings.Fields(kongCtx.Command())[0]
	if cmd == "actions" {
		return kongCtx.Run(deps)
	}

	fetcher, err := m.openFetcher(cli, stderr)
	if err != nil {
		return err
	}
	m.Fetcher = fetcher

	clip := m.Clipboard
	if clip == nil {
		clip = newClipboard(cli, stdout)
	}
	if cli.Print {
		// stdout carries the payload only.
		deps.Stdout = stderr
	}

	deps.Runner = pcslog.NewLoggingRunner(&scrape.Runner{
		Actions:   deps.Actions,
		Fetcher:   pcslog.NewLoggingFetcher(fetcher, logger),
		Clipboard: pcslog.NewLoggingClipboard(clip, logger),
	}, logger)

	return kongCtx.Run(deps)
}

// openFetcher returns the document loader for the run. Web targets go
// through plain HTTP unless rendering was requested.
func (m *Main) openFetcher(cli *CLI, stderr io.Writer) (pagecopy.Fetcher, error) {
	var web pagecopy.Fetcher
	if cli.Render {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		web = f
	} else {
		web = pchttp.NewFetcher(pchttp.WithTimeout(cli.Timeout))
	}
	return scrape.NewSourceFetcher(web, fs.NewFetcher(m.Stdin)), nil
}

func newClipboard(cli *CLI, stdout io.Writer) pagecopy.Clipboard {
	switch {
	case cli.Print:
		return clipboard.NewWriter(stdout)
	case cli.Output != "":
		return fs.NewPublisher(cli.Output)
	default:
		return clipboard.NewSystem()
	}
}

// newRegistry registers every action, configured from the article flags.
func newRegistry(article *ArticleCmd, logger *slog.Logger) *scrape.Registry {
	pageURL := webURL(article.Target)

	a := &scrape.ArticleAction{Extractor: textExtractor(article.Engine, pageURL)}
	if article.Format == pagecopy.FormatMarkdown {
		var opts []htmltomarkdown.Option
		if pageURL != nil {
			opts = append(opts, htmltomarkdown.WithDomain(pageURL.Scheme+"://"+pageURL.Host))
		}
		a.Converter = htmltomarkdown.NewConverter(opts...)
	}
	t := &scrape.TableAction{Extractor: goquery.NewTableExtractor()}

	return scrape.NewRegistry(
		pcslog.NewLoggingAction(a, logger),
		pcslog.NewLoggingAction(t, logger),
	)
}

func textExtractor(engine string, pageURL *url.URL) pagecopy.TextExtractor {
	switch engine {
	case EngineTrafilatura:
		return trafilatura.NewExtractor(trafilatura.WithPageURL(pageURL))
	case EngineReadability:
		return readability.NewExtractor(readability.WithPageURL(pageURL))
	default:
		return goquery.NewContentExtractor()
	}
}

// webURL parses a web target, returning nil for local targets.
func webURL(target string) *url.URL {
	if !scrape.IsWebURL(target) {
		return nil
	}
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil || u.Host == "" {
		return nil
	}
	return u
}
