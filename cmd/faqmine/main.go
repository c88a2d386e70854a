package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/ahocorasick"
	faqcsv "github.com/fwojciec/faqmine/csv"
	faqexcel "github.com/fwojciec/faqmine/excelize"
	"github.com/fwojciec/faqmine/fs"
	"github.com/fwojciec/faqmine/gemini"
	"github.com/fwojciec/faqmine/goquery"
	"github.com/fwojciec/faqmine/heuristic"
	"github.com/fwojciec/faqmine/htmltomarkdown"
	faqjson "github.com/fwojciec/faqmine/json"
	"github.com/fwojciec/faqmine/lingua"
	"github.com/fwojciec/faqmine/llm"
	"github.com/fwojciec/faqmine/openai"
	"github.com/fwojciec/faqmine/readability"
	faqslog "github.com/fwojciec/faqmine/slog"
	"github.com/fwojciec/faqmine/sqlite"
	"github.com/fwojciec/faqmine/trafilatura"
	"github.com/fwojciec/faqmine/yaml"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
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

	// Services for end-to-end testing.
	Runs faqmine.RunService

	// Now stamps exports. Defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Now:    time.Now,
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
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("faqmine"),
		kong.Description("Extract FAQs from crawled website content."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'faqmine --help' to see available commands")
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
	cmd = kongCtx.Selected().Name

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cmd != "extract" || cli.Extract.Save {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set FAQMINE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.Runs = sqlite.NewRunService(m.DB)
		deps.DB = m.DB
		deps.Runs = m.Runs
	}

	switch cmd {
	case "extract":
		if err := m.wireExtract(ctx, &cli.Extract, deps); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", faqmine.ErrorMessage(err))
			return err
		}
	case "export":
		deps.Exporter = newExporter(cli.Export.Format, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// wireExtract builds the page source, extractor and exporter for the
// extract command.
func (m *Main) wireExtract(ctx context.Context, c *ExtractCmd, deps *Dependencies) error {
	cfg := &yaml.Config{}
	if c.Taxonomy != "" {
		var err error
		if cfg, err = yaml.LoadConfig(c.Taxonomy); err != nil {
			return err
		}
	}

	source := fs.NewPageSource(c.Path)
	switch c.MainContent {
	case "readability":
		source.ContentExtractor = readability.NewExtractor()
	case "trafilatura":
		source.ContentExtractor = trafilatura.NewExtractor()
	}
	deps.Pages = faqslog.NewLoggingPageSource(source, c.Path, deps.Logger)

	engine, err := newEngine(c, cfg)
	if err != nil {
		return err
	}

	var extractor faqmine.FAQExtractor = engine
	mode := c.Mode
	switch c.Mode {
	case faqmine.ModeOpenAI, faqmine.ModeGemini:
		completer, err := newCompleter(ctx, c, c.Mode)
		if err != nil {
			return err
		}
		extractor = newLLMExtractor(c, faqslog.NewLoggingCompleter(completer, deps.Logger))
	case faqmine.ModeAuto:
		provider := ""
		switch {
		case c.OpenAIKey != "":
			provider = faqmine.ModeOpenAI
		case c.GeminiKey != "":
			provider = faqmine.ModeGemini
		}
		if provider == "" {
			deps.Logger.Warn("no language model key set, using heuristics")
			mode = faqmine.ModeHeuristic
			break
		}
		completer, err := newCompleter(ctx, c, provider)
		if err != nil {
			return err
		}
		extractor = &faqmine.Fallback{
			Primary:   newLLMExtractor(c, faqslog.NewLoggingCompleter(completer, deps.Logger)),
			Secondary: engine,
		}
	}
	deps.Extractor = faqslog.NewLoggingExtractor(extractor, mode, deps.Logger)
	deps.Exporter = newExporter(c.Format, deps.Logger)
	return nil
}

// newEngine creates the heuristic engine with markup extractors first and
// the text extractors after them.
func newEngine(c *ExtractCmd, cfg *yaml.Config) (*heuristic.Engine, error) {
	languages, err := lingua.NewDetector(cfg.Languages...)
	if err != nil {
		return nil, err
	}
	kw := cfg.Keywords()

	extractors := append(goquery.MarkupExtractors(), heuristic.TextExtractors(kw)...)
	engine := heuristic.NewEngine(extractors)
	engine.Validator = faqmine.Validator{Keywords: kw}
	engine.Scorer = faqmine.Scorer{Keywords: kw}
	engine.Categorizer = ahocorasick.NewCategorizer(cfg.Taxonomy())
	engine.Languages = languages
	engine.Converter = htmltomarkdown.NewConverter()
	if c.MinContent > 0 {
		engine.MinContentLength = c.MinContent
	}
	if c.Concurrency > 0 {
		engine.Concurrency = c.Concurrency
	}
	return engine, nil
}

func newLLMExtractor(c *ExtractCmd, completer faqmine.Completer) *llm.Extractor {
	extractor := llm.NewExtractor(completer)
	if c.RateLimit > 0 {
		extractor.Limiter = rate.NewLimiter(rate.Limit(c.RateLimit), 1)
	}
	if c.MinContent > 0 {
		extractor.MinContentLength = c.MinContent
	}
	if c.Concurrency > 0 {
		extractor.Concurrency = c.Concurrency
	}
	return extractor
}

// newCompleter connects to the language model provider.
func newCompleter(ctx context.Context, c *ExtractCmd, provider string) (faqmine.Completer, error) {
	switch provider {
	case faqmine.ModeOpenAI:
		if c.OpenAIKey == "" {
			return nil, faqmine.Errorf(faqmine.EINVALID, "OPENAI_API_KEY not set")
		}
		model := c.Model
		if model == "" {
			model = openai.DefaultModel
		}
		return openai.NewCompleter(openai.NewClient(c.OpenAIKey, c.OpenAIBaseURL), model), nil
	case faqmine.ModeGemini:
		if c.GeminiKey == "" {
			return nil, faqmine.Errorf(faqmine.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		model := c.Model
		if model == "" {
			model = gemini.DefaultModel
		}
		return gemini.NewCompleter(client, model), nil
	}
	return nil, faqmine.Errorf(faqmine.EINVALID, "unknown provider %q", provider)
}

// newExporter returns the exporter for format, wrapped with logging.
func newExporter(format string, logger *slog.Logger) faqmine.Exporter {
	var exporter faqmine.Exporter
	switch format {
	case "csv":
		exporter = faqcsv.NewExporter()
	case "xlsx":
		exporter = faqexcel.NewExporter()
	default:
		exporter = faqjson.NewExporter()
	}
	return faqslog.NewLoggingExporter(exporter, logger)
}

func defaultDBPath() string {
	if path := os.Getenv("FAQMINE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "faqmine.db"
	}
	dir := filepath.Join(home, ".faqmine")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "faqmine.db")
}
