package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/fs"
	"github.com/fwojciec/faqmine/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Runs      faqmine.RunService
	Pages     faqmine.PageSource
	Extractor faqmine.FAQExtractor
	Exporter  faqmine.Exporter
	Now       func() time.Time
}

func (d *Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now().UTC()
	}
	return time.Now().UTC()
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log debug output to stderr"`

	Extract ExtractCmd `cmd:"" help:"Extract FAQs from a crawl export"`
	Runs    RunsCmd    `cmd:"" help:"List stored extraction runs"`
	Show    ShowCmd    `cmd:"" help:"Print the FAQs of a stored run"`
	Export  ExportCmd  `cmd:"" help:"Export the FAQs of a stored run"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored run"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Path        string  `arg:"" help:"Crawl export: JSON or JSONL file, or a directory of pages"`
	Mode        string  `short:"m" enum:"heuristic,openai,gemini,auto" default:"heuristic" help:"Extraction mode (heuristic, openai, gemini, auto)"`
	Format      string  `short:"f" enum:"json,csv,xlsx" default:"json" help:"Output format (json, csv, xlsx)"`
	Output      string  `short:"o" help:"Output file (default stdout)"`
	Source      string  `help:"Source URL recorded in the export (default first page URL)"`
	Taxonomy    string  `type:"path" help:"YAML file with categories, keywords and languages"`
	MainContent string  `enum:"none,readability,trafilatura" default:"none" help:"Reduce HTML pages to their main content (none, readability, trafilatura)"`
	Concurrency int     `short:"c" default:"4" help:"Pages processed in parallel"`
	MinContent  int     `default:"100" help:"Minimum page length in characters"`
	Save        bool    `short:"s" help:"Store the run in the database"`
	Model       string  `help:"Language model name"`
	RateLimit   float64 `default:"1" help:"Language model requests per second"`

	OpenAIKey     string `name:"openai-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIBaseURL string `name:"openai-base-url" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API base URL"`
	GeminiKey     string `name:"gemini-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
}

// RunsCmd is the "runs" subcommand.
type RunsCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum number of runs to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID         string `arg:"" help:"Run ID"`
	Category   string `help:"Only FAQs in this category"`
	Confidence string `help:"Only FAQs with this confidence (high, medium, low)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	ID     string `arg:"" help:"Run ID"`
	Format string `short:"f" enum:"json,csv,xlsx" default:"json" help:"Output format (json, csv, xlsx)"`
	Output string `short:"o" help:"Output file (default stdout)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Run ID"`
	Force bool   `help:"Confirm deletion"`
}

// writeExport writes faqs to output, or to stdout when output is empty.
// Files are replaced atomically.
func writeExport(deps *Dependencies, output string, faqs []*faqmine.FAQItem, meta faqmine.ExportMetadata) error {
	if output == "" {
		return deps.Exporter.Export(deps.Stdout, faqs, meta)
	}

	f, err := fs.CreateFile(output)
	if err != nil {
		return err
	}
	defer func() { _ = f.Abort() }()

	if err := deps.Exporter.Export(f, faqs, meta); err != nil {
		return err
	}
	return f.Commit()
}

// checkOutput rejects binary formats written to a terminal stream.
func checkOutput(format, output string) error {
	if format == "xlsx" && output == "" {
		return faqmine.Errorf(faqmine.EINVALID, "xlsx output requires --output")
	}
	return nil
}
