package main

import (
	"fmt"

	"github.com/fwojciec/faqmine"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	if err := checkOutput(c.Format, c.Output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	pages, err := deps.Pages.Pages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	faqs, err := deps.Extractor.ExtractFAQs(deps.Ctx, pages, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	source := c.Source
	if source == "" && len(pages) > 0 {
		source = pages[0].URL
	}
	meta := faqmine.ExportMetadata{SourceURL: source, ExportedAt: deps.now()}

	var run *faqmine.Run
	if c.Save {
		run = &faqmine.Run{
			Source:    source,
			Mode:      c.Mode,
			PageCount: len(pages),
			FAQCount:  len(faqs),
		}
		if run.Source == "" {
			run.Source = c.Path
		}
		if err := deps.Runs.CreateRun(deps.Ctx, run, faqs); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
			return err
		}
	}

	if err := writeExport(deps, c.Output, faqs, meta); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write export: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	s := faqmine.Summarize(faqs)
	fmt.Fprintf(deps.Stderr, "Extracted %d FAQs from %d pages (%d high, %d medium, %d low, %d incomplete, %d duplicates)\n",
		s.Total, len(pages), s.High, s.Medium, s.Low, s.Incomplete, s.Duplicates)
	if run != nil {
		fmt.Fprintf(deps.Stderr, "Saved run %s\n", run.ID)
	}
	return nil
}
