package main

import (
	"fmt"

	"github.com/fwojciec/faqmine"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	if err := checkOutput(c.Format, c.Output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		if faqmine.ErrorCode(err) == faqmine.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'faqmine runs' to see stored runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	faqs, err := deps.Runs.FindFAQs(deps.Ctx, faqmine.FAQFilter{RunID: &run.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	meta := faqmine.ExportMetadata{SourceURL: run.Source, ExportedAt: deps.now()}
	if err := writeExport(deps, c.Output, faqs, meta); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write export: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	if c.Output != "" {
		fmt.Fprintf(deps.Stderr, "Exported %d FAQs to %s\n", len(faqs), c.Output)
	}
	return nil
}
