package main

import (
	"fmt"

	"github.com/fwojciec/faqmine"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	filter := faqmine.FAQFilter{RunID: &c.ID}
	if c.Category != "" {
		filter.Category = &c.Category
	}
	if c.Confidence != "" {
		confidence, ok := faqmine.ParseConfidence(c.Confidence)
		if !ok {
			err := faqmine.Errorf(faqmine.EINVALID, "unknown confidence %q, use high, medium or low", c.Confidence)
			fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
			return err
		}
		filter.Confidence = &confidence
	}

	if _, err := deps.Runs.FindRunByID(deps.Ctx, c.ID); err != nil {
		if faqmine.ErrorCode(err) == faqmine.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'faqmine runs' to see stored runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	faqs, err := deps.Runs.FindFAQs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	if len(faqs) == 0 {
		fmt.Fprintln(deps.Stdout, "No FAQs found.")
		return nil
	}

	for i, f := range faqs {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		fmt.Fprintf(deps.Stdout, "Q: %s\nA: %s\n", f.Question, f.Answer)
		fmt.Fprintf(deps.Stdout, "   [%s, %s, %s confidence", f.Category, f.Language, f.Confidence)
		if f.IsIncomplete {
			fmt.Fprint(deps.Stdout, ", incomplete")
		}
		if f.IsDuplicate {
			fmt.Fprint(deps.Stdout, ", duplicate")
		}
		fmt.Fprintf(deps.Stdout, "] %s\n", f.SourceURL)
	}
	return nil
}
