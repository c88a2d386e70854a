package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/faqmine"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	runs, err := deps.Runs.FindRuns(deps.Ctx, faqmine.RunFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'faqmine extract --save' to store one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s  %d pages  %d faqs\n",
			r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Mode, r.Source, r.PageCount, r.FAQCount)
	}
	return nil
}
