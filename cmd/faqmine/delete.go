package main

import (
	"fmt"

	"github.com/fwojciec/faqmine"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return faqmine.Errorf(faqmine.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
		if faqmine.ErrorCode(err) == faqmine.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'faqmine runs' to see stored runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqmine.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
	return nil
}
