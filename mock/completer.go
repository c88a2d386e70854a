package mock

import (
	"context"

	"github.com/fwojciec/faqmine"
)

var _ faqmine.Completer = (*Completer)(nil)

// Completer is a mock implementation of faqmine.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req *faqmine.CompletionRequest) (string, error)
}

func (c *Completer) Complete(ctx context.Context, req *faqmine.CompletionRequest) (string, error) {
	return c.CompleteFn(ctx, req)
}
