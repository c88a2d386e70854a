package mock

import (
	"context"

	"github.com/fwojciec/faqmine"
)

var _ faqmine.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of faqmine.PageSource.
type PageSource struct {
	PagesFn func(ctx context.Context) ([]*faqmine.PageContent, error)
}

func (s *PageSource) Pages(ctx context.Context) ([]*faqmine.PageContent, error) {
	return s.PagesFn(ctx)
}
