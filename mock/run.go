package mock

import (
	"context"

	"github.com/fwojciec/faqmine"
)

var _ faqmine.RunService = (*RunService)(nil)

// RunService is a mock implementation of faqmine.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *faqmine.Run, faqs []*faqmine.FAQItem) error
	FindRunByIDFn func(ctx context.Context, id string) (*faqmine.Run, error)
	FindRunsFn    func(ctx context.Context, filter faqmine.RunFilter) ([]*faqmine.Run, error)
	FindFAQsFn    func(ctx context.Context, filter faqmine.FAQFilter) ([]*faqmine.FAQItem, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *faqmine.Run, faqs []*faqmine.FAQItem) error {
	return s.CreateRunFn(ctx, run, faqs)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*faqmine.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter faqmine.RunFilter) ([]*faqmine.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) FindFAQs(ctx context.Context, filter faqmine.FAQFilter) ([]*faqmine.FAQItem, error) {
	return s.FindFAQsFn(ctx, filter)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
