package faqmine

import (
	"context"
	"time"
)

// Extraction modes recorded on a Run.
const (
	ModeHeuristic = "heuristic"
	ModeOpenAI    = "openai"
	ModeGemini    = "gemini"
	ModeAuto      = "auto"
)

// Run is one stored extraction over a crawl export.
type Run struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Mode      string    `json:"mode"`
	PageCount int       `json:"pageCount"`
	FAQCount  int       `json:"faqCount"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "run source required")
	}
	if r.Mode == "" {
		return Errorf(EINVALID, "run mode required")
	}
	return nil
}

// RunService represents a service for managing stored extraction runs.
type RunService interface {
	// CreateRun stores a run together with its FAQs in extraction order.
	// ID and CreatedAt are assigned when empty.
	CreateRun(ctx context.Context, run *Run, faqs []*FAQItem) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// FindFAQs retrieves stored FAQs matching the filter in extraction order.
	FindFAQs(ctx context.Context, filter FAQFilter) ([]*FAQItem, error)

	// DeleteRun permanently removes a run and its FAQs.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// FAQFilter represents a filter for FindFAQs.
type FAQFilter struct {
	RunID      *string     `json:"runId"`
	Category   *string     `json:"category"`
	Confidence *Confidence `json:"confidence"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
