package faqmine

import "context"

// CompletionRequest is a single-turn prompt for a language model.
type CompletionRequest struct {
	System string
	User   string
}

// Completer sends a prompt to a language model and returns its text reply.
type Completer interface {
	// Complete returns the model's reply.
	// Returns EINVALID if the prompt is empty.
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}
