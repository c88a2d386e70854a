// Package gemini implements faqmine.Completer using Google Gemini.
package gemini

import (
	"context"

	"github.com/fwojciec/faqmine"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements faqmine.Completer at compile time.
var _ faqmine.Completer = (*Completer)(nil)

// Completer implements faqmine.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Model returns the model the completer sends requests to.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends the prompt to Gemini and returns the reply text.
func (c *Completer) Complete(ctx context.Context, req *faqmine.CompletionRequest) (string, error) {
	if req == nil || req.User == "" {
		return "", faqmine.Errorf(faqmine.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.User}},
		}},
		BuildConfig(req.System),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", faqmine.Errorf(faqmine.EINTERNAL, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", faqmine.Errorf(faqmine.EINTERNAL, "gemini returned empty response")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Replies are requested as JSON.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.3)
	config := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}
