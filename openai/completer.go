// Package openai implements faqmine.Completer using the OpenAI chat
// completions API or any compatible endpoint.
package openai

import (
	"context"

	"github.com/fwojciec/faqmine"
	openai "github.com/sashabaranov/go-openai"
)

// Request defaults.
const (
	DefaultModel     = "gpt-4o-mini"
	DefaultMaxTokens = 2000
)

// ChatClient is the subset of *openai.Client used by Completer.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Ensure Completer implements faqmine.Completer at compile time.
var _ faqmine.Completer = (*Completer)(nil)

// Ensure *openai.Client satisfies ChatClient at compile time.
var _ ChatClient = (*openai.Client)(nil)

// Completer implements faqmine.Completer using chat completions.
type Completer struct {
	client ChatClient
	model  string
}

// NewClient creates an OpenAI client. A non-empty baseURL points it at a
// compatible endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}

// NewCompleter creates a new Completer. An empty model selects DefaultModel.
func NewCompleter(client ChatClient, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Model returns the model the completer sends requests to.
func (c *Completer) Model() string {
	return c.model
}

// Complete sends the prompt as a system and user message pair and returns
// the first choice.
func (c *Completer) Complete(ctx context.Context, req *faqmine.CompletionRequest) (string, error) {
	if req == nil || req.User == "" {
		return "", faqmine.Errorf(faqmine.EINVALID, "prompt required")
	}

	resp, err := c.client.CreateChatCompletion(ctx, BuildRequest(c.model, req))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", faqmine.Errorf(faqmine.EINTERNAL, "openai returned empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// BuildRequest returns the chat completion request for a prompt.
func BuildRequest(model string, req *faqmine.CompletionRequest) openai.ChatCompletionRequest {
	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.User})

	return openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.3,
		MaxTokens:   DefaultMaxTokens,
	}
}
