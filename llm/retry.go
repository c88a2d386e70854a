package llm

import (
	"context"
	"time"

	"github.com/fwojciec/faqmine"
)

// DefaultRetryDelays returns the backoff delays for completion retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// CompleteWithRetry calls the completer, retrying failed attempts after each
// of the given delays. Invalid requests are not retried.
func CompleteWithRetry(ctx context.Context, c faqmine.Completer, req *faqmine.CompletionRequest, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := c.Complete(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if faqmine.ErrorCode(err) == faqmine.EINVALID {
			break
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
