package llm

import (
	"context"
	"errors"
)

// ErrModel wraps every failure to obtain a completion: network errors,
// timeouts, and empty responses all surface as ErrModel so callers can apply
// their fallback policy without inspecting the cause.
var ErrModel = errors.New("model completion failed")

// Options tunes a single completion request. Zero values fall back to the
// client's configured defaults.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// Client is the narrow contract the pipeline has on a language model.
type Client interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
}
