package deps

import (
	"context"

	"library-ai-gateway/internal/model"
)

// LLMClient abstracts chat-completion calls against the inference endpoint.
type LLMClient interface {
	// Chat performs a one-shot completion and returns the full reply text.
	Chat(ctx context.Context, messages []model.ChatMessage, temperature float64) (string, error)
	// ChatStream performs a streamed completion, concatenating fragments in
	// arrival order. Partial content is discarded on error.
	ChatStream(ctx context.Context, messages []model.ChatMessage, temperature float64) (string, error)
}

// ModelLister reports how many models the endpoint serves. Used by the
// health endpoint to verify connectivity.
type ModelLister interface {
	ListModels(ctx context.Context) (int, error)
}

// StreamSink receives each streamed fragment as it arrives, for operator
// visibility. Implementations must not assume they can influence the
// accumulated result.
type StreamSink interface {
	Fragment(s string)
}
