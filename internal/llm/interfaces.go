package llm

//go:generate mockgen -source=interfaces.go -destination=../mock/llm_client_mock.go -package=mock

import "context"

// Client talks to an OpenAI-compatible chat completion server, such as a
// local LMStudio instance.
type Client interface {
	// CheckConnection verifies the server is reachable.
	CheckConnection(ctx context.Context) error

	// Models lists the models the server currently exposes.
	Models(ctx context.Context) ([]ModelInfo, error)

	// Chat performs a blocking completion over the whole message history.
	Chat(ctx context.Context, messages []ChatMessage) (Completion, error)

	// ChatStream performs a streaming completion, invoking onDelta for every
	// content fragment as it arrives. The returned completion carries the
	// assembled reply.
	ChatStream(ctx context.Context, messages []ChatMessage, onDelta func(delta string)) (Completion, error)
}
