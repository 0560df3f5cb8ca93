package ai

import (
	"context"
)

// TextGenerator defines the contract for chat-completion style generation.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type TextGenerator interface {
	// Generate produces a response for the given system prompt and
	// conversation history. History is expected to be a bounded window,
	// newest message last.
	Generate(ctx context.Context, systemPrompt string, history []Message) (string, error)
}
