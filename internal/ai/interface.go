package ai

import "context"

// Request carries one structured-generation call. Every agent in the pipeline
// demands syntactically valid JSON back; the provider is configured accordingly.
type Request struct {
	// System is the role instruction ("You are a hotel recommendation expert...").
	System string

	// Prompt is the task body including the candidate list and output contract.
	Prompt string

	// Temperature controls output variability; each agent picks its own.
	Temperature float32

	// MaxOutputTokens bounds the response size; 0 means the model default.
	MaxOutputTokens int32
}

// Generator defines the contract for the generative text model.
// This interface allows swapping providers (Gemini, OpenAI, etc.) and makes the
// agents testable without network calls.
type Generator interface {
	// GenerateJSON runs the request in JSON mode and returns the raw response
	// text, stripped of markdown fencing. It does not parse or validate it.
	GenerateJSON(ctx context.Context, req Request) (string, error)
}
