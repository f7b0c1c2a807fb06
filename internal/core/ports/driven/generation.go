package driven

import "context"

// GenerationService produces answer text from a system instruction and
// user content.
//
// Implementations may include:
//   - OpenAI / Azure OpenAI chat completions
//   - Anthropic (Claude)
//   - Ollama (local models)
type GenerationService interface {
	// Generate produces a completion for the given system instruction
	// and user content.
	Generate(ctx context.Context, system, user string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Close releases resources.
	Close() error
}
