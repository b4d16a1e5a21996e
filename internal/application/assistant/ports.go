// internal/application/assistant/ports.go
package assistant

import "context"

// Generator is the outbound port to the hosted generative-language API.
type Generator interface {
	// GenerateText returns a plain-text completion for prompt.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// GenerateRecommendations returns a completion constrained to the
	// recommendation JSON schema (responseText + recommendations array).
	// The raw JSON string is returned; parsing stays on this side of the port.
	GenerateRecommendations(ctx context.Context, prompt string) (string, error)
}
