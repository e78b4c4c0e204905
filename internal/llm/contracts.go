// Package llm defines the completion-service boundary. The analyzer depends
// on the Completer interface so the remote provider can be substituted in
// tests or pointed at any OpenAI-compatible endpoint.
package llm

import "context"

// Completer sends one prompt to a completion service and returns the raw
// reply text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
