// Package completion serializes access to the local generation model:
// lifecycle with progress, one in-flight request, cooldown, and stale-result
// discard. Results reach the UI only through the event bus.
package completion

import "context"

// Generator is the external model capability. Calls may be slow, fail, or
// panic; the engine absorbs all of that at this boundary.
type Generator interface {
	// Load prepares the model for generation, reporting progress 0-100.
	Load(ctx context.Context, progress func(int)) error

	// Unload releases the model. Safe to call when not loaded.
	Unload()

	// Generate produces a completion for the prompt. An empty string with a
	// nil error is a valid "no output" outcome.
	Generate(ctx context.Context, prompt string) (string, error)
}
