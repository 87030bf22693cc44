// Package voice synthesizes dialogue lines to audio and resolves speaker
// labels to voice identities.
package voice

import "context"

// Synthesizer converts one utterance to audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}

// Settings configure a concrete synthesizer implementation.
type Settings struct {
	APIKey  string
	BaseURL string
	ModelID string
}
