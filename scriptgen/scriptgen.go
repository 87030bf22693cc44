// Package scriptgen calls the script-generation model: artwork image and
// metadata in, raw dialogue script out.
package scriptgen

import "context"

// Request describes one artwork to write a script for.
type Request struct {
	Image  Image
	Title  string
	Artist string
}

// Generator produces a raw dialogue script for an artwork. Retry and
// transport policy live behind this interface, not in the pipeline.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Settings provide the concrete implementation with its endpoint config.
type Settings struct {
	Model   string
	APIKey  string
	BaseURL string
}
