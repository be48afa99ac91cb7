package adapter

import "context"

// ObjectiveSuggester produces a short objective text for a pastoral action
// theme. Implemented by the HTTP adapter over the configured
// text-generation service.
type ObjectiveSuggester interface {
	SuggestObjective(ctx context.Context, theme string) (string, error)
}
