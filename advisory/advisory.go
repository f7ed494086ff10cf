// Package advisory defines the activity discovery and plan synthesis
// capabilities consumed by the planner. Implementations live in the
// llm and gemini subpackages.
package advisory

import (
	"context"

	"github.com/bububa/adventure-agents/trip"
)

// Searcher discovers activity candidates for a trip. The weather
// summary is passed so searches can favor weather-appropriate options.
type Searcher interface {
	// Name identifies the searcher in trace events.
	Name() string
	// Search returns activity candidates for the trip context.
	Search(ctx context.Context, tripCtx *trip.Context, weatherSummary string) (*trip.SearchResult, error)
}

// Synthesizer evaluates discovered activities against the trip context
// and weather, and produces the final plan.
type Synthesizer interface {
	// Name identifies the synthesizer in trace events.
	Name() string
	// Synthesize builds a plan from the search results and weather analysis.
	Synthesize(ctx context.Context, tripCtx *trip.Context, results *trip.SearchResult, weather *trip.WeatherAnalysis) (*trip.Plan, error)
}
