package gemini

import (
	"context"

	gemini "github.com/google/generative-ai-go/genai"

	"github.com/bububa/adventure-agents/advisory"
	"github.com/bububa/adventure-agents/trip"
)

// Synthesizer builds the final trip plan using a Gemini model in JSON
// mode.
type Synthesizer struct {
	*gemini.Client

	Config
}

var _ advisory.Synthesizer = (*Synthesizer)(nil)

func NewSynthesizer(client *gemini.Client, opts ...Option) *Synthesizer {
	ret := &Synthesizer{Client: client}
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.model == "" {
		ret.model = DefaultModel
	}
	return ret
}

func (s *Synthesizer) Name() string {
	return "Recommendation Agent"
}

// Synthesize runs one model call over the search results and weather
// analysis. Failures are reported as trip.AdvisoryError so the caller
// can fall back.
func (s *Synthesizer) Synthesize(ctx context.Context, tripCtx *trip.Context, results *trip.SearchResult, weather *trip.WeatherAnalysis) (*trip.Plan, error) {
	ret := new(trip.Plan)
	prompt := synthesisPrompt(tripCtx, results, weather)
	if err := generateJSON(ctx, s.Client, &s.Config, prompt, ret); err != nil {
		return nil, trip.NewAdvisoryError("synthesis", err)
	}
	return ret, nil
}
