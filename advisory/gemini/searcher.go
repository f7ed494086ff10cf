package gemini

import (
	"context"

	gemini "github.com/google/generative-ai-go/genai"

	"github.com/bububa/adventure-agents/advisory"
	"github.com/bububa/adventure-agents/trip"
)

// Searcher finds activities using a Gemini model in JSON mode. The
// kid-focused variant narrows discovery to child-suitable options.
type Searcher struct {
	*gemini.Client

	Config
	kidFocused bool
}

var _ advisory.Searcher = (*Searcher)(nil)

func NewSearcher(client *gemini.Client, opts ...Option) *Searcher {
	return newSearcher(client, false, opts...)
}

// NewKidSearcher returns a searcher specialized in kid-friendly
// activities.
func NewKidSearcher(client *gemini.Client, opts ...Option) *Searcher {
	return newSearcher(client, true, opts...)
}

func newSearcher(client *gemini.Client, kidFocused bool, opts ...Option) *Searcher {
	ret := &Searcher{
		Client:     client,
		kidFocused: kidFocused,
	}
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.model == "" {
		ret.model = DefaultModel
	}
	return ret
}

func (s *Searcher) Name() string {
	if s.kidFocused {
		return "Kid-Friendly Activity Agent"
	}
	return "Activity Search Agent"
}

func (s *Searcher) stage() string {
	if s.kidFocused {
		return "kid-friendly-search"
	}
	return "activity-search"
}

// Search runs one model call for the trip context. Failures are
// reported as trip.AdvisoryError so the caller can fall back.
func (s *Searcher) Search(ctx context.Context, tripCtx *trip.Context, weatherSummary string) (*trip.SearchResult, error) {
	ret := new(trip.SearchResult)
	prompt := searchPrompt(tripCtx, weatherSummary, s.kidFocused)
	if err := generateJSON(ctx, s.Client, &s.Config, prompt, ret); err != nil {
		return nil, trip.NewAdvisoryError(s.stage(), err)
	}
	return ret, nil
}
