package llm

import (
	"context"
	"fmt"

	"github.com/bububa/adventure-agents/agents"
	"github.com/bububa/adventure-agents/components/systemprompt/cot"
	"github.com/bububa/adventure-agents/trip"
)

// KidSearchStage names the kid-friendly search stage in errors.
const KidSearchStage = "kid-friendly-search"

const kidSearcherName = "Kid-Friendly Activity Agent"

// KidSearcher finds activities suitable for groups that include
// children. It receives handoffs from the routing stage when any
// participant is under the child age threshold. Like Searcher, it is
// read-only after construction and runs each call on its own
// single-use agent.
type KidSearcher struct {
	Config
}

func NewKidSearcher(opts ...Option) *KidSearcher {
	ret := new(KidSearcher)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	return ret
}

func (s *KidSearcher) Name() string {
	return kidSearcherName
}

func (s *KidSearcher) newAgent() *agents.Agent[ActivityQuery, trip.SearchResult] {
	return agents.NewAgent[ActivityQuery, trip.SearchResult](
		agents.WithClient(s.client),
		agents.WithModel(s.model),
		agents.WithTemperature(s.temperature),
		agents.WithMaxTokens(s.maxTokens),
		agents.WithName(kidSearcherName),
		agents.WithSystemPromptGenerator(cot.New(
			cot.WithBackground([]string{
				"- You are a specialized search assistant focused on finding activities suitable for children.",
			}),
			cot.WithSteps([]string{
				"- Focus on activities explicitly marked as kid-friendly, family-oriented, or suitable for the specific ages of the children involved.",
				"- Look for parks, playgrounds, interactive museums, age-appropriate workshops, and family-friendly restaurants.",
				"- Use the web search results from the extra context when present.",
				"- For each promising activity extract: name, a description highlighting child-friendly aspects, location, specific age appropriateness, price range mentioning child or family discounts if found, duration, weather dependency, and source URL.",
				"- Provide a concise summary focusing on the suitability for the children in the group.",
			}),
			cot.WithOutputInstructs([]string{
				"- Return between 3 and 5 activities when possible.",
			}),
		)),
	)
}

// Search runs a fresh agent once for the trip context. Failures are
// reported as trip.AdvisoryError so the caller can fall back.
func (s *KidSearcher) Search(ctx context.Context, tripCtx *trip.Context, weatherSummary string) (*trip.SearchResult, error) {
	agent := s.newAgent()
	if s.searchTool != nil {
		queries := []string{
			fmt.Sprintf("kid friendly activities in %s", tripCtx.Query.Location),
			fmt.Sprintf("family activities in %s", tripCtx.Query.Location),
			fmt.Sprintf("%s with kids", tripCtx.Query.Location),
		}
		if provider, err := s.webSearchContext(ctx, queries); err == nil && provider != nil {
			agent.RegisterSystemPromptContextProvider(provider)
		}
	}
	input := NewActivityQuery(tripCtx, weatherSummary)
	output := new(trip.SearchResult)
	if err := agent.Run(ctx, input, output, nil); err != nil {
		return nil, trip.NewAdvisoryError(KidSearchStage, err)
	}
	return output, nil
}
