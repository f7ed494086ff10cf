package llm

import (
	"context"
	"fmt"

	"github.com/bububa/adventure-agents/agents"
	"github.com/bububa/adventure-agents/components/systemprompt/cot"
	"github.com/bububa/adventure-agents/trip"
)

// SearchStage names the general activity search stage in errors.
const SearchStage = "activity-search"

const searcherName = "Activity Search Agent"

// Searcher finds general activities for a trip using a structured
// output agent. An optional web search tool grounds the agent with
// live results. The configuration is read-only after construction;
// each Search call runs on its own single-use agent, so no
// conversation state survives the call and concurrent searches never
// share memory or a prompt generator.
type Searcher struct {
	Config
}

func NewSearcher(opts ...Option) *Searcher {
	ret := new(Searcher)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	return ret
}

func (s *Searcher) Name() string {
	return searcherName
}

func (s *Searcher) newAgent() *agents.Agent[ActivityQuery, trip.SearchResult] {
	return agents.NewAgent[ActivityQuery, trip.SearchResult](
		agents.WithClient(s.client),
		agents.WithModel(s.model),
		agents.WithTemperature(s.temperature),
		agents.WithMaxTokens(s.maxTokens),
		agents.WithName(searcherName),
		agents.WithSystemPromptGenerator(cot.New(
			cot.WithBackground([]string{
				"- You research and find suitable activities for a trip based on the provided details.",
			}),
			cot.WithSteps([]string{
				"- Review the trip details (location, dates, participant ages) and the weather summary.",
				"- Brainstorm 3-5 relevant angles covering general activities, age-appropriate options for the group, weather suitability, and local experiences.",
				"- Use the web search results from the extra context when present.",
				"- Extract and structure key information for each promising activity: name, description, location, age range, price range, duration, weather dependency, and source URL.",
				"- Compile the structured activity list and a concise summary of the search process and findings.",
			}),
			cot.WithOutputInstructs([]string{
				"- Return between 3 and 5 activities when possible.",
			}),
		)),
	)
}

// Search runs a fresh agent once for the trip context. Failures are
// reported as trip.AdvisoryError so the caller can fall back.
func (s *Searcher) Search(ctx context.Context, tripCtx *trip.Context, weatherSummary string) (*trip.SearchResult, error) {
	agent := s.newAgent()
	if s.searchTool != nil {
		queries := []string{
			fmt.Sprintf("things to do in %s", tripCtx.Query.Location),
			fmt.Sprintf("top attractions in %s", tripCtx.Query.Location),
			fmt.Sprintf("%s local experiences", tripCtx.Query.Location),
		}
		if provider, err := s.webSearchContext(ctx, queries); err == nil && provider != nil {
			agent.RegisterSystemPromptContextProvider(provider)
		}
	}
	input := NewActivityQuery(tripCtx, weatherSummary)
	output := new(trip.SearchResult)
	if err := agent.Run(ctx, input, output, nil); err != nil {
		return nil, trip.NewAdvisoryError(SearchStage, err)
	}
	return output, nil
}
