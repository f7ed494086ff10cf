package llm

import (
	"context"

	"github.com/bububa/adventure-agents/agents"
	"github.com/bububa/adventure-agents/components/systemprompt/cot"
	"github.com/bububa/adventure-agents/trip"
)

// SynthesisStage names the plan synthesis stage in errors.
const SynthesisStage = "synthesis"

const synthesizerName = "Recommendation Agent"

// Synthesizer evaluates discovered activities and produces the final
// trip plan using a structured output agent. Read-only after
// construction; each Synthesize call runs on its own single-use agent.
type Synthesizer struct {
	Config
}

func NewSynthesizer(opts ...Option) *Synthesizer {
	ret := new(Synthesizer)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	return ret
}

func (s *Synthesizer) Name() string {
	return synthesizerName
}

func (s *Synthesizer) newAgent() *agents.Agent[PlanRequest, trip.Plan] {
	return agents.NewAgent[PlanRequest, trip.Plan](
		agents.WithClient(s.client),
		agents.WithModel(s.model),
		agents.WithTemperature(s.temperature),
		agents.WithMaxTokens(s.maxTokens),
		agents.WithName(synthesizerName),
		agents.WithSystemPromptGenerator(cot.New(
			cot.WithBackground([]string{
				"- You evaluate potential activities and create a final travel plan.",
			}),
			cot.WithSteps([]string{
				"- Evaluate each activity for suitability to the participant ages, appropriateness given the weather summary, group enjoyment potential, and practical considerations such as cost and duration.",
				"- Select the top 3-5 activities that best fit the group and conditions.",
				"- For each selected activity write a recommendation with clear reasoning, a suggested best time, weather considerations, preparation tips, and the preserved source URL.",
				"- Summarize the key weather information.",
				"- Generate a suggested packing list based on the weather and the selected activities.",
				"- Add general travel tips relevant to the location or type of trip.",
			}),
			cot.WithOutputInstructs([]string{
				"- Focus on creating a practical, enjoyable, and well-reasoned plan for the specific group.",
			}),
		)),
	)
}

// Synthesize runs a fresh agent once over the search results and
// weather analysis. Failures are reported as trip.AdvisoryError so the
// caller can fall back.
func (s *Synthesizer) Synthesize(ctx context.Context, tripCtx *trip.Context, results *trip.SearchResult, weather *trip.WeatherAnalysis) (*trip.Plan, error) {
	input := NewPlanRequest(tripCtx, results, weather)
	output := new(trip.Plan)
	if err := s.newAgent().Run(ctx, input, output, nil); err != nil {
		return nil, trip.NewAdvisoryError(SynthesisStage, err)
	}
	return output, nil
}
