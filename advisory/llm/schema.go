package llm

import (
	"encoding/json"

	"github.com/bububa/adventure-agents/schema"
	"github.com/bububa/adventure-agents/trip"
)

// ActivityQuery is the structured user input for the search agents.
type ActivityQuery struct {
	schema.Base
	// Location destination to search activities in.
	Location string `json:"location" jsonschema:"title=location,description=Trip destination." validate:"required"`
	// Dates trip date range presentation.
	Dates string `json:"dates" jsonschema:"title=dates,description=Trip dates as 'start to end'."`
	// ParticipantAges ages of everyone in the group.
	ParticipantAges []int `json:"participant_ages" jsonschema:"title=participant_ages,description=Ages of all participants."`
	// WeatherSummary weather overview for the trip period.
	WeatherSummary string `json:"weather_summary" jsonschema:"title=weather_summary,description=Weather summary for the trip period."`
}

func NewActivityQuery(tripCtx *trip.Context, weatherSummary string) *ActivityQuery {
	return &ActivityQuery{
		Location:        tripCtx.Query.Location,
		Dates:           tripCtx.Query.Dates(),
		ParticipantAges: tripCtx.Query.ParticipantAges,
		WeatherSummary:  weatherSummary,
	}
}

func (q ActivityQuery) String() string {
	bs, _ := json.Marshal(q)
	return string(bs)
}

// PlanRequest is the structured user input for the synthesis agent.
type PlanRequest struct {
	schema.Base
	// Query the original trip query.
	Query trip.Query `json:"query" jsonschema:"title=query,description=The original trip query."`
	// Activities discovered activity candidates to evaluate.
	Activities []trip.ActivityResult `json:"activities" jsonschema:"title=activities,description=Discovered activity candidates."`
	// SearchSummary outcome of the discovery stage.
	SearchSummary string `json:"search_summary" jsonschema:"title=search_summary,description=Summary of the activity search."`
	// Weather the weather analysis for the trip period.
	Weather trip.WeatherAnalysis `json:"weather" jsonschema:"title=weather,description=Weather analysis for the trip period."`
}

func NewPlanRequest(tripCtx *trip.Context, results *trip.SearchResult, weather *trip.WeatherAnalysis) *PlanRequest {
	return &PlanRequest{
		Query:         tripCtx.Query,
		Activities:    results.Activities,
		SearchSummary: results.SearchSummary,
		Weather:       *weather,
	}
}

func (r PlanRequest) String() string {
	bs, _ := json.Marshal(r)
	return string(bs)
}
