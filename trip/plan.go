package trip

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/bububa/adventure-agents/schema"
)

// RecommendationTarget is the number of recommendations a complete plan
// carries. Best effort: a plan is valid with fewer when not enough
// candidates exist.
const RecommendationTarget = 5

// ActivityRecommendation is an evaluated activity: the output of
// synthesis rather than discovery.
type ActivityRecommendation struct {
	schema.Base `json:"-" yaml:"-"`
	// Name activity name.
	Name string `json:"name" yaml:"name" jsonschema:"title=name,description=Activity name." validate:"required"`
	// Description what the activity is.
	Description string `json:"description" yaml:"description" jsonschema:"title=description,description=Activity description."`
	// Reasoning why this activity fits the group.
	Reasoning string `json:"reasoning" yaml:"reasoning" jsonschema:"title=reasoning,description=Why this activity is recommended for the group."`
	// BestTime suggested time of day.
	BestTime string `json:"best_time,omitempty" yaml:"best_time,omitempty" jsonschema:"title=best_time,description=Suggested time of day or day of trip."`
	// WeatherConsiderations weather notes for this activity.
	WeatherConsiderations []string `json:"weather_considerations" yaml:"weather_considerations" jsonschema:"title=weather_considerations,description=Weather considerations."`
	// PreparationTips what to prepare or bring.
	PreparationTips []string `json:"preparation_tips" yaml:"preparation_tips" jsonschema:"title=preparation_tips,description=Preparation tips."`
	// SourceURL preserved from the underlying activity result.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty" jsonschema:"title=source_url,description=Source URL of the activity."`
}

func (a ActivityRecommendation) String() string {
	bs, _ := json.Marshal(a)
	return string(bs)
}

// Plan is the terminal artifact of a planning run.
type Plan struct {
	schema.Base `json:"-" yaml:"-"`
	// Location destination name.
	Location string `json:"location" yaml:"location" jsonschema:"title=location,description=Destination." validate:"required"`
	// Dates date range presentation, e.g. "2025-12-01 to 2025-12-14".
	Dates string `json:"dates" yaml:"dates" jsonschema:"title=dates,description=Trip dates as 'start to end'."`
	// ParticipantsSummary e.g. "2 participants (ages: 32, 35)".
	ParticipantsSummary string `json:"participants_summary" yaml:"participants_summary" jsonschema:"title=participants_summary,description=Participant summary."`
	// WeatherSummary weather overview for the trip.
	WeatherSummary string `json:"weather_summary" yaml:"weather_summary" jsonschema:"title=weather_summary,description=Weather summary."`
	// RecommendedActivities evaluated recommendations, target length 5.
	RecommendedActivities []ActivityRecommendation `json:"recommended_activities" yaml:"recommended_activities" jsonschema:"title=recommended_activities,description=Recommended activities."`
	// PackingList deduplicated packing items.
	PackingList []string `json:"packing_list" yaml:"packing_list" jsonschema:"title=packing_list,description=Packing list."`
	// GeneralTips ordered travel tips.
	GeneralTips []string `json:"general_tips" yaml:"general_tips" jsonschema:"title=general_tips,description=General travel tips."`
}

// String renders the plan as YAML for display.
func (p Plan) String() string {
	bs, _ := yaml.Marshal(p)
	return string(bs)
}

// DedupePackingList removes duplicate packing items preserving the
// first occurrence order.
func (p *Plan) DedupePackingList() {
	seen := make(map[string]struct{}, len(p.PackingList))
	list := make([]string, 0, len(p.PackingList))
	for _, item := range p.PackingList {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		list = append(list, item)
	}
	p.PackingList = list
}
