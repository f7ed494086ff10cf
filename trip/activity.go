package trip

import (
	"encoding/json"

	"github.com/bububa/adventure-agents/schema"
)

// ActivityResult is a single discovered activity candidate.
type ActivityResult struct {
	schema.Base `json:"-" yaml:"-"`
	// Name activity name.
	Name string `json:"name" yaml:"name" jsonschema:"title=name,description=Activity name." validate:"required"`
	// Description what the activity is.
	Description string `json:"description" yaml:"description" jsonschema:"title=description,description=Activity description."`
	// Location where the activity takes place.
	Location string `json:"location" yaml:"location" jsonschema:"title=location,description=Activity location."`
	// AgeRange [min, max] suitable ages if applicable.
	AgeRange []int `json:"age_range,omitempty" yaml:"age_range,omitempty" jsonschema:"title=age_range,description=Suitable age range as [min age, max age]."`
	// PriceRange e.g. "$10 - $25" or "Free".
	PriceRange string `json:"price_range,omitempty" yaml:"price_range,omitempty" jsonschema:"title=price_range,description=Price range."`
	// Duration e.g. "1-2 hours".
	Duration string `json:"duration,omitempty" yaml:"duration,omitempty" jsonschema:"title=duration,description=Typical duration."`
	// WeatherDependent true if the activity depends on the weather.
	WeatherDependent bool `json:"weather_dependent" yaml:"weather_dependent" jsonschema:"title=weather_dependent,description=Whether the activity depends on the weather."`
	// SourceURL where the activity was found.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty" jsonschema:"title=source_url,description=Source URL of the activity."`
}

func (a ActivityResult) String() string {
	bs, _ := json.Marshal(a)
	return string(bs)
}

// SearchResult is an ordered activity batch from one search.
// Transient: consumed by the synthesis stage of the same run.
type SearchResult struct {
	schema.Base `json:"-" yaml:"-"`
	// Activities discovered activity candidates.
	Activities []ActivityResult `json:"activities" yaml:"activities" jsonschema:"title=activities,description=List of discovered activities."`
	// SearchSummary one-line description of the search outcome.
	SearchSummary string `json:"search_summary" yaml:"search_summary" jsonschema:"title=search_summary,description=Summary of the search outcome."`
}

func (s SearchResult) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Empty reports whether the search produced no activities.
func (s SearchResult) Empty() bool {
	return len(s.Activities) == 0
}
