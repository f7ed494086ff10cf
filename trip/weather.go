package trip

import (
	"encoding/json"

	"github.com/bububa/adventure-agents/schema"
)

// WeatherAnalysis is the weather capability output for one run.
// Produced once per run and read-only thereafter.
type WeatherAnalysis struct {
	schema.Base `json:"-" yaml:"-"`
	// Summary weather summary text.
	Summary string `json:"summary" yaml:"summary" jsonschema:"title=summary,description=Weather summary for the trip period." validate:"required"`
	// TemperatureRange [min, max] in °C, min <= max.
	TemperatureRange [2]float64 `json:"temperature_range" yaml:"temperature_range" jsonschema:"title=temperature_range,description=Minimum and maximum temperature in Celsius."`
	// PrecipitationChance 0-100.
	PrecipitationChance float64 `json:"precipitation_chance" yaml:"precipitation_chance" jsonschema:"title=precipitation_chance,description=Chance of precipitation in percent." validate:"gte=0,lte=100"`
	// RecommendedClothing ordered clothing suggestions.
	RecommendedClothing []string `json:"recommended_clothing" yaml:"recommended_clothing" jsonschema:"title=recommended_clothing,description=Clothing recommendations."`
	// WeatherWarnings optional warnings.
	WeatherWarnings []string `json:"weather_warnings,omitempty" yaml:"weather_warnings,omitempty" jsonschema:"title=weather_warnings,description=Weather warnings if any."`
}

func (w WeatherAnalysis) String() string {
	bs, _ := json.Marshal(w)
	return string(bs)
}

// MinTemperature returns the low end of the temperature range.
func (w WeatherAnalysis) MinTemperature() float64 {
	return w.TemperatureRange[0]
}

// MaxTemperature returns the high end of the temperature range.
func (w WeatherAnalysis) MaxTemperature() float64 {
	return w.TemperatureRange[1]
}
