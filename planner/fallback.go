package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/bububa/adventure-agents/trip"
	"github.com/bububa/adventure-agents/weather"
)

// Time slots cycled by position when recommendations are generated
// mechanically rather than by a model.
var (
	paddingTimes  = []string{"Morning", "Late Morning", "Afternoon", "Late Afternoon", "Evening"}
	fallbackTimes = []string{"Morning", "Afternoon", "Evening", "Anytime", "Mid-day"}
)

// Fixed packing list and tips for the degenerate all-fallback plan.
var (
	fallbackPackingList = []string{"Comfortable clothing", "Walking shoes", "Water", "Snacks"}
	fallbackGeneralTips = []string{"Check weather forecast", "Bring essentials", "Have a great trip!"}
)

// FallbackWeather builds a deterministic local weather analysis. It
// never fails; the offline mock provider supplies the profile.
func FallbackWeather(location string, startDate string, endDate string) *trip.WeatherAnalysis {
	ret, _ := weather.NewMock().Analyze(context.Background(), location, startDate, endDate)
	return ret
}

// FallbackSearchResult builds a fixed catalog of generic,
// location-templated activities. It never fails and always supplies
// enough entries for a full plan.
func FallbackSearchResult(tripCtx *trip.Context) *trip.SearchResult {
	location := tripCtx.Query.Location
	return &trip.SearchResult{
		Activities: []trip.ActivityResult{
			{
				Name:             fmt.Sprintf("Walking Tour of %s", location),
				Description:      "Explore the city center and main attractions on foot",
				Location:         location,
				AgeRange:         []int{5, 99},
				PriceRange:       "Free - $30",
				Duration:         "2-3 hours",
				WeatherDependent: true,
			},
			{
				Name:             "Local Museum Visit",
				Description:      "Visit a popular local museum or cultural center",
				Location:         location,
				AgeRange:         []int{8, 99},
				PriceRange:       "$10 - $25",
				Duration:         "1-2 hours",
				WeatherDependent: false,
			},
			{
				Name:             "Scenic Viewpoint or Landmark",
				Description:      "Visit iconic landmarks and scenic viewing spots",
				Location:         location,
				AgeRange:         []int{5, 99},
				PriceRange:       "Free - $15",
				Duration:         "1-2 hours",
				WeatherDependent: true,
			},
			{
				Name:             "Local Food Experience",
				Description:      "Try local cuisine, food markets, or popular restaurants",
				Location:         location,
				AgeRange:         []int{12, 99},
				PriceRange:       "$15 - $50",
				Duration:         "1-3 hours",
				WeatherDependent: false,
			},
			{
				Name:             "Entertainment District",
				Description:      "Explore entertainment areas, theaters, or nightlife",
				Location:         location,
				AgeRange:         []int{18, 99},
				PriceRange:       "$20 - $80",
				Duration:         "2-4 hours",
				WeatherDependent: false,
			},
		},
		SearchSummary: fmt.Sprintf("Fallback activities suggested for %s", location),
	}
}

// FallbackPlan builds a minimal plan from whatever search result is
// available, with a fixed packing list and tips. It never fails.
func FallbackPlan(tripCtx *trip.Context, results *trip.SearchResult, weatherInfo *trip.WeatherAnalysis) *trip.Plan {
	count := len(results.Activities)
	if count > trip.RecommendationTarget {
		count = trip.RecommendationTarget
	}
	recommendations := make([]trip.ActivityRecommendation, 0, count)
	for i := 0; i < count; i++ {
		activity := results.Activities[i]
		considerations := []string{"Check weather before departure"}
		if !activity.WeatherDependent {
			considerations = []string{"Indoor activity - weather independent"}
		}
		recommendations = append(recommendations, trip.ActivityRecommendation{
			Name:                  activity.Name,
			Description:           activity.Description,
			Reasoning:             fmt.Sprintf("Selected as activity #%d for the trip - suitable for your group", i+1),
			BestTime:              fallbackTimes[i%len(fallbackTimes)],
			WeatherConsiderations: considerations,
			PreparationTips:       []string{"Bring essentials", "Arrive early", "Check operating hours"},
			SourceURL:             activity.SourceURL,
		})
	}
	return &trip.Plan{
		Location:              tripCtx.Query.Location,
		Dates:                 tripCtx.Query.Dates(),
		ParticipantsSummary:   participantsSummary(tripCtx),
		WeatherSummary:        weatherInfo.Summary,
		RecommendedActivities: recommendations,
		PackingList:           append([]string(nil), fallbackPackingList...),
		GeneralTips:           append([]string(nil), fallbackGeneralTips...),
	}
}

// padRecommendations tops a synthesized plan up to the recommendation
// target by wrapping unused search results with mechanically generated
// reasoning, cycling through fixed time slots by position.
func padRecommendations(plan *trip.Plan, results *trip.SearchResult, weatherInfo *trip.WeatherAnalysis) {
	for len(plan.RecommendedActivities) < trip.RecommendationTarget && len(results.Activities) > len(plan.RecommendedActivities) {
		i := len(plan.RecommendedActivities)
		activity := results.Activities[i]
		considerations := []string{"Indoor activity - weather independent"}
		if activity.WeatherDependent {
			considerations = []string{
				fmt.Sprintf("Temperature: %.0f-%.0f°C", weatherInfo.MinTemperature(), weatherInfo.MaxTemperature()),
				fmt.Sprintf("Rain chance: %.0f%%", weatherInfo.PrecipitationChance),
			}
		}
		kind := "outdoor"
		if !activity.WeatherDependent {
			kind = "indoor"
		}
		plan.RecommendedActivities = append(plan.RecommendedActivities, trip.ActivityRecommendation{
			Name:                  activity.Name,
			Description:           activity.Description,
			Reasoning:             fmt.Sprintf("Recommended as activity #%d - complements your itinerary with %s options.", i+1, kind),
			BestTime:              paddingTimes[i%len(paddingTimes)],
			WeatherConsiderations: considerations,
			PreparationTips: []string{
				"Check opening hours in advance",
				"Bring essentials and comfortable shoes",
				"Consider booking ahead if popular",
			},
			SourceURL: activity.SourceURL,
		})
	}
}

func participantsSummary(tripCtx *trip.Context) string {
	ages := make([]string, 0, len(tripCtx.Query.ParticipantAges))
	for _, age := range tripCtx.Query.ParticipantAges {
		ages = append(ages, fmt.Sprintf("%d", age))
	}
	if len(ages) == 0 {
		return fmt.Sprintf("%d participants", tripCtx.Query.ParticipantCount)
	}
	return fmt.Sprintf("%d participants (ages: %s)", tripCtx.Query.ParticipantCount, strings.Join(ages, ", "))
}
