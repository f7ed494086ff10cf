package gemini

import (
	"strings"
	"testing"

	"github.com/bububa/adventure-agents/trip"
)

func testContext(ages ...int) *trip.Context {
	return trip.NewContext(trip.Query{
		Location:         "Toronto",
		StartDate:        "2026-03-15",
		EndDate:          "2026-03-18",
		ParticipantCount: len(ages),
		ParticipantAges:  ages,
	})
}

func TestSearchPrompt(t *testing.T) {
	prompt := searchPrompt(testContext(32, 35), "Clear conditions expected", false)
	for _, want := range []string{"Toronto", "2026-03-15 to 2026-03-18", "32, 35", "Clear conditions expected", "search_summary"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(prompt, "children") {
		t.Error("general prompt should not mention children")
	}
}

func TestSearchPromptKidFocused(t *testing.T) {
	prompt := searchPrompt(testContext(8, 10, 35, 37), "Mixed weather conditions", true)
	if !strings.Contains(prompt, "children aged 8, 10") {
		t.Errorf("kid prompt missing children ages: %q", prompt)
	}
	if !strings.Contains(prompt, "kid-friendly") {
		t.Error("kid prompt missing kid-friendly focus")
	}
}

func TestSynthesisPrompt(t *testing.T) {
	tripCtx := testContext(32, 35)
	results := &trip.SearchResult{
		Activities: []trip.ActivityResult{
			{Name: "Walking Tour of Toronto", Description: "Guided walk"},
		},
		SearchSummary: "one candidate",
	}
	weather := &trip.WeatherAnalysis{
		Summary:             "Clear conditions expected",
		TemperatureRange:    [2]float64{5, 12},
		PrecipitationChance: 10,
	}
	prompt := synthesisPrompt(tripCtx, results, weather)
	for _, want := range []string{"Walking Tour of Toronto", "Clear conditions expected", "packing_list", "recommended_activities"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
