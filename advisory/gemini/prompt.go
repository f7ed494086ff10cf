package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gemini "github.com/google/generative-ai-go/genai"

	"github.com/bububa/adventure-agents/trip"
)

func searchPrompt(tripCtx *trip.Context, weatherSummary string, kidFocused bool) string {
	var sb strings.Builder
	if kidFocused {
		sb.WriteString("You are a specialized search assistant focused on finding activities suitable for children.\n")
		fmt.Fprintf(&sb, "The group includes children aged %s.\n", joinAges(tripCtx.ChildrenAges()))
		sb.WriteString("Focus on activities explicitly marked as kid-friendly, family-oriented, or suitable for those ages: parks, playgrounds, interactive museums, age-appropriate workshops, family-friendly restaurants.\n")
	} else {
		sb.WriteString("You research and find suitable activities for a trip based on the provided details.\n")
		sb.WriteString("Cover general activities, age-appropriate options for the group, weather suitability, and local experiences.\n")
	}
	fmt.Fprintf(&sb, "\nTrip destination: %s\n", tripCtx.Query.Location)
	fmt.Fprintf(&sb, "Trip dates: %s\n", tripCtx.Query.Dates())
	fmt.Fprintf(&sb, "Participant ages: %s\n", joinAges(tripCtx.Query.ParticipantAges))
	fmt.Fprintf(&sb, "Weather summary: %s\n", weatherSummary)
	sb.WriteString(`
Return 3-5 activities as JSON with this shape:
{
  "activities": [
    {
      "name": "...",
      "description": "...",
      "location": "...",
      "age_range": [min, max],
      "price_range": "...",
      "duration": "...",
      "weather_dependent": true,
      "source_url": "..."
    }
  ],
  "search_summary": "..."
}`)
	return sb.String()
}

func synthesisPrompt(tripCtx *trip.Context, results *trip.SearchResult, weather *trip.WeatherAnalysis) string {
	activities, _ := json.Marshal(results.Activities)
	weatherJSON, _ := json.Marshal(weather)
	var sb strings.Builder
	sb.WriteString("You evaluate potential activities and create a final travel plan.\n")
	sb.WriteString("Evaluate each activity for age suitability, weather appropriateness, group enjoyment, and practical considerations. ")
	sb.WriteString("Select the top 3-5, write a recommendation with clear reasoning, best time, weather considerations, preparation tips, and preserve the source URL. ")
	sb.WriteString("Summarize the weather, generate a packing list, and add general travel tips.\n")
	fmt.Fprintf(&sb, "\nTrip destination: %s\n", tripCtx.Query.Location)
	fmt.Fprintf(&sb, "Trip dates: %s\n", tripCtx.Query.Dates())
	fmt.Fprintf(&sb, "Participant ages: %s\n", joinAges(tripCtx.Query.ParticipantAges))
	fmt.Fprintf(&sb, "Weather analysis: %s\n", weatherJSON)
	fmt.Fprintf(&sb, "Candidate activities: %s\n", activities)
	sb.WriteString(`
Return the plan as JSON with this shape:
{
  "location": "...",
  "dates": "...",
  "participants_summary": "...",
  "weather_summary": "...",
  "recommended_activities": [
    {
      "name": "...",
      "description": "...",
      "reasoning": "...",
      "best_time": "...",
      "weather_considerations": ["..."],
      "preparation_tips": ["..."],
      "source_url": "..."
    }
  ],
  "packing_list": ["..."],
  "general_tips": ["..."]
}`)
	return sb.String()
}

func joinAges(ages []int) string {
	parts := make([]string, 0, len(ages))
	for _, age := range ages {
		parts = append(parts, fmt.Sprintf("%d", age))
	}
	return strings.Join(parts, ", ")
}

// generateJSON sends the prompt in JSON mode and decodes the first text
// part of the response into dist.
func generateJSON(ctx context.Context, clt *gemini.Client, cfg *Config, prompt string, dist any) error {
	model := clt.GenerativeModel(cfg.model)
	model.ResponseMIMEType = "application/json"
	if cfg.temperature > 0 {
		model.SetTemperature(cfg.temperature)
	}
	resp, err := model.GenerateContent(ctx, gemini.Text(prompt))
	if err != nil {
		return err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fmt.Errorf("empty response from model %s", cfg.model)
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(gemini.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	payload := strings.TrimSpace(sb.String())
	if payload == "" {
		return fmt.Errorf("no text parts in response from model %s", cfg.model)
	}
	return json.Unmarshal([]byte(payload), dist)
}
