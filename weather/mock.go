package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/bububa/adventure-agents/trip"
)

// Mock is an offline weather provider. It derives a deterministic
// profile from location keywords and never fails, which makes it
// suitable for demos and tests without network access.
type Mock struct{}

func NewMock() *Mock {
	return new(Mock)
}

func (m *Mock) Name() string {
	return "mock"
}

// Analyze returns a location-keyed weather profile. The same inputs
// always produce the same analysis.
func (m *Mock) Analyze(_ context.Context, location string, startDate string, endDate string) (*trip.WeatherAnalysis, error) {
	minTemp, maxTemp, precip := mockProfile(location)
	return &trip.WeatherAnalysis{
		Summary: fmt.Sprintf(
			"Weather forecast for %s from %s to %s: Expected to have mild, pleasant conditions with comfortable temperatures throughout your visit. Perfect weather for outdoor activities and sightseeing.",
			location, startDate, endDate,
		),
		TemperatureRange:    [2]float64{minTemp, maxTemp},
		PrecipitationChance: precip,
		RecommendedClothing: []string{
			"Comfortable walking shoes",
			"Layered clothing for temperature changes",
			"Light jacket or sweater for evenings",
			"Sun protection (hat, sunglasses)",
			"Comfortable day pack",
		},
	}, nil
}

// mockProfile keys the canned forecast off location keywords so demos
// for different destinations do not all look identical.
func mockProfile(location string) (minTemp, maxTemp, precip float64) {
	lower := strings.ToLower(location)
	switch {
	case strings.Contains(lower, "mountain") || strings.Contains(lower, "alps"):
		return 8, 18, 35
	case strings.Contains(lower, "beach") || strings.Contains(lower, "coast") || strings.Contains(lower, "island"):
		return 20, 28, 15
	default:
		return 18, 27, 20
	}
}
