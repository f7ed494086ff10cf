// Package weather provides forecast providers for trip planning. A
// Provider turns a location and date window into a WeatherAnalysis.
package weather

import (
	"context"

	"github.com/bububa/adventure-agents/trip"
)

// Provider analyzes the weather for a location over a date window.
// Dates use the trip.DateLayout format.
type Provider interface {
	// Name identifies the provider in errors and trace events.
	Name() string
	// Analyze returns the weather analysis for the trip window.
	Analyze(ctx context.Context, location string, startDate string, endDate string) (*trip.WeatherAnalysis, error)
}
