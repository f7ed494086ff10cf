// Package planner drives one trip-planning run to completion: weather
// analysis, age-routed activity search, and plan synthesis. Every
// external stage recovers locally, so a valid query always yields a
// plan.
package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bububa/adventure-agents/advisory"
	"github.com/bububa/adventure-agents/components"
	"github.com/bububa/adventure-agents/trip"
	"github.com/bububa/adventure-agents/weather"
)

// Stage names used in trace events and advisory errors.
const (
	WeatherStage   = "weather"
	SearchStage    = "activity-search"
	KidSearchStage = "kid-friendly-search"
	SynthesisStage = "synthesis"
)

// DefaultCallTimeout bounds each external capability call. Exceeding
// it is treated like any other capability failure.
const DefaultCallTimeout = time.Minute

// DefaultName names the planner in workflow events.
const DefaultName = "Trip Planner"

// Config represents planner configuration
type Config struct {
	// name identifies the planner in workflow events
	name string
	// provider weather capability, optional
	provider weather.Provider
	// searcher general activity discovery capability, optional
	searcher advisory.Searcher
	// kidSearcher kid-oriented discovery capability, optional
	kidSearcher advisory.Searcher
	// synthesizer plan synthesis capability, optional
	synthesizer advisory.Synthesizer
	// observer event sink, never required for correctness
	observer components.Observer
	// callTimeout per external call, DefaultCallTimeout when unset
	callTimeout time.Duration
}

// Planner sequences one planning run. It holds no cross-run mutable
// state; concurrent runs are safe.
type Planner struct {
	Config
}

func New(opts ...Option) *Planner {
	ret := new(Planner)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.name == "" {
		ret.name = DefaultName
	}
	if ret.observer == nil {
		ret.observer = components.NopObserver{}
	}
	if ret.callTimeout == 0 {
		ret.callTimeout = DefaultCallTimeout
	}
	return ret
}

// Run executes one planning run. It returns an error only for an
// invalid query; every downstream failure is recovered with a local
// fallback and reported through the observer.
func (p *Planner) Run(ctx context.Context, query *trip.Query) (*trip.Plan, error) {
	if query == nil {
		return nil, trip.NewValidationError(errors.New("nil query"))
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}
	p.notify(components.NewEvent(components.WorkflowStartEvent, p.name,
		fmt.Sprintf("Planning trip to %s", query.Location),
		map[string]any{
			"location":         query.Location,
			"dates":            query.Dates(),
			"participant_ages": query.ParticipantAges,
		}))
	start := time.Now()
	tripCtx := trip.NewContext(*query)
	weatherInfo := p.analyzeWeather(ctx, tripCtx)
	results := p.searchActivities(ctx, tripCtx, weatherInfo)
	plan := p.synthesize(ctx, tripCtx, results, weatherInfo)
	plan.DedupePackingList()
	// always success for a valid query, fallbacks included
	p.notify(components.NewEvent(components.WorkflowCompleteEvent, p.name, "success",
		map[string]any{
			"recommended_activities": len(plan.RecommendedActivities),
			"packing_items":          len(plan.PackingList),
		}).WithDuration(time.Since(start)))
	return plan, nil
}

// analyzeWeather runs the WEATHER stage. Provider failure or absence
// falls back to a deterministic local analysis.
func (p *Planner) analyzeWeather(ctx context.Context, tripCtx *trip.Context) *trip.WeatherAnalysis {
	query := tripCtx.Query
	start := time.Now()
	p.notify(components.NewEvent(components.StageStartEvent, WeatherStage, "", nil))
	if p.provider != nil {
		cctx, cancel := p.callContext(ctx)
		ret, err := p.provider.Analyze(cctx, query.Location, query.StartDate, query.EndDate)
		cancel()
		if err == nil && ret != nil {
			p.notify(components.NewEvent(components.StageCompleteEvent, WeatherStage, ret.Summary,
				map[string]any{
					"provider":             p.provider.Name(),
					"temperature_range":    ret.TemperatureRange,
					"precipitation_chance": ret.PrecipitationChance,
				}).WithDuration(time.Since(start)))
			return ret
		}
		p.notify(components.NewEvent(components.StageErrorEvent, WeatherStage, fmt.Sprintf("%v", err),
			map[string]any{"provider": p.provider.Name()}).WithDuration(time.Since(start)))
	}
	ret := FallbackWeather(query.Location, query.StartDate, query.EndDate)
	p.notify(components.NewEvent(components.StageCompleteEvent, WeatherStage, "local fallback weather used",
		map[string]any{
			"temperature_range":    ret.TemperatureRange,
			"precipitation_chance": ret.PrecipitationChance,
		}).WithDuration(time.Since(start)))
	return ret
}

// searchActivities runs the ROUTE_ACTIVITIES stage. The kid-oriented
// path is selected when any participant is under the child age
// threshold; an empty kid result falls straight through to the local
// catalog without re-routing to the general searcher.
func (p *Planner) searchActivities(ctx context.Context, tripCtx *trip.Context, weatherInfo *trip.WeatherAnalysis) *trip.SearchResult {
	searcher := p.searcher
	stage := SearchStage
	if tripCtx.MeetsChildThreshold {
		searcher = p.kidSearcher
		stage = KidSearchStage
		p.notify(components.NewEvent(components.HandoffEvent, "Kid-Friendly Activity Agent",
			"children detected in group",
			map[string]any{"children_ages": tripCtx.ChildrenAges()}))
	}
	start := time.Now()
	p.notify(components.NewEvent(components.StageStartEvent, stage, "", nil))
	if searcher != nil {
		cctx, cancel := p.callContext(ctx)
		ret, err := searcher.Search(cctx, tripCtx, weatherInfo.Summary)
		cancel()
		if err == nil && ret != nil && !ret.Empty() {
			p.notify(components.NewEvent(components.StageCompleteEvent, stage, ret.SearchSummary,
				map[string]any{
					"agent":          searcher.Name(),
					"activity_count": len(ret.Activities),
				}).WithDuration(time.Since(start)))
			return ret
		}
		message := "empty search result"
		if err != nil {
			message = err.Error()
		}
		p.notify(components.NewEvent(components.StageErrorEvent, stage, message,
			map[string]any{"agent": searcher.Name()}).WithDuration(time.Since(start)))
	}
	ret := FallbackSearchResult(tripCtx)
	p.notify(components.NewEvent(components.StageCompleteEvent, stage, ret.SearchSummary,
		map[string]any{"activity_count": len(ret.Activities)}).WithDuration(time.Since(start)))
	return ret
}

// synthesize runs the SYNTHESIZE stage. A synthesized plan is adopted
// when it carries at least one recommendation; short plans are padded
// to the target from unused search results, long plans are truncated.
func (p *Planner) synthesize(ctx context.Context, tripCtx *trip.Context, results *trip.SearchResult, weatherInfo *trip.WeatherAnalysis) *trip.Plan {
	start := time.Now()
	p.notify(components.NewEvent(components.StageStartEvent, SynthesisStage, "", nil))
	if p.synthesizer != nil {
		cctx, cancel := p.callContext(ctx)
		ret, err := p.synthesizer.Synthesize(cctx, tripCtx, results, weatherInfo)
		cancel()
		if err == nil && ret != nil && len(ret.RecommendedActivities) > 0 {
			padRecommendations(ret, results, weatherInfo)
			if len(ret.RecommendedActivities) > trip.RecommendationTarget {
				ret.RecommendedActivities = ret.RecommendedActivities[:trip.RecommendationTarget]
			}
			p.notify(components.NewEvent(components.StageCompleteEvent, SynthesisStage,
				fmt.Sprintf("plan with %d recommendations", len(ret.RecommendedActivities)),
				map[string]any{
					"agent":                  p.synthesizer.Name(),
					"recommended_activities": len(ret.RecommendedActivities),
				}).WithDuration(time.Since(start)))
			return ret
		}
		message := "plan without recommendations"
		if err != nil {
			message = err.Error()
		}
		p.notify(components.NewEvent(components.StageErrorEvent, SynthesisStage, message,
			map[string]any{"agent": p.synthesizer.Name()}).WithDuration(time.Since(start)))
	}
	ret := FallbackPlan(tripCtx, results, weatherInfo)
	p.notify(components.NewEvent(components.StageCompleteEvent, SynthesisStage, "local fallback plan used",
		map[string]any{"recommended_activities": len(ret.RecommendedActivities)}).WithDuration(time.Since(start)))
	return ret
}

func (p *Planner) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.callTimeout)
}

// notify forwards an event to the observer. Observer misbehavior,
// panics included, never aborts the workflow.
func (p *Planner) notify(ev components.Event) {
	defer func() {
		_ = recover()
	}()
	p.observer.Notify(ev)
}
