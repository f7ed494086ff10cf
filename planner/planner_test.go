package planner

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/bububa/adventure-agents/components"
	"github.com/bububa/adventure-agents/trip"
)

type stubProvider struct {
	analysis *trip.WeatherAnalysis
	err      error
	calls    int
}

func (p *stubProvider) Name() string {
	return "stub"
}

func (p *stubProvider) Analyze(_ context.Context, _ string, _ string, _ string) (*trip.WeatherAnalysis, error) {
	p.calls++
	return p.analysis, p.err
}

type stubSearcher struct {
	name   string
	result *trip.SearchResult
	err    error
	calls  int
}

func (s *stubSearcher) Name() string {
	return s.name
}

func (s *stubSearcher) Search(_ context.Context, _ *trip.Context, _ string) (*trip.SearchResult, error) {
	s.calls++
	return s.result, s.err
}

type stubSynthesizer struct {
	plan       *trip.Plan
	err        error
	calls      int
	gotResults *trip.SearchResult
}

func (s *stubSynthesizer) Name() string {
	return "stub synthesizer"
}

func (s *stubSynthesizer) Synthesize(_ context.Context, _ *trip.Context, results *trip.SearchResult, _ *trip.WeatherAnalysis) (*trip.Plan, error) {
	s.calls++
	s.gotResults = results
	return s.plan, s.err
}

type recordObserver struct {
	events []components.Event
}

func (o *recordObserver) Notify(ev components.Event) {
	o.events = append(o.events, ev)
}

func (o *recordObserver) byType(typ components.EventType) []components.Event {
	var ret []components.Event
	for _, ev := range o.events {
		if ev.Type == typ {
			ret = append(ret, ev)
		}
	}
	return ret
}

type panicObserver struct{}

func (panicObserver) Notify(components.Event) {
	panic("observer exploded")
}

func adultQuery() *trip.Query {
	return &trip.Query{
		StartDate:        "2025-12-01",
		EndDate:          "2025-12-14",
		Location:         "Toronto",
		ParticipantCount: 2,
		ParticipantAges:  []int{32, 35},
	}
}

func familyQuery() *trip.Query {
	return &trip.Query{
		StartDate:        "2025-12-01",
		EndDate:          "2025-12-14",
		Location:         "Toronto",
		ParticipantCount: 4,
		ParticipantAges:  []int{8, 10, 35, 37},
	}
}

func TestRunAllFallback(t *testing.T) {
	observer := new(recordObserver)
	p := New(
		WithWeatherProvider(&stubProvider{err: errors.New("weather down")}),
		WithSearcher(&stubSearcher{name: "general", err: errors.New("search down")}),
		WithSynthesizer(&stubSynthesizer{err: errors.New("synthesis down")}),
		WithObserver(observer),
	)
	plan, err := p.Run(context.Background(), adultQuery())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if plan.Location != "Toronto" {
		t.Errorf("unexpected location: %q", plan.Location)
	}
	if plan.Dates != "2025-12-01 to 2025-12-14" {
		t.Errorf("unexpected dates: %q", plan.Dates)
	}
	if !strings.Contains(plan.ParticipantsSummary, "2") {
		t.Errorf("participants summary missing count: %q", plan.ParticipantsSummary)
	}
	if plan.WeatherSummary == "" {
		t.Error("expected non-empty weather summary")
	}
	if len(plan.RecommendedActivities) != trip.RecommendationTarget {
		t.Errorf("expected %d recommendations, got %d", trip.RecommendationTarget, len(plan.RecommendedActivities))
	}
	wantPacking := []string{"Comfortable clothing", "Walking shoes", "Water", "Snacks"}
	if !reflect.DeepEqual(plan.PackingList, wantPacking) {
		t.Errorf("unexpected packing list: %v", plan.PackingList)
	}
	completes := observer.byType(components.WorkflowCompleteEvent)
	if len(completes) != 1 || completes[0].Message != "success" {
		t.Errorf("expected one success workflow-complete event, got %v", completes)
	}
	if errs := observer.byType(components.StageErrorEvent); len(errs) != 3 {
		t.Errorf("expected three stage-error events, got %d", len(errs))
	}
}

func TestRunWeatherFallbackTemperatureOrder(t *testing.T) {
	p := New(WithWeatherProvider(&stubProvider{err: errors.New("always fails")}))
	plan, err := p.Run(context.Background(), adultQuery())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if plan.WeatherSummary == "" {
		t.Error("expected non-empty weather summary")
	}
}

func TestRunSearchFailureFeedsSynthesis(t *testing.T) {
	synth := &stubSynthesizer{err: errors.New("use fallback")}
	p := New(
		WithSearcher(&stubSearcher{name: "general", err: errors.New("search down")}),
		WithSynthesizer(synth),
	)
	plan, err := p.Run(context.Background(), adultQuery())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if synth.calls != 1 {
		t.Fatalf("expected one synthesis call, got %d", synth.calls)
	}
	if synth.gotResults == nil || synth.gotResults.Empty() {
		t.Error("synthesis stage should receive a non-empty search result")
	}
	if len(plan.RecommendedActivities) == 0 {
		t.Error("expected recommendations in the plan")
	}
}

func TestRunChildRouting(t *testing.T) {
	observer := new(recordObserver)
	general := &stubSearcher{name: "general"}
	kid := &stubSearcher{
		name: "kid",
		result: &trip.SearchResult{
			Activities: []trip.ActivityResult{
				{Name: "Science Centre", WeatherDependent: false},
			},
			SearchSummary: "kid-friendly options",
		},
	}
	p := New(
		WithSearcher(general),
		WithKidSearcher(kid),
		WithObserver(observer),
	)
	if _, err := p.Run(context.Background(), familyQuery()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if kid.calls != 1 {
		t.Errorf("expected one kid search call, got %d", kid.calls)
	}
	if general.calls != 0 {
		t.Errorf("general searcher must not be called, got %d calls", general.calls)
	}
	handoffs := observer.byType(components.HandoffEvent)
	if len(handoffs) != 1 {
		t.Fatalf("expected exactly one handoff event, got %d", len(handoffs))
	}
	ages, ok := handoffs[0].Details["children_ages"].([]int)
	if !ok || !reflect.DeepEqual(ages, []int{8, 10}) {
		t.Errorf("handoff should name children ages [8 10], got %v", handoffs[0].Details["children_ages"])
	}
}

func TestRunEmptyKidResultSkipsGeneralSearch(t *testing.T) {
	general := &stubSearcher{name: "general"}
	kid := &stubSearcher{name: "kid", result: &trip.SearchResult{SearchSummary: "nothing found"}}
	synth := &stubSynthesizer{err: errors.New("down")}
	p := New(
		WithSearcher(general),
		WithKidSearcher(kid),
		WithSynthesizer(synth),
	)
	plan, err := p.Run(context.Background(), familyQuery())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if general.calls != 0 {
		t.Errorf("general searcher must be called zero times, got %d", general.calls)
	}
	if synth.gotResults == nil || synth.gotResults.Empty() {
		t.Error("synthesis should receive the fallback catalog")
	}
	if len(plan.RecommendedActivities) == 0 {
		t.Error("expected recommendations in the plan")
	}
}

func TestRunAdultRoutingUsesGeneralSearcher(t *testing.T) {
	observer := new(recordObserver)
	general := &stubSearcher{
		name: "general",
		result: &trip.SearchResult{
			Activities:    []trip.ActivityResult{{Name: "Brewery Tour"}},
			SearchSummary: "adult options",
		},
	}
	kid := &stubSearcher{name: "kid"}
	p := New(
		WithSearcher(general),
		WithKidSearcher(kid),
		WithObserver(observer),
	)
	if _, err := p.Run(context.Background(), adultQuery()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if general.calls != 1 || kid.calls != 0 {
		t.Errorf("expected general=1 kid=0 calls, got general=%d kid=%d", general.calls, kid.calls)
	}
	if handoffs := observer.byType(components.HandoffEvent); len(handoffs) != 0 {
		t.Errorf("no handoff expected for an adult group, got %d", len(handoffs))
	}
}

func TestRunPadsShortSynthesizedPlan(t *testing.T) {
	search := &stubSearcher{
		name: "general",
		result: &trip.SearchResult{
			Activities: []trip.ActivityResult{
				{Name: "A", WeatherDependent: true},
				{Name: "B"},
				{Name: "C"},
				{Name: "D"},
				{Name: "E"},
				{Name: "F"},
			},
			SearchSummary: "six candidates",
		},
	}
	synth := &stubSynthesizer{
		plan: &trip.Plan{
			Location:              "Toronto",
			RecommendedActivities: []trip.ActivityRecommendation{{Name: "A", Reasoning: "model pick"}},
		},
	}
	p := New(WithSearcher(search), WithSynthesizer(synth))
	plan, err := p.Run(context.Background(), adultQuery())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(plan.RecommendedActivities) != trip.RecommendationTarget {
		t.Fatalf("expected %d recommendations, got %d", trip.RecommendationTarget, len(plan.RecommendedActivities))
	}
	if plan.RecommendedActivities[0].Reasoning != "model pick" {
		t.Error("model recommendations must come first")
	}
	// positions 1..4 come from the search result, cycling time slots
	if got := plan.RecommendedActivities[1].BestTime; got != "Late Morning" {
		t.Errorf("unexpected best time for padded entry: %q", got)
	}
}

func TestRunTruncatesLongSynthesizedPlan(t *testing.T) {
	recs := make([]trip.ActivityRecommendation, 7)
	for i := range recs {
		recs[i] = trip.ActivityRecommendation{Name: "Activity"}
	}
	synth := &stubSynthesizer{plan: &trip.Plan{Location: "Toronto", RecommendedActivities: recs}}
	p := New(WithSynthesizer(synth))
	plan, err := p.Run(context.Background(), adultQuery())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(plan.RecommendedActivities) != trip.RecommendationTarget {
		t.Errorf("expected %d recommendations, got %d", trip.RecommendationTarget, len(plan.RecommendedActivities))
	}
}

func TestRunInvalidQuery(t *testing.T) {
	p := New()
	query := &trip.Query{
		StartDate:        "2025-12-14",
		EndDate:          "2025-12-01",
		Location:         "Toronto",
		ParticipantCount: 2,
		ParticipantAges:  []int{32, 35},
	}
	_, err := p.Run(context.Background(), query)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var validationErr *trip.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestRunNilQuery(t *testing.T) {
	p := New()
	_, err := p.Run(context.Background(), nil)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var validationErr *trip.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
}

func TestRunObserverPanicSwallowed(t *testing.T) {
	p := New(WithObserver(panicObserver{}))
	plan, err := p.Run(context.Background(), adultQuery())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(plan.RecommendedActivities) == 0 {
		t.Error("expected a complete plan despite observer panics")
	}
}

func TestRunDedupesPackingList(t *testing.T) {
	synth := &stubSynthesizer{
		plan: &trip.Plan{
			Location:              "Toronto",
			RecommendedActivities: []trip.ActivityRecommendation{{Name: "A"}},
			PackingList:           []string{"Water", "Snacks", "Water", "Hat"},
		},
	}
	p := New(WithSynthesizer(synth))
	plan, err := p.Run(context.Background(), adultQuery())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	want := []string{"Water", "Snacks", "Hat"}
	if !reflect.DeepEqual(plan.PackingList, want) {
		t.Errorf("expected deduplicated packing list %v, got %v", want, plan.PackingList)
	}
}
