package trip

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestMeetsChildThreshold(t *testing.T) {
	tests := []struct {
		name string
		ages []int
		want bool
	}{
		{"adults only", []int{32, 35}, false},
		{"family with children", []int{8, 10, 35, 37}, true},
		{"exactly at threshold", []int{12}, false},
		{"just under threshold", []int{11}, true},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsChildThreshold(tt.ages, ChildAgeThreshold); got != tt.want {
				t.Errorf("MeetsChildThreshold(%v) = %v, want %v", tt.ages, got, tt.want)
			}
		})
	}
}

func TestChildrenUnder(t *testing.T) {
	got := ChildrenUnder([]int{8, 10, 35, 37}, ChildAgeThreshold)
	if !reflect.DeepEqual(got, []int{8, 10}) {
		t.Errorf("ChildrenUnder = %v, want [8 10]", got)
	}
	if got := ChildrenUnder([]int{32, 35}, ChildAgeThreshold); got != nil {
		t.Errorf("expected nil for adults only, got %v", got)
	}
}

func TestNewContext(t *testing.T) {
	ctx := NewContext(Query{
		StartDate:        "2025-12-01",
		EndDate:          "2025-12-14",
		Location:         "Toronto",
		ParticipantCount: 4,
		ParticipantAges:  []int{8, 10, 35, 37},
	})
	if !ctx.MeetsChildThreshold {
		t.Error("expected child threshold to be met")
	}
	if !reflect.DeepEqual(ctx.ChildrenAges(), []int{8, 10}) {
		t.Errorf("unexpected children ages: %v", ctx.ChildrenAges())
	}
}

func TestQueryValidate(t *testing.T) {
	valid := Query{
		StartDate:        "2025-12-01",
		EndDate:          "2025-12-14",
		Location:         "Toronto",
		ParticipantCount: 2,
		ParticipantAges:  []int{32, 35},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid query rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Query)
	}{
		{"empty location", func(q *Query) { q.Location = "" }},
		{"bad date format", func(q *Query) { q.StartDate = "12/01/2025" }},
		{"end before start", func(q *Query) { q.StartDate = "2025-12-14"; q.EndDate = "2025-12-01" }},
		{"zero participants", func(q *Query) { q.ParticipantCount = 0 }},
		{"negative age", func(q *Query) { q.ParticipantAges = []int{-1} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := valid
			tt.mutate(&query)
			err := query.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestQueryCountAgesMismatchTolerated(t *testing.T) {
	query := Query{
		StartDate:        "2025-12-01",
		EndDate:          "2025-12-14",
		Location:         "Toronto",
		ParticipantCount: 3,
		ParticipantAges:  []int{32, 35},
	}
	if err := query.Validate(); err != nil {
		t.Errorf("count/ages mismatch must not fail validation: %v", err)
	}
}

func TestQueryDates(t *testing.T) {
	query := Query{StartDate: "2025-12-01", EndDate: "2025-12-14"}
	if got := query.Dates(); got != "2025-12-01 to 2025-12-14" {
		t.Errorf("unexpected dates presentation: %q", got)
	}
}

func TestPlanDedupePackingList(t *testing.T) {
	plan := Plan{PackingList: []string{"Water", "Snacks", "Water", "Hat", "Snacks"}}
	plan.DedupePackingList()
	want := []string{"Water", "Snacks", "Hat"}
	if !reflect.DeepEqual(plan.PackingList, want) {
		t.Errorf("expected %v, got %v", want, plan.PackingList)
	}
}

func TestPlanString(t *testing.T) {
	plan := Plan{
		Location: "Toronto",
		Dates:    "2025-12-01 to 2025-12-14",
		RecommendedActivities: []ActivityRecommendation{
			{Name: "Walking Tour of Toronto"},
		},
	}
	rendered := plan.String()
	if !strings.Contains(rendered, "location: Toronto") {
		t.Errorf("plan rendering missing location: %q", rendered)
	}
	if !strings.Contains(rendered, "Walking Tour of Toronto") {
		t.Errorf("plan rendering missing activity: %q", rendered)
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	for _, err := range []error{
		NewValidationError(cause),
		NewProviderError("open-meteo", cause),
		NewAdvisoryError("synthesis", cause),
	} {
		if !errors.Is(err, cause) {
			t.Errorf("%T does not unwrap to its cause", err)
		}
	}
}
