package trip

import (
	"encoding/json"

	"github.com/bububa/adventure-agents/schema"
)

// ChildAgeThreshold is the age below which a participant routes the
// workflow to the kid-friendly advisory path.
const ChildAgeThreshold = 12

// MeetsChildThreshold reports whether any age is strictly below threshold.
func MeetsChildThreshold(ages []int, threshold int) bool {
	for _, age := range ages {
		if age < threshold {
			return true
		}
	}
	return false
}

// ChildrenUnder returns the ages strictly below threshold, in input order.
func ChildrenUnder(ages []int, threshold int) []int {
	var children []int
	for _, age := range ages {
		if age < threshold {
			children = append(children, age)
		}
	}
	return children
}

// Context wraps a Query with derived routing information.
// The threshold flag is computed once at construction; recomputing it is
// idempotent because the query is never mutated.
type Context struct {
	schema.Base `json:"-" yaml:"-"`
	// Query the trip query this context derives from.
	Query Query `json:"query" jsonschema:"title=query,description=The trip query."`
	// MeetsChildThreshold true if any participant age is below ChildAgeThreshold.
	MeetsChildThreshold bool `json:"meets_child_threshold" jsonschema:"title=meets_child_threshold,description=True if any participant is below the child age threshold."`
}

// NewContext builds the per-run context for a query.
func NewContext(query Query) *Context {
	return &Context{
		Query:               query,
		MeetsChildThreshold: MeetsChildThreshold(query.ParticipantAges, ChildAgeThreshold),
	}
}

func (c Context) String() string {
	bs, _ := json.Marshal(c)
	return string(bs)
}

// ChildrenAges returns the under-threshold participant ages.
func (c Context) ChildrenAges() []int {
	return ChildrenUnder(c.Query.ParticipantAges, ChildAgeThreshold)
}
