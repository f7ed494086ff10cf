package trip

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bububa/adventure-agents/schema"
)

// DateLayout is the calendar date format used across trip queries and plans.
const DateLayout = "2006-01-02"

var validate = validator.New()

// Query is the validated input for one planning run.
// ParticipantCount and len(ParticipantAges) may disagree; the ages list
// is used as given.
type Query struct {
	schema.Base `json:"-" yaml:"-"`
	// StartDate trip start date in YYYY-MM-DD format.
	StartDate string `json:"start_date" yaml:"start_date" jsonschema:"title=start_date,description=Trip start date in YYYY-MM-DD format." validate:"required,datetime=2006-01-02"`
	// EndDate trip end date in YYYY-MM-DD format.
	EndDate string `json:"end_date" yaml:"end_date" jsonschema:"title=end_date,description=Trip end date in YYYY-MM-DD format." validate:"required,datetime=2006-01-02"`
	// Location free-text destination name.
	Location string `json:"location" yaml:"location" jsonschema:"title=location,description=Destination place name." validate:"required"`
	// ParticipantCount number of travellers.
	ParticipantCount int `json:"participant_count" yaml:"participant_count" jsonschema:"title=participant_count,description=Number of travellers." validate:"gt=0"`
	// ParticipantAges ages of the travellers.
	ParticipantAges []int `json:"participant_ages" yaml:"participant_ages" jsonschema:"title=participant_ages,description=Ages of the travellers." validate:"dive,gte=0"`
}

func (q Query) String() string {
	bs, _ := json.Marshal(q)
	return string(bs)
}

// Dates returns the query date range presentation, e.g. "2025-12-01 to 2025-12-14"
func (q Query) Dates() string {
	return fmt.Sprintf("%s to %s", q.StartDate, q.EndDate)
}

// Validate checks the query invariants.
// It returns a *ValidationError, the only error class that aborts a
// planning run.
func (q Query) Validate() error {
	if err := validate.Struct(q); err != nil {
		return NewValidationError(err)
	}
	start, err := time.Parse(DateLayout, q.StartDate)
	if err != nil {
		return NewValidationError(err)
	}
	end, err := time.Parse(DateLayout, q.EndDate)
	if err != nil {
		return NewValidationError(err)
	}
	if end.Before(start) {
		return NewValidationError(fmt.Errorf("end_date %s before start_date %s", q.EndDate, q.StartDate))
	}
	return nil
}
