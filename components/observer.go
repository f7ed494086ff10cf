package components

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// EventType is the kind of workflow event.
type EventType = string

const (
	WorkflowStartEvent    EventType = "workflow_start"
	WorkflowCompleteEvent EventType = "workflow_complete"
	StageStartEvent       EventType = "stage_start"
	StageCompleteEvent    EventType = "stage_complete"
	StageErrorEvent       EventType = "stage_error"
	HandoffEvent          EventType = "handoff"
	ToolCallEvent         EventType = "tool_call"
)

// Event is a single structured workflow event.
type Event struct {
	// ID unique event identifier.
	ID string `json:"id"`
	// Timestamp when the event occurred.
	Timestamp time.Time `json:"timestamp"`
	// Type event kind.
	Type EventType `json:"type"`
	// Name the stage or agent the event belongs to.
	Name string `json:"name"`
	// Message short human readable description.
	Message string `json:"message,omitempty"`
	// Details structured metadata.
	Details map[string]any `json:"details,omitempty"`
	// Duration elapsed time for completion/error events.
	Duration time.Duration `json:"duration,omitempty"`
}

// NewEvent returns a new Event stamped with an ID and the current time.
func NewEvent(typ EventType, name string, message string, details map[string]any) Event {
	return Event{
		ID:        uuid.NewString(),
		Timestamp: time.Now(),
		Type:      typ,
		Name:      name,
		Message:   message,
		Details:   details,
	}
}

// WithDuration returns a copy of the event carrying an elapsed duration.
func (e Event) WithDuration(d time.Duration) Event {
	e.Duration = d
	return e
}

// Observer receives workflow events. Implementations must be safe for
// concurrent use; the workflow treats every call as fire-and-forget and
// never depends on it for correctness.
type Observer interface {
	Notify(Event)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) Notify(Event) {}

// Observers fans events out to multiple observers.
type Observers []Observer

func (o Observers) Notify(ev Event) {
	for _, obs := range o {
		if obs != nil {
			obs.Notify(ev)
		}
	}
}

// LogObserver writes one line per event to an io.Writer.
type LogObserver struct {
	w       io.Writer
	enabled *atomic.Bool
}

// NewLogObserver returns an enabled LogObserver writing to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{
		w:       w,
		enabled: atomic.NewBool(true),
	}
}

// Enable turns event logging on.
func (o *LogObserver) Enable() {
	o.enabled.Store(true)
}

// Disable turns event logging off.
func (o *LogObserver) Disable() {
	o.enabled.Store(false)
}

func (o *LogObserver) Notify(ev Event) {
	if !o.enabled.Load() {
		return
	}
	line := fmt.Sprintf("%s [%s] %s", ev.Timestamp.Format(time.RFC3339), ev.Type, ev.Name)
	if ev.Message != "" {
		line += ": " + ev.Message
	}
	if len(ev.Details) > 0 {
		keys := make([]string, 0, len(ev.Details))
		for k := range ev.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			line += fmt.Sprintf(" %s=%v", k, ev.Details[k])
		}
	}
	if ev.Duration > 0 {
		line += fmt.Sprintf(" (%s)", ev.Duration)
	}
	fmt.Fprintln(o.w, line)
}
