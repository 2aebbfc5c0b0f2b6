// Package types defines shared data types for busq.
package types

// Position represents a location in a source file (1-based).
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// CallKind classifies a broadcast call site.
type CallKind string

const (
	// KindSuccess is a plain success broadcast.
	KindSuccess CallKind = "success"

	// KindWorkflowSuccess is a success broadcast made from a workflow.
	KindWorkflowSuccess CallKind = "workflow_success"
)

// ResolvedEvent is the event name derived at a broadcast call site.
type ResolvedEvent struct {
	Event string   `json:"event"`
	Class string   `json:"class"` // enclosing class identifier, e.g. "Vacacion::Create"
	Kind  CallKind `json:"kind"`
	File  string   `json:"file"`
	Line  int      `json:"line"`
}

// EntryMatch is the first subscription-config line containing an event
// name, with the handler identifiers registered under it.
type EntryMatch struct {
	Event    string   `json:"event"`
	File     string   `json:"file"`
	Position Position `json:"position"`
	Handlers []string `json:"handlers,omitempty"`
}

// SubscriptionEntry is one element of a subscription config sequence.
// Keys beyond these are ignored.
type SubscriptionEntry struct {
	EventName string `yaml:"event_name" json:"event_name"`
	Handler   string `yaml:"handler" json:"handler"`
}

// HandlerLocation is a registered handler and its resolved source file.
type HandlerLocation struct {
	Handler string `json:"handler"`
	File    string `json:"file,omitempty"` // empty when no source file matched
}

// EventInfo is one subscription entry with its owning config file.
type EventInfo struct {
	Event   string `json:"event"`
	Handler string `json:"handler,omitempty"`
	File    string `json:"file"`
}

// CallSite is a broadcast call site found in a source file.
type CallSite struct {
	File  string   `json:"file"`
	Line  int      `json:"line"`
	Kind  CallKind `json:"kind"`
	Class string   `json:"class"`
	Event string   `json:"event"`
}
