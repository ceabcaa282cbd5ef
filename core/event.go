package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/upcheck/version"
)

// Event is a fire-and-forget signal emitted at the end of a check cycle.
// After emission it should be treated as immutable. Completion events carry
// the normalized version, its stability tag, a resolved audience snapshot and
// a reference to the winning provider; failure events carry only the
// classified result.
type Event struct {
	// ID uniquely identifies the event for correlation in logs and stores.
	ID string
	// Timestamp records emission time in UTC.
	Timestamp time.Time
	// Async reports whether the cycle ran on a worker context rather than
	// the caller's.
	Async bool
	// Result is the classified cycle outcome. For failure events one of
	// ResultFailConnection / ResultFailVersion.
	Result Result
	// Version is the normalized remote version, e.g. "1.3.0". Empty on
	// failure events.
	Version string
	// Tag is the stability tier of the remote version.
	Tag version.Tag
	// Audience is the permission/presence-filtered recipient snapshot taken
	// at emission time. Nil on failure events.
	Audience []Member
	// Provider references the adapter that produced the winning version.
	// Nil on failure events.
	Provider Provider
}

// NewCompleteEvent constructs the signal emitted when a new update is
// available.
func NewCompleteEvent(async bool, artifact version.Artifact, audience []Member, provider Provider) Event {
	return Event{
		ID:        NewID(),
		Timestamp: time.Now().UTC(),
		Async:     async,
		Result:    ResultAvailable,
		Version:   artifact.Version(),
		Tag:       artifact.Tag(),
		Audience:  audience,
		Provider:  provider,
	}
}

// NewFailedEvent constructs the signal emitted when a cycle aborts with a
// classified failure.
func NewFailedEvent(async bool, result Result) Event {
	return Event{
		ID:        NewID(),
		Timestamp: time.Now().UTC(),
		Async:     async,
		Result:    result,
	}
}

// NewID generates a new unique identifier for events and records.
func NewID() string { return uuid.NewString() }

// Notifier is the port through which signals reach the host application's
// event or pub-sub system. Implementations must not block; the orchestrator
// dispatches events fire-and-forget and never waits for subscribers.
type Notifier interface {
	Notify(event Event)
}

// NotifierFunc adapts a plain function to the Notifier interface.
type NotifierFunc func(event Event)

// Notify implements Notifier.
func (f NotifierFunc) Notify(event Event) { f(event) }

// ChannelNotifier delivers events onto a buffered channel with a non-blocking
// send, dropping events when no consumer keeps up. Useful for hosts that
// bridge signals into their own dispatch loop.
type ChannelNotifier struct {
	ch chan Event
}

// NewChannelNotifier creates a ChannelNotifier with the given buffer size.
func NewChannelNotifier(buffer int) *ChannelNotifier {
	return &ChannelNotifier{ch: make(chan Event, buffer)}
}

// Events returns the receive side of the notifier.
func (n *ChannelNotifier) Events() <-chan Event { return n.ch }

// Notify implements Notifier with a non-blocking send.
func (n *ChannelNotifier) Notify(event Event) {
	select {
	case n.ch <- event:
	default:
	}
}

// NoOpNotifier discards all events. Used when the host does not subscribe.
type NoOpNotifier struct{}

// Notify implements Notifier.
func (NoOpNotifier) Notify(Event) {}
