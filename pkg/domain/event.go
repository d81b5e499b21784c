package domain

import (
	"time"

	"github.com/google/uuid"
)

type (
	// EventID identifies a single domain event. It wraps the UUID identity
	// kind; the zero value is the default sentinel for not-yet-stamped
	// events.
	EventID struct {
		UUID
	}

	// Event is a domain event: a fact that happened, carrying its identity
	// and occurrence time. Events are entities keyed by EventID, so
	// EntityEqual semantics apply: two events are equal when they are the
	// same concrete type with the same assigned id.
	Event interface {
		// Identity returns the event's id.
		Identity() EventID

		// OccurredAt returns when the event happened, in UTC.
		OccurredAt() time.Time
	}

	// Occurrence is the embeddable half of Event: an id and a timestamp.
	// Embedding it makes an event struct satisfy Event:
	//
	//	type OrderShipped struct {
	//		domain.Occurrence
	//		Order domain.StringID
	//	}
	//
	//	evt := OrderShipped{Occurrence: domain.NewOccurrence(), Order: id}
	Occurrence struct {
		// ID is the event's identity.
		ID EventID `json:"id" yaml:"id"`

		// At is the occurrence time in UTC.
		At time.Time `json:"at" yaml:"at"`
	}

	// Recorder collects the events an aggregate raises during a unit of work,
	// to be pulled and dispatched after the aggregate persists. Embed it in
	// an aggregate root:
	//
	//	type Order struct {
	//		domain.Recorder
	//		id domain.StringID
	//	}
	//
	//	func (o *Order) Ship() {
	//		// mutate state, then:
	//		o.Record(OrderShipped{Occurrence: domain.NewOccurrence(), Order: o.id})
	//	}
	//
	// A Recorder is not safe for concurrent use; an aggregate instance
	// belongs to one unit of work at a time.
	Recorder struct {
		pending []Event
	}
)

// NewEventID returns a freshly generated event identity.
func NewEventID() EventID { return EventID{UUID: GenerateUUID()} }

// RestoreEventID reconstitutes an event identity from its underlying value
// without validation.
func RestoreEventID(u uuid.UUID) EventID { return EventID{UUID: RestoreUUID(u)} }

// Equal reports whether both ids wrap the same UUID.
func (id EventID) Equal(other EventID) bool { return id.UUID.Equal(other.UUID) }

// Compare orders lexicographically over the raw bytes.
func (id EventID) Compare(other EventID) int { return id.UUID.Compare(other.UUID) }

// CompareAny implements the dynamic ordering capability.
func (id EventID) CompareAny(other any) (int, error) {
	return compareAs(id, other, EventID.Compare)
}

// NewOccurrence stamps a new occurrence: fresh id, current UTC time.
func NewOccurrence() Occurrence {
	return Occurrence{ID: NewEventID(), At: time.Now().UTC()}
}

// RestoreOccurrence reconstitutes an occurrence from stored values without
// validation.
func RestoreOccurrence(id EventID, at time.Time) Occurrence {
	return Occurrence{ID: id, At: at.UTC()}
}

// Identity implements Event.
func (o Occurrence) Identity() EventID { return o.ID }

// OccurredAt implements Event.
func (o Occurrence) OccurredAt() time.Time { return o.At }

// EventEqual compares two events by identity.
func EventEqual(a, b Event) bool { return EntityEqual[EventID](a, b) }

// Record appends e to the pending events.
func (r *Recorder) Record(e Event) {
	r.pending = append(r.pending, e)
}

// PullEvents returns the pending events in record order and clears the
// recorder.
func (r *Recorder) PullEvents() []Event {
	evts := r.pending
	r.pending = nil
	return evts
}

// HasPending reports whether any events await dispatch.
func (r *Recorder) HasPending() bool { return len(r.pending) > 0 }
