package domain

import "time"

// Event is a coordinated volunteering activity. Capacity nil means
// unlimited. The event exclusively owns its assigned-volunteer set; the
// set is mutated only through the registration ledger, never by direct
// field assignment elsewhere.
type Event struct {
	ID          int64
	Name        string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Capacity    *int64
	OrganizerID int64

	// AssignedVolunteerIDs holds the ids of volunteers currently assigned.
	// Invariant: len(AssignedVolunteerIDs) <= *Capacity when Capacity is set.
	AssignedVolunteerIDs []int64
}

// Validate checks the event's structural invariants.
func (e *Event) Validate() error {
	if e.Name == "" {
		return ErrValidation("event name is required")
	}
	if e.EndTime.Before(e.StartTime) {
		return ErrValidation("event end time must not be before start time")
	}
	if e.Capacity != nil && *e.Capacity < 0 {
		return ErrValidation("event capacity must not be negative")
	}
	return nil
}

// HasVolunteer reports whether the volunteer is currently assigned.
func (e *Event) HasVolunteer(volunteerID int64) bool {
	for _, id := range e.AssignedVolunteerIDs {
		if id == volunteerID {
			return true
		}
	}
	return false
}

// Full reports whether the event has reached its capacity.
// An event without a capacity is never full.
func (e *Event) Full() bool {
	return e.Capacity != nil && int64(len(e.AssignedVolunteerIDs)) >= *e.Capacity
}
