package domain

// Volunteer is the volunteering profile attached to a user account.
// One profile per user; lifecycle independent from events. The profile
// holds only an id-based back-reference to its user — event membership is
// resolved through the assignment relation, never a live object graph.
type Volunteer struct {
	ID           int64
	UserID       int64
	PhoneNumber  string
	Skills       string
	Availability string
}
