package domain

import "context"

// UserRepository is the user directory. Lookups return NotFoundError when
// no matching account exists.
type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetByLogin resolves a username or email to an account.
	GetByLogin(ctx context.Context, login string) (*User, error)
	Update(ctx context.Context, u *User) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RoleRepository manages the static role table.
type RoleRepository interface {
	Exists(ctx context.Context, name string) (bool, error)
	// Ensure inserts the role if missing. Idempotent.
	Ensure(ctx context.Context, name string) error
}

// VolunteerRepository persists volunteer profiles.
type VolunteerRepository interface {
	Create(ctx context.Context, v *Volunteer) (*Volunteer, error)
	GetByID(ctx context.Context, id int64) (*Volunteer, error)
	GetByUserID(ctx context.Context, userID int64) (*Volunteer, error)
	Update(ctx context.Context, v *Volunteer) (*Volunteer, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Volunteer, error)
}

// EventRepository persists events and their assignment relation.
//
// Assign and Unassign are the only mutation paths for the assignment set.
// Both execute their load/check/write sequence as one atomic unit against
// the event row, so concurrent callers on the same event serialize and
// every check sees the committed state.
type EventRepository interface {
	Create(ctx context.Context, e *Event) (*Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	Update(ctx context.Context, e *Event) (*Event, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Event, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]Event, error)

	// Assign adds the volunteer to the event. Fails with NotFoundError
	// (event missing), ConflictError (already assigned — assign is not
	// idempotent), or CapacityError (event full).
	Assign(ctx context.Context, eventID, volunteerID int64) (*Event, error)

	// Unassign removes the volunteer from the event. Removing an absent
	// pairing succeeds as a no-op. Fails with NotFoundError only when the
	// event itself is missing.
	Unassign(ctx context.Context, eventID, volunteerID int64) (*Event, error)

	// EventIDsForVolunteer returns the ids of events the volunteer is
	// assigned to.
	EventIDsForVolunteer(ctx context.Context, volunteerID int64) ([]int64, error)
}
