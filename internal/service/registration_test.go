package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vms/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

// seedEvent creates an organizer account plus an event with the given
// capacity and returns both.
func (f *serviceFixture) seedEvent(t *testing.T, capacity *int64) (*domain.User, *domain.Event) {
	t.Helper()
	ctx := context.Background()

	organizer, err := f.authService().Register(ctx, RegisterRequest{
		Username: "organizer-" + t.Name(),
		Email:    "organizer-" + t.Name() + "@example.org",
		Password: "correct horse",
		Role:     domain.RoleOrganizer,
	})
	require.NoError(t, err)

	start := time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC)
	event, err := f.events.Create(ctx, &domain.Event{
		Name:        "River Cleanup",
		Location:    "North bank",
		StartTime:   start,
		EndTime:     start.Add(4 * time.Hour),
		Capacity:    capacity,
		OrganizerID: organizer.ID,
	})
	require.NoError(t, err)
	return organizer, event
}

// seedVolunteerUser registers a volunteer account and returns the user.
func (f *serviceFixture) seedVolunteerUser(t *testing.T, name string) *domain.User {
	t.Helper()

	user, err := f.authService().Register(context.Background(), RegisterRequest{
		Username: name + "-" + t.Name(),
		Email:    name + "-" + t.Name() + "@example.org",
		Password: "correct horse",
	})
	require.NoError(t, err)
	return user
}

func TestRegistrationService_RegisterSelf(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := NewRegistrationService(f.events, f.volunteers)
	ctx := context.Background()

	_, event := f.seedEvent(t, int64Ptr(2))
	user := f.seedVolunteerUser(t, "vol")

	got, err := svc.RegisterSelf(ctx, user.ID, event.ID)
	require.NoError(t, err)
	assert.Len(t, got.AssignedVolunteerIDs, 1)

	// Registering twice for the same event is a conflict, not a no-op.
	_, err = svc.RegisterSelf(ctx, user.ID, event.ID)
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)

	ids, err := svc.RegisteredEventIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{event.ID}, ids)
}

func TestRegistrationService_RegisterSelfWithoutProfile(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := NewRegistrationService(f.events, f.volunteers)
	ctx := context.Background()

	organizer, event := f.seedEvent(t, nil)

	// Organizers have no volunteer profile, so self-registration is denied.
	_, err := svc.RegisterSelf(ctx, organizer.ID, event.ID)
	var denied *domain.AccessDeniedError
	assert.ErrorAs(t, err, &denied)

	// And their registration list is simply empty.
	ids, err := svc.RegisteredEventIDs(ctx, organizer.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRegistrationService_CapacityAndUnassign(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := NewRegistrationService(f.events, f.volunteers)
	ctx := context.Background()

	_, event := f.seedEvent(t, int64Ptr(1))
	first := f.seedVolunteerUser(t, "first")
	second := f.seedVolunteerUser(t, "second")

	_, err := svc.RegisterSelf(ctx, first.ID, event.ID)
	require.NoError(t, err)

	// The event is full; the next registration loses.
	_, err = svc.RegisterSelf(ctx, second.ID, event.ID)
	var capErr *domain.CapacityError
	require.ErrorAs(t, err, &capErr)

	// Unassigning the winner frees the slot.
	firstProfile, err := f.volunteers.GetByUserID(ctx, first.ID)
	require.NoError(t, err)
	got, err := svc.Unassign(ctx, event.ID, firstProfile.ID)
	require.NoError(t, err)
	assert.Empty(t, got.AssignedVolunteerIDs)

	// Unassign of an absent pairing stays a no-op success.
	_, err = svc.Unassign(ctx, event.ID, firstProfile.ID)
	assert.NoError(t, err)

	_, err = svc.RegisterSelf(ctx, second.ID, event.ID)
	assert.NoError(t, err)
}

func TestRegistrationService_MissingEvent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := NewRegistrationService(f.events, f.volunteers)

	user := f.seedVolunteerUser(t, "vol")

	_, err := svc.RegisterSelf(context.Background(), user.ID, 9999)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
