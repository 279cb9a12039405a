package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vms/internal/domain"
)

func TestEventService_CreateValidation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := NewEventService(f.events)
	ctx := context.Background()

	organizer, _ := f.seedEvent(t, nil)

	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	_, err := svc.Create(ctx, &domain.Event{
		Name:      "",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}, organizer.ID)
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation, "missing name")

	_, err = svc.Create(ctx, &domain.Event{
		Name:      "Backwards",
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
	}, organizer.ID)
	assert.ErrorAs(t, err, &validation, "end before start")

	created, err := svc.Create(ctx, &domain.Event{
		Name:      "Food Drive",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	}, organizer.ID)
	require.NoError(t, err)
	assert.Equal(t, organizer.ID, created.OrganizerID)
}

func TestEventService_UpdateKeepsOrganizer(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := NewEventService(f.events)
	ctx := context.Background()

	organizer, event := f.seedEvent(t, int64Ptr(5))

	event.Name = "Renamed"
	event.OrganizerID = 424242 // must be ignored
	updated, err := svc.Update(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, organizer.ID, updated.OrganizerID)
}

func TestEventService_ListByOrganizer(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := NewEventService(f.events)
	ctx := context.Background()

	organizer, event := f.seedEvent(t, nil)

	mine, err := svc.ListByOrganizer(ctx, organizer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, event.ID, mine[0].ID)

	other, err := svc.ListByOrganizer(ctx, organizer.ID+1)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestEventService_IsOrganizer(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := NewEventService(f.events)
	ctx := context.Background()

	organizer, event := f.seedEvent(t, nil)

	owns, err := svc.IsOrganizer(ctx, organizer.ID, event.ID)
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = svc.IsOrganizer(ctx, organizer.ID+1, event.ID)
	require.NoError(t, err)
	assert.False(t, owns)

	// A missing event is a plain false, not an error: the guard denies
	// and the handler reports the 404.
	owns, err = svc.IsOrganizer(ctx, organizer.ID, 9999)
	require.NoError(t, err)
	assert.False(t, owns)
}

func TestEventService_Delete(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	svc := NewEventService(f.events)
	ctx := context.Background()

	_, event := f.seedEvent(t, nil)

	require.NoError(t, svc.Delete(ctx, event.ID))

	_, err := svc.Get(ctx, event.ID)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
