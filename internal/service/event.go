package service

import (
	"context"
	"errors"
	"fmt"

	"vms/internal/domain"
)

// EventService owns event lifecycle and the organizer-of ownership
// predicate used by route guards.
type EventService struct {
	events domain.EventRepository
}

func NewEventService(events domain.EventRepository) *EventService {
	return &EventService{events: events}
}

// Create validates and persists a new event for the given organizer.
func (s *EventService) Create(ctx context.Context, e *domain.Event, organizerID int64) (*domain.Event, error) {
	e.OrganizerID = organizerID
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return s.events.Create(ctx, e)
}

func (s *EventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func (s *EventService) ListByOrganizer(ctx context.Context, organizerID int64) ([]domain.Event, error) {
	return s.events.ListByOrganizer(ctx, organizerID)
}

// Update replaces the mutable event fields. The organizer and the
// assigned-volunteer set are not updatable through this path.
func (s *EventService) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	current, err := s.events.GetByID(ctx, e.ID)
	if err != nil {
		return nil, err
	}
	e.OrganizerID = current.OrganizerID
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return s.events.Update(ctx, e)
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.events.Delete(ctx, id)
}

// IsOrganizer reports whether the user organizes the event. A missing
// event yields false rather than an error so guards fall through to a
// plain denial and the handler surfaces the 404.
func (s *EventService) IsOrganizer(ctx context.Context, userID, eventID int64) (bool, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("loading event for ownership check: %w", err)
	}
	return e.OrganizerID == userID, nil
}
