package service

import (
	"context"
	"errors"
	"fmt"

	"vms/internal/domain"
)

// RegistrationService is the ledger of volunteer-to-event assignments.
// All mutations delegate to the repository's transactional Assign and
// Unassign, so the duplicate and capacity checks run inside the same
// critical section as the write.
type RegistrationService struct {
	events     domain.EventRepository
	volunteers domain.VolunteerRepository
}

func NewRegistrationService(events domain.EventRepository, volunteers domain.VolunteerRepository) *RegistrationService {
	return &RegistrationService{events: events, volunteers: volunteers}
}

// Assign adds the volunteer to the event. Not idempotent: a volunteer
// already on the event gets ConflictError, a full event CapacityError.
func (s *RegistrationService) Assign(ctx context.Context, eventID, volunteerID int64) (*domain.Event, error) {
	return s.events.Assign(ctx, eventID, volunteerID)
}

// Unassign removes the volunteer from the event. Removing an absent
// pairing is a no-op success.
func (s *RegistrationService) Unassign(ctx context.Context, eventID, volunteerID int64) (*domain.Event, error) {
	return s.events.Unassign(ctx, eventID, volunteerID)
}

// RegisterSelf signs the calling user up for an event through their own
// volunteer profile. A caller without a profile cannot register.
func (s *RegistrationService) RegisterSelf(ctx context.Context, userID, eventID int64) (*domain.Event, error) {
	v, err := s.volunteers.GetByUserID(ctx, userID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.ErrAccessDenied("no volunteer profile for this account")
		}
		return nil, fmt.Errorf("resolving volunteer profile: %w", err)
	}
	return s.events.Assign(ctx, eventID, v.ID)
}

// RegisteredEventIDs lists the ids of events the calling user's volunteer
// is assigned to. A user without a profile has no registrations.
func (s *RegistrationService) RegisteredEventIDs(ctx context.Context, userID int64) ([]int64, error) {
	v, err := s.volunteers.GetByUserID(ctx, userID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return []int64{}, nil
		}
		return nil, fmt.Errorf("resolving volunteer profile: %w", err)
	}
	return s.events.EventIDsForVolunteer(ctx, v.ID)
}
