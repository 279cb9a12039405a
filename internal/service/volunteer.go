package service

import (
	"context"
	"errors"

	"vms/internal/domain"
)

// VolunteerService is a thin pass-through over the profile repository.
type VolunteerService struct {
	volunteers domain.VolunteerRepository
}

func NewVolunteerService(volunteers domain.VolunteerRepository) *VolunteerService {
	return &VolunteerService{volunteers: volunteers}
}

func (s *VolunteerService) Get(ctx context.Context, id int64) (*domain.Volunteer, error) {
	return s.volunteers.GetByID(ctx, id)
}

func (s *VolunteerService) GetByUserID(ctx context.Context, userID int64) (*domain.Volunteer, error) {
	return s.volunteers.GetByUserID(ctx, userID)
}

func (s *VolunteerService) List(ctx context.Context) ([]domain.Volunteer, error) {
	return s.volunteers.List(ctx)
}

// Update replaces the profile's contact and availability fields. The
// user binding is immutable.
func (s *VolunteerService) Update(ctx context.Context, v *domain.Volunteer) (*domain.Volunteer, error) {
	current, err := s.volunteers.GetByID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.UserID = current.UserID
	return s.volunteers.Update(ctx, v)
}

// UpdateByUserID edits the profile belonging to the given user, used by
// the self-service profile route.
func (s *VolunteerService) UpdateByUserID(ctx context.Context, userID int64, v *domain.Volunteer) (*domain.Volunteer, error) {
	current, err := s.volunteers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	v.ID = current.ID
	v.UserID = userID
	return s.volunteers.Update(ctx, v)
}

func (s *VolunteerService) Delete(ctx context.Context, id int64) error {
	return s.volunteers.Delete(ctx, id)
}

// IsProfileOwner reports whether the volunteer profile belongs to the
// user. Missing profile yields false so guards return a plain denial.
func (s *VolunteerService) IsProfileOwner(ctx context.Context, userID, volunteerID int64) (bool, error) {
	v, err := s.volunteers.GetByID(ctx, volunteerID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, err
	}
	return v.UserID == userID, nil
}
