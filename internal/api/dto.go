package api

import (
	"time"

	"vms/internal/domain"
)

// --- response shapes ---

type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

func userToAPI(u *domain.User) userResponse {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
	}
}

type eventResponse struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Location             string    `json:"location"`
	StartTime            time.Time `json:"startTime"`
	EndTime              time.Time `json:"endTime"`
	Capacity             *int64    `json:"capacity"`
	OrganizerID          int64     `json:"organizerId"`
	AssignedVolunteerIDs []int64   `json:"assignedVolunteerIds"`
}

func eventToAPI(e *domain.Event) eventResponse {
	assigned := e.AssignedVolunteerIDs
	if assigned == nil {
		assigned = []int64{}
	}
	return eventResponse{
		ID:                   e.ID,
		Name:                 e.Name,
		Description:          e.Description,
		Location:             e.Location,
		StartTime:            e.StartTime,
		EndTime:              e.EndTime,
		Capacity:             e.Capacity,
		OrganizerID:          e.OrganizerID,
		AssignedVolunteerIDs: assigned,
	}
}

func eventsToAPI(events []domain.Event) []eventResponse {
	out := make([]eventResponse, len(events))
	for i := range events {
		out[i] = eventToAPI(&events[i])
	}
	return out
}

type volunteerResponse struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	PhoneNumber  string `json:"phoneNumber"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
}

func volunteerToAPI(v *domain.Volunteer) volunteerResponse {
	return volunteerResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		PhoneNumber:  v.PhoneNumber,
		Skills:       v.Skills,
		Availability: v.Availability,
	}
}

func volunteersToAPI(vs []domain.Volunteer) []volunteerResponse {
	out := make([]volunteerResponse, len(vs))
	for i := range vs {
		out[i] = volunteerToAPI(&vs[i])
	}
	return out
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// --- request shapes ---

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type eventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Capacity    *int64    `json:"capacity"`
}

func (r *eventRequest) toDomain() *domain.Event {
	return &domain.Event{
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Capacity:    r.Capacity,
	}
}

type registrationRequest struct {
	EventID int64 `json:"eventId"`
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type volunteerRequest struct {
	PhoneNumber  string `json:"phoneNumber"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
}

func (r *volunteerRequest) toDomain() *domain.Volunteer {
	return &domain.Volunteer{
		PhoneNumber:  r.PhoneNumber,
		Skills:       r.Skills,
		Availability: r.Availability,
	}
}
