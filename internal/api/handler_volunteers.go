package api

import (
	"net/http"

	"vms/internal/domain"
	"vms/internal/middleware"
)

func (h *Handler) ListVolunteers(w http.ResponseWriter, r *http.Request) {
	vs, err := h.volunteers.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, volunteersToAPI(vs))
}

func (h *Handler) GetVolunteer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "volunteerID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid volunteer id"))
		return
	}
	v, err := h.volunteers.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, volunteerToAPI(v))
}

func (h *Handler) UpdateVolunteer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "volunteerID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid volunteer id"))
		return
	}

	var req volunteerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	v := req.toDomain()
	v.ID = id
	updated, err := h.volunteers.Update(r.Context(), v)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, volunteerToAPI(updated))
}

func (h *Handler) DeleteVolunteer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "volunteerID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid volunteer id"))
		return
	}
	if err := h.volunteers.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

// GetVolunteerProfile returns the volunteer profile belonging to a user.
func (h *Handler) GetVolunteerProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid user id"))
		return
	}
	v, err := h.volunteers.GetByUserID(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, volunteerToAPI(v))
}

// UpdateMyVolunteerProfile edits the calling user's own profile.
func (h *Handler) UpdateMyVolunteerProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.writeError(w, domain.ErrUnauthenticated("authentication required"))
		return
	}

	var req volunteerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	v, err := h.volunteers.UpdateByUserID(r.Context(), principal.ID, req.toDomain())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, volunteerToAPI(v))
}
