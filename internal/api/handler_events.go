package api

import (
	"net/http"

	"vms/internal/domain"
	"vms/internal/middleware"
)

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, eventsToAPI(events))
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "eventID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid event id"))
		return
	}
	event, err := h.events.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, eventToAPI(event))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.writeError(w, domain.ErrUnauthenticated("authentication required"))
		return
	}

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	event, err := h.events.Create(r.Context(), req.toDomain(), principal.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, eventToAPI(event))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "eventID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid event id"))
		return
	}

	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	e := req.toDomain()
	e.ID = id
	event, err := h.events.Update(r.Context(), e)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, eventToAPI(event))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "eventID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid event id"))
		return
	}
	if err := h.events.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

// ListMyOrganizedEvents returns events the caller organizes.
func (h *Handler) ListMyOrganizedEvents(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.writeError(w, domain.ErrUnauthenticated("authentication required"))
		return
	}
	events, err := h.events.ListByOrganizer(r.Context(), principal.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, eventsToAPI(events))
}

// AssignVolunteer adds a volunteer to an event on behalf of an organizer
// or admin. Responds with the updated event.
func (h *Handler) AssignVolunteer(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid event id"))
		return
	}
	volunteerID, ok := pathID(r, "volunteerID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid volunteer id"))
		return
	}

	event, err := h.registrations.Assign(r.Context(), eventID, volunteerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, eventToAPI(event))
}

// UnassignVolunteer removes a volunteer from an event. Removing an
// absent pairing still responds 204.
func (h *Handler) UnassignVolunteer(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "eventID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid event id"))
		return
	}
	volunteerID, ok := pathID(r, "volunteerID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid volunteer id"))
		return
	}

	if _, err := h.registrations.Unassign(r.Context(), eventID, volunteerID); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}
