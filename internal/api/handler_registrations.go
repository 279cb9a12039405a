package api

import (
	"net/http"

	"vms/internal/domain"
	"vms/internal/middleware"
)

// SelfRegister signs the calling user up for an event through their own
// volunteer profile.
func (h *Handler) SelfRegister(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.writeError(w, domain.ErrUnauthenticated("authentication required"))
		return
	}

	var req registrationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	event, err := h.registrations.RegisterSelf(r.Context(), principal.ID, req.EventID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, eventToAPI(event))
}

// MyRegisteredEventIDs lists the ids of events the caller is signed up for.
func (h *Handler) MyRegisteredEventIDs(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.writeError(w, domain.ErrUnauthenticated("authentication required"))
		return
	}

	ids, err := h.registrations.RegisteredEventIDs(r.Context(), principal.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	h.writeJSON(w, http.StatusOK, ids)
}
