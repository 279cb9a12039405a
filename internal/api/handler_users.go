package api

import (
	"net/http"

	"vms/internal/domain"
	"vms/internal/middleware"
)

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.writeError(w, domain.ErrUnauthenticated("authentication required"))
		return
	}
	user, err := h.users.Get(r.Context(), principal.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, userToAPI(user))
}

func (h *Handler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.writeError(w, domain.ErrUnauthenticated("authentication required"))
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, domain.ErrValidation("invalid request body"))
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), principal.ID, req.Name, req.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, userToAPI(user))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "userID")
	if !ok {
		h.writeError(w, domain.ErrValidation("invalid user id"))
		return
	}
	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, userToAPI(user))
}
