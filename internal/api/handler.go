// Package api provides the HTTP handlers for the volunteer management
// REST API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vms/internal/service"
)

// Handler holds the service dependencies for all routes.
type Handler struct {
	auth          *service.AuthService
	events        *service.EventService
	registrations *service.RegistrationService
	users         *service.UserService
	volunteers    *service.VolunteerService
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required service dependencies.
func NewHandler(
	auth *service.AuthService,
	events *service.EventService,
	registrations *service.RegistrationService,
	users *service.UserService,
	volunteers *service.VolunteerService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		auth:          auth,
		events:        events,
		registrations: registrations,
		users:         users,
		volunteers:    volunteers,
		logger:        logger,
	}
}

// errorBody is the uniform error envelope.
type errorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("encoding response", "error", err)
	}
}

// writeError maps the domain error to a status and writes the envelope.
// Internal errors are logged but never echoed to the client.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := httpStatusFromDomainError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
		message = "internal error"
	}
	h.writeJSON(w, status, errorBody{Code: status, Message: message})
}

// decodeJSON reads the request body into dst, rejecting unknown fields.
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathID parses the named URL parameter as an id.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil
}
