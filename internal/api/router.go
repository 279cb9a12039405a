package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"vms/internal/auth"
	"vms/internal/config"
	"vms/internal/domain"
	"vms/internal/middleware"
	"vms/internal/policy"
)

// NewRouter assembles the full middleware chain and route table.
//
// Middleware order matters: RequestID first so every later log line can
// carry it, Recoverer before anything that can panic, the rate limiter
// ahead of CORS and authentication so rejected clients stay cheap, and
// the authenticator last so guards see the principal.
func NewRouter(
	h *Handler,
	tokens *auth.TokenService,
	users domain.UserRepository,
	isOrganizer func(ctx context.Context, userID, eventID int64) (bool, error),
	isProfileOwner func(ctx context.Context, userID, volunteerID int64) (bool, error),
	cfg *config.Config,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Authenticator(tokens, users, logger))

	// Ownership predicates close over the principal resolved per request.
	organizerOf := policy.OwnershipFunc(func(ctx context.Context, p *domain.Principal, eventID int64) (bool, error) {
		return isOrganizer(ctx, p.ID, eventID)
	})
	selfUser := policy.OwnershipFunc(func(_ context.Context, p *domain.Principal, userID int64) (bool, error) {
		return p.ID == userID, nil
	})
	ownsProfile := policy.OwnershipFunc(func(ctx context.Context, p *domain.Principal, volunteerID int64) (bool, error) {
		return isProfileOwner(ctx, p.ID, volunteerID)
	})

	adminOrOrganizerOf := policy.RequireRoleOrOwnership(organizerOf, domain.RoleAdmin)
	adminOrSelf := policy.RequireRoleOrOwnership(selfUser, domain.RoleAdmin)
	adminOrProfileOwner := policy.RequireRoleOrOwnership(ownsProfile, domain.RoleAdmin)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/register", h.Register)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.ListEvents)
			r.With(policy.Require(policy.RequireRole(domain.RoleAdmin, domain.RoleOrganizer), "")).
				Post("/", h.CreateEvent)
			r.With(policy.Require(policy.RequireRole(domain.RoleOrganizer), "")).
				Get("/my-organized", h.ListMyOrganizedEvents)

			r.Route("/{eventID}", func(r chi.Router) {
				r.Get("/", h.GetEvent)
				r.With(policy.Require(adminOrOrganizerOf, "eventID")).Put("/", h.UpdateEvent)
				r.With(policy.Require(adminOrOrganizerOf, "eventID")).Delete("/", h.DeleteEvent)
				r.With(policy.Require(adminOrOrganizerOf, "eventID")).
					Post("/assign/{volunteerID}", h.AssignVolunteer)
				r.With(policy.Require(adminOrOrganizerOf, "eventID")).
					Delete("/unassign/{volunteerID}", h.UnassignVolunteer)
			})
		})

		r.Route("/registrations", func(r chi.Router) {
			r.With(policy.Require(policy.AnyAuthenticated(), "")).Post("/", h.SelfRegister)
			r.With(policy.Require(policy.AnyAuthenticated(), "")).
				Get("/myevents/ids", h.MyRegisteredEventIDs)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(policy.Require(policy.AnyAuthenticated(), "")).Get("/me", h.GetCurrentUser)
			r.With(policy.Require(policy.AnyAuthenticated(), "")).Put("/me", h.UpdateCurrentUser)
			r.With(policy.Require(adminOrSelf, "userID")).Get("/{userID}", h.GetUser)
		})

		r.Route("/volunteers", func(r chi.Router) {
			r.With(policy.Require(policy.RequireRole(domain.RoleAdmin), "")).Get("/", h.ListVolunteers)
			r.Get("/{volunteerID}", h.GetVolunteer)
			r.With(policy.Require(adminOrProfileOwner, "volunteerID")).
				Put("/{volunteerID}", h.UpdateVolunteer)
			r.With(policy.Require(policy.RequireRole(domain.RoleAdmin), "")).
				Delete("/{volunteerID}", h.DeleteVolunteer)
		})

		r.Route("/profile", func(r chi.Router) {
			r.With(policy.Require(adminOrSelf, "userID")).
				Get("/volunteer/{userID}", h.GetVolunteerProfile)
			r.With(policy.Require(policy.AnyAuthenticated(), "")).
				Put("/volunteer", h.UpdateMyVolunteerProfile)
		})
	})

	return r
}
