// Package middleware provides HTTP middleware: bearer-token authentication,
// request ids, and rate limiting.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"vms/internal/auth"
	"vms/internal/domain"
)

type principalKey struct{}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the principal from the context. The second
// return is false for anonymous requests.
func PrincipalFromContext(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*domain.Principal)
	return p, ok
}

// Authenticator resolves the request's principal from a bearer token.
//
// A missing or non-bearer Authorization header leaves the request
// anonymous — many routes permit that, so it is not an error here. A
// verification failure also leaves the request anonymous: the failure kind
// is logged but never leaked to the client, and enforcement is deferred to
// the route's authorization rule. A verified subject that no longer exists
// in the directory (account deleted after issuance) is treated the same
// way. On success the principal, with roles freshly resolved from the
// directory, is published into the request's context and lives no longer
// than the request.
func Authenticator(tokens *auth.TokenService, users domain.UserRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			subject, err := tokens.Verify(token)
			if err != nil {
				logger.Debug("bearer token rejected", "reason", err)
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetByID(r.Context(), subject)
			if err != nil {
				var notFound *domain.NotFoundError
				if errors.As(err, &notFound) {
					logger.Debug("token subject no longer in directory", "subject", subject)
				} else {
					logger.Warn("principal lookup failed", "subject", subject, "error", err)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithPrincipal(r.Context(), user.Principal())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the credential from an "Authorization: Bearer ..."
// header. Returns false for absent or malformed headers.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
