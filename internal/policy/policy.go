// Package policy evaluates declarative authorization rules against the
// request's principal before a handler runs.
package policy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vms/internal/domain"
	"vms/internal/middleware"
)

// OwnershipFunc relates a principal to a specific resource instance, e.g.
// "organizes this event" or "is this user". Implementations must be
// side-effect free and return false, not an error, for a missing resource.
type OwnershipFunc func(ctx context.Context, p *domain.Principal, resourceID int64) (bool, error)

type ruleKind int

const (
	kindPublic ruleKind = iota
	kindAuthenticated
	kindRole
	kindRoleOrOwnership
)

// Rule is a declarative authorization requirement attached to a route.
type Rule struct {
	kind      ruleKind
	roles     []string
	ownership OwnershipFunc
}

// Public allows every request, authenticated or not.
func Public() Rule { return Rule{kind: kindPublic} }

// AnyAuthenticated requires a non-anonymous principal.
func AnyAuthenticated() Rule { return Rule{kind: kindAuthenticated} }

// RequireRole requires the principal to hold at least one of the roles.
func RequireRole(roles ...string) Rule {
	return Rule{kind: kindRole, roles: roles}
}

// RequireRoleOrOwnership allows the request when the principal holds one
// of the roles, or when the ownership predicate relates the principal to
// the target resource. The role check always runs first: it is cheap,
// while the ownership predicate may hit storage.
func RequireRoleOrOwnership(ownership OwnershipFunc, roles ...string) Rule {
	return Rule{kind: kindRoleOrOwnership, roles: roles, ownership: ownership}
}

// Evaluate checks the rule. p is nil for anonymous requests. resourceID is
// only consulted by ownership rules. A nil return means the handler may
// run; otherwise the error is UnauthenticatedError (no principal at all)
// or AccessDeniedError (principal present but insufficient) — the two map
// to distinct client-visible statuses.
func (r Rule) Evaluate(ctx context.Context, p *domain.Principal, resourceID int64) error {
	switch r.kind {
	case kindPublic:
		return nil

	case kindAuthenticated:
		if p == nil {
			return domain.ErrUnauthenticated("authentication required")
		}
		return nil

	case kindRole:
		if p == nil {
			return domain.ErrUnauthenticated("authentication required")
		}
		if !p.HasAnyRole(r.roles...) {
			return domain.ErrAccessDenied("insufficient role")
		}
		return nil

	case kindRoleOrOwnership:
		if p == nil {
			return domain.ErrUnauthenticated("authentication required")
		}
		if p.HasAnyRole(r.roles...) {
			return nil
		}
		owns, err := r.ownership(ctx, p, resourceID)
		if err != nil {
			return err
		}
		if !owns {
			return domain.ErrAccessDenied("not the owner of this resource")
		}
		return nil

	default:
		return domain.ErrAccessDenied("unknown authorization rule")
	}
}

// Require returns a chi middleware enforcing the rule. For ownership rules,
// idParam names the URL parameter carrying the target resource id.
func Require(rule Rule, idParam string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, _ := middleware.PrincipalFromContext(r.Context())

			var resourceID int64
			if idParam != "" {
				id, err := strconv.ParseInt(chi.URLParam(r, idParam), 10, 64)
				if err != nil {
					writeDenial(w, domain.ErrValidation("invalid %s", idParam))
					return
				}
				resourceID = id
			}

			if err := rule.Evaluate(r.Context(), principal, resourceID); err != nil {
				writeDenial(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeDenial(w http.ResponseWriter, err error) {
	var (
		unauthenticated *domain.UnauthenticatedError
		denied          *domain.AccessDeniedError
		validation      *domain.ValidationError
	)
	code := http.StatusInternalServerError
	message := "internal error"
	switch {
	case errors.As(err, &unauthenticated):
		code = http.StatusUnauthorized
		message = "unauthenticated"
	case errors.As(err, &denied):
		code = http.StatusForbidden
		message = "forbidden"
	case errors.As(err, &validation):
		code = http.StatusBadRequest
		message = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    code,
		"message": message,
	})
}
