// Package service implements the application use cases on top of the
// repository ports. Services own invariants that span more than one
// row read, and translate storage failures into domain errors the API
// layer can map to statuses.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"vms/internal/auth"
	"vms/internal/domain"
)

// AuthService handles credential verification and account creation.
type AuthService struct {
	users      domain.UserRepository
	roles      domain.RoleRepository
	volunteers domain.VolunteerRepository
	tokens     *auth.TokenService
	bcryptCost int
}

func NewAuthService(
	users domain.UserRepository,
	roles domain.RoleRepository,
	volunteers domain.VolunteerRepository,
	tokens *auth.TokenService,
	bcryptCost int,
) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		roles:      roles,
		volunteers: volunteers,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

// LoginResult carries the minted token plus a client-safe user summary.
type LoginResult struct {
	Token string
	User  *domain.User
}

// Login verifies the credentials and mints a bearer token. Unknown login
// and wrong password both return UnauthenticatedError with the same
// message, so callers cannot probe for account existence.
func (s *AuthService) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	user, err := s.users.GetByLogin(ctx, login)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return nil, domain.ErrUnauthenticated("invalid credentials")
		}
		return nil, fmt.Errorf("looking up account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrUnauthenticated("invalid credentials")
	}

	token, err := s.tokens.Issue(user.Principal())
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}
	user.PasswordHash = ""
	return &LoginResult{Token: token, User: user}, nil
}

// RegisterRequest is the input for account creation. Role defaults to
// VOLUNTEER when empty.
type RegisterRequest struct {
	Name     string
	Username string
	Email    string
	Password string
	Role     string
}

func (r *RegisterRequest) validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return domain.ErrValidation("username is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return domain.ErrValidation("email is required")
	}
	if len(r.Password) < 8 {
		return domain.ErrValidation("password must be at least 8 characters")
	}
	return nil
}

// Register creates an account. The requested role must exist in the role
// table; a VOLUNTEER account gets an empty volunteer profile alongside it
// so self-registration works immediately after signup.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = domain.RoleVolunteer
	}

	ok, err := s.roles.Exists(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("checking role: %w", err)
	}
	if !ok {
		return nil, domain.ErrValidation("role %q does not exist", role)
	}

	if taken, err := s.users.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, fmt.Errorf("checking username: %w", err)
	} else if taken {
		return nil, domain.ErrConflict("username %q is already taken", req.Username)
	}
	if taken, err := s.users.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	} else if taken {
		return nil, domain.ErrConflict("email %q is already registered", req.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Roles:        []string{role},
	})
	if err != nil {
		return nil, err
	}

	if role == domain.RoleVolunteer {
		if _, err := s.volunteers.Create(ctx, &domain.Volunteer{UserID: user.ID}); err != nil {
			return nil, fmt.Errorf("creating volunteer profile: %w", err)
		}
	}

	user.PasswordHash = ""
	return user, nil
}
