package repository

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "vms/internal/db"
	"vms/internal/domain"
)

func setupUserRepo(t *testing.T) (*UserRepo, *RoleRepo) {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	roles := NewRoleRepo(writeDB)
	require.NoError(t, internaldb.SeedRoles(context.Background(), roles))
	return NewUserRepo(writeDB), roles
}

// createTestUser is a helper that creates a user with the given roles.
func createTestUser(t *testing.T, repo *UserRepo, username string, roles ...string) *domain.User {
	t.Helper()
	if len(roles) == 0 {
		roles = []string{domain.RoleVolunteer}
	}
	u, err := repo.Create(context.Background(), &domain.User{
		Name:         "Test " + username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "$2a$12$fakehashfakehashfakehash",
		Roles:        roles,
	})
	require.NoError(t, err)
	return u
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	t.Parallel()
	repo, _ := setupUserRepo(t)
	ctx := context.Background()

	u := createTestUser(t, repo, "alice", domain.RoleVolunteer, domain.RoleOrganizer)
	assert.NotZero(t, u.ID)
	assert.ElementsMatch(t, []string{domain.RoleVolunteer, domain.RoleOrganizer}, u.Roles)
	assert.False(t, u.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byUsername, err := repo.GetByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byUsername.ID)

	byEmail, err := repo.GetByLogin(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
}

func TestUserRepo_GetMissing(t *testing.T) {
	t.Parallel()
	repo, _ := setupUserRepo(t)

	_, err := repo.GetByID(context.Background(), 12345)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = repo.GetByLogin(context.Background(), "nobody")
	assert.ErrorAs(t, err, &notFound)
}

func TestUserRepo_UniqueConstraints(t *testing.T) {
	t.Parallel()
	repo, _ := setupUserRepo(t)
	ctx := context.Background()

	createTestUser(t, repo, "bob")

	_, err := repo.Create(ctx, &domain.User{
		Name: "Bob Again", Username: "bob", Email: "other@example.com",
		PasswordHash: "x", Roles: []string{domain.RoleVolunteer},
	})
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)

	taken, err := repo.ExistsByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, taken)

	free, err := repo.ExistsByEmail(ctx, "free@example.com")
	require.NoError(t, err)
	assert.False(t, free)
}

func TestUserRepo_CreateUnknownRole(t *testing.T) {
	t.Parallel()
	repo, _ := setupUserRepo(t)

	_, err := repo.Create(context.Background(), &domain.User{
		Name: "Eve", Username: "eve", Email: "eve@example.com",
		PasswordHash: "x", Roles: []string{"SUPERUSER"},
	})
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestUserRepo_Update(t *testing.T) {
	t.Parallel()
	repo, _ := setupUserRepo(t)
	ctx := context.Background()

	u := createTestUser(t, repo, "carol")
	u.Name = "Carol Renamed"
	u.Email = "carol2@example.com"

	updated, err := repo.Update(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, "Carol Renamed", updated.Name)
	assert.Equal(t, "carol2@example.com", updated.Email)
	// Roles survive a profile update untouched.
	assert.Equal(t, []string{domain.RoleVolunteer}, updated.Roles)

	_, err = repo.Update(ctx, &domain.User{ID: 99999, Name: "x", Email: "x@example.com"})
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
