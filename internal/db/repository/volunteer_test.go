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

func setupVolunteerRepo(t *testing.T) (*VolunteerRepo, *UserRepo) {
	t.Helper()
	writeDB, _ := internaldb.OpenTestSQLite(t)
	roles := NewRoleRepo(writeDB)
	require.NoError(t, internaldb.SeedRoles(context.Background(), roles))
	return NewVolunteerRepo(writeDB), NewUserRepo(writeDB)
}

func TestVolunteerRepo_CreateAndLookup(t *testing.T) {
	t.Parallel()
	repo, users := setupVolunteerRepo(t)
	ctx := context.Background()

	u := createTestUser(t, users, "dave")
	v, err := repo.Create(ctx, &domain.Volunteer{
		UserID:      u.ID,
		PhoneNumber: "555-0100",
		Skills:      "first aid",
	})
	require.NoError(t, err)
	assert.NotZero(t, v.ID)

	byUser, err := repo.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, byUser.ID)

	// One volunteer profile per user.
	_, err = repo.Create(ctx, &domain.Volunteer{UserID: u.ID})
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestVolunteerRepo_UpdateDeleteList(t *testing.T) {
	t.Parallel()
	repo, users := setupVolunteerRepo(t)
	ctx := context.Background()

	u1 := createTestUser(t, users, "erin")
	u2 := createTestUser(t, users, "frank")
	v1, err := repo.Create(ctx, &domain.Volunteer{UserID: u1.ID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Volunteer{UserID: u2.ID})
	require.NoError(t, err)

	v1.Skills = "logistics"
	v1.Availability = "weekends"
	updated, err := repo.Update(ctx, v1)
	require.NoError(t, err)
	assert.Equal(t, "logistics", updated.Skills)
	assert.Equal(t, "weekends", updated.Availability)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, v1.ID))
	_, err = repo.GetByID(ctx, v1.ID)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	err = repo.Delete(ctx, v1.ID)
	assert.ErrorAs(t, err, &notFound)
}
