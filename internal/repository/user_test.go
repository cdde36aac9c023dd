package repository

import (
	"context"
	"testing"

	"simpleadvert/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Superusers(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com", false)
	seedUser(t, db, "bob@example.com", true)

	require.NoError(t, repo.SetSuperuser(ctx, "alice@example.com", true))
	supers, err := repo.ListSuperusers(ctx)
	require.NoError(t, err)
	require.Len(t, supers, 2)
	assert.Equal(t, alice.ID, supers[0].ID)

	require.NoError(t, repo.SetSuperuser(ctx, "bob@example.com", false))
	supers, err = repo.ListSuperusers(ctx)
	require.NoError(t, err)
	assert.Len(t, supers, 1)

	err = repo.SetSuperuser(ctx, "nobody@example.com", true)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestUserRepository_Lookup(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "carol@example.com", false)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "carol@example.com", byID.Email)
	assert.True(t, byID.IsActive)

	byEmail, err := repo.GetByEmail(ctx, "carol@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = repo.GetByID(ctx, 999)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

	err = repo.Create(ctx, &models.User{Email: "carol@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}
