package bootstrap

import (
	"context"
	"testing"

	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"
	"simpleadvert/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestEnsureSuperuser_Creates(t *testing.T) {
	users := repository.NewUserRepository(testutil.NewSQLiteDB(t))
	ctx := context.Background()

	require.NoError(t, EnsureSuperuser(ctx, users, " Admin@Example.com ", "s3cret-pass"))

	admin, err := users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, admin.IsSuperuser)
	assert.True(t, admin.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret-pass")))

	// Second run is a no-op.
	require.NoError(t, EnsureSuperuser(ctx, users, "admin@example.com", "other"))
	again, err := users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, admin.Password, again.Password)
}

func TestEnsureSuperuser_PromotesExisting(t *testing.T) {
	users := repository.NewUserRepository(testutil.NewSQLiteDB(t))
	ctx := context.Background()
	require.NoError(t, users.Create(ctx, &models.User{Email: "staff@example.com", Password: "hash", IsActive: true}))

	require.NoError(t, EnsureSuperuser(ctx, users, "staff@example.com", ""))

	staff, err := users.GetByEmail(ctx, "staff@example.com")
	require.NoError(t, err)
	assert.True(t, staff.IsSuperuser)
	assert.Equal(t, "hash", staff.Password)
}

func TestEnsureSuperuser_Disabled(t *testing.T) {
	users := repository.NewUserRepository(testutil.NewSQLiteDB(t))
	require.NoError(t, EnsureSuperuser(context.Background(), users, "", ""))

	supers, err := users.ListSuperusers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, supers)
}

func TestEnsureSuperuser_MissingPassword(t *testing.T) {
	users := repository.NewUserRepository(testutil.NewSQLiteDB(t))
	assert.Error(t, EnsureSuperuser(context.Background(), users, "new@example.com", ""))
}
