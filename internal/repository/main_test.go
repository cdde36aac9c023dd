package repository

import (
	"context"
	"testing"

	"simpleadvert/internal/models"
	"simpleadvert/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupSQLiteDB(t *testing.T) *gorm.DB {
	return testutil.NewSQLiteDB(t)
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func seedUser(t *testing.T, db *gorm.DB, email string, superuser bool) *models.User {
	t.Helper()
	user := &models.User{Email: email, Password: "hash", IsActive: true, IsSuperuser: superuser}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedAdvert(t *testing.T, db *gorm.DB, owner *models.User, description string) *models.Advert {
	t.Helper()
	actor := owner.Actor()
	advert, err := NewAdvertRepository(db).Create(context.Background(), &models.Advert{
		Title:       "T",
		Description: description,
		Kind:        models.AdvertKindSelling,
		Price:       10,
	}, &actor)
	require.NoError(t, err)
	return advert
}
