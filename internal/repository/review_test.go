package repository

import (
	"context"
	"testing"

	"simpleadvert/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedbackRepository_ListByAdvert(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com", false)
	reviewer := seedUser(t, db, "reviewer@example.com", false)
	a := seedAdvert(t, db, owner, "a")
	b := seedAdvert(t, db, owner, "b")

	repo := NewFeedbackRepository(db)
	actor := reviewer.Actor()
	for _, advertID := range []uint{a.ID, b.ID, a.ID} {
		_, err := repo.Create(ctx, &models.Feedback{Text: "text", AdvertID: advertID}, &actor)
		require.NoError(t, err)
	}

	list, err := repo.ListByAdvert(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID)
	for _, f := range list {
		assert.Equal(t, a.ID, f.AdvertID)
		assert.Equal(t, reviewer.ID, *f.UserID)
	}

	all, err := repo.GetMulti(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestComplaintRepository_UpdateRemove(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "owner@example.com", false)
	advert := seedAdvert(t, db, owner, "a")

	repo := NewComplaintRepository(db)
	created, err := repo.Create(ctx, &models.Complaint{Text: "fraud", AdvertID: advert.ID}, nil)
	require.NoError(t, err)
	assert.Nil(t, created.UserID)

	updated, err := repo.Update(ctx, created, models.ReviewPatch{Text: models.Some("definitely fraud")})
	require.NoError(t, err)
	assert.Equal(t, "definitely fraud", updated.Text)
	assert.Equal(t, advert.ID, updated.AdvertID)

	removed, err := repo.Remove(ctx, updated)
	require.NoError(t, err)
	assert.Equal(t, created.ID, removed.ID)

	_, err = repo.Remove(ctx, removed)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestFeedbackRepository_AdvertMustExist(t *testing.T) {
	db := setupSQLiteDB(t)
	_, err := NewFeedbackRepository(db).Create(context.Background(), &models.Feedback{Text: "orphan", AdvertID: 404}, nil)
	assert.Error(t, err)
}
