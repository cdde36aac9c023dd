package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAdvertCreate() models.AdvertCreate {
	return models.AdvertCreate{
		Title:       "Bike",
		Description: "Red road bike, size M",
		Kind:        models.AdvertKindSelling,
		Price:       500,
	}
}

func TestAdvertService_CreateAdvert_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*models.AdvertCreate)
	}{
		{"empty title", func(in *models.AdvertCreate) { in.Title = "" }},
		{"title too long", func(in *models.AdvertCreate) { in.Title = strings.Repeat("я", 101) }},
		{"empty description", func(in *models.AdvertCreate) { in.Description = "" }},
		{"zero price", func(in *models.AdvertCreate) { in.Price = 0 }},
		{"negative price", func(in *models.AdvertCreate) { in.Price = -5 }},
		{"unknown kind", func(in *models.AdvertCreate) { in.Kind = "Аренда" }},
		{"missing kind", func(in *models.AdvertCreate) { in.Kind = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			uow := newUOW(nil, nil, nil)
			in := validAdvertCreate()
			tt.mutate(&in)

			_, err := NewAdvertService(uow).CreateAdvert(context.Background(), models.Actor{ID: 1}, in)
			assertValidationError(t, err)
			assert.Zero(t, uow.calls)
		})
	}
}

func TestAdvertService_CreateAdvert_TitleLengthCountsCharacters(t *testing.T) {
	t.Parallel()

	adverts := &advertRepoStub{
		descriptionExistsFn: func(context.Context, string) (bool, error) { return false, nil },
	}
	adverts.createFn = func(_ context.Context, a *models.Advert, _ *models.Actor) (*models.Advert, error) {
		return a, nil
	}

	in := validAdvertCreate()
	in.Title = strings.Repeat("я", 100)
	_, err := NewAdvertService(newUOW(adverts, nil, nil)).CreateAdvert(context.Background(), models.Actor{ID: 1}, in)
	require.NoError(t, err)
}

func TestAdvertService_CreateAdvert_DuplicateDescription(t *testing.T) {
	t.Parallel()

	created := false
	adverts := &advertRepoStub{
		descriptionExistsFn: func(_ context.Context, d string) (bool, error) {
			return d == "Red road bike, size M", nil
		},
	}
	adverts.createFn = func(_ context.Context, a *models.Advert, _ *models.Actor) (*models.Advert, error) {
		created = true
		return a, nil
	}

	_, err := NewAdvertService(newUOW(adverts, nil, nil)).
		CreateAdvert(context.Background(), models.Actor{ID: 1}, validAdvertCreate())
	assertAppErrorCode(t, err, models.CodeConflict)
	assert.Contains(t, err.Error(), "description must be unique")
	assert.False(t, created, "no write may happen on conflict")
}

func TestAdvertService_CreateAdvert_UniqueIndexRace(t *testing.T) {
	t.Parallel()

	adverts := &advertRepoStub{
		descriptionExistsFn: func(context.Context, string) (bool, error) { return false, nil },
	}
	adverts.createFn = func(context.Context, *models.Advert, *models.Actor) (*models.Advert, error) {
		return nil, fmt.Errorf("%w: uq_advert_description", repository.ErrDuplicate)
	}

	_, err := NewAdvertService(newUOW(adverts, nil, nil)).
		CreateAdvert(context.Background(), models.Actor{ID: 1}, validAdvertCreate())
	assertAppErrorCode(t, err, models.CodeConflict)
}

func TestAdvertService_CreateAdvert_Success(t *testing.T) {
	t.Parallel()

	adverts := &advertRepoStub{
		descriptionExistsFn: func(context.Context, string) (bool, error) { return false, nil },
	}
	adverts.createFn = func(_ context.Context, a *models.Advert, owner *models.Actor) (*models.Advert, error) {
		require.NotNil(t, owner)
		a.ID = 42
		a.SetOwnerID(owner.ID)
		return a, nil
	}

	advert, err := NewAdvertService(newUOW(adverts, nil, nil)).
		CreateAdvert(context.Background(), models.Actor{ID: 7}, validAdvertCreate())
	require.NoError(t, err)
	assert.Equal(t, uint(42), advert.ID)
	require.NotNil(t, advert.UserID)
	assert.Equal(t, uint(7), *advert.UserID)
	assert.Equal(t, models.AdvertKindSelling, advert.Kind)
}

func TestAdvertService_GetAdvert_NotFound(t *testing.T) {
	t.Parallel()

	adverts := &advertRepoStub{}
	adverts.getFn = advertNotFound

	_, err := NewAdvertService(newUOW(adverts, nil, nil)).GetAdvert(context.Background(), 99)
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestAdvertService_UpdateAdvert_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("non-owner cannot update", func(t *testing.T) {
		t.Parallel()
		adverts := &advertRepoStub{}
		adverts.getFn = advertOwnedBy(10)

		_, err := NewAdvertService(newUOW(adverts, nil, nil)).UpdateAdvert(context.Background(), UpdateAdvertInput{
			Actor:    models.Actor{ID: 1},
			AdvertID: 1,
			Patch:    models.AdvertPatch{Price: models.Some(20)},
		})
		assertForbiddenError(t, err)
	})

	t.Run("advert without owner needs superuser", func(t *testing.T) {
		t.Parallel()
		adverts := &advertRepoStub{}
		adverts.getFn = func(_ context.Context, id uint) (*models.Advert, error) {
			return &models.Advert{ID: id, Description: "orphan"}, nil
		}

		_, err := NewAdvertService(newUOW(adverts, nil, nil)).UpdateAdvert(context.Background(), UpdateAdvertInput{
			Actor:    models.Actor{ID: 1},
			AdvertID: 1,
			Patch:    models.AdvertPatch{Price: models.Some(20)},
		})
		assertForbiddenError(t, err)
	})

	t.Run("superuser bypasses ownership", func(t *testing.T) {
		t.Parallel()
		adverts := &advertRepoStub{}
		adverts.getFn = advertOwnedBy(10)
		adverts.updateFn = func(_ context.Context, a *models.Advert, p models.Patch) (*models.Advert, error) {
			assert.Equal(t, map[string]any{"price": 20}, p.Changes())
			a.Price = 20
			return a, nil
		}

		updated, err := NewAdvertService(newUOW(adverts, nil, nil)).UpdateAdvert(context.Background(), UpdateAdvertInput{
			Actor:    models.Actor{ID: 1, IsSuperuser: true},
			AdvertID: 1,
			Patch:    models.AdvertPatch{Price: models.Some(20)},
		})
		require.NoError(t, err)
		assert.Equal(t, 20, updated.Price)
	})
}

func TestAdvertService_UpdateAdvert_Uniqueness(t *testing.T) {
	t.Parallel()

	t.Run("same description skips the check", func(t *testing.T) {
		t.Parallel()
		adverts := &advertRepoStub{
			descriptionExistsFn: func(context.Context, string) (bool, error) {
				return true, errors.New("must not be called")
			},
		}
		adverts.getFn = advertOwnedBy(1)
		adverts.updateFn = func(_ context.Context, a *models.Advert, _ models.Patch) (*models.Advert, error) {
			return a, nil
		}

		_, err := NewAdvertService(newUOW(adverts, nil, nil)).UpdateAdvert(context.Background(), UpdateAdvertInput{
			Actor:    models.Actor{ID: 1},
			AdvertID: 1,
			Patch:    models.AdvertPatch{Description: models.Some("Red road bike, size M")},
		})
		require.NoError(t, err)
	})

	t.Run("new description taken", func(t *testing.T) {
		t.Parallel()
		updated := false
		adverts := &advertRepoStub{
			descriptionExistsFn: func(context.Context, string) (bool, error) { return true, nil },
		}
		adverts.getFn = advertOwnedBy(1)
		adverts.updateFn = func(_ context.Context, a *models.Advert, _ models.Patch) (*models.Advert, error) {
			updated = true
			return a, nil
		}

		_, err := NewAdvertService(newUOW(adverts, nil, nil)).UpdateAdvert(context.Background(), UpdateAdvertInput{
			Actor:    models.Actor{ID: 1},
			AdvertID: 1,
			Patch:    models.AdvertPatch{Description: models.Some("Blue bike")},
		})
		assertAppErrorCode(t, err, models.CodeConflict)
		assert.False(t, updated)
	})

	t.Run("ownership is checked before uniqueness", func(t *testing.T) {
		t.Parallel()
		adverts := &advertRepoStub{}
		adverts.getFn = advertOwnedBy(10)

		_, err := NewAdvertService(newUOW(adverts, nil, nil)).UpdateAdvert(context.Background(), UpdateAdvertInput{
			Actor:    models.Actor{ID: 1},
			AdvertID: 1,
			Patch:    models.AdvertPatch{Description: models.Some("Blue bike")},
		})
		assertForbiddenError(t, err)
	})
}

func TestAdvertService_UpdateAdvert_PatchValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		patch models.AdvertPatch
	}{
		{"null title", models.AdvertPatch{Title: models.Optional[string]{Set: true, Null: true}}},
		{"empty title", models.AdvertPatch{Title: models.Some("")}},
		{"non-positive price", models.AdvertPatch{Price: models.Some(0)}},
		{"unknown kind", models.AdvertPatch{Kind: models.Some(models.AdvertKind("Обмен"))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			uow := newUOW(nil, nil, nil)
			_, err := NewAdvertService(uow).UpdateAdvert(context.Background(), UpdateAdvertInput{
				Actor:    models.Actor{ID: 1},
				AdvertID: 1,
				Patch:    tt.patch,
			})
			assertValidationError(t, err)
			assert.Zero(t, uow.calls)
		})
	}
}

func TestAdvertService_DeleteAdvert(t *testing.T) {
	t.Parallel()

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()
		removed := false
		adverts := &advertRepoStub{}
		adverts.getFn = advertOwnedBy(10)
		adverts.removeFn = func(_ context.Context, a *models.Advert) (*models.Advert, error) {
			removed = true
			return a, nil
		}

		_, err := NewAdvertService(newUOW(adverts, nil, nil)).
			DeleteAdvert(context.Background(), DeleteAdvertInput{Actor: models.Actor{ID: 1}, AdvertID: 1})
		assertForbiddenError(t, err)
		assert.False(t, removed)
	})

	t.Run("owner deletes and gets the record back", func(t *testing.T) {
		t.Parallel()
		adverts := &advertRepoStub{}
		adverts.getFn = advertOwnedBy(10)
		adverts.removeFn = func(_ context.Context, a *models.Advert) (*models.Advert, error) {
			return a, nil
		}

		advert, err := NewAdvertService(newUOW(adverts, nil, nil)).
			DeleteAdvert(context.Background(), DeleteAdvertInput{Actor: models.Actor{ID: 10}, AdvertID: 3})
		require.NoError(t, err)
		assert.Equal(t, uint(3), advert.ID)
		assert.Equal(t, "Bike", advert.Title)
	})

	t.Run("missing advert", func(t *testing.T) {
		t.Parallel()
		adverts := &advertRepoStub{}
		adverts.getFn = advertNotFound

		_, err := NewAdvertService(newUOW(adverts, nil, nil)).
			DeleteAdvert(context.Background(), DeleteAdvertInput{Actor: models.Actor{ID: 1}, AdvertID: 5})
		assertAppErrorCode(t, err, models.CodeNotFound)
	})
}
