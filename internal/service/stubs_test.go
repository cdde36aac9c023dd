package service

import (
	"context"
	"errors"
	"testing"

	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"

	"github.com/stretchr/testify/require"
)

var errUnexpectedCall = errors.New("unexpected repository call")

// crudStub is a stub for repository.Repository plus ListByAdvert.
type crudStub[T any, PT interface {
	*T
	models.Entity
}] struct {
	getFn          func(context.Context, uint) (PT, error)
	getMultiFn     func(context.Context) ([]PT, error)
	createFn       func(context.Context, PT, *models.Actor) (PT, error)
	updateFn       func(context.Context, PT, models.Patch) (PT, error)
	removeFn       func(context.Context, PT) (PT, error)
	listByAdvertFn func(context.Context, uint) ([]PT, error)
}

func (s *crudStub[T, PT]) Get(ctx context.Context, id uint) (PT, error) {
	if s.getFn == nil {
		return nil, errUnexpectedCall
	}
	return s.getFn(ctx, id)
}
func (s *crudStub[T, PT]) GetMulti(ctx context.Context) ([]PT, error) {
	if s.getMultiFn == nil {
		return nil, errUnexpectedCall
	}
	return s.getMultiFn(ctx)
}
func (s *crudStub[T, PT]) Create(ctx context.Context, entity PT, owner *models.Actor) (PT, error) {
	if s.createFn == nil {
		return nil, errUnexpectedCall
	}
	return s.createFn(ctx, entity, owner)
}
func (s *crudStub[T, PT]) Update(ctx context.Context, entity PT, patch models.Patch) (PT, error) {
	if s.updateFn == nil {
		return nil, errUnexpectedCall
	}
	return s.updateFn(ctx, entity, patch)
}
func (s *crudStub[T, PT]) Remove(ctx context.Context, entity PT) (PT, error) {
	if s.removeFn == nil {
		return nil, errUnexpectedCall
	}
	return s.removeFn(ctx, entity)
}
func (s *crudStub[T, PT]) ListByAdvert(ctx context.Context, advertID uint) ([]PT, error) {
	if s.listByAdvertFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listByAdvertFn(ctx, advertID)
}

// advertRepoStub is a stub for repository.AdvertRepository.
type advertRepoStub struct {
	crudStub[models.Advert, *models.Advert]
	descriptionExistsFn func(context.Context, string) (bool, error)
}

func (s *advertRepoStub) DescriptionExists(ctx context.Context, description string) (bool, error) {
	if s.descriptionExistsFn == nil {
		return false, errUnexpectedCall
	}
	return s.descriptionExistsFn(ctx, description)
}

type feedbackRepoStub = crudStub[models.Feedback, *models.Feedback]
type complaintRepoStub = crudStub[models.Complaint, *models.Complaint]

// uowStub runs fn against fixed repositories and counts calls.
type uowStub struct {
	repos repository.Repositories
	calls int
}

func (u *uowStub) Do(ctx context.Context, _ string, fn func(context.Context, repository.Repositories) error) error {
	u.calls++
	return fn(ctx, u.repos)
}

func newUOW(adverts *advertRepoStub, feedback *feedbackRepoStub, complaints *complaintRepoStub) *uowStub {
	if adverts == nil {
		adverts = &advertRepoStub{}
	}
	if feedback == nil {
		feedback = &feedbackRepoStub{}
	}
	if complaints == nil {
		complaints = &complaintRepoStub{}
	}
	return &uowStub{repos: repository.Repositories{
		Adverts:    adverts,
		Feedback:   feedback,
		Complaints: complaints,
	}}
}

// advertOwnedBy returns a getFn yielding an advert owned by ownerID.
func advertOwnedBy(ownerID uint) func(context.Context, uint) (*models.Advert, error) {
	return func(_ context.Context, id uint) (*models.Advert, error) {
		return &models.Advert{
			ID:          id,
			Title:       "Bike",
			Description: "Red road bike, size M",
			Kind:        models.AdvertKindSelling,
			Price:       500,
			UserID:      &ownerID,
		}, nil
	}
}

func advertNotFound(_ context.Context, id uint) (*models.Advert, error) {
	return nil, models.NewNotFoundError("Advert", id)
}

func ptr[T any](v T) *T { return &v }

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code, "unexpected error: %v", err)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeForbidden)
}
