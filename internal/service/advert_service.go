package service

import (
	"context"
	"errors"

	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"
	"simpleadvert/internal/validation"
)

// AdvertService manages adverts and keeps their descriptions unique.
type AdvertService struct {
	uow repository.UnitOfWork
}

// UpdateAdvertInput carries a partial advert update on behalf of Actor.
type UpdateAdvertInput struct {
	Actor    models.Actor
	AdvertID uint
	Patch    models.AdvertPatch
}

// DeleteAdvertInput identifies the advert Actor wants to delete.
type DeleteAdvertInput struct {
	Actor    models.Actor
	AdvertID uint
}

// NewAdvertService creates an advert service running each operation in its own unit of work.
func NewAdvertService(uow repository.UnitOfWork) *AdvertService {
	return &AdvertService{uow: uow}
}

func (s *AdvertService) CreateAdvert(ctx context.Context, actor models.Actor, in models.AdvertCreate) (*models.Advert, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	var created *models.Advert
	err := s.uow.Do(ctx, "advert.create", func(ctx context.Context, repos repository.Repositories) error {
		if err := validation.CheckDescriptionUnique(ctx, repos.Adverts, in.Description); err != nil {
			return err
		}
		advert := &models.Advert{
			Title:       in.Title,
			Description: in.Description,
			Kind:        in.Kind,
			Price:       in.Price,
		}
		var err error
		created, err = repos.Adverts.Create(ctx, advert, &actor)
		return duplicateDescription(err)
	})
	if err != nil {
		return nil, observe("advert", "create", err)
	}
	return created, nil
}

func (s *AdvertService) ListAdverts(ctx context.Context) ([]*models.Advert, error) {
	var adverts []*models.Advert
	err := s.uow.Do(ctx, "advert.list", func(ctx context.Context, repos repository.Repositories) error {
		var err error
		adverts, err = repos.Adverts.GetMulti(ctx)
		return err
	})
	return adverts, err
}

func (s *AdvertService) GetAdvert(ctx context.Context, id uint) (*models.Advert, error) {
	var advert *models.Advert
	err := s.uow.Do(ctx, "advert.get", func(ctx context.Context, repos repository.Repositories) error {
		var err error
		advert, err = repos.Adverts.Get(ctx, id)
		return err
	})
	return advert, err
}

// UpdateAdvert re-checks description uniqueness only when the patch changes it,
// so resubmitting the current description succeeds.
func (s *AdvertService) UpdateAdvert(ctx context.Context, in UpdateAdvertInput) (*models.Advert, error) {
	if err := validation.ValidateAdvertPatch(in.Patch); err != nil {
		return nil, err
	}

	var updated *models.Advert
	err := s.uow.Do(ctx, "advert.update", func(ctx context.Context, repos repository.Repositories) error {
		advert, err := repos.Adverts.Get(ctx, in.AdvertID)
		if err != nil {
			return err
		}
		if err := validation.CheckUpdateDeleteRights(advert, in.Actor); err != nil {
			return err
		}
		if d := in.Patch.Description; d.Set && d.Value != advert.Description {
			if err := validation.CheckDescriptionUnique(ctx, repos.Adverts, d.Value); err != nil {
				return err
			}
		}
		updated, err = repos.Adverts.Update(ctx, advert, in.Patch)
		return duplicateDescription(err)
	})
	if err != nil {
		return nil, observe("advert", "update", err)
	}
	return updated, nil
}

func (s *AdvertService) DeleteAdvert(ctx context.Context, in DeleteAdvertInput) (*models.Advert, error) {
	var removed *models.Advert
	err := s.uow.Do(ctx, "advert.delete", func(ctx context.Context, repos repository.Repositories) error {
		advert, err := repos.Adverts.Get(ctx, in.AdvertID)
		if err != nil {
			return err
		}
		if err := validation.CheckUpdateDeleteRights(advert, in.Actor); err != nil {
			return err
		}
		removed, err = repos.Adverts.Remove(ctx, advert)
		return err
	})
	if err != nil {
		return nil, observe("advert", "delete", err)
	}
	return removed, nil
}

// duplicateDescription maps a unique index violation that raced past the
// validator onto the same CONFLICT error.
func duplicateDescription(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return models.NewConflictError(validation.MsgDescriptionTaken, nil)
	}
	return err
}
