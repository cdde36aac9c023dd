package service

import (
	"context"

	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"
	"simpleadvert/internal/validation"
)

type reviewRepository[PT models.Entity] interface {
	repository.Repository[PT]
	ListByAdvert(ctx context.Context, advertID uint) ([]PT, error)
}

// reviewService holds the operations feedback and complaints share.
type reviewService[T any, PT interface {
	*T
	models.Entity
}] struct {
	uow      repository.UnitOfWork
	resource string
	repo     func(repository.Repositories) reviewRepository[PT]
	build    func(in models.ReviewCreate) PT
	// superuserReads restricts list and get to superusers.
	superuserReads bool
}

type UpdateReviewInput struct {
	Actor models.Actor
	ID    uint
	Patch models.ReviewPatch
}

type DeleteReviewInput struct {
	Actor models.Actor
	ID    uint
}

func (s *reviewService[T, PT]) create(ctx context.Context, actor models.Actor, in models.ReviewCreate) (PT, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	var created PT
	err := s.uow.Do(ctx, s.resource+".create", func(ctx context.Context, repos repository.Repositories) error {
		advert, err := repos.Adverts.Get(ctx, in.AdvertID)
		if err != nil {
			return err
		}
		if err := validation.CheckCreateRights(advert, actor); err != nil {
			return err
		}
		created, err = s.repo(repos).Create(ctx, s.build(in), &actor)
		return err
	})
	if err != nil {
		return nil, observe(s.resource, "create", err)
	}
	return created, nil
}

func (s *reviewService[T, PT]) list(ctx context.Context, actor *models.Actor) ([]PT, error) {
	if err := s.checkRead(actor); err != nil {
		return nil, observe(s.resource, "list", err)
	}

	var records []PT
	err := s.uow.Do(ctx, s.resource+".list", func(ctx context.Context, repos repository.Repositories) error {
		var err error
		records, err = s.repo(repos).GetMulti(ctx)
		return err
	})
	return records, err
}

func (s *reviewService[T, PT]) get(ctx context.Context, actor *models.Actor, id uint) (PT, error) {
	if err := s.checkRead(actor); err != nil {
		return nil, observe(s.resource, "get", err)
	}

	var record PT
	err := s.uow.Do(ctx, s.resource+".get", func(ctx context.Context, repos repository.Repositories) error {
		var err error
		record, err = s.repo(repos).Get(ctx, id)
		return err
	})
	return record, err
}

func (s *reviewService[T, PT]) listByAdvert(ctx context.Context, actor *models.Actor, advertID uint) ([]PT, error) {
	if err := s.checkRead(actor); err != nil {
		return nil, observe(s.resource, "list", err)
	}

	var records []PT
	err := s.uow.Do(ctx, s.resource+".list_by_advert", func(ctx context.Context, repos repository.Repositories) error {
		if _, err := repos.Adverts.Get(ctx, advertID); err != nil {
			return err
		}
		var err error
		records, err = s.repo(repos).ListByAdvert(ctx, advertID)
		return err
	})
	return records, err
}

func (s *reviewService[T, PT]) update(ctx context.Context, in UpdateReviewInput) (PT, error) {
	if err := validation.ValidateReviewPatch(in.Patch); err != nil {
		return nil, err
	}

	var updated PT
	err := s.uow.Do(ctx, s.resource+".update", func(ctx context.Context, repos repository.Repositories) error {
		repo := s.repo(repos)
		record, err := repo.Get(ctx, in.ID)
		if err != nil {
			return err
		}
		if err := validation.CheckUpdateDeleteRights(record, in.Actor); err != nil {
			return err
		}
		updated, err = repo.Update(ctx, record, in.Patch)
		return err
	})
	if err != nil {
		return nil, observe(s.resource, "update", err)
	}
	return updated, nil
}

func (s *reviewService[T, PT]) remove(ctx context.Context, in DeleteReviewInput) (PT, error) {
	var removed PT
	err := s.uow.Do(ctx, s.resource+".delete", func(ctx context.Context, repos repository.Repositories) error {
		repo := s.repo(repos)
		record, err := repo.Get(ctx, in.ID)
		if err != nil {
			return err
		}
		if err := validation.CheckUpdateDeleteRights(record, in.Actor); err != nil {
			return err
		}
		removed, err = repo.Remove(ctx, record)
		return err
	})
	if err != nil {
		return nil, observe(s.resource, "delete", err)
	}
	return removed, nil
}

func (s *reviewService[T, PT]) checkRead(actor *models.Actor) error {
	if !s.superuserReads {
		return nil
	}
	return validation.CheckSuperuser(actor)
}
