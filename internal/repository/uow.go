package repository

import (
	"context"

	"simpleadvert/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// Repositories groups the repositories bound to one database handle.
type Repositories struct {
	Adverts    AdvertRepository
	Feedback   FeedbackRepository
	Complaints ComplaintRepository
	Users      UserRepository
}

// NewRepositories binds every repository to db.
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Adverts:    NewAdvertRepository(db),
		Feedback:   NewFeedbackRepository(db),
		Complaints: NewComplaintRepository(db),
		Users:      NewUserRepository(db),
	}
}

// UnitOfWork runs one logical operation against the store.
// fn receives repositories bound to a single transaction; it commits when fn
// returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, name string, fn func(ctx context.Context, repos Repositories) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork returns a UnitOfWork backed by GORM transactions.
func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, name string, fn func(ctx context.Context, repos Repositories) error) error {
	span, ctx := observability.NewSpan(ctx, "uow."+name, attribute.String("uow.operation", name))
	defer span.End()
	track := observability.TrackUnitOfWork(name)

	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepositories(tx))
	})

	track(err)
	span.SetError(err)
	observability.LogUnitOfWork(ctx, name, err)
	return err
}
