// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"simpleadvert/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when a write violates a unique constraint.
var ErrDuplicate = errors.New("duplicate key")

const pgUniqueViolation = "23505"

// Repository is the CRUD contract every entity table offers.
type Repository[PT models.Entity] interface {
	Get(ctx context.Context, id uint) (PT, error)
	GetMulti(ctx context.Context) ([]PT, error)
	Create(ctx context.Context, entity PT, owner *models.Actor) (PT, error)
	Update(ctx context.Context, entity PT, patch models.Patch) (PT, error)
	Remove(ctx context.Context, entity PT) (PT, error)
}

// CRUD implements Repository over the table of T.
type CRUD[T any, PT interface {
	*T
	models.Entity
}] struct {
	db       *gorm.DB
	resource string
}

// NewCRUD returns a CRUD bound to db. resource names the entity in NotFound errors.
func NewCRUD[T any, PT interface {
	*T
	models.Entity
}](db *gorm.DB, resource string) *CRUD[T, PT] {
	return &CRUD[T, PT]{db: db, resource: resource}
}

func (r *CRUD[T, PT]) Get(ctx context.Context, id uint) (PT, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(r.resource, id)
		}
		return nil, err
	}
	return PT(&entity), nil
}

// GetMulti returns every row ordered by id ascending.
func (r *CRUD[T, PT]) GetMulti(ctx context.Context) ([]PT, error) {
	return r.findWhere(ctx, nil)
}

func (r *CRUD[T, PT]) Create(ctx context.Context, entity PT, owner *models.Actor) (PT, error) {
	if owner != nil {
		entity.SetOwnerID(owner.ID)
	}
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return nil, translateError(err)
	}
	return r.Get(ctx, entity.PrimaryKey())
}

// Update writes only the columns named by the patch; a present zero value is written too.
func (r *CRUD[T, PT]) Update(ctx context.Context, entity PT, patch models.Patch) (PT, error) {
	changes := patch.Changes()
	if len(changes) == 0 {
		return entity, nil
	}
	if err := r.db.WithContext(ctx).Model(entity).Updates(changes).Error; err != nil {
		return nil, translateError(err)
	}
	return r.Get(ctx, entity.PrimaryKey())
}

// Remove deletes the row and returns its state before deletion.
func (r *CRUD[T, PT]) Remove(ctx context.Context, entity PT) (PT, error) {
	res := r.db.WithContext(ctx).Delete(entity)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFoundError(r.resource, entity.PrimaryKey())
	}
	return entity, nil
}

func (r *CRUD[T, PT]) findWhere(ctx context.Context, where map[string]any) ([]PT, error) {
	var rows []T
	q := r.db.WithContext(ctx)
	if len(where) > 0 {
		q = q.Where(where)
	}
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]PT, 0, len(rows))
	for i := range rows {
		out = append(out, PT(&rows[i]))
	}
	return out, nil
}

func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	}
	return err
}
