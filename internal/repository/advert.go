package repository

import (
	"context"

	"simpleadvert/internal/models"

	"gorm.io/gorm"
)

// AdvertRepository defines persistence operations for adverts.
type AdvertRepository interface {
	Repository[*models.Advert]
	DescriptionExists(ctx context.Context, description string) (bool, error)
}

type advertRepository struct {
	*CRUD[models.Advert, *models.Advert]
	db *gorm.DB
}

// NewAdvertRepository creates a new AdvertRepository
func NewAdvertRepository(db *gorm.DB) AdvertRepository {
	return &advertRepository{
		CRUD: NewCRUD[models.Advert](db, "Advert"),
		db:   db,
	}
}

func (r *advertRepository) DescriptionExists(ctx context.Context, description string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Advert{}).
		Where("description = ?", description).
		Count(&count).Error
	return count > 0, err
}
