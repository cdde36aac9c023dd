package repository

import (
	"context"

	"simpleadvert/internal/models"

	"gorm.io/gorm"
)

// FeedbackRepository defines persistence operations for feedback.
type FeedbackRepository interface {
	Repository[*models.Feedback]
	ListByAdvert(ctx context.Context, advertID uint) ([]*models.Feedback, error)
}

// ComplaintRepository defines persistence operations for complaints.
type ComplaintRepository interface {
	Repository[*models.Complaint]
	ListByAdvert(ctx context.Context, advertID uint) ([]*models.Complaint, error)
}

// reviewRepository serves both feedback and complaint tables, which share a shape.
type reviewRepository[T any, PT interface {
	*T
	models.Entity
}] struct {
	*CRUD[T, PT]
}

func (r *reviewRepository[T, PT]) ListByAdvert(ctx context.Context, advertID uint) ([]PT, error) {
	return r.findWhere(ctx, map[string]any{"advert_id": advertID})
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &reviewRepository[models.Feedback, *models.Feedback]{
		CRUD: NewCRUD[models.Feedback](db, "Feedback"),
	}
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &reviewRepository[models.Complaint, *models.Complaint]{
		CRUD: NewCRUD[models.Complaint](db, "Complaint"),
	}
}
