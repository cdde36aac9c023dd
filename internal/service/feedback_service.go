package service

import (
	"context"

	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"
)

// FeedbackService manages feedback on adverts. Reading feedback is public.
type FeedbackService struct {
	reviews reviewService[models.Feedback, *models.Feedback]
}

// NewFeedbackService creates a feedback service.
func NewFeedbackService(uow repository.UnitOfWork) *FeedbackService {
	return &FeedbackService{reviews: reviewService[models.Feedback, *models.Feedback]{
		uow:      uow,
		resource: "feedback",
		repo: func(r repository.Repositories) reviewRepository[*models.Feedback] {
			return r.Feedback
		},
		build: func(in models.ReviewCreate) *models.Feedback {
			return &models.Feedback{Text: in.Text, AdvertID: in.AdvertID}
		},
	}}
}

// CreateFeedback leaves feedback on an advert the actor does not own.
func (s *FeedbackService) CreateFeedback(ctx context.Context, actor models.Actor, in models.ReviewCreate) (*models.Feedback, error) {
	return s.reviews.create(ctx, actor, in)
}

func (s *FeedbackService) ListFeedback(ctx context.Context) ([]*models.Feedback, error) {
	return s.reviews.list(ctx, nil)
}

func (s *FeedbackService) GetFeedback(ctx context.Context, id uint) (*models.Feedback, error) {
	return s.reviews.get(ctx, nil, id)
}

func (s *FeedbackService) ListAdvertFeedback(ctx context.Context, advertID uint) ([]*models.Feedback, error) {
	return s.reviews.listByAdvert(ctx, nil, advertID)
}

func (s *FeedbackService) UpdateFeedback(ctx context.Context, in UpdateReviewInput) (*models.Feedback, error) {
	return s.reviews.update(ctx, in)
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, in DeleteReviewInput) (*models.Feedback, error) {
	return s.reviews.remove(ctx, in)
}
