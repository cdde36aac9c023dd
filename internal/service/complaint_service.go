package service

import (
	"context"

	"simpleadvert/internal/models"
	"simpleadvert/internal/repository"
)

// ComplaintService manages complaints. Reading complaints requires a superuser.
type ComplaintService struct {
	reviews reviewService[models.Complaint, *models.Complaint]
}

// NewComplaintService creates a complaint service.
func NewComplaintService(uow repository.UnitOfWork) *ComplaintService {
	return &ComplaintService{reviews: reviewService[models.Complaint, *models.Complaint]{
		uow:      uow,
		resource: "complaint",
		repo: func(r repository.Repositories) reviewRepository[*models.Complaint] {
			return r.Complaints
		},
		build: func(in models.ReviewCreate) *models.Complaint {
			return &models.Complaint{Text: in.Text, AdvertID: in.AdvertID}
		},
		superuserReads: true,
	}}
}

func (s *ComplaintService) CreateComplaint(ctx context.Context, actor models.Actor, in models.ReviewCreate) (*models.Complaint, error) {
	return s.reviews.create(ctx, actor, in)
}

func (s *ComplaintService) ListComplaints(ctx context.Context, actor *models.Actor) ([]*models.Complaint, error) {
	return s.reviews.list(ctx, actor)
}

func (s *ComplaintService) GetComplaint(ctx context.Context, actor *models.Actor, id uint) (*models.Complaint, error) {
	return s.reviews.get(ctx, actor, id)
}

func (s *ComplaintService) ListAdvertComplaints(ctx context.Context, actor *models.Actor, advertID uint) ([]*models.Complaint, error) {
	return s.reviews.listByAdvert(ctx, actor, advertID)
}

func (s *ComplaintService) UpdateComplaint(ctx context.Context, in UpdateReviewInput) (*models.Complaint, error) {
	return s.reviews.update(ctx, in)
}

func (s *ComplaintService) DeleteComplaint(ctx context.Context, in DeleteReviewInput) (*models.Complaint, error) {
	return s.reviews.remove(ctx, in)
}
