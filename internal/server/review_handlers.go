package server

import (
	"simpleadvert/internal/middleware"
	"simpleadvert/internal/models"
	"simpleadvert/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateFeedback handles POST /api/feedback
// @Summary Leave feedback
// @Description Leave feedback on someone else's advert.
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ReviewCreate true "Feedback"
// @Success 201 {object} models.Feedback
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /feedback [post]
func (s *Server) CreateFeedback(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return nil
	}
	var req models.ReviewCreate
	if err := decodeBody(c, &req); err != nil {
		return nil
	}

	feedback, err := s.feedback.CreateFeedback(c.UserContext(), actor, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(feedback)
}

// ListFeedback handles GET /api/feedback
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Success 200 {array} models.Feedback
// @Router /feedback [get]
func (s *Server) ListFeedback(c *fiber.Ctx) error {
	feedback, err := s.feedback.ListFeedback(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feedback)
}

// GetFeedback handles GET /api/feedback/:id
// @Summary Get feedback
// @Tags feedback
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} models.Feedback
// @Failure 404 {object} models.ErrorResponse
// @Router /feedback/{id} [get]
func (s *Server) GetFeedback(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	feedback, err := s.feedback.GetFeedback(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feedback)
}

// UpdateFeedback handles PATCH /api/feedback/:id
// @Summary Update feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Param request body models.ReviewPatch true "Fields to change"
// @Success 200 {object} models.Feedback
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /feedback/{id} [patch]
func (s *Server) UpdateFeedback(c *fiber.Ctx) error {
	in, ok := s.reviewUpdateInput(c)
	if !ok {
		return nil
	}

	feedback, err := s.feedback.UpdateFeedback(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feedback)
}

// DeleteFeedback handles DELETE /api/feedback/:id
// @Summary Delete feedback
// @Tags feedback
// @Produce json
// @Security BearerAuth
// @Param id path int true "Feedback ID"
// @Success 200 {object} models.Feedback
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /feedback/{id} [delete]
func (s *Server) DeleteFeedback(c *fiber.Ctx) error {
	in, ok := s.reviewDeleteInput(c)
	if !ok {
		return nil
	}

	feedback, err := s.feedback.DeleteFeedback(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feedback)
}

// CreateComplaint handles POST /api/complaints
// @Summary File complaint
// @Description Complain about someone else's advert.
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ReviewCreate true "Complaint"
// @Success 201 {object} models.Complaint
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /complaints [post]
func (s *Server) CreateComplaint(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return nil
	}
	var req models.ReviewCreate
	if err := decodeBody(c, &req); err != nil {
		return nil
	}

	complaint, err := s.complaints.CreateComplaint(c.UserContext(), actor, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(complaint)
}

// ListComplaints handles GET /api/complaints
// @Summary List complaints
// @Description Superusers only.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Complaint
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /complaints [get]
func (s *Server) ListComplaints(c *fiber.Ctx) error {
	complaints, err := s.complaints.ListComplaints(c.UserContext(), middleware.ActorFrom(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(complaints)
}

// GetComplaint handles GET /api/complaints/:id
// @Summary Get complaint
// @Description Superusers only.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Success 200 {object} models.Complaint
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /complaints/{id} [get]
func (s *Server) GetComplaint(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	complaint, err := s.complaints.GetComplaint(c.UserContext(), middleware.ActorFrom(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(complaint)
}

// UpdateComplaint handles PATCH /api/complaints/:id
// @Summary Update complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Param request body models.ReviewPatch true "Fields to change"
// @Success 200 {object} models.Complaint
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /complaints/{id} [patch]
func (s *Server) UpdateComplaint(c *fiber.Ctx) error {
	in, ok := s.reviewUpdateInput(c)
	if !ok {
		return nil
	}

	complaint, err := s.complaints.UpdateComplaint(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(complaint)
}

// DeleteComplaint handles DELETE /api/complaints/:id
// @Summary Delete complaint
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path int true "Complaint ID"
// @Success 200 {object} models.Complaint
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /complaints/{id} [delete]
func (s *Server) DeleteComplaint(c *fiber.Ctx) error {
	in, ok := s.reviewDeleteInput(c)
	if !ok {
		return nil
	}

	complaint, err := s.complaints.DeleteComplaint(c.UserContext(), in)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(complaint)
}

// reviewUpdateInput collects actor, id and patch for a feedback or complaint update.
// It returns false once an error response has been written.
func (s *Server) reviewUpdateInput(c *fiber.Ctx) (service.UpdateReviewInput, bool) {
	actor, err := requireActor(c)
	if err != nil {
		return service.UpdateReviewInput{}, false
	}
	id, err := s.parseID(c, "id")
	if err != nil {
		return service.UpdateReviewInput{}, false
	}
	var patch models.ReviewPatch
	if err := decodeBody(c, &patch); err != nil {
		return service.UpdateReviewInput{}, false
	}
	return service.UpdateReviewInput{Actor: actor, ID: id, Patch: patch}, true
}

func (s *Server) reviewDeleteInput(c *fiber.Ctx) (service.DeleteReviewInput, bool) {
	actor, err := requireActor(c)
	if err != nil {
		return service.DeleteReviewInput{}, false
	}
	id, err := s.parseID(c, "id")
	if err != nil {
		return service.DeleteReviewInput{}, false
	}
	return service.DeleteReviewInput{Actor: actor, ID: id}, true
}
