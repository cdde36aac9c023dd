package server

import (
	"simpleadvert/internal/middleware"
	"simpleadvert/internal/models"
	"simpleadvert/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateAdvert handles POST /api/adverts
// @Summary Create advert
// @Description Publish a new advert owned by the caller. Descriptions are unique.
// @Tags adverts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AdvertCreate true "Advert"
// @Success 201 {object} models.Advert
// @Failure 401 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /adverts [post]
func (s *Server) CreateAdvert(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return nil
	}
	var req models.AdvertCreate
	if err := decodeBody(c, &req); err != nil {
		return nil
	}

	advert, err := s.adverts.CreateAdvert(c.UserContext(), actor, req)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(advert)
}

// ListAdverts handles GET /api/adverts
// @Summary List adverts
// @Tags adverts
// @Produce json
// @Success 200 {array} models.Advert
// @Router /adverts [get]
func (s *Server) ListAdverts(c *fiber.Ctx) error {
	adverts, err := s.adverts.ListAdverts(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(adverts)
}

// GetAdvert handles GET /api/adverts/:id
// @Summary Get advert
// @Tags adverts
// @Produce json
// @Param id path int true "Advert ID"
// @Success 200 {object} models.Advert
// @Failure 404 {object} models.ErrorResponse
// @Router /adverts/{id} [get]
func (s *Server) GetAdvert(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	advert, err := s.adverts.GetAdvert(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(advert)
}

// UpdateAdvert handles PATCH /api/adverts/:id
// @Summary Update advert
// @Description Partially update an advert. Only the owner or a superuser may do this.
// @Tags adverts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advert ID"
// @Param request body models.AdvertPatch true "Fields to change"
// @Success 200 {object} models.Advert
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /adverts/{id} [patch]
func (s *Server) UpdateAdvert(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return nil
	}
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var patch models.AdvertPatch
	if err := decodeBody(c, &patch); err != nil {
		return nil
	}

	advert, err := s.adverts.UpdateAdvert(c.UserContext(), service.UpdateAdvertInput{
		Actor:    actor,
		AdvertID: id,
		Patch:    patch,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(advert)
}

// DeleteAdvert handles DELETE /api/adverts/:id
// @Summary Delete advert
// @Description Delete an advert together with its feedback and complaints.
// @Tags adverts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advert ID"
// @Success 200 {object} models.Advert
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /adverts/{id} [delete]
func (s *Server) DeleteAdvert(c *fiber.Ctx) error {
	actor, err := requireActor(c)
	if err != nil {
		return nil
	}
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	advert, err := s.adverts.DeleteAdvert(c.UserContext(), service.DeleteAdvertInput{
		Actor:    actor,
		AdvertID: id,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(advert)
}

// ListAdvertFeedback handles GET /api/adverts/:id/feedback
// @Summary List feedback on an advert
// @Tags adverts
// @Produce json
// @Param id path int true "Advert ID"
// @Success 200 {array} models.Feedback
// @Failure 404 {object} models.ErrorResponse
// @Router /adverts/{id}/feedback [get]
func (s *Server) ListAdvertFeedback(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	feedback, err := s.feedback.ListAdvertFeedback(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(feedback)
}

// ListAdvertComplaints handles GET /api/adverts/:id/complaints
// @Summary List complaints on an advert
// @Description Superusers only.
// @Tags adverts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Advert ID"
// @Success 200 {array} models.Complaint
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /adverts/{id}/complaints [get]
func (s *Server) ListAdvertComplaints(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	complaints, err := s.complaints.ListAdvertComplaints(c.UserContext(), middleware.ActorFrom(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(complaints)
}
