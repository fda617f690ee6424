package handlers

import (
	"github.com/gofiber/fiber/v2"

	"pixelpantry/domain"
	"pixelpantry/internal/api/presenters"
	"pixelpantry/pkg/profile"
)

type (
	ProfileHandler interface {
		GetProfile(c *fiber.Ctx) error
	}

	profileHandler struct {
		profileService profile.ProfileService
	}
)

func NewProfileHandler(profileService profile.ProfileService) ProfileHandler {
	return &profileHandler{profileService: profileService}
}

func (h *profileHandler) GetProfile(c *fiber.Ctx) error {
	res, err := h.profileService.GetProfile(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}
