package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pixelpantry/domain"
	"pixelpantry/internal/api/presenters"
	"pixelpantry/pkg/pantry"
)

type (
	PantryHandler interface {
		AddPantryItem(c *fiber.Ctx) error
		GetPantryItems(c *fiber.Ctx) error
		UpdatePantryItem(c *fiber.Ctx) error
		DeletePantryItem(c *fiber.Ctx) error
		GetItemsByCategory(c *fiber.Ctx) error
		GetExpiringItems(c *fiber.Ctx) error
		SearchItems(c *fiber.Ctx) error
		GetStats(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		validator:     validator,
	}
}

func (h *pantryHandler) AddPantryItem(c *fiber.Ctx) error {
	req := new(domain.AddPantryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, err)
	}

	res, err := h.pantryService.AddPantryItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddPantryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPantryItem)
}

func (h *pantryHandler) GetPantryItems(c *fiber.Ctx) error {
	items, err := h.pantryService.GetPantryItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPantryItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) UpdatePantryItem(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, domain.ErrParseID)
	}

	req := new(domain.UpdatePantryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	if err := h.pantryService.UpdatePantryItem(c.Context(), id, *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdatePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePantryItem)
}

func (h *pantryHandler) DeletePantryItem(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePantryItem, domain.ErrParseID)
	}

	if err := h.pantryService.DeletePantryItem(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeletePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePantryItem)
}

func (h *pantryHandler) GetItemsByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	items, err := h.pantryService.GetItemsByCategory(c.Context(), category)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPantryItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) GetExpiringItems(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", strconv.Itoa(pantry.DefaultExpiryWindowDays)))
	if err != nil || days < 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPantryItems, domain.ErrInvalidExpiryDays)
	}

	items, err := h.pantryService.GetExpiringItems(c.Context(), days)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPantryItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) SearchItems(c *fiber.Ctx) error {
	query := c.Query("q")

	items, err := h.pantryService.SearchItems(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetPantryItems, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.pantryService.GetStats(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}

// badRequestErrors are the validation sentinels a client can fix by
// changing its request. Anything else coming up from a service is a
// storage-level failure.
var badRequestErrors = []error{
	domain.ErrParseID,
	domain.ErrPantryItemNotFound,
	domain.ErrInvalidExpiryDate,
	domain.ErrInvalidQuantity,
	domain.ErrInvalidConfidence,
	domain.ErrInvalidExpiryDays,
	domain.ErrEmptyUpdate,
	domain.ErrInvalidDifficulty,
	domain.ErrInvalidCookTime,
	domain.ErrInvalidServings,
	domain.ErrInvalidRating,
	domain.ErrNoIngredients,
	domain.ErrInvalidMealType,
	domain.ErrInvalidPlanDate,
	domain.ErrInvalidDateRange,
	domain.ErrInvalidPlanDays,
	domain.ErrInvalidScanType,
}

// statusForError distinguishes an unready store (retry later) and bad
// requests (fix the request) from storage failures (alert).
func statusForError(err error) int {
	if errors.Is(err, domain.ErrStoreNotInitialized) {
		return fiber.StatusServiceUnavailable
	}
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}
