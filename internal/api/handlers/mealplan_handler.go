package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pixelpantry/domain"
	"pixelpantry/internal/api/presenters"
	"pixelpantry/pkg/chef"
	"pixelpantry/pkg/mealplan"
)

type (
	MealPlanHandler interface {
		AddMealPlan(c *fiber.Ctx) error
		GetMealPlans(c *fiber.Ctx) error
		CompleteMealPlan(c *fiber.Ctx) error
		GenerateMealPlan(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		chefService     chef.ChefService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, chefService chef.ChefService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		chefService:     chefService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) AddMealPlan(c *fiber.Ctx) error {
	req := new(domain.AddMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealPlan, err)
	}

	res, err := h.mealPlanService.AddMealPlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedAddMealPlan, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMealPlan)
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	plans, err := h.mealPlanService.GetMealPlans(c.Context(), startDate, endDate)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetMealPlans, err)
	}

	return presenters.SuccessResponse(c, plans, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) CompleteMealPlan(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCompleteMealPlan, domain.ErrParseID)
	}

	req := new(domain.CompleteMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.mealPlanService.SetCompleted(c.Context(), id, req.Completed); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCompleteMealPlan, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCompleteMealPlan)
}

func (h *mealPlanHandler) GenerateMealPlan(c *fiber.Ctx) error {
	req := new(domain.GenerateMealPlanRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateMealPlan, err)
	}

	plan, err := h.chefService.GenerateMealPlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGenerateMealPlan, err)
	}

	return presenters.SuccessResponse(c, plan, fiber.StatusOK, domain.MessageSuccessGenerateMealPlan)
}
