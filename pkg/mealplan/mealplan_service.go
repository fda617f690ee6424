package mealplan

import (
	"context"
	"time"

	"pixelpantry/domain"
	"pixelpantry/entities"
)

const dateLayout = "2006-01-02"

type (
	MealPlanService interface {
		AddMealPlan(ctx context.Context, req domain.AddMealPlanRequest) (domain.MealPlanResponse, error)
		GetMealPlans(ctx context.Context, startDate, endDate string) ([]domain.MealPlanResponse, error)
		SetCompleted(ctx context.Context, id int64, completed bool) error
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository) MealPlanService {
	return &mealPlanService{mealPlanRepository: mealPlanRepository}
}

func (s *mealPlanService) AddMealPlan(ctx context.Context, req domain.AddMealPlanRequest) (domain.MealPlanResponse, error) {
	switch req.MealType {
	case entities.MealTypeBreakfast, entities.MealTypeLunch, entities.MealTypeDinner, entities.MealTypeSnack:
	default:
		return domain.MealPlanResponse{}, domain.ErrInvalidMealType
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domain.MealPlanResponse{}, domain.ErrInvalidPlanDate
	}

	plan := &entities.MealPlan{
		Date:        date,
		MealType:    req.MealType,
		RecipeID:    req.RecipeID,
		RecipeName:  req.RecipeName,
		Completed:   req.Completed,
		CreatedDate: time.Now().UTC(),
	}

	if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
		return domain.MealPlanResponse{}, err
	}

	return toMealPlanResponse(plan), nil
}

// GetMealPlans returns the inclusive date range, or everything when both
// bounds are empty.
func (s *mealPlanService) GetMealPlans(ctx context.Context, startDate, endDate string) ([]domain.MealPlanResponse, error) {
	var start, end *time.Time
	if startDate != "" && endDate != "" {
		parsedStart, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return nil, domain.ErrInvalidPlanDate
		}
		parsedEnd, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return nil, domain.ErrInvalidPlanDate
		}
		if parsedStart.After(parsedEnd) {
			return nil, domain.ErrInvalidDateRange
		}
		start, end = &parsedStart, &parsedEnd
	}

	plans, err := s.mealPlanRepository.GetMealPlans(ctx, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.MealPlanResponse, 0, len(plans))
	for _, plan := range plans {
		responses = append(responses, toMealPlanResponse(plan))
	}
	return responses, nil
}

func (s *mealPlanService) SetCompleted(ctx context.Context, id int64, completed bool) error {
	return s.mealPlanRepository.SetCompleted(ctx, id, completed)
}

func toMealPlanResponse(plan *entities.MealPlan) domain.MealPlanResponse {
	return domain.MealPlanResponse{
		ID:          plan.ID,
		Date:        plan.Date.Format(dateLayout),
		MealType:    plan.MealType,
		RecipeID:    plan.RecipeID,
		RecipeName:  plan.RecipeName,
		Completed:   plan.Completed,
		CreatedDate: plan.CreatedDate,
	}
}
