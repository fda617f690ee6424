package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMealPlans     = "meal plans retrieved successfully"
	MessageSuccessAddMealPlan      = "meal plan added successfully"
	MessageSuccessCompleteMealPlan = "meal plan updated successfully"
	MessageSuccessGenerateMealPlan = "meal plan generated successfully"

	MessageFailedGetMealPlans     = "failed to retrieve meal plans"
	MessageFailedAddMealPlan      = "failed to add meal plan"
	MessageFailedCompleteMealPlan = "failed to update meal plan"
	MessageFailedGenerateMealPlan = "failed to generate meal plan"

	ErrInvalidMealType  = errors.New("meal type must be breakfast, lunch, dinner or snack")
	ErrInvalidPlanDate  = errors.New("invalid meal plan date")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrInvalidPlanDays  = errors.New("days must be positive")
)

type (
	AddMealPlanRequest struct {
		Date       string `json:"date" validate:"required"`
		MealType   string `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
		RecipeID   *int64 `json:"recipe_id,omitempty"`
		RecipeName string `json:"recipe_name" validate:"required"`
		Completed  bool   `json:"completed"`
	}

	CompleteMealPlanRequest struct {
		Completed bool `json:"completed"`
	}

	MealPlanResponse struct {
		ID          int64     `json:"id"`
		Date        string    `json:"date"`
		MealType    string    `json:"meal_type"`
		RecipeID    *int64    `json:"recipe_id,omitempty"`
		RecipeName  string    `json:"recipe_name"`
		Completed   bool      `json:"completed"`
		CreatedDate time.Time `json:"created_date"`
	}

	GenerateMealPlanRequest struct {
		Ingredients []string `json:"ingredients"`
		Days        int      `json:"days" validate:"omitempty,min=1,max=31"`
		MealsPerDay int      `json:"meals_per_day,omitempty" validate:"omitempty,min=1,max=4"`
		Dietary     []string `json:"dietary,omitempty"`
		Budget      string   `json:"budget,omitempty"`
	}

	MealPlanDayResponse struct {
		Day   int               `json:"day"`
		Date  string            `json:"date"`
		Meals map[string]string `json:"meals"`
	}

	GeneratedMealPlanResponse struct {
		Days         []MealPlanDayResponse `json:"days"`
		ShoppingList []string              `json:"shopping_list"`
	}
)
