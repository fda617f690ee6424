package domain

import (
	"errors"
	"time"

	"pixelpantry/entities"
)

var (
	MessageSuccessGetRecipes      = "recipes retrieved successfully"
	MessageSuccessAddRecipe       = "recipe added successfully"
	MessageSuccessGenerateRecipes = "recipes generated successfully"

	MessageFailedGetRecipes      = "failed to retrieve recipes"
	MessageFailedAddRecipe       = "failed to add recipe"
	MessageFailedGenerateRecipes = "failed to generate recipes"

	ErrInvalidDifficulty = errors.New("difficulty must be Easy, Medium or Hard")
	ErrInvalidCookTime   = errors.New("cook time must be positive")
	ErrInvalidServings   = errors.New("servings must be positive")
	ErrInvalidRating     = errors.New("rating must be between 0 and 5")
	ErrNoIngredients     = errors.New("no ingredients available for recipe generation")
)

type (
	RecipeIngredientRequest struct {
		Name   string `json:"name" validate:"required"`
		Amount string `json:"amount"`
		Unit   string `json:"unit"`
	}

	AddRecipeRequest struct {
		Name          string                    `json:"name" validate:"required"`
		Description   string                    `json:"description"`
		Ingredients   []RecipeIngredientRequest `json:"ingredients" validate:"required,dive"`
		Instructions  []string                  `json:"instructions" validate:"required"`
		CookTime      int                       `json:"cook_time" validate:"required,min=1"`
		Servings      int                       `json:"servings" validate:"required,min=1"`
		Difficulty    string                    `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
		Category      string                    `json:"category"`
		IsAIGenerated bool                      `json:"is_ai_generated"`
		Rating        *float64                  `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
		ImageURL      string                    `json:"image_url,omitempty"`
	}

	RecipeResponse struct {
		ID            int64                `json:"id"`
		Name          string               `json:"name"`
		Description   string               `json:"description"`
		Ingredients   []entities.Ingredient `json:"ingredients"`
		Instructions  []string             `json:"instructions"`
		CookTime      int                  `json:"cook_time"`
		Servings      int                  `json:"servings"`
		Difficulty    string               `json:"difficulty"`
		Category      string               `json:"category"`
		CreatedDate   time.Time            `json:"created_date"`
		IsAIGenerated bool                 `json:"is_ai_generated"`
		Rating        *float64             `json:"rating,omitempty"`
		ImageURL      string               `json:"image_url,omitempty"`
	}

	GenerateRecipesRequest struct {
		Ingredients []string `json:"ingredients"`
		Dietary     []string `json:"dietary,omitempty"`
		CookTime    int      `json:"cook_time,omitempty" validate:"omitempty,min=1"`
		Difficulty  string   `json:"difficulty,omitempty" validate:"omitempty,oneof=Easy Medium Hard"`
		Cuisine     string   `json:"cuisine,omitempty"`
		Servings    int      `json:"servings,omitempty" validate:"omitempty,min=1"`
	}
)
