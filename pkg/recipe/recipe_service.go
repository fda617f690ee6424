package recipe

import (
	"context"
	"time"

	"pixelpantry/domain"
	"pixelpantry/entities"
)

type (
	RecipeService interface {
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.RecipeResponse, error) {
	if req.CookTime <= 0 {
		return domain.RecipeResponse{}, domain.ErrInvalidCookTime
	}
	if req.Servings <= 0 {
		return domain.RecipeResponse{}, domain.ErrInvalidServings
	}
	switch req.Difficulty {
	case entities.DifficultyEasy, entities.DifficultyMedium, entities.DifficultyHard:
	default:
		return domain.RecipeResponse{}, domain.ErrInvalidDifficulty
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return domain.RecipeResponse{}, domain.ErrInvalidRating
	}

	category := req.Category
	if category == "" {
		category = "Main Dish"
	}

	ingredients := make([]entities.Ingredient, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, entities.Ingredient{
			Name:   ing.Name,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}

	recipe := &entities.Recipe{
		Name:          req.Name,
		Description:   req.Description,
		CookTime:      req.CookTime,
		Servings:      req.Servings,
		Difficulty:    req.Difficulty,
		Category:      category,
		CreatedDate:   time.Now().UTC(),
		IsAIGenerated: req.IsAIGenerated,
		Rating:        req.Rating,
		ImageURL:      req.ImageURL,
	}
	if err := recipe.SetIngredients(ingredients); err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := recipe.SetInstructions(req.Instructions); err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe)
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res, err := toRecipeResponse(recipe)
		if err != nil {
			return nil, err
		}
		responses = append(responses, res)
	}
	return responses, nil
}

func toRecipeResponse(recipe *entities.Recipe) (domain.RecipeResponse, error) {
	ingredients, err := recipe.GetIngredients()
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	instructions, err := recipe.GetInstructions()
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	return domain.RecipeResponse{
		ID:            recipe.ID,
		Name:          recipe.Name,
		Description:   recipe.Description,
		Ingredients:   ingredients,
		Instructions:  instructions,
		CookTime:      recipe.CookTime,
		Servings:      recipe.Servings,
		Difficulty:    recipe.Difficulty,
		Category:      recipe.Category,
		CreatedDate:   recipe.CreatedDate,
		IsAIGenerated: recipe.IsAIGenerated,
		Rating:        recipe.Rating,
		ImageURL:      recipe.ImageURL,
	}, nil
}
