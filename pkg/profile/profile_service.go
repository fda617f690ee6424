package profile

import (
	"context"

	"pixelpantry/domain"
	"pixelpantry/pkg/mealplan"
	"pixelpantry/pkg/pantry"
)

// XP awards per activity. Levels are 250 XP apart.
const (
	xpPerItem          = 10
	xpPerRecipe        = 25
	xpPerCompletedMeal = 50
	xpPerLevel         = 250
)

type (
	ProfileService interface {
		GetProfile(ctx context.Context) (domain.ProfileResponse, error)
	}

	profileService struct {
		pantryService      pantry.PantryService
		mealPlanRepository mealplan.MealPlanRepository
	}
)

func NewProfileService(pantryService pantry.PantryService, mealPlanRepository mealplan.MealPlanRepository) ProfileService {
	return &profileService{
		pantryService:      pantryService,
		mealPlanRepository: mealPlanRepository,
	}
}

func (s *profileService) GetProfile(ctx context.Context) (domain.ProfileResponse, error) {
	stats, err := s.pantryService.GetStats(ctx)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	completedMeals, err := s.mealPlanRepository.CountCompleted(ctx)
	if err != nil {
		return domain.ProfileResponse{}, err
	}

	xp := stats.TotalItems*xpPerItem + stats.TotalRecipes*xpPerRecipe + completedMeals*xpPerCompletedMeal
	level := int(xp/xpPerLevel) + 1
	nextLevelXP := int64(level) * xpPerLevel

	return domain.ProfileResponse{
		Level:          level,
		XP:             xp,
		NextLevelXP:    nextLevelXP,
		TotalItems:     stats.TotalItems,
		TotalRecipes:   stats.TotalRecipes,
		CompletedMeals: completedMeals,
		Achievements:   achievements(stats, completedMeals),
	}, nil
}

func achievements(stats domain.PantryStatsResponse, completedMeals int64) []domain.Achievement {
	return []domain.Achievement{
		{
			ID:          "first_item",
			Title:       "Pantry Pioneer",
			Description: "Add your first pantry item",
			Rarity:      "common",
			Unlocked:    stats.TotalItems >= 1,
		},
		{
			ID:          "stocked_up",
			Title:       "Fully Stocked",
			Description: "Track 25 pantry items at once",
			Rarity:      "rare",
			Unlocked:    stats.TotalItems >= 25,
		},
		{
			ID:          "first_recipe",
			Title:       "Home Cook",
			Description: "Save your first recipe",
			Rarity:      "common",
			Unlocked:    stats.TotalRecipes >= 1,
		},
		{
			ID:          "recipe_collector",
			Title:       "Recipe Collector",
			Description: "Save 10 recipes",
			Rarity:      "epic",
			Unlocked:    stats.TotalRecipes >= 10,
		},
		{
			ID:          "meal_master",
			Title:       "Meal Master",
			Description: "Complete 20 planned meals",
			Rarity:      "legendary",
			Unlocked:    completedMeals >= 20,
		},
	}
}
