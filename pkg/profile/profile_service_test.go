package profile

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelpantry/entities"
	"pixelpantry/internal/flatstore"
	"pixelpantry/pkg/mealplan"
	"pixelpantry/pkg/pantry"
	"pixelpantry/pkg/recipe"
)

type profileFixture struct {
	service            ProfileService
	pantryRepository   pantry.PantryRepository
	recipeRepository   recipe.RecipeRepository
	mealPlanRepository mealplan.MealPlanRepository
}

func newProfileFixture(t *testing.T) profileFixture {
	t.Helper()
	store := flatstore.New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, store.Init())

	pantryRepository := pantry.NewPantryFlatRepository(store)
	recipeRepository := recipe.NewRecipeFlatRepository(store)
	mealPlanRepository := mealplan.NewMealPlanFlatRepository(store)
	pantryService := pantry.NewPantryService(pantryRepository, recipeRepository)

	return profileFixture{
		service:            NewProfileService(pantryService, mealPlanRepository),
		pantryRepository:   pantryRepository,
		recipeRepository:   recipeRepository,
		mealPlanRepository: mealPlanRepository,
	}
}

func (f profileFixture) seed(t *testing.T, items, recipes, completedMeals int) {
	t.Helper()
	ctx := context.Background()

	for i := 0; i < items; i++ {
		require.NoError(t, f.pantryRepository.AddPantryItem(ctx, &entities.PantryItem{
			Name: fmt.Sprintf("Item %d", i), AddedDate: time.Now().UTC(),
		}))
	}
	for i := 0; i < recipes; i++ {
		require.NoError(t, f.recipeRepository.CreateRecipe(ctx, &entities.Recipe{
			Name: fmt.Sprintf("Recipe %d", i),
		}))
	}
	for i := 0; i < completedMeals; i++ {
		plan := &entities.MealPlan{
			Date:       time.Now().UTC(),
			MealType:   entities.MealTypeDinner,
			RecipeName: fmt.Sprintf("Meal %d", i),
			Completed:  true,
		}
		require.NoError(t, f.mealPlanRepository.CreateMealPlan(ctx, plan))
	}
}

func TestGetProfileFreshUser(t *testing.T) {
	fixture := newProfileFixture(t)

	profile, err := fixture.service.GetProfile(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, profile.Level)
	assert.Zero(t, profile.XP)
	assert.Equal(t, int64(250), profile.NextLevelXP)
	for _, achievement := range profile.Achievements {
		assert.False(t, achievement.Unlocked, "achievement %s should be locked", achievement.ID)
	}
}

func TestGetProfileXPAndLevel(t *testing.T) {
	fixture := newProfileFixture(t)
	fixture.seed(t, 3, 2, 4)

	profile, err := fixture.service.GetProfile(context.Background())
	require.NoError(t, err)

	// 3*10 + 2*25 + 4*50 = 280 XP puts the user in level 2.
	assert.Equal(t, int64(280), profile.XP)
	assert.Equal(t, 2, profile.Level)
	assert.Equal(t, int64(500), profile.NextLevelXP)
	assert.Equal(t, int64(3), profile.TotalItems)
	assert.Equal(t, int64(2), profile.TotalRecipes)
	assert.Equal(t, int64(4), profile.CompletedMeals)
}

func TestGetProfileAchievementUnlocks(t *testing.T) {
	fixture := newProfileFixture(t)
	fixture.seed(t, 25, 10, 20)

	profile, err := fixture.service.GetProfile(context.Background())
	require.NoError(t, err)

	unlocked := map[string]bool{}
	for _, achievement := range profile.Achievements {
		unlocked[achievement.ID] = achievement.Unlocked
	}

	assert.True(t, unlocked["first_item"])
	assert.True(t, unlocked["stocked_up"])
	assert.True(t, unlocked["first_recipe"])
	assert.True(t, unlocked["recipe_collector"])
	assert.True(t, unlocked["meal_master"])
}

func TestGetProfileCountsOnlyCompletedMeals(t *testing.T) {
	fixture := newProfileFixture(t)
	ctx := context.Background()

	require.NoError(t, fixture.mealPlanRepository.CreateMealPlan(ctx, &entities.MealPlan{
		Date: time.Now().UTC(), MealType: entities.MealTypeLunch, RecipeName: "Soup",
	}))
	require.NoError(t, fixture.mealPlanRepository.CreateMealPlan(ctx, &entities.MealPlan{
		Date: time.Now().UTC(), MealType: entities.MealTypeDinner, RecipeName: "Pasta", Completed: true,
	}))

	profile, err := fixture.service.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), profile.CompletedMeals)
	assert.Equal(t, int64(50), profile.XP)
}
