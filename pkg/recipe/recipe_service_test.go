package recipe

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pixelpantry/domain"
	"pixelpantry/entities"
	"pixelpantry/internal/flatstore"
)

func newBackends(t *testing.T) map[string]RecipeRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Recipe{}))

	store := flatstore.New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, store.Init())

	return map[string]RecipeRepository{
		"sqlite": NewRecipeRepository(db),
		"flat":   NewRecipeFlatRepository(store),
	}
}

func day(offset int) time.Time {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func addRecipeRequest(name string) domain.AddRecipeRequest {
	return domain.AddRecipeRequest{
		Name:         name,
		Ingredients:  []domain.RecipeIngredientRequest{{Name: "Flour", Amount: "2", Unit: "cups"}},
		Instructions: []string{"Mix", "Bake"},
		CookTime:     30,
		Servings:     4,
		Difficulty:   entities.DifficultyEasy,
	}
}

func TestAddRecipeDefaultsCategory(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			service := NewRecipeService(repo)

			res, err := service.AddRecipe(context.Background(), addRecipeRequest("Pancakes"))
			require.NoError(t, err)

			assert.Equal(t, "Main Dish", res.Category)
			assert.NotZero(t, res.ID)
			assert.False(t, res.CreatedDate.IsZero())
		})
	}
}

func TestAddRecipeValidation(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			service := NewRecipeService(repo)
			ctx := context.Background()

			req := addRecipeRequest("Pancakes")
			req.CookTime = 0
			_, err := service.AddRecipe(ctx, req)
			assert.ErrorIs(t, err, domain.ErrInvalidCookTime)

			req = addRecipeRequest("Pancakes")
			req.Servings = -1
			_, err = service.AddRecipe(ctx, req)
			assert.ErrorIs(t, err, domain.ErrInvalidServings)

			req = addRecipeRequest("Pancakes")
			req.Difficulty = "Impossible"
			_, err = service.AddRecipe(ctx, req)
			assert.ErrorIs(t, err, domain.ErrInvalidDifficulty)

			req = addRecipeRequest("Pancakes")
			rating := 5.5
			req.Rating = &rating
			_, err = service.AddRecipe(ctx, req)
			assert.ErrorIs(t, err, domain.ErrInvalidRating)
		})
	}
}

func TestAddRecipeRoundTripsIngredients(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			service := NewRecipeService(repo)
			ctx := context.Background()

			req := addRecipeRequest("Pancakes")
			req.Ingredients = []domain.RecipeIngredientRequest{
				{Name: "Flour", Amount: "2", Unit: "cups"},
				{Name: "Eggs", Amount: "3", Unit: "pieces"},
			}
			_, err := service.AddRecipe(ctx, req)
			require.NoError(t, err)

			recipes, err := service.GetRecipes(ctx)
			require.NoError(t, err)
			require.Len(t, recipes, 1)
			assert.Equal(t, []entities.Ingredient{
				{Name: "Flour", Amount: "2", Unit: "cups"},
				{Name: "Eggs", Amount: "3", Unit: "pieces"},
			}, recipes[0].Ingredients)
			assert.Equal(t, []string{"Mix", "Bake"}, recipes[0].Instructions)
		})
	}
}

func TestGetRecipesNewestFirst(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := &entities.Recipe{Name: "Old", CreatedDate: day(0), CookTime: 10, Servings: 2, Difficulty: entities.DifficultyEasy, Category: "Main Dish"}
			second := &entities.Recipe{Name: "New", CreatedDate: day(1), CookTime: 10, Servings: 2, Difficulty: entities.DifficultyEasy, Category: "Main Dish"}
			require.NoError(t, repo.CreateRecipe(ctx, first))
			require.NoError(t, repo.CreateRecipe(ctx, second))

			recipes, err := repo.GetRecipes(ctx)
			require.NoError(t, err)
			require.Len(t, recipes, 2)
			assert.Equal(t, "New", recipes[0].Name)
			assert.Equal(t, "Old", recipes[1].Name)

			count, err := repo.CountRecipes(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(2), count)
		})
	}
}
