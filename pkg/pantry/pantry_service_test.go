package pantry

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixelpantry/domain"
	"pixelpantry/entities"
	"pixelpantry/internal/flatstore"
	"pixelpantry/pkg/recipe"
)

func newTestService(t *testing.T) (PantryService, recipe.RecipeRepository) {
	t.Helper()
	store := flatstore.New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, store.Init())
	recipeRepository := recipe.NewRecipeFlatRepository(store)
	return NewPantryService(NewPantryFlatRepository(store), recipeRepository), recipeRepository
}

func TestAddPantryItemDefaults(t *testing.T) {
	service, _ := newTestService(t)

	res, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name:     "Milk",
		Quantity: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "pieces", res.Unit)
	assert.Equal(t, "Other", res.Category)
	assert.Empty(t, res.ExpiryDate)
	assert.False(t, res.AddedDate.IsZero())
}

func TestAddPantryItemValidation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()
	badConfidence := 1.5

	_, err := service.AddPantryItem(ctx, domain.AddPantryItemRequest{Name: "Milk", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = service.AddPantryItem(ctx, domain.AddPantryItemRequest{Name: "Milk", Quantity: 1, Confidence: &badConfidence})
	assert.ErrorIs(t, err, domain.ErrInvalidConfidence)

	_, err = service.AddPantryItem(ctx, domain.AddPantryItemRequest{Name: "Milk", Quantity: 1, ExpiryDate: "next tuesday"})
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDate)
}

func TestAddPantryItemParsesExpiryDate(t *testing.T) {
	service, _ := newTestService(t)

	res, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{
		Name:       "Yogurt",
		Quantity:   4,
		ExpiryDate: "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", res.ExpiryDate)
}

func TestUpdatePantryItemRejectsEmptyUpdate(t *testing.T) {
	service, _ := newTestService(t)

	res, err := service.AddPantryItem(context.Background(), domain.AddPantryItemRequest{Name: "Milk", Quantity: 1})
	require.NoError(t, err)

	err = service.UpdatePantryItem(context.Background(), res.ID, domain.UpdatePantryItemRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyUpdate)
}

func TestUpdatePantryItemValidation(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	res, err := service.AddPantryItem(ctx, domain.AddPantryItemRequest{Name: "Milk", Quantity: 1})
	require.NoError(t, err)

	negative := -2.0
	assert.ErrorIs(t,
		service.UpdatePantryItem(ctx, res.ID, domain.UpdatePantryItemRequest{Quantity: &negative}),
		domain.ErrInvalidQuantity)

	badDate := "soon"
	assert.ErrorIs(t,
		service.UpdatePantryItem(ctx, res.ID, domain.UpdatePantryItemRequest{ExpiryDate: &badDate}),
		domain.ErrInvalidExpiryDate)

	badConfidence := 2.0
	assert.ErrorIs(t,
		service.UpdatePantryItem(ctx, res.ID, domain.UpdatePantryItemRequest{Confidence: &badConfidence}),
		domain.ErrInvalidConfidence)
}

func TestUpdatePantryItemKeepsAddedDate(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	res, err := service.AddPantryItem(ctx, domain.AddPantryItemRequest{Name: "Milk", Quantity: 1})
	require.NoError(t, err)

	newName := "Oat Milk"
	require.NoError(t, service.UpdatePantryItem(ctx, res.ID, domain.UpdatePantryItemRequest{Name: &newName}))

	items, err := service.GetPantryItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Oat Milk", items[0].Name)
	assert.True(t, items[0].AddedDate.Equal(res.AddedDate))
}

func TestGetExpiringItemsRejectsNegativeDays(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.GetExpiringItems(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidExpiryDays)
}

func TestGetStatsEmpty(t *testing.T) {
	service, _ := newTestService(t)

	stats, err := service.GetStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalItems)
	assert.Zero(t, stats.TotalRecipes)
	assert.Zero(t, stats.ExpiringItems)
	assert.Empty(t, stats.CategoryCounts)
}

func TestExpiringAndCategoryScenario(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.AddPantryItem(ctx, domain.AddPantryItemRequest{
		Name: "Milk", Quantity: 1, Unit: "gallon", Category: "Dairy",
	})
	require.NoError(t, err)
	_, err = service.AddPantryItem(ctx, domain.AddPantryItemRequest{
		Name: "Apples", Quantity: 6, Unit: "pieces", Category: "Fruits",
		ExpiryDate: time.Now().UTC().AddDate(0, 0, 3).Format("2006-01-02"),
	})
	require.NoError(t, err)

	expiring, err := service.GetExpiringItems(ctx, 5)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "Apples", expiring[0].Name)

	dairy, err := service.GetItemsByCategory(ctx, "Dairy")
	require.NoError(t, err)
	require.Len(t, dairy, 1)
	assert.Equal(t, "Milk", dairy[0].Name)

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Dairy": 1, "Fruits": 1}, stats.CategoryCounts)
}

func TestGetStats(t *testing.T) {
	service, recipeRepository := newTestService(t)
	ctx := context.Background()

	soon := time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")
	_, err := service.AddPantryItem(ctx, domain.AddPantryItemRequest{
		Name: "Milk", Quantity: 1, Category: "Dairy", ExpiryDate: soon,
	})
	require.NoError(t, err)
	_, err = service.AddPantryItem(ctx, domain.AddPantryItemRequest{
		Name: "Apples", Quantity: 6, Category: "Produce",
	})
	require.NoError(t, err)

	require.NoError(t, recipeRepository.CreateRecipe(ctx, &entities.Recipe{Name: "Pancakes"}))

	stats, err := service.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalItems)
	assert.Equal(t, int64(1), stats.TotalRecipes)
	assert.Equal(t, int64(1), stats.ExpiringItems, "only the item expiring inside the window counts")
	assert.Equal(t, map[string]int64{"Dairy": 1, "Produce": 1}, stats.CategoryCounts)
}
