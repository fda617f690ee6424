package pantry

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pixelpantry/entities"
	"pixelpantry/internal/flatstore"
)

// newBackends returns one repository per storage backend so every test
// below runs the same scenario against both and asserts the same
// results.
func newBackends(t *testing.T) map[string]PantryRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.PantryItem{}))

	store := flatstore.New(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, store.Init())

	return map[string]PantryRepository{
		"sqlite": NewPantryRepository(db),
		"flat":   NewPantryFlatRepository(store),
	}
}

func day(offset int) time.Time {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

func addItem(t *testing.T, repo PantryRepository, item entities.PantryItem) *entities.PantryItem {
	t.Helper()
	require.NoError(t, repo.AddPantryItem(context.Background(), &item))
	require.NotZero(t, item.ID)
	return &item
}

func itemNames(items []*entities.PantryItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func TestGetPantryItemsNewestFirst(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			addItem(t, repo, entities.PantryItem{Name: "Flour", Category: "Baking", AddedDate: day(0)})
			addItem(t, repo, entities.PantryItem{Name: "Milk", Category: "Dairy", AddedDate: day(2)})
			addItem(t, repo, entities.PantryItem{Name: "Eggs", Category: "Dairy", AddedDate: day(1)})

			items, err := repo.GetPantryItems(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"Milk", "Eggs", "Flour"}, itemNames(items))
		})
	}
}

func TestGetPantryItemsBreaksTiesByID(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			when := day(0)
			addItem(t, repo, entities.PantryItem{Name: "First", AddedDate: when})
			addItem(t, repo, entities.PantryItem{Name: "Second", AddedDate: when})

			items, err := repo.GetPantryItems(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"Second", "First"}, itemNames(items))
		})
	}
}

func TestUpdatePantryItemSparseFields(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			item := addItem(t, repo, entities.PantryItem{
				Name:      "Milk",
				Quantity:  1,
				Unit:      "liters",
				Category:  "Dairy",
				AddedDate: day(0),
			})

			err := repo.UpdatePantryItem(ctx, item.ID, map[string]interface{}{
				"quantity": float64(2),
				"category": "Beverages",
			})
			require.NoError(t, err)

			items, err := repo.GetPantryItems(ctx)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "Milk", items[0].Name)
			assert.Equal(t, float64(2), items[0].Quantity)
			assert.Equal(t, "liters", items[0].Unit)
			assert.Equal(t, "Beverages", items[0].Category)
		})
	}
}

func TestUpdatePantryItemMissingIDIsNoOp(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			addItem(t, repo, entities.PantryItem{Name: "Milk", AddedDate: day(0)})

			err := repo.UpdatePantryItem(ctx, 99999, map[string]interface{}{"name": "Ghost"})
			require.NoError(t, err)

			items, err := repo.GetPantryItems(ctx)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "Milk", items[0].Name)
		})
	}
}

func TestDeletePantryItemIsIdempotent(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			item := addItem(t, repo, entities.PantryItem{Name: "Milk", AddedDate: day(0)})

			require.NoError(t, repo.DeletePantryItem(ctx, item.ID))
			require.NoError(t, repo.DeletePantryItem(ctx, item.ID))

			count, err := repo.CountItems(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestGetItemsByCategory(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			addItem(t, repo, entities.PantryItem{Name: "Milk", Category: "Dairy", AddedDate: day(0)})
			addItem(t, repo, entities.PantryItem{Name: "Apples", Category: "Produce", AddedDate: day(1)})
			addItem(t, repo, entities.PantryItem{Name: "Cheese", Category: "Dairy", AddedDate: day(2)})

			items, err := repo.GetItemsByCategory(ctx, "Dairy")
			require.NoError(t, err)
			assert.Equal(t, []string{"Cheese", "Milk"}, itemNames(items))
		})
	}
}

func TestGetExpiringItems(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			soon := day(2)
			later := day(20)
			onCutoff := day(5)

			addItem(t, repo, entities.PantryItem{Name: "Yogurt", ExpiryDate: &soon, AddedDate: day(0)})
			addItem(t, repo, entities.PantryItem{Name: "Rice", AddedDate: day(0)})
			addItem(t, repo, entities.PantryItem{Name: "Canned Beans", ExpiryDate: &later, AddedDate: day(0)})
			addItem(t, repo, entities.PantryItem{Name: "Bread", ExpiryDate: &onCutoff, AddedDate: day(0)})

			items, err := repo.GetExpiringItems(ctx, day(5))
			require.NoError(t, err)
			assert.Equal(t, []string{"Yogurt", "Bread"}, itemNames(items),
				"no-expiry and past-cutoff items are excluded, cutoff day is inclusive")
		})
	}
}

func TestSearchItemsCaseInsensitiveSubstring(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			addItem(t, repo, entities.PantryItem{Name: "Apple", AddedDate: day(0)})
			addItem(t, repo, entities.PantryItem{Name: "Pineapple", AddedDate: day(1)})
			addItem(t, repo, entities.PantryItem{Name: "Milk", AddedDate: day(2)})

			items, err := repo.SearchItems(ctx, "APP")
			require.NoError(t, err)
			assert.Equal(t, []string{"Pineapple", "Apple"}, itemNames(items))
		})
	}
}

// TestBackendParity runs one add/update/delete sequence against both
// backends and compares the surviving items field by field, ignoring the
// backend-specific id values.
func TestBackendParity(t *testing.T) {
	ctx := context.Background()

	run := func(t *testing.T, repo PantryRepository) []*entities.PantryItem {
		a := addItem(t, repo, entities.PantryItem{Name: "Milk", Quantity: 1, Unit: "gallon", Category: "Dairy", AddedDate: day(0)})
		b := addItem(t, repo, entities.PantryItem{Name: "Apples", Quantity: 6, Unit: "pieces", Category: "Fruits", AddedDate: day(1)})
		addItem(t, repo, entities.PantryItem{Name: "Bread", Quantity: 1, Unit: "loaf", Category: "Grains", AddedDate: day(2)})

		require.NoError(t, repo.UpdatePantryItem(ctx, b.ID, map[string]interface{}{"quantity": float64(4)}))
		require.NoError(t, repo.DeletePantryItem(ctx, a.ID))
		require.NoError(t, repo.UpdatePantryItem(ctx, 77777, map[string]interface{}{"name": "Ghost"}))

		items, err := repo.GetPantryItems(ctx)
		require.NoError(t, err)
		return items
	}

	backends := newBackends(t)
	fromSQL := run(t, backends["sqlite"])
	fromFlat := run(t, backends["flat"])

	require.Equal(t, len(fromSQL), len(fromFlat))
	for i := range fromSQL {
		assert.Equal(t, fromSQL[i].Name, fromFlat[i].Name)
		assert.Equal(t, fromSQL[i].Quantity, fromFlat[i].Quantity)
		assert.Equal(t, fromSQL[i].Unit, fromFlat[i].Unit)
		assert.Equal(t, fromSQL[i].Category, fromFlat[i].Category)
	}
}

func TestCountItemsByCategory(t *testing.T) {
	for name, repo := range newBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			addItem(t, repo, entities.PantryItem{Name: "Milk", Category: "Dairy", AddedDate: day(0)})
			addItem(t, repo, entities.PantryItem{Name: "Cheese", Category: "Dairy", AddedDate: day(1)})
			addItem(t, repo, entities.PantryItem{Name: "Apples", Category: "Produce", AddedDate: day(2)})

			counts, err := repo.CountItemsByCategory(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[string]int64{"Dairy": 2, "Produce": 1}, counts)
		})
	}
}
