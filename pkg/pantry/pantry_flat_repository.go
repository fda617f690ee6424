package pantry

import (
	"context"
	"sort"
	"strings"
	"time"

	"pixelpantry/entities"
	"pixelpantry/internal/flatstore"
)

// pantryFlatRepository keeps pantry items in a named JSON list. Every
// operation reads the whole list, works on it in memory and writes it
// back, mirroring the query semantics of the SQL implementation.
type pantryFlatRepository struct {
	store *flatstore.Store
}

func NewPantryFlatRepository(store *flatstore.Store) PantryRepository {
	return &pantryFlatRepository{store: store}
}

func (r *pantryFlatRepository) readAll() ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.store.Read(flatstore.ListPantryItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func sortNewestFirst(items []*entities.PantryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].AddedDate.Equal(items[j].AddedDate) {
			return items[i].AddedDate.After(items[j].AddedDate)
		}
		return items[i].ID > items[j].ID
	})
}

func (r *pantryFlatRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	items, err := r.readAll()
	if err != nil {
		return err
	}
	id, err := r.store.NextID()
	if err != nil {
		return err
	}
	item.ID = id
	items = append(items, item)
	return r.store.Write(flatstore.ListPantryItems, items)
}

func (r *pantryFlatRepository) GetPantryItems(ctx context.Context) ([]*entities.PantryItem, error) {
	items, err := r.readAll()
	if err != nil {
		return nil, err
	}
	sortNewestFirst(items)
	return items, nil
}

func (r *pantryFlatRepository) UpdatePantryItem(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	items, err := r.readAll()
	if err != nil {
		return err
	}
	for _, item := range items {
		if item.ID != id {
			continue
		}
		applyUpdates(item, updates)
		return r.store.Write(flatstore.ListPantryItems, items)
	}
	// Missing id is a no-op, same as an UPDATE affecting zero rows.
	return nil
}

// applyUpdates mutates everything except id and added date; those never
// appear in the update map (the service strips them).
func applyUpdates(item *entities.PantryItem, updates map[string]interface{}) {
	for column, value := range updates {
		switch column {
		case "name":
			item.Name = value.(string)
		case "quantity":
			item.Quantity = value.(float64)
		case "unit":
			item.Unit = value.(string)
		case "category":
			item.Category = value.(string)
		case "expiry_date":
			expiry := value.(time.Time)
			item.ExpiryDate = &expiry
		case "confidence":
			confidence := value.(float64)
			item.Confidence = &confidence
		case "image_url":
			item.ImageURL = value.(string)
		}
	}
}

func (r *pantryFlatRepository) DeletePantryItem(ctx context.Context, id int64) error {
	items, err := r.readAll()
	if err != nil {
		return err
	}
	filtered := items[:0]
	for _, item := range items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	return r.store.Write(flatstore.ListPantryItems, filtered)
}

func (r *pantryFlatRepository) GetItemsByCategory(ctx context.Context, category string) ([]*entities.PantryItem, error) {
	items, err := r.readAll()
	if err != nil {
		return nil, err
	}
	var matched []*entities.PantryItem
	for _, item := range items {
		if item.Category == category {
			matched = append(matched, item)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

func (r *pantryFlatRepository) GetExpiringItems(ctx context.Context, cutoff time.Time) ([]*entities.PantryItem, error) {
	items, err := r.readAll()
	if err != nil {
		return nil, err
	}
	var expiring []*entities.PantryItem
	for _, item := range items {
		if item.ExpiryDate != nil && !item.ExpiryDate.After(cutoff) {
			expiring = append(expiring, item)
		}
	}
	sort.SliceStable(expiring, func(i, j int) bool {
		if !expiring[i].ExpiryDate.Equal(*expiring[j].ExpiryDate) {
			return expiring[i].ExpiryDate.Before(*expiring[j].ExpiryDate)
		}
		return expiring[i].ID < expiring[j].ID
	})
	return expiring, nil
}

func (r *pantryFlatRepository) SearchItems(ctx context.Context, query string) ([]*entities.PantryItem, error) {
	items, err := r.readAll()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(query)
	var matched []*entities.PantryItem
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			matched = append(matched, item)
		}
	}
	sortNewestFirst(matched)
	return matched, nil
}

func (r *pantryFlatRepository) CountItems(ctx context.Context) (int64, error) {
	items, err := r.readAll()
	if err != nil {
		return 0, err
	}
	return int64(len(items)), nil
}

func (r *pantryFlatRepository) CountItemsByCategory(ctx context.Context) (map[string]int64, error) {
	items, err := r.readAll()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64)
	for _, item := range items {
		counts[item.Category]++
	}
	return counts, nil
}
