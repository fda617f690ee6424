package pantry

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"pixelpantry/entities"
)

type (
	// PantryRepository is implemented by both storage backends. Callers
	// must observe identical semantics whichever implementation is
	// active.
	PantryRepository interface {
		AddPantryItem(ctx context.Context, item *entities.PantryItem) error
		GetPantryItems(ctx context.Context) ([]*entities.PantryItem, error)
		UpdatePantryItem(ctx context.Context, id int64, updates map[string]interface{}) error
		DeletePantryItem(ctx context.Context, id int64) error
		GetItemsByCategory(ctx context.Context, category string) ([]*entities.PantryItem, error)
		GetExpiringItems(ctx context.Context, cutoff time.Time) ([]*entities.PantryItem, error)
		SearchItems(ctx context.Context, query string) ([]*entities.PantryItem, error)
		CountItems(ctx context.Context) (int64, error)
		CountItemsByCategory(ctx context.Context) (map[string]int64, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) AddPantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetPantryItems(ctx context.Context) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Order("added_date desc, id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdatePantryItem applies a sparse field set. A missing id is a no-op,
// matching the flat backend; an unconditional UPDATE simply affects zero
// rows.
func (r *pantryRepository) UpdatePantryItem(ctx context.Context, id int64, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *pantryRepository) DeletePantryItem(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.PantryItem{}).Error
}

func (r *pantryRepository) GetItemsByCategory(ctx context.Context, category string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("added_date desc, id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetExpiringItems(ctx context.Context, cutoff time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("expiry_date IS NOT NULL AND expiry_date <= ?", cutoff).
		Order("expiry_date asc, id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) SearchItems(ctx context.Context, query string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	pattern := "%" + strings.ToLower(query) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("added_date desc, id desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) CountItems(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *pantryRepository) CountItemsByCategory(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Category string
		Count    int64
	}
	if err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Category] = row.Count
	}
	return counts, nil
}
