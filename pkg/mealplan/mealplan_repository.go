package mealplan

import (
	"context"
	"time"

	"gorm.io/gorm"

	"pixelpantry/entities"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlans(ctx context.Context, startDate, endDate *time.Time) ([]*entities.MealPlan, error)
		SetCompleted(ctx context.Context, id int64, completed bool) error
		CountCompleted(ctx context.Context) (int64, error)
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context, startDate, endDate *time.Time) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	query := r.db.WithContext(ctx)
	if startDate != nil && endDate != nil {
		query = query.Where("date BETWEEN ? AND ?", *startDate, *endDate)
	}
	if err := query.Order("date asc, meal_type asc, id asc").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	return r.db.WithContext(ctx).Model(&entities.MealPlan{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"completed": completed}).Error
}

func (r *mealPlanRepository) CountCompleted(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.MealPlan{}).
		Where("completed = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
