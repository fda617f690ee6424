package mealplan

import (
	"context"
	"sort"
	"time"

	"pixelpantry/entities"
	"pixelpantry/internal/flatstore"
)

type mealPlanFlatRepository struct {
	store *flatstore.Store
}

func NewMealPlanFlatRepository(store *flatstore.Store) MealPlanRepository {
	return &mealPlanFlatRepository{store: store}
}

func (r *mealPlanFlatRepository) readAll() ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	if err := r.store.Read(flatstore.ListMealPlans, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *mealPlanFlatRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	plans, err := r.readAll()
	if err != nil {
		return err
	}
	id, err := r.store.NextID()
	if err != nil {
		return err
	}
	plan.ID = id
	plans = append(plans, plan)
	return r.store.Write(flatstore.ListMealPlans, plans)
}

func (r *mealPlanFlatRepository) GetMealPlans(ctx context.Context, startDate, endDate *time.Time) ([]*entities.MealPlan, error) {
	plans, err := r.readAll()
	if err != nil {
		return nil, err
	}

	if startDate != nil && endDate != nil {
		var inRange []*entities.MealPlan
		for _, plan := range plans {
			if !plan.Date.Before(*startDate) && !plan.Date.After(*endDate) {
				inRange = append(inRange, plan)
			}
		}
		plans = inRange
	}

	// Chronological, with the meal type tie-break the SQL backend gets
	// from ORDER BY meal_type ASC.
	sort.SliceStable(plans, func(i, j int) bool {
		if !plans[i].Date.Equal(plans[j].Date) {
			return plans[i].Date.Before(plans[j].Date)
		}
		if plans[i].MealType != plans[j].MealType {
			return plans[i].MealType < plans[j].MealType
		}
		return plans[i].ID < plans[j].ID
	})
	return plans, nil
}

func (r *mealPlanFlatRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	plans, err := r.readAll()
	if err != nil {
		return err
	}
	for _, plan := range plans {
		if plan.ID != id {
			continue
		}
		plan.Completed = completed
		return r.store.Write(flatstore.ListMealPlans, plans)
	}
	return nil
}

func (r *mealPlanFlatRepository) CountCompleted(ctx context.Context) (int64, error) {
	plans, err := r.readAll()
	if err != nil {
		return 0, err
	}
	var count int64
	for _, plan := range plans {
		if plan.Completed {
			count++
		}
	}
	return count, nil
}
