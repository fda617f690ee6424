package entities

import (
	"time"
)

const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// MealPlan assigns a recipe (or a bare recipe name) to a date and meal
// slot. RecipeID is a weak reference used for lookup only.
type MealPlan struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Date        time.Time `gorm:"not null" json:"date"`
	MealType    string    `gorm:"not null" json:"meal_type"`
	RecipeID    *int64    `json:"recipe_id,omitempty"`
	RecipeName  string    `gorm:"not null" json:"recipe_name"`
	Completed   bool      `gorm:"default:false" json:"completed"`
	CreatedDate time.Time `gorm:"not null" json:"created_date"`
}
