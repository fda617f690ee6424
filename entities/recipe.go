package entities

import (
	"encoding/json"
	"time"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Ingredient is one entry of a recipe's ingredient list. The list is kept
// as a JSON blob in the ingredients column and must go through
// SetIngredients/GetIngredients at the boundary.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

type Recipe struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `json:"description"`
	Ingredients   string    `gorm:"type:text;not null" json:"ingredients"`
	Instructions  string    `gorm:"type:text;not null" json:"instructions"`
	CookTime      int       `gorm:"not null;default:30" json:"cook_time"`
	Servings      int       `gorm:"not null;default:4" json:"servings"`
	Difficulty    string    `gorm:"not null;default:Medium" json:"difficulty"`
	Category      string    `gorm:"not null;default:'Main Dish'" json:"category"`
	CreatedDate   time.Time `gorm:"not null" json:"created_date"`
	IsAIGenerated bool      `gorm:"default:false" json:"is_ai_generated"`
	Rating        *float64  `json:"rating,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
}

func (r *Recipe) SetIngredients(ingredients []Ingredient) error {
	data, err := json.Marshal(ingredients)
	if err != nil {
		return err
	}
	r.Ingredients = string(data)
	return nil
}

func (r *Recipe) GetIngredients() ([]Ingredient, error) {
	var ingredients []Ingredient
	if r.Ingredients == "" {
		return ingredients, nil
	}
	if err := json.Unmarshal([]byte(r.Ingredients), &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *Recipe) SetInstructions(steps []string) error {
	data, err := json.Marshal(steps)
	if err != nil {
		return err
	}
	r.Instructions = string(data)
	return nil
}

func (r *Recipe) GetInstructions() ([]string, error) {
	var steps []string
	if r.Instructions == "" {
		return steps, nil
	}
	if err := json.Unmarshal([]byte(r.Instructions), &steps); err != nil {
		return nil, err
	}
	return steps, nil
}
