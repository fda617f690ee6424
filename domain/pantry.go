package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddPantryItem    = "pantry item added successfully"
	MessageSuccessUpdatePantryItem = "pantry item updated successfully"
	MessageSuccessDeletePantryItem = "pantry item deleted successfully"
	MessageSuccessGetPantryItems   = "pantry items retrieved successfully"
	MessageSuccessGetStats         = "pantry statistics retrieved successfully"

	MessageFailedAddPantryItem    = "failed to add pantry item"
	MessageFailedUpdatePantryItem = "failed to update pantry item"
	MessageFailedDeletePantryItem = "failed to delete pantry item"
	MessageFailedGetPantryItems   = "failed to retrieve pantry items"
	MessageFailedGetStats         = "failed to retrieve pantry statistics"

	ErrPantryItemNotFound = errors.New("pantry item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrInvalidConfidence  = errors.New("confidence must be between 0 and 1")
	ErrInvalidExpiryDays  = errors.New("days must not be negative")
	ErrEmptyUpdate        = errors.New("no updatable fields provided")
)

type (
	AddPantryItemRequest struct {
		Name       string   `json:"name" validate:"required"`
		Quantity   float64  `json:"quantity" validate:"min=0"`
		Unit       string   `json:"unit" validate:"omitempty"`
		Category   string   `json:"category" validate:"omitempty"`
		ExpiryDate string   `json:"expiry_date" validate:"omitempty"`
		Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,min=0,max=1"`
		ImageURL   string   `json:"image_url,omitempty"`
	}

	// UpdatePantryItemRequest carries a sparse field set; nil means "leave
	// alone". The id and added date are never updatable.
	UpdatePantryItemRequest struct {
		Name       *string  `json:"name,omitempty"`
		Quantity   *float64 `json:"quantity,omitempty" validate:"omitempty,min=0"`
		Unit       *string  `json:"unit,omitempty"`
		Category   *string  `json:"category,omitempty"`
		ExpiryDate *string  `json:"expiry_date,omitempty"`
		Confidence *float64 `json:"confidence,omitempty" validate:"omitempty,min=0,max=1"`
		ImageURL   *string  `json:"image_url,omitempty"`
	}

	PantryItemResponse struct {
		ID         int64     `json:"id"`
		Name       string    `json:"name"`
		Quantity   float64   `json:"quantity"`
		Unit       string    `json:"unit"`
		Category   string    `json:"category"`
		ExpiryDate string    `json:"expiry_date,omitempty"`
		AddedDate  time.Time `json:"added_date"`
		Confidence *float64  `json:"confidence,omitempty"`
		ImageURL   string    `json:"image_url,omitempty"`
	}

	PantryStatsResponse struct {
		TotalItems     int64            `json:"total_items"`
		TotalRecipes   int64            `json:"total_recipes"`
		ExpiringItems  int64            `json:"expiring_items"`
		CategoryCounts map[string]int64 `json:"category_counts"`
	}
)
