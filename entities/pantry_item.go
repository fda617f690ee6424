package entities

import (
	"time"
)

type PantryItem struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string     `gorm:"not null" json:"name"`
	Quantity   float64    `gorm:"not null;default:0" json:"quantity"`
	Unit       string     `gorm:"not null;default:pieces" json:"unit"`
	Category   string     `gorm:"not null;default:Other" json:"category"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	AddedDate  time.Time  `gorm:"not null" json:"added_date"`
	Confidence *float64   `json:"confidence,omitempty"`
	ImageURL   string     `json:"image_url,omitempty"`
}
