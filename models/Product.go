package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a perishable item stored in a fridge.
type Product struct {
	gorm.Model
	Name           string    `gorm:"size:150;not null" json:"product_name"`
	Categories     []string  `gorm:"serializer:json" json:"categories"`
	QuantityG      float64   `json:"quantity_g"`
	Quantity       int       `json:"quantity"`
	Carbohydrates  float64   `json:"carbohydrates"`
	EnergyKcal     int       `json:"energy_kcal"`
	Fat            float64   `json:"fat"`
	Fiber          float64   `json:"fiber"`
	Proteins       float64   `json:"proteins"`
	Salt           float64   `json:"salt"`
	Sugar          float64   `gorm:"default:0" json:"sugar"`
	Sodium         float64   `json:"sodium"`
	ImageURL       string    `gorm:"size:200" json:"image_url"`
	DateAdded      time.Time `json:"date_added"`
	ExpirationDate time.Time `gorm:"not null;index" json:"expiration_date"`
	FridgeID       uint      `gorm:"not null;index" json:"fridge_id"`
}
