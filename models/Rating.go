package models

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	MinRating = 0
	MaxRating = 5
)

// Rating is a single user's score for a recipe.
type Rating struct {
	gorm.Model
	UserID   uint `gorm:"not null;index" json:"user_id"`
	RecipeID uint `gorm:"not null;index" json:"recipe_id"`
	Rating   int  `gorm:"not null" json:"rating"`
}

// BeforeSave rejects scores outside the accepted range.
func (r *Rating) BeforeSave(*gorm.DB) error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return fmt.Errorf("rating must be between %d and %d, got %d", MinRating, MaxRating, r.Rating)
	}
	return nil
}
