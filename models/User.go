package models

import "gorm.io/gorm"

// User represents an application account that owns fridges, recipes and ratings.
type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Name         string
	Fridges      []Fridge `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
