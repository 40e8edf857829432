package models

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	gorm.Model
	AuthorID   uint      `gorm:"not null;index" json:"author"`
	AuthorName string    `gorm:"size:100" json:"author_name"`
	DateAdded  time.Time `json:"date_added"`
	Content    string    `gorm:"type:text" json:"content"`
	RecipeID   uint      `gorm:"not null;index" json:"recipe_id"`
}
