package models

import (
	"strings"

	"gorm.io/gorm"
)

// Difficulty codes stored on recipes.
const (
	DifficultyBeginner     = "BG"
	DifficultyIntermediate = "IT"
	DifficultyAdvanced     = "AD"
)

// Meal slot codes stored on recipes.
const (
	MealBreakfast = "BF"
	MealLunch     = "LU"
	MealDinner    = "DN"
	MealSupper    = "SU"
)

var difficultyLabels = map[string]string{
	DifficultyBeginner:     "Beginner",
	DifficultyIntermediate: "Intermediate",
	DifficultyAdvanced:     "Advanced",
}

var mealLabels = map[string]string{
	MealBreakfast: "Breakfast",
	MealLunch:     "Lunch",
	MealDinner:    "Dinner",
	MealSupper:    "Supper",
}

// Recipe is a shared catalog entry. Rating aggregates are never stored on it.
type Recipe struct {
	gorm.Model
	UserID       *uint             `gorm:"index" json:"user_id"`
	Name         string            `gorm:"size:200;not null;index" json:"recipe_name"`
	Ingredients  []IngredientEntry `gorm:"serializer:json" json:"ingredients"`
	Tags         []string          `gorm:"serializer:json" json:"tags"`
	Difficulty   string            `gorm:"size:2;not null;default:BG" json:"difficulty"`
	Meal         string            `gorm:"size:2;not null;default:BF" json:"meal"`
	Description  string            `gorm:"type:text" json:"description"`
	Instructions string            `gorm:"type:text" json:"instructions"`
	ImageURL     string            `gorm:"type:text" json:"image_url"`
	PrepTime     string            `gorm:"size:50" json:"prep_time"`
	Ratings      []Rating          `gorm:"foreignKey:RecipeID" json:"-"`
	Comments     []Comment         `gorm:"foreignKey:RecipeID" json:"-"`
}

// IngredientEntry is one (category, amount, note) line of a recipe. Only the
// category takes part in fridge matching.
type IngredientEntry struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Note     string `json:"note"`
}

// Categories lists the ingredient categories in recipe order, duplicates included.
func (r Recipe) Categories() []string {
	categories := make([]string, 0, len(r.Ingredients))
	for _, entry := range r.Ingredients {
		categories = append(categories, entry.Category)
	}
	return categories
}

// ParseDifficulty accepts a difficulty code or label and returns the code.
func ParseDifficulty(value string) (string, bool) {
	return parseChoice(value, difficultyLabels)
}

// ParseMeal accepts a meal code or label and returns the code.
func ParseMeal(value string) (string, bool) {
	return parseChoice(value, mealLabels)
}

// DifficultyLabel returns the human readable name for a difficulty code.
func DifficultyLabel(code string) string {
	return difficultyLabels[code]
}

// MealLabel returns the human readable name for a meal code.
func MealLabel(code string) string {
	return mealLabels[code]
}

func parseChoice(value string, choices map[string]string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	for code, label := range choices {
		if strings.EqualFold(trimmed, code) || strings.EqualFold(trimmed, label) {
			return code, true
		}
	}
	return "", false
}
