package pages

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"wasteless/internal/views/layout"
)

// RecipeCard is the display projection of a recommended recipe.
type RecipeCard struct {
	Name       string
	Difficulty string
	Meal       string
	PrepTime   string
	Tags       []string
	Rating     float64
	RatingsNum int
	Popularity float64
}

func (c RecipeCard) meta() string {
	parts := []string{c.Difficulty, c.Meal}
	if c.PrepTime != "" {
		parts = append(parts, c.PrepTime)
	}
	return strings.Join(parts, " · ")
}

func (c RecipeCard) ratingLabel() string {
	return fmt.Sprintf("%.1f (%d)", c.Rating, c.RatingsNum)
}

func (c RecipeCard) tagList() string {
	return strings.Join(c.Tags, ", ")
}

// RecommendationsView feeds the fridge recommendations page.
type RecommendationsView struct {
	FridgeID   uint
	FridgeName string
	Urgent     []RecipeCard
	General    []RecipeCard
}

// Recommendations renders both recommendation lists for a fridge.
func Recommendations(view RecommendationsView) templ.Component {
	title := view.FridgeName
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("Fridge %d", view.FridgeID)
	}
	return layout.Page(title, recommendationsBody(title, view))
}
