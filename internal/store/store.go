// Package store implements the recommendation engine's repositories on gorm.
package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wasteless/internal/recommend"
	"wasteless/models"
)

// Catalog reads recipes with their rating and comment aggregates.
type Catalog struct {
	db *gorm.DB
}

// NewCatalog returns a Catalog backed by db.
func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

type ratingAggregate struct {
	RecipeID uint
	Total    int64
	Mean     float64
}

type commentAggregate struct {
	RecipeID uint
	Total    int64
}

// ListRecipes loads every recipe and attaches aggregates computed from the
// live rating and comment rows on each call.
func (c *Catalog) ListRecipes(ctx context.Context) ([]recommend.CatalogEntry, error) {
	if c.db == nil {
		return nil, gorm.ErrInvalidDB
	}
	db := c.db.WithContext(ctx)

	var recipes []models.Recipe
	if err := db.Order("id asc").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	var ratings []ratingAggregate
	if err := db.Model(&models.Rating{}).
		Select("recipe_id, COUNT(*) AS total, AVG(rating) AS mean").
		Group("recipe_id").
		Scan(&ratings).Error; err != nil {
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}

	var comments []commentAggregate
	if err := db.Model(&models.Comment{}).
		Select("recipe_id, COUNT(*) AS total").
		Group("recipe_id").
		Scan(&comments).Error; err != nil {
		return nil, fmt.Errorf("aggregate comments: %w", err)
	}

	ratingsByRecipe := make(map[uint]ratingAggregate, len(ratings))
	for _, agg := range ratings {
		ratingsByRecipe[agg.RecipeID] = agg
	}
	commentsByRecipe := make(map[uint]int64, len(comments))
	for _, agg := range comments {
		commentsByRecipe[agg.RecipeID] = agg.Total
	}

	entries := make([]recommend.CatalogEntry, 0, len(recipes))
	for _, recipe := range recipes {
		entry := recommend.CatalogEntry{
			Recipe:      recipe,
			CommentsNum: int(commentsByRecipe[recipe.ID]),
		}
		if agg, ok := ratingsByRecipe[recipe.ID]; ok && agg.Total > 0 {
			entry.RatingsNum = int(agg.Total)
			entry.Rating = agg.Mean
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Inventory reads the products stored in fridges.
type Inventory struct {
	db *gorm.DB
}

// NewInventory returns an Inventory backed by db.
func NewInventory(db *gorm.DB) *Inventory {
	return &Inventory{db: db}
}

// ListProducts returns the products of a fridge, soonest to expire first.
// Unknown fridges produce an empty slice.
func (i *Inventory) ListProducts(ctx context.Context, fridgeID uint) ([]models.Product, error) {
	if i.db == nil {
		return nil, gorm.ErrInvalidDB
	}
	products := []models.Product{}
	if err := i.db.WithContext(ctx).
		Where("fridge_id = ?", fridgeID).
		Order("expiration_date asc, id asc").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("load products for fridge %d: %w", fridgeID, err)
	}
	return products, nil
}

var (
	_ recommend.CatalogRepository   = (*Catalog)(nil)
	_ recommend.InventoryRepository = (*Inventory)(nil)
)
