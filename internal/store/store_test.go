package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wasteless/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, db.AutoMigrate(&models.Fridge{}, &models.Product{}, &models.Recipe{}, &models.Rating{}, &models.Comment{}))
	return db
}

func TestCatalogAttachesLiveAggregates(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	soup := models.Recipe{Name: "Soup", Ingredients: []models.IngredientEntry{{Category: "carrot", Amount: "2"}}, Tags: []string{"warm"}}
	salad := models.Recipe{Name: "Salad"}
	require.NoError(t, db.Create(&soup).Error)
	require.NoError(t, db.Create(&salad).Error)

	require.NoError(t, db.Create(&[]models.Rating{
		{UserID: 1, RecipeID: soup.ID, Rating: 5},
		{UserID: 2, RecipeID: soup.ID, Rating: 2},
	}).Error)
	require.NoError(t, db.Create(&[]models.Comment{
		{AuthorID: 1, RecipeID: soup.ID, Content: "lovely", DateAdded: time.Now()},
		{AuthorID: 2, RecipeID: salad.ID, Content: "crunchy", DateAdded: time.Now()},
		{AuthorID: 3, RecipeID: salad.ID, Content: "fresh", DateAdded: time.Now()},
	}).Error)

	entries, err := NewCatalog(db).ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Soup", entries[0].Recipe.Name)
	assert.Equal(t, []string{"carrot"}, entries[0].Recipe.Categories())
	assert.Equal(t, []string{"warm"}, entries[0].Recipe.Tags)
	assert.Equal(t, 2, entries[0].RatingsNum)
	assert.InDelta(t, 3.5, entries[0].Rating, 1e-9)
	assert.Equal(t, 1, entries[0].CommentsNum)

	assert.Equal(t, "Salad", entries[1].Recipe.Name)
	assert.Zero(t, entries[1].RatingsNum)
	assert.Zero(t, entries[1].Rating)
	assert.Equal(t, 2, entries[1].CommentsNum)

	// a new rating is visible on the next read
	require.NoError(t, db.Create(&models.Rating{UserID: 3, RecipeID: salad.ID, Rating: 4}).Error)
	entries, err = NewCatalog(db).ListRecipes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, entries[1].RatingsNum)
	assert.InDelta(t, 4.0, entries[1].Rating, 1e-9)
}

func TestCatalogIgnoresDeletedRatings(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	recipe := models.Recipe{Name: "Stew"}
	require.NoError(t, db.Create(&recipe).Error)
	rating := models.Rating{UserID: 1, RecipeID: recipe.ID, Rating: 1}
	require.NoError(t, db.Create(&rating).Error)
	require.NoError(t, db.Delete(&rating).Error)

	entries, err := NewCatalog(db).ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Zero(t, entries[0].RatingsNum)
}

func TestRatingOutsideRangeIsRejected(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	err := db.Create(&models.Rating{UserID: 1, RecipeID: 1, Rating: 6}).Error
	assert.Error(t, err)
}

func TestInventoryListsFridgeProducts(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	fridge := models.Fridge{Name: "Kitchen", UserID: 1}
	other := models.Fridge{Name: "Garage", UserID: 1}
	require.NoError(t, db.Create(&fridge).Error)
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&[]models.Product{
		{Name: "Milk", Categories: []string{"milk"}, ExpirationDate: now.AddDate(0, 0, 5), FridgeID: fridge.ID},
		{Name: "Eggs", Categories: []string{"egg"}, ExpirationDate: now.AddDate(0, 0, 1), FridgeID: fridge.ID},
		{Name: "Beer", Categories: []string{"beer"}, ExpirationDate: now, FridgeID: other.ID},
	}).Error)

	products, err := NewInventory(db).ListProducts(ctx, fridge.ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Eggs", products[0].Name)
	assert.Equal(t, []string{"milk"}, products[1].Categories)

	products, err = NewInventory(db).ListProducts(ctx, 4242)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestDeletingFridgeRemovesProducts(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	fridge := models.Fridge{Name: "Office", UserID: 1}
	require.NoError(t, db.Create(&fridge).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Yoghurt", Categories: []string{"yoghurt"}, ExpirationDate: time.Now(), FridgeID: fridge.ID}).Error)

	require.NoError(t, db.Delete(&fridge).Error)

	products, err := NewInventory(db).ListProducts(context.Background(), fridge.ID)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestNilDatabase(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog(nil).ListRecipes(context.Background())
	assert.ErrorIs(t, err, gorm.ErrInvalidDB)
	_, err = NewInventory(nil).ListProducts(context.Background(), 1)
	assert.ErrorIs(t, err, gorm.ErrInvalidDB)
}
