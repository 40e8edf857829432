package mock

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"wasteless/internal/db"
	applog "wasteless/internal/log"
	"wasteless/models"
)

// Credentials of the seeded demo account.
const (
	DemoEmail    = "demo@wasteless.app"
	DemoPassword = "wasteless"
)

var instances atomic.Int64

// New returns an in-memory sqlite database seeded with a demo kitchen. Each
// call gets its own database.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	dsn := fmt.Sprintf("file:wasteless-mock-%d?mode=memory&cache=shared", instances.Add(1))
	database, err := gorm.Open(sqlite.Open(dsn), db.GormConfig(logger.Silent))
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(database); err != nil {
		return nil, err
	}

	if err := seed(ctx, database, time.Now().UTC()); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return database, nil
}

func seed(ctx context.Context, database *gorm.DB, now time.Time) error {
	applog.Debug(ctx, "seeding mock database")
	tx := database.WithContext(ctx)

	password, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         "Robin Pantry",
		Email:        DemoEmail,
		PasswordHash: string(password),
	}
	if err := tx.Create(user).Error; err != nil {
		return err
	}

	fridge := &models.Fridge{Name: "Kitchen", UserID: user.ID}
	if err := tx.Create(fridge).Error; err != nil {
		return err
	}

	inDays := func(days int) time.Time { return now.AddDate(0, 0, days) }
	products := []models.Product{
		{Name: "Free range eggs", Categories: []string{"egg"}, Quantity: 6, ExpirationDate: inDays(12)},
		{Name: "Whole milk", Categories: []string{"milk"}, QuantityG: 1000, Quantity: 1, ExpirationDate: inDays(0)},
		{Name: "Plain flour", Categories: []string{"flour"}, QuantityG: 1000, Quantity: 1, ExpirationDate: inDays(180)},
		{Name: "Baby spinach", Categories: []string{"spinach", "leafy greens"}, QuantityG: 150, Quantity: 1, ExpirationDate: inDays(1)},
		{Name: "Cheddar", Categories: []string{"cheese"}, QuantityG: 200, Quantity: 1, ExpirationDate: inDays(20)},
	}
	for i := range products {
		products[i].FridgeID = fridge.ID
		products[i].DateAdded = now
	}
	if err := tx.Create(&products).Error; err != nil {
		return err
	}

	recipes := []models.Recipe{
		{
			Name:        "Crepes",
			Ingredients: entries("egg", "milk", "flour", "sugar"),
			Tags:        []string{"sweet", "french"},
			Difficulty:  models.DifficultyIntermediate,
			Meal:        models.MealBreakfast,
			PrepTime:    "25 min",
			Description: "Thin pancakes for sweet or savoury fillings.",
		},
		{
			Name:        "Spinach omelette",
			Ingredients: entries("egg", "spinach", "cheese"),
			Tags:        []string{"quick", "vegetarian"},
			Difficulty:  models.DifficultyBeginner,
			Meal:        models.MealLunch,
			PrepTime:    "10 min",
			Description: "Fluffy eggs folded over wilted spinach.",
		},
		{
			Name:        "Hot chocolate",
			Ingredients: entries("milk"),
			Tags:        []string{"sweet", "drink"},
			Difficulty:  models.DifficultyBeginner,
			Meal:        models.MealSupper,
			PrepTime:    "5 min",
		},
		{
			Name:        "Beef fried rice",
			Ingredients: entries("beef", "rice"),
			Tags:        []string{"wok"},
			Difficulty:  models.DifficultyAdvanced,
			Meal:        models.MealDinner,
			PrepTime:    "35 min",
		},
	}
	for i := range recipes {
		recipes[i].UserID = &user.ID
		recipes[i].Instructions = "See description."
	}
	if err := tx.Create(&recipes).Error; err != nil {
		return err
	}

	ratings := []models.Rating{
		{UserID: user.ID, RecipeID: recipes[0].ID, Rating: 5},
		{UserID: user.ID + 1, RecipeID: recipes[0].ID, Rating: 4},
		{UserID: user.ID, RecipeID: recipes[1].ID, Rating: 3},
		{UserID: user.ID, RecipeID: recipes[3].ID, Rating: 2},
	}
	if err := tx.Create(&ratings).Error; err != nil {
		return err
	}

	comments := []models.Comment{
		{AuthorID: user.ID, AuthorName: user.Name, RecipeID: recipes[0].ID, Content: "Perfect on Sunday mornings.", DateAdded: now},
		{AuthorID: user.ID, AuthorName: user.Name, RecipeID: recipes[2].ID, Content: "Add a pinch of salt.", DateAdded: now},
	}
	if err := tx.Create(&comments).Error; err != nil {
		return err
	}

	applog.Debug(ctx, "mock database seeded", "recipes", len(recipes), "products", len(products))
	return nil
}

func entries(categories ...string) []models.IngredientEntry {
	out := make([]models.IngredientEntry, 0, len(categories))
	for _, category := range categories {
		out = append(out, models.IngredientEntry{Category: category})
	}
	return out
}
