package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"wasteless/internal/config"
	"wasteless/internal/db"
	applog "wasteless/internal/log"
	"wasteless/models"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: import_recipes <catalog.csv|catalog.pdf>")
		os.Exit(2)
	}

	if err := run(context.Background(), os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("catalog path must not be empty")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("locate catalog: %w", err)
	}

	logger := applog.With("file", filepath.Base(path))

	records, err := readRecords(path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	logger.DebugContext(ctx, "catalog rows read", "rows", len(records))

	recipes := make([]models.Recipe, 0, len(records))
	for idx, record := range records {
		recipe, err := buildRecipe(record)
		if err != nil {
			return fmt.Errorf("record %d: %w", idx+1, err)
		}
		recipes = append(recipes, recipe)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	database, err := db.Configure(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	ownerID, err := resolveImportOwner(ctx, database, os.Getenv("WASTELESS_RECIPE_OWNER_EMAIL"))
	if err != nil {
		return fmt.Errorf("resolve owner: %w", err)
	}

	created, updated, err := importRecipes(ctx, database, recipes, ownerID)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "recipe catalog imported", "created", created, "updated", updated)
	return nil
}

// readRecords dispatches on the file extension.
func readRecords(path string) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".pdf":
		return readPDF(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
}

// resolveImportOwner returns the user the imported recipes are attributed to.
// Without an explicit email the catalog is imported without an owner.
func resolveImportOwner(ctx context.Context, database *gorm.DB, email string) (*uint, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	var user models.User
	if err := database.WithContext(ctx).Where("lower(email) = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		return nil, fmt.Errorf("find owner by email %q: %w", strings.ToLower(email), err)
	}
	return &user.ID, nil
}

// importRecipes upserts every recipe by name inside a single transaction so a
// bad row leaves the catalog untouched.
func importRecipes(ctx context.Context, database *gorm.DB, recipes []models.Recipe, ownerID *uint) (created, updated int, err error) {
	if database == nil {
		return 0, 0, errors.New("database handle is nil")
	}

	err = database.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, recipe := range recipes {
			var existing models.Recipe
			err := tx.Where("name = ?", recipe.Name).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				recipe.UserID = ownerID
				if err := tx.Create(&recipe).Error; err != nil {
					return fmt.Errorf("create recipe %q: %w", recipe.Name, err)
				}
				created++
			case err != nil:
				return fmt.Errorf("find recipe %q: %w", recipe.Name, err)
			default:
				existing.Ingredients = recipe.Ingredients
				existing.Tags = recipe.Tags
				existing.Difficulty = recipe.Difficulty
				existing.Meal = recipe.Meal
				existing.Description = recipe.Description
				existing.Instructions = recipe.Instructions
				existing.ImageURL = recipe.ImageURL
				existing.PrepTime = recipe.PrepTime
				if ownerID != nil {
					existing.UserID = ownerID
				}
				if err := tx.Save(&existing).Error; err != nil {
					return fmt.Errorf("update recipe %q: %w", recipe.Name, err)
				}
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, updated, nil
}
