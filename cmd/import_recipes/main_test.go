package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasteless/internal/db/mock"
	"wasteless/models"
)

const sampleCSV = `Recipe Name,Ingredients,Tags,Difficulty,Meal,Prep Time,Description
Pancakes,"egg:2;milk:300 ml;flour:200 g:sifted",sweet,Beginner,BF,20 min,Fluffy stack
Crepes,"egg;milk;flour;sugar","French, sweet, french",IT,Lunch,30 min,Thin and buttery
,,,,,,
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadCSVBuildsRecords(t *testing.T) {
	t.Parallel()

	records, err := readRecords(writeTemp(t, "catalog.csv", sampleCSV))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Pancakes", records[0][columnName])
	assert.Equal(t, "20 min", records[0][columnPrepTime])
}

func TestReadRecordsRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := readRecords(writeTemp(t, "catalog.txt", sampleCSV))
	require.Error(t, err)
}

func TestBuildRecipe(t *testing.T) {
	t.Parallel()

	recipe, err := buildRecipe(map[string]string{
		columnName:        "  Crepes ",
		columnIngredients: "Egg; milk : 300 ml ;flour:200 g:sifted;;",
		columnTags:        "French, sweet, french",
		columnDifficulty:  "Intermediate",
		columnMeal:        "LU",
		columnImageURL:    "N/A",
	})
	require.NoError(t, err)

	assert.Equal(t, "Crepes", recipe.Name)
	assert.Equal(t, models.DifficultyIntermediate, recipe.Difficulty)
	assert.Equal(t, models.MealLunch, recipe.Meal)
	assert.Equal(t, []string{"french", "sweet"}, recipe.Tags)
	assert.Empty(t, recipe.ImageURL)
	assert.Equal(t, []models.IngredientEntry{
		{Category: "egg"},
		{Category: "milk", Amount: "300 ml"},
		{Category: "flour", Amount: "200 g", Note: "sifted"},
	}, recipe.Ingredients)
}

func TestBuildRecipeDefaultsAndErrors(t *testing.T) {
	t.Parallel()

	recipe, err := buildRecipe(map[string]string{columnName: "Toast"})
	require.NoError(t, err)
	assert.Equal(t, models.DifficultyBeginner, recipe.Difficulty)
	assert.Equal(t, models.MealBreakfast, recipe.Meal)
	assert.Empty(t, recipe.Ingredients)

	_, err = buildRecipe(map[string]string{columnName: ""})
	require.Error(t, err)

	_, err = buildRecipe(map[string]string{columnName: "Toast", columnDifficulty: "Expert"})
	require.Error(t, err)

	_, err = buildRecipe(map[string]string{columnName: "Toast", columnMeal: "Brunch"})
	require.Error(t, err)
}

func TestTextLinesGroupsByBaseline(t *testing.T) {
	t.Parallel()

	lines := textLines([]pdf.Text{
		{X: 60, Y: 700, S: "|egg"},
		{X: 10, Y: 700.5, S: "name"},
		{X: 10, Y: 680, S: "Omelette|egg;cheese"},
		{X: 10, Y: 690, S: " "},
		{X: 10, Y: 650, S: ""},
	})
	assert.Equal(t, []string{"name|egg", "Omelette|egg;cheese"}, lines)
}

func TestImportRecipesUpsertsByName(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := mock.New(ctx)
	require.NoError(t, err)

	var before int64
	require.NoError(t, database.Model(&models.Recipe{}).Count(&before).Error)

	owner, err := resolveImportOwner(ctx, database, mock.DemoEmail)
	require.NoError(t, err)
	require.NotNil(t, owner)

	created, updated, err := importRecipes(ctx, database, []models.Recipe{
		{Name: "Crepes", Ingredients: []models.IngredientEntry{{Category: "egg"}}, Difficulty: models.DifficultyAdvanced, Meal: models.MealDinner},
		{Name: "Shakshuka", Ingredients: []models.IngredientEntry{{Category: "egg"}, {Category: "tomato"}}, Difficulty: models.DifficultyBeginner, Meal: models.MealBreakfast},
	}, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, updated)

	var after int64
	require.NoError(t, database.Model(&models.Recipe{}).Count(&after).Error)
	assert.Equal(t, before+1, after)

	var crepes models.Recipe
	require.NoError(t, database.Where("name = ?", "Crepes").First(&crepes).Error)
	assert.Equal(t, models.DifficultyAdvanced, crepes.Difficulty)
	assert.Equal(t, []string{"egg"}, crepes.Categories())

	var shakshuka models.Recipe
	require.NoError(t, database.Where("name = ?", "Shakshuka").First(&shakshuka).Error)
	require.NotNil(t, shakshuka.UserID)
	assert.Equal(t, *owner, *shakshuka.UserID)
}

func TestResolveImportOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	database, err := mock.New(ctx)
	require.NoError(t, err)

	owner, err := resolveImportOwner(ctx, database, "")
	require.NoError(t, err)
	assert.Nil(t, owner)

	_, err = resolveImportOwner(ctx, database, "nobody@example.com")
	require.Error(t, err)
}

func TestRunRejectsMissingFile(t *testing.T) {
	t.Parallel()

	require.Error(t, run(context.Background(), ""))
	require.Error(t, run(context.Background(), filepath.Join(t.TempDir(), "missing.csv")))
}
