package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"wasteless/models"
)

var cleanWhitespace = regexp.MustCompile(`\s+`)

// Catalog columns. Ingredients are written as "category:amount:note" entries
// separated by semicolons; tags are comma separated.
const (
	columnName         = "name"
	columnIngredients  = "ingredients"
	columnTags         = "tags"
	columnDifficulty   = "difficulty"
	columnMeal         = "meal"
	columnPrepTime     = "prep_time"
	columnDescription  = "description"
	columnInstructions = "instructions"
	columnImageURL     = "image_url"
)

func readCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return recordsFromRows(rows)
}

// readPDF extracts catalog rows from a PDF whose text lines hold
// pipe-separated cells, the first line being the header.
func readPDF(path string) ([]map[string]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		lines = append(lines, textLines(p.Content().Text)...)
	}

	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if !strings.Contains(line, "|") {
			continue
		}
		rows = append(rows, strings.Split(line, "|"))
	}
	return recordsFromRows(rows)
}

type textLine struct {
	y     float64
	texts []pdf.Text
}

// textLines groups positioned glyph runs into lines, top of the page first.
func textLines(texts []pdf.Text) []string {
	const tolerance = 2.0

	var grouped []*textLine
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		var line *textLine
		for _, candidate := range grouped {
			if math.Abs(candidate.y-t.Y) <= tolerance {
				line = candidate
				break
			}
		}
		if line == nil {
			line = &textLine{y: t.Y}
			grouped = append(grouped, line)
		}
		line.texts = append(line.texts, t)
	}

	sort.SliceStable(grouped, func(i, j int) bool { return grouped[i].y > grouped[j].y })

	lines := make([]string, 0, len(grouped))
	for _, line := range grouped {
		sort.SliceStable(line.texts, func(i, j int) bool { return line.texts[i].X < line.texts[j].X })
		var b strings.Builder
		for _, t := range line.texts {
			b.WriteString(t.S)
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			lines = append(lines, text)
		}
	}
	return lines
}

func recordsFromRows(rows [][]string) ([]map[string]string, error) {
	if len(rows) == 0 {
		return nil, errors.New("catalog is empty")
	}

	header := make([]string, len(rows[0]))
	for idx, key := range rows[0] {
		header[idx] = normalizeHeader(key)
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		record := make(map[string]string, len(header))
		for idx, key := range header {
			if idx >= len(row) {
				continue
			}
			record[key] = strings.TrimSpace(row[idx])
		}
		records = append(records, record)
	}
	return records, nil
}

func normalizeHeader(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.TrimPrefix(value, "\ufeff")
	value = cleanWhitespace.ReplaceAllString(value, "_")
	switch value {
	case "recipe_name", "recipe":
		return columnName
	case "prep", "preparation_time":
		return columnPrepTime
	case "image":
		return columnImageURL
	}
	return value
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func buildRecipe(row map[string]string) (models.Recipe, error) {
	name := normalizeText(row[columnName])
	if name == "" {
		return models.Recipe{}, errors.New("recipe name is required")
	}

	recipe := models.Recipe{
		Name:         name,
		Ingredients:  parseIngredients(row[columnIngredients]),
		Tags:         parseTags(row[columnTags]),
		Difficulty:   models.DifficultyBeginner,
		Meal:         models.MealBreakfast,
		Description:  normalizeText(row[columnDescription]),
		Instructions: strings.TrimSpace(row[columnInstructions]),
		ImageURL:     normalizeValue(row[columnImageURL]),
		PrepTime:     normalizeValue(row[columnPrepTime]),
	}

	if raw := normalizeValue(row[columnDifficulty]); raw != "" {
		code, ok := models.ParseDifficulty(raw)
		if !ok {
			return models.Recipe{}, fmt.Errorf("recipe %q: unknown difficulty %q", name, raw)
		}
		recipe.Difficulty = code
	}
	if raw := normalizeValue(row[columnMeal]); raw != "" {
		code, ok := models.ParseMeal(raw)
		if !ok {
			return models.Recipe{}, fmt.Errorf("recipe %q: unknown meal %q", name, raw)
		}
		recipe.Meal = code
	}

	return recipe, nil
}

func parseIngredients(value string) []models.IngredientEntry {
	value = normalizeValue(value)
	if value == "" {
		return []models.IngredientEntry{}
	}

	entries := make([]models.IngredientEntry, 0)
	for _, part := range strings.Split(value, ";") {
		fields := strings.SplitN(part, ":", 3)
		category := strings.ToLower(normalizeText(fields[0]))
		if category == "" {
			continue
		}
		entry := models.IngredientEntry{Category: category}
		if len(fields) > 1 {
			entry.Amount = normalizeText(fields[1])
		}
		if len(fields) > 2 {
			entry.Note = normalizeText(fields[2])
		}
		entries = append(entries, entry)
	}
	return entries
}

func parseTags(value string) []string {
	tags := []string{}
	seen := map[string]struct{}{}
	for _, part := range strings.Split(value, ",") {
		tag := strings.ToLower(normalizeText(part))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func normalizeValue(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "N/A") {
		return ""
	}
	return value
}

func normalizeText(value string) string {
	value = normalizeValue(value)
	if value == "" {
		return value
	}
	return strings.TrimSpace(cleanWhitespace.ReplaceAllString(value, " "))
}
