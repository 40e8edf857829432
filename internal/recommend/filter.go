package recommend

import (
	"strings"
)

// Filter keeps entries satisfying every set filter in opts: case-insensitive
// name substring, then ingredient, tag, difficulty and meal containment.
func Filter(entries []CatalogEntry, opts Options) []CatalogEntry {
	name := strings.ToLower(strings.TrimSpace(opts.Name))
	out := make([]CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		recipe := entry.Recipe
		if name != "" && !strings.Contains(strings.ToLower(recipe.Name), name) {
			continue
		}
		if !containsAll(recipe.Categories(), opts.Ingredients) {
			continue
		}
		if !containsAll(recipe.Tags, opts.Tags) {
			continue
		}
		if opts.Difficulty != "" && recipe.Difficulty != opts.Difficulty {
			continue
		}
		if opts.Meal != "" && recipe.Meal != opts.Meal {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func containsAll(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	set := NewCategorySet(have...)
	for _, w := range want {
		if !set.Has(w) {
			return false
		}
	}
	return true
}
