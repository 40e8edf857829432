package recommend

import "strings"

// coveragePercent is the share of a recipe's ingredient entries that must be
// available for the recipe to count as makeable.
const coveragePercent = 70

// RequiredCoverage returns round-half-up(0.7 * n) computed in integer arithmetic.
func RequiredCoverage(n int) int {
	if n <= 0 {
		return 0
	}
	return (coveragePercent*n + 50) / 100
}

// Matches reports whether a recipe with the given ingredient categories can be
// cooked from the available categories.
//
// The recipe list keeps its duplicates when sizing the requirement, while the
// count of present ingredients walks the available set, so a category counts
// at most once however many times the recipe lists it. A recipe with no
// ingredients always matches.
func Matches(recipeCategories []string, available CategorySet) bool {
	required := RequiredCoverage(len(recipeCategories))
	if required == 0 {
		return true
	}

	listed := make(map[string]struct{}, len(recipeCategories))
	for _, category := range recipeCategories {
		listed[normalizeCategory(category)] = struct{}{}
	}

	present := 0
	for category := range available {
		if _, ok := listed[category]; ok {
			present++
			if present >= required {
				return true
			}
		}
	}
	return false
}

// CategorySet is a set of ingredient category labels. Labels are compared
// case-insensitively and without surrounding whitespace.
type CategorySet map[string]struct{}

// NewCategorySet builds a set from the given labels, skipping blanks.
func NewCategorySet(categories ...string) CategorySet {
	set := make(CategorySet, len(categories))
	for _, category := range categories {
		set.Add(category)
	}
	return set
}

// Add inserts a category label.
func (s CategorySet) Add(category string) {
	category = normalizeCategory(category)
	if category == "" {
		return
	}
	s[category] = struct{}{}
}

// Has reports membership.
func (s CategorySet) Has(category string) bool {
	_, ok := s[normalizeCategory(category)]
	return ok
}

// Len returns the number of distinct categories.
func (s CategorySet) Len() int {
	return len(s)
}

func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
