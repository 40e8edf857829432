package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredCoverageRoundsHalfUp(t *testing.T) {
	t.Parallel()

	cases := map[int]int{
		0:  0,
		1:  1, // 0.7
		2:  1, // 1.4
		3:  2, // 2.1
		4:  3, // 2.8
		5:  4, // 3.5
		10: 7,
		15: 11, // 10.5
	}
	for n, want := range cases {
		assert.Equal(t, want, RequiredCoverage(n), "n=%d", n)
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		recipe    []string
		available CategorySet
		want      bool
	}{
		{"fully contained", []string{"egg", "milk"}, NewCategorySet("egg", "milk"), true},
		{"contained in larger fridge", []string{"egg"}, NewCategorySet("egg", "milk", "flour", "beef", "rice"), true},
		{"meets threshold", []string{"egg", "milk", "flour", "sugar"}, NewCategorySet("egg", "milk", "flour"), true},
		{"below threshold", []string{"egg", "milk", "flour", "sugar"}, NewCategorySet("egg", "milk"), false},
		{"nothing available", []string{"beef", "rice"}, NewCategorySet(), false},
		{"unrelated fridge", []string{"beef", "rice"}, NewCategorySet("egg", "milk", "flour"), false},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Matches(tt.recipe, tt.available))
		})
	}
}

func TestMatchesAlwaysAcceptsFullyContainedRecipes(t *testing.T) {
	t.Parallel()

	recipe := []string{"egg", "milk", "flour", "sugar", "butter"}
	available := NewCategorySet(recipe...)
	for _, extra := range []string{"salt", "rice", "beef", "kale", "tofu"} {
		available.Add(extra)
		assert.True(t, Matches(recipe, available), "available=%d", available.Len())
	}
}

// Documented heuristic behaviour, kept as-is: a recipe without ingredients
// needs zero of them and therefore matches any fridge, even an empty one.
func TestMatchesZeroIngredientRecipe(t *testing.T) {
	t.Parallel()

	assert.True(t, Matches(nil, NewCategorySet()))
	assert.True(t, Matches([]string{}, NewCategorySet("egg")))
}

// Documented heuristic behaviour, kept as-is: duplicates on the recipe raise
// the requirement, but an available category is only counted once.
func TestMatchesCountsAvailableCategoriesOnce(t *testing.T) {
	t.Parallel()

	// n=3 -> required 2, but "egg" can only contribute one.
	assert.False(t, Matches([]string{"egg", "egg", "egg"}, NewCategorySet("egg")))
	// n=2 -> required 1.
	assert.True(t, Matches([]string{"egg", "egg"}, NewCategorySet("egg")))
}

func TestCategorySetSkipsBlanks(t *testing.T) {
	t.Parallel()

	set := NewCategorySet("egg", "", "egg", "milk")
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has("milk"))
	assert.False(t, set.Has(""))
}

func TestCategoryLabelsCompareCaseInsensitively(t *testing.T) {
	t.Parallel()

	set := NewCategorySet("Milk", "  EGG ", " ")
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has("milk"))
	assert.True(t, set.Has("Egg"))
	assert.True(t, Matches([]string{"MILK", "egg", "Flour"}, set))
	assert.False(t, Matches([]string{"milk", "flour", "sugar"}, NewCategorySet("Milk")))
}
