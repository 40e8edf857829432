package recommend

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasteless/models"
)

func TestOptionsFromQuery(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set("name", "  soup ")
	values.Set("ingredients", "egg, milk,,")
	values.Set("tags", "vegan")
	values.Set("difficulty", "Intermediate")
	values.Set("meal", "dn")
	values.Set("order", "RD")
	values.Set("page", "2")
	values.Set("page_size", "25")

	opts, err := OptionsFromQuery(values, DefaultBounds)
	require.NoError(t, err)
	assert.Equal(t, Options{
		Name:        "soup",
		Ingredients: []string{"egg", "milk"},
		Tags:        []string{"vegan"},
		Difficulty:  models.DifficultyIntermediate,
		Meal:        models.MealDinner,
		Order:       OrderRatingDesc,
		Page:        2,
		PageSize:    25,
	}, opts)
}

func TestOptionsFromQueryDefaults(t *testing.T) {
	t.Parallel()

	opts, err := OptionsFromQuery(url.Values{}, Bounds{DefaultPageSize: 15, MaxPageSize: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, opts.Page)
	assert.Equal(t, 15, opts.PageSize)
	assert.Equal(t, DefaultRecommendationOrder, opts.Order.Or(DefaultRecommendationOrder))
}

func TestOptionsFromQueryClampsPageSize(t *testing.T) {
	t.Parallel()

	values := url.Values{"page_size": {"5000"}}
	opts, err := OptionsFromQuery(values, DefaultBounds)
	require.NoError(t, err)
	assert.Equal(t, DefaultBounds.MaxPageSize, opts.PageSize)
}

func TestOptionsFromQueryRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	cases := map[string]url.Values{
		"unknown difficulty": {"difficulty": {"Expert"}},
		"unknown meal":       {"meal": {"Brunch"}},
		"page not a number":  {"page": {"two"}},
		"page zero":          {"page": {"0"}},
		"negative page size": {"page_size": {"-1"}},
	}

	for name, values := range cases {
		values := values
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := OptionsFromQuery(values, DefaultBounds)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestUnknownOrderIsNotAnError(t *testing.T) {
	t.Parallel()

	opts, err := OptionsFromQuery(url.Values{"order": {"zz"}}, DefaultBounds)
	require.NoError(t, err)
	assert.False(t, opts.Order.Known())
	assert.Equal(t, OrderPopularityDesc, opts.Order.Or(DefaultRecommendationOrder))
	assert.Equal(t, OrderRatingDesc, Order("rd").Or(DefaultRecommendationOrder))
}
