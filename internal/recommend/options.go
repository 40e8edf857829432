package recommend

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"wasteless/models"
)

// Order selects how result pages are sorted.
type Order string

const (
	OrderNameAsc        Order = "na"
	OrderNameDesc       Order = "nd"
	OrderRatingAsc      Order = "ra"
	OrderRatingDesc     Order = "rd"
	OrderCountAsc       Order = "ca"
	OrderCountDesc      Order = "cd"
	OrderPrepTimeAsc    Order = "ta"
	OrderPrepTimeDesc   Order = "td"
	OrderPopularityDesc Order = "pd"
)

// DefaultRecommendationOrder applies to both recommendation entry points.
const DefaultRecommendationOrder = OrderPopularityDesc

// DefaultSearchOrder applies to plain catalog search.
const DefaultSearchOrder = OrderNameAsc

var knownOrders = map[Order]struct{}{
	OrderNameAsc: {}, OrderNameDesc: {},
	OrderRatingAsc: {}, OrderRatingDesc: {},
	OrderCountAsc: {}, OrderCountDesc: {},
	OrderPrepTimeAsc: {}, OrderPrepTimeDesc: {},
	OrderPopularityDesc: {},
}

// Known reports whether o is one of the recognised sort codes.
func (o Order) Known() bool {
	_, ok := knownOrders[o]
	return ok
}

// Or returns o when it is recognised and fallback otherwise.
func (o Order) Or(fallback Order) Order {
	if o.Known() {
		return o
	}
	return fallback
}

var (
	// ErrInvalidOptions wraps every filter or paging validation failure.
	ErrInvalidOptions = errors.New("invalid query options")
	// ErrPageOutOfRange is returned when a page past the last one is requested.
	ErrPageOutOfRange = errors.New("page out of range")
)

// Options are the filter, sort and paging inputs shared by search and both
// recommendation entry points. Empty fields disable the matching filter.
type Options struct {
	Name        string   `validate:"max=200"`
	Ingredients []string `validate:"dive,required,max=50"`
	Tags        []string `validate:"dive,required,max=50"`
	Difficulty  string   `validate:"omitempty,oneof=BG IT AD"`
	Meal        string   `validate:"omitempty,oneof=BF LU DN SU"`
	Order       Order
	Page        int `validate:"min=1"`
	PageSize    int `validate:"min=1"`
}

// Bounds limit page sizes requested by clients.
type Bounds struct {
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultBounds mirrors the catalog listing defaults.
var DefaultBounds = Bounds{DefaultPageSize: 10, MaxPageSize: 1000}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the options once at the boundary.
func (o Options) Validate() error {
	if err := structValidator().Struct(o); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalidOptions, strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// OptionsFromQuery reads the recognised query parameters, normalises
// difficulty and meal labels to their codes and validates the result.
// Page sizes above the maximum are clamped rather than rejected.
func OptionsFromQuery(values url.Values, bounds Bounds) (Options, error) {
	if bounds.DefaultPageSize <= 0 {
		bounds = DefaultBounds
	}

	opts := Options{
		Name:        strings.TrimSpace(values.Get("name")),
		Ingredients: splitCSV(values.Get("ingredients")),
		Tags:        splitCSV(values.Get("tags")),
		Difficulty:  strings.TrimSpace(values.Get("difficulty")),
		Meal:        strings.TrimSpace(values.Get("meal")),
		Order:       Order(strings.ToLower(strings.TrimSpace(values.Get("order")))),
		Page:        1,
		PageSize:    bounds.DefaultPageSize,
	}

	if code, ok := models.ParseDifficulty(opts.Difficulty); ok {
		opts.Difficulty = code
	}
	if code, ok := models.ParseMeal(opts.Meal); ok {
		opts.Meal = code
	}

	if raw := strings.TrimSpace(values.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return Options{}, fmt.Errorf("%w: page %q is not a number", ErrInvalidOptions, raw)
		}
		opts.Page = page
	}
	if raw := strings.TrimSpace(values.Get("page_size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return Options{}, fmt.Errorf("%w: page_size %q is not a number", ErrInvalidOptions, raw)
		}
		opts.PageSize = size
	}
	if bounds.MaxPageSize > 0 && opts.PageSize > bounds.MaxPageSize {
		opts.PageSize = bounds.MaxPageSize
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) withPagingDefaults() Options {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.PageSize < 1 {
		o.PageSize = DefaultBounds.DefaultPageSize
	}
	return o
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
