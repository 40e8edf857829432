package recommend

import (
	"context"
	"fmt"
	"time"

	applog "wasteless/internal/log"
	"wasteless/models"
)

// CatalogEntry is a recipe together with its live rating and comment aggregates.
// Rating is the mean score, 0 when RatingsNum is 0.
type CatalogEntry struct {
	Recipe      models.Recipe
	RatingsNum  int
	Rating      float64
	CommentsNum int
}

// CatalogRepository exposes the recipe catalog.
type CatalogRepository interface {
	ListRecipes(ctx context.Context) ([]CatalogEntry, error)
}

// InventoryRepository exposes the products held in a fridge. Unknown fridges
// yield an empty slice.
type InventoryRepository interface {
	ListProducts(ctx context.Context, fridgeID uint) ([]models.Product, error)
}

// Recommendation is a catalog entry enriched with its popularity score.
type Recommendation struct {
	CatalogEntry
	Popularity float64
}

// Page is one page of sorted results.
type Page struct {
	Count    int
	Page     int
	PageSize int
	Results  []Recommendation
}

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool {
	return p.Page < pageCount(p.Count, p.PageSize)
}

// HasPrevious reports whether an earlier page exists.
func (p Page) HasPrevious() bool {
	return p.Page > 1
}

// Engine runs recipe search and both recommendation pipelines. It holds no
// state between calls, so a single Engine is safe for concurrent use.
type Engine struct {
	catalog   CatalogRepository
	inventory InventoryRepository
	now       func() time.Time
}

// NewEngine wires an Engine to its repositories.
func NewEngine(catalog CatalogRepository, inventory InventoryRepository) *Engine {
	return &Engine{
		catalog:   catalog,
		inventory: inventory,
		now:       time.Now,
	}
}

// WithClock returns a copy of the engine that reads "today" from now.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	clone := *e
	clone.now = now
	return &clone
}

// Search filters, sorts and paginates the whole catalog.
func (e *Engine) Search(ctx context.Context, opts Options) (Page, error) {
	defer observeDuration(kindSearch, time.Now())

	entries, err := e.catalog.ListRecipes(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list recipes: %w", err)
	}
	return finish(ctx, kindSearch, entries, opts, DefaultSearchOrder)
}

// General recommends recipes that can be cooked from everything in the fridge.
func (e *Engine) General(ctx context.Context, fridgeID uint, opts Options) (Page, error) {
	defer observeDuration(kindGeneral, time.Now())

	products, err := e.inventory.ListProducts(ctx, fridgeID)
	if err != nil {
		return Page{}, fmt.Errorf("list products for fridge %d: %w", fridgeID, err)
	}

	available := AvailableCategories(products)
	applog.Debug(ctx, "general recommendations", "fridge", fridgeID, "products", len(products), "categories", available.Len())

	return e.matchAndFinish(ctx, kindGeneral, available, opts)
}

// Urgent recommends recipes that use up products about to expire. When
// nothing in the fridge expires soon it returns an empty page straight away.
func (e *Engine) Urgent(ctx context.Context, fridgeID uint, opts Options) (Page, error) {
	defer observeDuration(kindUrgent, time.Now())

	products, err := e.inventory.ListProducts(ctx, fridgeID)
	if err != nil {
		return Page{}, fmt.Errorf("list products for fridge %d: %w", fridgeID, err)
	}

	expiring := ExpiringCategories(products, e.now())
	if expiring.Len() == 0 {
		applog.Debug(ctx, "no expiring products, skipping match", "fridge", fridgeID, "products", len(products))
		urgentShortCircuits.Inc()
		opts = opts.withPagingDefaults()
		page, err := paginate(nil, opts.Page, opts.PageSize)
		if err != nil {
			return Page{}, err
		}
		resultsReturned.WithLabelValues(string(kindUrgent)).Observe(0)
		return page, nil
	}

	applog.Debug(ctx, "urgent recommendations", "fridge", fridgeID, "products", len(products), "expiring", expiring.Len())
	return e.matchAndFinish(ctx, kindUrgent, expiring, opts)
}

func (e *Engine) matchAndFinish(ctx context.Context, kind requestKind, available CategorySet, opts Options) (Page, error) {
	entries, err := e.catalog.ListRecipes(ctx)
	if err != nil {
		return Page{}, fmt.Errorf("list recipes: %w", err)
	}

	matched := make([]CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		if Matches(entry.Recipe.Categories(), available) {
			matched = append(matched, entry)
		}
	}
	applog.Debug(ctx, "recipes matched", "kind", kind, "catalog", len(entries), "matched", len(matched))

	return finish(ctx, kind, matched, opts, DefaultRecommendationOrder)
}

func finish(ctx context.Context, kind requestKind, entries []CatalogEntry, opts Options, fallback Order) (Page, error) {
	opts = opts.withPagingDefaults()

	filtered := Filter(entries, opts)
	scored := make([]Recommendation, 0, len(filtered))
	for _, entry := range filtered {
		scored = append(scored, Score(entry))
	}

	if opts.Order != "" && !opts.Order.Known() {
		applog.Warn(ctx, "unknown sort order, using default", "kind", kind, "order", string(opts.Order), "default", string(fallback))
	}
	Sort(scored, opts.Order.Or(fallback))

	page, err := paginate(scored, opts.Page, opts.PageSize)
	if err != nil {
		applog.Debug(ctx, "requested page out of range", "kind", kind, "page", opts.Page, "count", len(scored))
		return Page{}, err
	}
	resultsReturned.WithLabelValues(string(kind)).Observe(float64(page.Count))
	return page, nil
}

// Score derives the popularity of a catalog entry.
func Score(entry CatalogEntry) Recommendation {
	if entry.RatingsNum == 0 {
		entry.Rating = 0
	}
	return Recommendation{
		CatalogEntry: entry,
		Popularity:   Popularity(entry.RatingsNum, entry.Rating, entry.CommentsNum),
	}
}

func paginate(all []Recommendation, page, size int) (Page, error) {
	if page > 1 && page-1 >= pageCount(len(all), size) {
		return Page{}, fmt.Errorf("%w: page %d of %d results", ErrPageOutOfRange, page, len(all))
	}
	// page-1 < pageCount, so start cannot overflow.
	start := (page - 1) * size
	end := len(all)
	if size < end-start {
		end = start + size
	}
	results := []Recommendation{}
	if start < len(all) {
		results = all[start:end]
	}
	return Page{Count: len(all), Page: page, PageSize: size, Results: results}, nil
}

// pageCount returns how many pages of size hold n results.
func pageCount(n, size int) int {
	if size <= 0 || n <= 0 {
		return 0
	}
	count := n / size
	if n%size != 0 {
		count++
	}
	return count
}
