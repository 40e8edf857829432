package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	applog "wasteless/internal/log"
	"wasteless/internal/recommend"
	"wasteless/models"
)

type recipeResponse struct {
	ID           uint                     `json:"id"`
	UserID       *uint                    `json:"user_id"`
	Name         string                   `json:"recipe_name"`
	Difficulty   string                   `json:"difficulty"`
	Tags         []string                 `json:"tags"`
	Ingredients  []models.IngredientEntry `json:"ingredients"`
	Description  string                   `json:"description"`
	Instructions string                   `json:"instructions"`
	ImageURL     string                   `json:"image_url"`
	Meal         string                   `json:"meal"`
	PrepTime     string                   `json:"prep_time"`
	Rating       float64                  `json:"rating"`
	RatingsNum   int                      `json:"ratings_num"`
	CommentsNum  int                      `json:"comments_num"`
	Popularity   float64                  `json:"popularity"`
}

type pageResponse struct {
	Count    int              `json:"count"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Next     bool             `json:"next"`
	Previous bool             `json:"previous"`
	Results  []recipeResponse `json:"results"`
}

type pageQuery func(ctx context.Context, opts recommend.Options) (recommend.Page, error)

// RecipeSearch lists the catalog with the shared filters, by name by default.
func RecipeSearch(w http.ResponseWriter, r *http.Request) {
	if engine == nil {
		applog.Debug(r.Context(), "recipe search without engine")
		writeJSONError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}
	servePage(w, r, "search", engine.Search)
}

// FridgeRecommendations lists recipes that can be cooked from a fridge.
func FridgeRecommendations(w http.ResponseWriter, r *http.Request) {
	fridgeRecommendations(w, r, "general", func(e *recommend.Engine, fridgeID uint) pageQuery {
		return func(ctx context.Context, opts recommend.Options) (recommend.Page, error) {
			return e.General(ctx, fridgeID, opts)
		}
	})
}

// UrgentRecommendations lists recipes that use up a fridge's expiring products.
func UrgentRecommendations(w http.ResponseWriter, r *http.Request) {
	fridgeRecommendations(w, r, "urgent", func(e *recommend.Engine, fridgeID uint) pageQuery {
		return func(ctx context.Context, opts recommend.Options) (recommend.Page, error) {
			return e.Urgent(ctx, fridgeID, opts)
		}
	})
}

func fridgeRecommendations(w http.ResponseWriter, r *http.Request, kind string, bind func(*recommend.Engine, uint) pageQuery) {
	if engine == nil {
		applog.Debug(r.Context(), "recommendation request without engine", "kind", kind)
		writeJSONError(w, http.StatusServiceUnavailable, "service unavailable")
		return
	}

	fridgeID, ok := fridgeIDParam(r)
	if !ok {
		applog.Debug(r.Context(), "invalid fridge identifier", "value", chi.URLParam(r, "fridgeID"))
		writeJSONError(w, http.StatusNotFound, "fridge not found")
		return
	}

	servePage(w, r, kind, bind(engine, fridgeID))
}

func servePage(w http.ResponseWriter, r *http.Request, kind string, query pageQuery) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	opts, err := recommend.OptionsFromQuery(r.URL.Query(), pageBounds)
	if err != nil {
		applog.Debug(r.Context(), "rejected query options", "kind", kind, "error", err)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := query(r.Context(), opts)
	switch {
	case errors.Is(err, recommend.ErrPageOutOfRange):
		writeJSONError(w, http.StatusNotFound, "invalid page")
		return
	case err != nil:
		applog.Error(r.Context(), "failed to build result page", "kind", kind, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to load recipes")
		return
	}

	writeJSON(w, http.StatusOK, projectPage(page))
}

func fridgeIDParam(r *http.Request) (uint, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "fridgeID"))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

func projectPage(page recommend.Page) pageResponse {
	results := make([]recipeResponse, 0, len(page.Results))
	for _, rec := range page.Results {
		results = append(results, projectRecipe(rec))
	}
	return pageResponse{
		Count:    page.Count,
		Page:     page.Page,
		PageSize: page.PageSize,
		Next:     page.HasNext(),
		Previous: page.HasPrevious(),
		Results:  results,
	}
}

func projectRecipe(rec recommend.Recommendation) recipeResponse {
	recipe := rec.Recipe
	tags := recipe.Tags
	if tags == nil {
		tags = []string{}
	}
	ingredients := recipe.Ingredients
	if ingredients == nil {
		ingredients = []models.IngredientEntry{}
	}
	return recipeResponse{
		ID:           recipe.ID,
		UserID:       recipe.UserID,
		Name:         recipe.Name,
		Difficulty:   recipe.Difficulty,
		Tags:         tags,
		Ingredients:  ingredients,
		Description:  recipe.Description,
		Instructions: recipe.Instructions,
		ImageURL:     recipe.ImageURL,
		Meal:         recipe.Meal,
		PrepTime:     recipe.PrepTime,
		Rating:       rec.Rating,
		RatingsNum:   rec.RatingsNum,
		CommentsNum:  rec.CommentsNum,
		Popularity:   rec.Popularity,
	}
}
