package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	applog "wasteless/internal/log"
	"wasteless/internal/recommend"
	"wasteless/internal/views/pages"
	"wasteless/models"
)

// recommendationsPageSize caps each list on the HTML recommendations page.
const recommendationsPageSize = 20

// Home lists the signed-in user's fridges.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	userID, _ := currentUserID(r)
	if database == nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	type fridgeRow struct {
		ID       uint
		Name     string
		Products int
	}
	var rows []fridgeRow
	err := database.WithContext(r.Context()).
		Model(&models.Fridge{}).
		Select("fridges.id, fridges.name, COUNT(products.id) AS products").
		Joins("LEFT JOIN products ON products.fridge_id = fridges.id AND products.deleted_at IS NULL").
		Where("fridges.user_id = ?", userID).
		Group("fridges.id, fridges.name").
		Order("fridges.name asc").
		Scan(&rows).Error
	if err != nil {
		applog.Error(r.Context(), "failed to list fridges", "error", err, "user", userID)
		http.Error(w, "unable to load fridges", http.StatusInternalServerError)
		return
	}

	links := make([]pages.FridgeLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, pages.FridgeLink{ID: row.ID, Name: row.Name, Products: row.Products})
	}

	name := ""
	if sessionManager != nil {
		name = sessionManager.GetString(r.Context(), sessionUserNameKey)
	}
	renderComponent(w, r, pages.Fridges(name, links))
}

// RecommendationsPage renders both recommendation lists for a fridge as HTML.
func RecommendationsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if engine == nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}
	fridgeID, ok := fridgeIDParam(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	opts := recommend.Options{Page: 1, PageSize: recommendationsPageSize}
	urgent, err := engine.Urgent(r.Context(), fridgeID, opts)
	if err != nil {
		applog.Error(r.Context(), "failed to load urgent recommendations", "error", err, "fridge", fridgeID)
		http.Error(w, "unable to load recommendations", http.StatusInternalServerError)
		return
	}
	general, err := engine.General(r.Context(), fridgeID, opts)
	if err != nil {
		applog.Error(r.Context(), "failed to load recommendations", "error", err, "fridge", fridgeID)
		http.Error(w, "unable to load recommendations", http.StatusInternalServerError)
		return
	}

	view := pages.RecommendationsView{
		FridgeID: fridgeID,
		Urgent:   recipeCards(urgent),
		General:  recipeCards(general),
	}
	if database != nil {
		var fridge models.Fridge
		if err := database.WithContext(r.Context()).Select("id", "name").First(&fridge, fridgeID).Error; err == nil {
			view.FridgeName = fridge.Name
		}
	}

	renderComponent(w, r, pages.Recommendations(view))
}

func recipeCards(page recommend.Page) []pages.RecipeCard {
	cards := make([]pages.RecipeCard, 0, len(page.Results))
	for _, rec := range page.Results {
		cards = append(cards, pages.RecipeCard{
			Name:       rec.Recipe.Name,
			Difficulty: models.DifficultyLabel(rec.Recipe.Difficulty),
			Meal:       models.MealLabel(rec.Recipe.Meal),
			PrepTime:   rec.Recipe.PrepTime,
			Tags:       rec.Recipe.Tags,
			Rating:     rec.Rating,
			RatingsNum: rec.RatingsNum,
			Popularity: rec.Popularity,
		})
	}
	return cards
}

func renderComponent(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
