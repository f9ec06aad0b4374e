package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/mudcraft/internal/domain"
	"github.com/osse101/mudcraft/internal/logger"
)

// RecipeSource hands out detached copies of the registered recipes
type RecipeSource interface {
	Snapshot() []*domain.Recipe
	SnapshotOf(vnum domain.VNUM) (*domain.Recipe, bool)
	Len() int
}

// IngredientView is one resolved ingredient line
type IngredientView struct {
	VNUM     domain.VNUM `json:"vnum"`
	Name     string      `json:"name"`
	Quantity int         `json:"quantity"`
}

// RecipeView is the public shape of a recipe
type RecipeView struct {
	VNUM            domain.VNUM      `json:"vnum"`
	Name            string           `json:"name"`
	MinLevel        int              `json:"min_level"`
	Skill           string           `json:"skill,omitempty"`
	MinSkillPct     int              `json:"min_skill_pct,omitempty"`
	Station         string           `json:"station,omitempty"`
	StationVNUM     domain.VNUM      `json:"station_vnum,omitempty"`
	Discovery       string           `json:"discovery"`
	Ingredients     []IngredientView `json:"ingredients"`
	ProductVNUM     domain.VNUM      `json:"product_vnum"`
	ProductName     string           `json:"product_name"`
	ProductQuantity int              `json:"product_quantity"`
}

// missingName labels vnums with no prototype behind them
const missingName = "(missing)"

func newRecipeView(catalog domain.Catalog, r *domain.Recipe) RecipeView {
	v := RecipeView{
		VNUM:            r.VNUM,
		Name:            r.Name,
		MinLevel:        r.MinLevel,
		Skill:           r.RequiredSkill,
		MinSkillPct:     r.MinSkillPct,
		StationVNUM:     r.StationVNUM,
		Discovery:       r.Discovery.String(),
		Ingredients:     make([]IngredientView, 0, len(r.Ingredients)),
		ProductVNUM:     r.ProductVNUM,
		ProductName:     shortDescr(catalog, r.ProductVNUM),
		ProductQuantity: r.ProductQuantity,
	}
	if r.StationType != domain.StationNone {
		v.Station = r.StationType.String()
	}
	for _, ing := range r.Ingredients {
		v.Ingredients = append(v.Ingredients, IngredientView{
			VNUM:     ing.VNUM,
			Name:     shortDescr(catalog, ing.VNUM),
			Quantity: ing.Quantity,
		})
	}
	return v
}

func shortDescr(catalog domain.Catalog, vnum domain.VNUM) string {
	if p, ok := catalog.ObjectPrototype(vnum); ok {
		return p.ShortDescr
	}
	return missingName
}

// recipeFilter narrows the listing. Zero values match everything.
type recipeFilter struct {
	name    string
	skill   string
	station domain.WorkstationType
}

func (f recipeFilter) matches(r *domain.Recipe) bool {
	if f.name != "" && !strings.Contains(strings.ToLower(r.Name), f.name) {
		return false
	}
	if f.skill != "" && r.RequiredSkill != f.skill {
		return false
	}
	if f.station != domain.StationNone && !r.StationType.Has(f.station) {
		return false
	}
	return true
}

// HandleListRecipes returns every registered recipe, optionally filtered
// by name substring, required skill or station type.
func HandleListRecipes(src RecipeSource, catalog domain.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		q := r.URL.Query()

		filter := recipeFilter{name: strings.ToLower(strings.TrimSpace(q.Get(QueryParamName)))}
		if raw := q.Get(QueryParamSkill); raw != "" {
			skill, ok := domain.LookupSkill(raw)
			if !ok {
				log.Warn("Unknown skill filter", "skill", raw)
				respondError(w, http.StatusBadRequest, ErrMsgUnknownSkill)
				return
			}
			filter.skill = skill
		}
		if raw := q.Get(QueryParamStation); raw != "" {
			station, ok := domain.ParseWorkstationType(raw)
			if !ok || station == domain.StationNone {
				log.Warn("Unknown station filter", "station", raw)
				respondError(w, http.StatusBadRequest, ErrMsgUnknownStation)
				return
			}
			filter.station = station
		}

		views := make([]RecipeView, 0)
		for _, rec := range src.Snapshot() {
			if filter.matches(rec) {
				views = append(views, newRecipeView(catalog, rec))
			}
		}

		log.Debug("Listed recipes", "count", len(views))
		respondJSON(w, http.StatusOK, DataResponse{Count: len(views), Data: views})
	}
}

// HandleGetRecipe returns a single recipe by vnum
func HandleGetRecipe(src RecipeSource, catalog domain.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, URLParamVNUM)
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidVNUM)
			return
		}

		rec, ok := src.SnapshotOf(domain.VNUM(n))
		if !ok {
			respondError(w, statusForError(domain.ErrRecipeNotRegistered), ErrMsgRecipeNotFound)
			return
		}
		respondJSON(w, http.StatusOK, newRecipeView(catalog, rec))
	}
}

// RecipesReady reports unready while no recipes are registered
func RecipesReady(src RecipeSource) HealthCheckFunc {
	return func(ctx context.Context) error {
		if src.Len() == 0 {
			return errNoRecipes
		}
		return nil
	}
}
