package search

import (
	"math"
	"strings"

	"github.com/vicholitvak/moai-search/internal/models"
)

// Match reason labels shown in the UI, in the order the signals fire.
const (
	ReasonNameMatch        = "Nombre del plato"
	ReasonDescriptionMatch = "Descripción del plato"
	ReasonTagMatch         = "Etiquetas del plato"
	ReasonCategoryMatch    = "Categoría exacta"
	ReasonHighRating       = "Altamente calificado"
	ReasonManyReviews      = "Popular entre los clientes"
)

// ScoreDishes computes the ephemeral relevance score and its match reasons
// for every filtered dish. The base combines rating with a capped review
// signal; query and category matches add fixed bonuses. Ties preserve
// catalog iteration order.
func ScoreDishes(dishes []models.ScoredDish, f models.SearchFilters) {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	for i := range dishes {
		scoreDish(&dishes[i], query, f.Category)
	}
}

func scoreDish(d *models.ScoredDish, query, category string) {
	score := d.Rating*10 + math.Min(float64(d.ReviewCount)*0.5, 20)

	if query != "" {
		if strings.Contains(strings.ToLower(d.Name), query) {
			score += 50
			d.MatchReasons = append(d.MatchReasons, ReasonNameMatch)
		}
		if strings.Contains(strings.ToLower(d.Description), query) {
			score += 30
			d.MatchReasons = append(d.MatchReasons, ReasonDescriptionMatch)
		}
		if tagContains(d.Tags, query) {
			score += 20
			d.MatchReasons = append(d.MatchReasons, ReasonTagMatch)
		}
	}

	if category != "" && strings.EqualFold(d.Category, category) {
		score += 25
		d.MatchReasons = append(d.MatchReasons, ReasonCategoryMatch)
	}

	if d.Rating >= 4.5 {
		score += 15
		d.MatchReasons = append(d.MatchReasons, ReasonHighRating)
	}
	if d.ReviewCount >= 20 {
		score += 10
		d.MatchReasons = append(d.MatchReasons, ReasonManyReviews)
	}

	d.Score = score
}

func tagContains(tags []string, query string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
