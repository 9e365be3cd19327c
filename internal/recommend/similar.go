package recommend

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/vicholitvak/moai-search/internal/models"
)

// GetSimilarDishes ranks the catalog against a reference dish. Similarity is
// additive: same category 40, each shared tag 10, price within 30% 20, same
// cook 30, each shared ingredient 5. Dishes with no overlap are omitted.
func (e *Engine) GetSimilarDishes(ctx context.Context, dishID string, limit int) []models.RecommendedDish {
	if limit <= 0 {
		limit = 6
	}
	dishes, err := e.catalog.GetAllDishes(ctx)
	if err != nil {
		e.log.Error("catalog fetch failed, returning no similar dishes", zap.Error(err))
		return []models.RecommendedDish{}
	}
	var reference *models.Dish
	for i := range dishes {
		if dishes[i].ID == dishID {
			reference = &dishes[i]
			break
		}
	}
	if reference == nil {
		return []models.RecommendedDish{}
	}

	type match struct {
		dish    models.Dish
		score   float64
		reasons []string
	}
	var matches []match
	for _, d := range dishes {
		if d.ID == reference.ID || !d.IsAvailable {
			continue
		}
		score, reasons := similarity(*reference, d)
		if score <= 0 {
			continue
		}
		matches = append(matches, match{dish: d, score: score, reasons: reasons})
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if limit < len(matches) {
		matches = matches[:limit]
	}
	out := make([]models.RecommendedDish, 0, len(matches))
	for _, m := range matches {
		out = append(out, models.RecommendedDish{Dish: m.dish, Score: m.score, Reasons: m.reasons})
	}
	return out
}

func similarity(a, b models.Dish) (float64, []string) {
	var score float64
	var reasons []string

	if strings.EqualFold(a.Category, b.Category) && a.Category != "" {
		score += 40
		reasons = append(reasons, "Misma categoría")
	}
	if shared := sharedFold(a.Tags, b.Tags); shared > 0 {
		score += float64(shared) * 10
		reasons = append(reasons, "Etiquetas en común")
	}
	if a.Price > 0 && withinPercent(a.Price, b.Price, 0.30) {
		score += 20
		reasons = append(reasons, "Precio similar")
	}
	if a.CookerID != "" && a.CookerID == b.CookerID {
		score += 30
		reasons = append(reasons, "Del mismo cocinero")
	}
	if shared := sharedFold(a.Ingredients, b.Ingredients); shared > 0 {
		score += float64(shared) * 5
		reasons = append(reasons, "Ingredientes en común")
	}
	return score, reasons
}

func sharedFold(a, b []string) int {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	count := 0
	for _, s := range b {
		if _, ok := set[strings.ToLower(strings.TrimSpace(s))]; ok {
			count++
		}
	}
	return count
}

func withinPercent(reference, candidate, fraction float64) bool {
	delta := reference * fraction
	return candidate >= reference-delta && candidate <= reference+delta
}
