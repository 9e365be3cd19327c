package recommend

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/vicholitvak/moai-search/internal/models"
)

// GetTrendingDishes ranks available dishes by this call's trending signal.
// Empty on catalog failure.
func (e *Engine) GetTrendingDishes(ctx context.Context, limit int) []models.RecommendedDish {
	if limit <= 0 {
		limit = e.limits.Trending
	}
	dishes, err := e.catalog.GetAllDishes(ctx)
	if err != nil {
		e.log.Error("catalog fetch failed, returning no trending dishes", zap.Error(err))
		return []models.RecommendedDish{}
	}
	rng := e.newRand()
	now := e.now()
	var picks []scoredCandidate
	for _, d := range dishes {
		if !d.IsAvailable {
			continue
		}
		picks = append(picks, scoredCandidate{dish: d, sig: computeSignals(d, now, rng)})
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].sig.trending > picks[j].sig.trending
	})
	return takeWithScore(picks, limit, func(c scoredCandidate) (float64, []string) {
		return c.sig.trending, []string{reasonTrending}
	})
}

// GetPopularCategories aggregates available dishes per category, ordered by
// dish count with average rating as tie-break.
func (e *Engine) GetPopularCategories(ctx context.Context, limit int) []models.CategoryStat {
	dishes, err := e.catalog.GetAllDishes(ctx)
	if err != nil {
		e.log.Error("catalog fetch failed, returning no categories", zap.Error(err))
		return []models.CategoryStat{}
	}
	type acc struct {
		count       int
		ratingTotal float64
	}
	byCategory := make(map[string]*acc)
	for _, d := range dishes {
		if !d.IsAvailable || d.Category == "" {
			continue
		}
		a, ok := byCategory[d.Category]
		if !ok {
			a = &acc{}
			byCategory[d.Category] = a
		}
		a.count++
		a.ratingTotal += d.Rating
	}
	stats := make([]models.CategoryStat, 0, len(byCategory))
	for name, a := range byCategory {
		stats = append(stats, models.CategoryStat{
			Category:  name,
			DishCount: a.count,
			AvgRating: a.ratingTotal / float64(a.count),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].DishCount != stats[j].DishCount {
			return stats[i].DishCount > stats[j].DishCount
		}
		return stats[i].AvgRating > stats[j].AvgRating
	})
	if limit > 0 && limit < len(stats) {
		stats = stats[:limit]
	}
	return stats
}
