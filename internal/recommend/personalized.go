package recommend

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/vicholitvak/moai-search/internal/models"
)

// Personalized match types and reasons.
const (
	matchGeneral  = "general"
	matchCategory = "category"
	matchCook     = "cook"
	matchTrending = "trending"

	reasonFavoriteCategory = "De tu categoría favorita"
	reasonFavoriteCook     = "De uno de tus cocineros favoritos"
	reasonTimeOfDayFit     = "Perfecto para esta hora"
	reasonTrendingBonus    = "Tendencia entre los clientes"
	reasonFavoriteStyle    = "De tu estilo de cocina favorito"
	reasonHighRatedCook    = "Cocinero muy bien evaluado"
)

// GetDishRecommendations scores the top-rated candidates against the user's
// profile. When the profile cannot be fetched the list degrades to empty
// rather than failing the caller.
func (e *Engine) GetDishRecommendations(ctx context.Context, userID string, limit int) []models.DishRecommendation {
	if limit <= 0 {
		limit = 10
	}
	profile, err := e.profiles.GetUserProfile(ctx, userID)
	if err != nil {
		e.log.Warn("profile unavailable, returning no personalized dishes",
			zap.String("user_id", userID), zap.Error(err))
		return []models.DishRecommendation{}
	}
	dishes, err := e.catalog.GetAllDishes(ctx)
	if err != nil {
		e.log.Error("catalog fetch failed, returning no personalized dishes", zap.Error(err))
		return []models.DishRecommendation{}
	}

	period := models.MealPeriodForHour(e.now().Hour())
	candidates := topRatedAvailable(dishes, 2*limit)

	recs := make([]models.DishRecommendation, 0, len(candidates))
	for _, d := range candidates {
		score := d.Rating * 10
		matchType := matchGeneral
		var reasons []string

		if containsFold(profile.FavoriteCategories, d.Category) {
			score += 30
			matchType = matchCategory
			reasons = append(reasons, reasonFavoriteCategory)
		}
		if containsFold(profile.FavoriteCookIDs, d.CookerID) {
			score += 25
			matchType = matchCook
			reasons = append(reasons, reasonFavoriteCook)
		}
		if isTimeRelevant(d, period) {
			score += 15
			reasons = append(reasons, reasonTimeOfDayFit)
		}
		if d.ReviewCount > 20 && d.Rating >= 4.5 {
			// trending overwrites any earlier match type
			score += 20
			matchType = matchTrending
			reasons = append(reasons, reasonTrendingBonus)
		}
		score = clampScore(score)

		recs = append(recs, models.DishRecommendation{
			DishID:     d.ID,
			Score:      score,
			MatchType:  matchType,
			Reasons:    reasons,
			Confidence: confidenceFor(score),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if limit < len(recs) {
		recs = recs[:limit]
	}
	return recs
}

// GetCookRecommendations ranks active cooks against the user's favorite
// cooking styles and cooks. Same degrade-to-empty contract as dishes.
func (e *Engine) GetCookRecommendations(ctx context.Context, userID string, limit int) []models.CookRecommendation {
	if limit <= 0 {
		limit = 10
	}
	profile, err := e.profiles.GetUserProfile(ctx, userID)
	if err != nil {
		e.log.Warn("profile unavailable, returning no personalized cooks",
			zap.String("user_id", userID), zap.Error(err))
		return []models.CookRecommendation{}
	}
	cooks, err := e.catalog.GetAllCooks(ctx)
	if err != nil {
		e.log.Error("catalog fetch failed, returning no personalized cooks", zap.Error(err))
		return []models.CookRecommendation{}
	}

	recs := make([]models.CookRecommendation, 0, len(cooks))
	for _, c := range cooks {
		if !c.IsActive {
			continue
		}
		score := c.Rating * 10
		matchType := matchGeneral
		var reasons []string

		if containsFold(profile.FavoriteCategories, c.CookingStyle) {
			score += 30
			matchType = matchCategory
			reasons = append(reasons, reasonFavoriteStyle)
		}
		if containsFold(profile.FavoriteCookIDs, c.ID) {
			score += 25
			matchType = matchCook
			reasons = append(reasons, reasonFavoriteCook)
		}
		if c.Rating >= 4.5 {
			// trending overwrites any earlier match type
			score += 20
			matchType = matchTrending
			reasons = append(reasons, reasonHighRatedCook)
		}
		score = clampScore(score)

		recs = append(recs, models.CookRecommendation{
			CookID:     c.ID,
			Score:      score,
			MatchType:  matchType,
			Reasons:    reasons,
			Confidence: confidenceFor(score),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })
	if limit < len(recs) {
		recs = recs[:limit]
	}
	return recs
}

func topRatedAvailable(dishes []models.Dish, n int) []models.Dish {
	available := make([]models.Dish, 0, len(dishes))
	for _, d := range dishes {
		if d.IsAvailable {
			available = append(available, d)
		}
	}
	sort.SliceStable(available, func(i, j int) bool {
		return available[i].Rating > available[j].Rating
	})
	if n < len(available) {
		available = available[:n]
	}
	return available
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func confidenceFor(score float64) float64 {
	switch {
	case score > 80:
		return 0.9
	case score > 60:
		return 0.8
	default:
		return 0.7
	}
}
