package search

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/vicholitvak/moai-search/internal/geo"
	"github.com/vicholitvak/moai-search/internal/models"
)

// CookLookup is the slice of catalog access the pipeline needs for the
// cooking-style stage.
type CookLookup interface {
	GetAllCooks(ctx context.Context) ([]models.Cook, error)
}

// Pipeline applies the hard search constraints in a fixed order, each stage
// consuming the previous stage's output. A stage whose external dependency
// fails is skipped (fail-open) so a single bad lookup never empties the
// whole result set.
type Pipeline struct {
	cooks CookLookup
	geo   geo.Service
	log   *zap.Logger
}

func NewPipeline(cooks CookLookup, geoSvc geo.Service, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{cooks: cooks, geo: geoSvc, log: log}
}

func (p *Pipeline) Apply(ctx context.Context, dishes []models.Dish, f models.SearchFilters) []models.ScoredDish {
	candidates := make([]models.ScoredDish, 0, len(dishes))
	for _, d := range dishes {
		candidates = append(candidates, models.ScoredDish{Dish: d})
	}

	candidates = filterAvailability(candidates, f)
	candidates = filterQuery(candidates, f)
	candidates = filterCategory(candidates, f)
	candidates = filterPriceRange(candidates, f)
	candidates = filterRating(candidates, f)
	candidates = filterPrepTime(candidates, f)
	candidates = filterDietary(candidates, f)
	candidates = filterAllergens(candidates, f)
	candidates = p.filterCookingStyle(ctx, candidates, f)
	candidates = p.filterByDistance(ctx, candidates, f)

	return candidates
}

func filterAvailability(dishes []models.ScoredDish, f models.SearchFilters) []models.ScoredDish {
	if f.Availability != nil && !*f.Availability {
		return dishes
	}
	kept := dishes[:0]
	for _, d := range dishes {
		if d.IsAvailable {
			kept = append(kept, d)
		}
	}
	return kept
}

func filterQuery(dishes []models.ScoredDish, f models.SearchFilters) []models.ScoredDish {
	tokens := f.QueryTokens()
	if len(tokens) == 0 {
		return dishes
	}
	kept := dishes[:0]
	for _, d := range dishes {
		haystack := searchableText(d.Dish)
		for _, token := range tokens {
			if strings.Contains(haystack, token) {
				kept = append(kept, d)
				break
			}
		}
	}
	return kept
}

// searchableText concatenates every text field the free-text query matches
// against, lowercased once per dish.
func searchableText(d models.Dish) string {
	parts := []string{d.Name, d.Description, d.Category}
	parts = append(parts, d.Tags...)
	parts = append(parts, d.Ingredients...)
	parts = append(parts, d.CookerName)
	return strings.ToLower(strings.Join(parts, " "))
}

func filterCategory(dishes []models.ScoredDish, f models.SearchFilters) []models.ScoredDish {
	if f.Category == "" {
		return dishes
	}
	kept := dishes[:0]
	for _, d := range dishes {
		if strings.EqualFold(d.Category, f.Category) {
			kept = append(kept, d)
		}
	}
	return kept
}

func filterPriceRange(dishes []models.ScoredDish, f models.SearchFilters) []models.ScoredDish {
	if f.PriceRange == nil {
		return dishes
	}
	kept := dishes[:0]
	for _, d := range dishes {
		if d.Price >= f.PriceRange.Min && d.Price <= f.PriceRange.Max {
			kept = append(kept, d)
		}
	}
	return kept
}

func filterRating(dishes []models.ScoredDish, f models.SearchFilters) []models.ScoredDish {
	if f.MinRating == nil {
		return dishes
	}
	kept := dishes[:0]
	for _, d := range dishes {
		if d.Rating >= *f.MinRating {
			kept = append(kept, d)
		}
	}
	return kept
}

func filterPrepTime(dishes []models.ScoredDish, f models.SearchFilters) []models.ScoredDish {
	maxMinutes, openEnded, err := models.ParsePrepTimeBucket(f.PrepTimeBucket)
	if err != nil || maxMinutes == 0 {
		return dishes
	}
	kept := dishes[:0]
	for _, d := range dishes {
		if openEnded {
			if d.PrepTimeMinutes >= maxMinutes {
				kept = append(kept, d)
			}
		} else if d.PrepTimeMinutes <= maxMinutes {
			kept = append(kept, d)
		}
	}
	return kept
}

func filterDietary(dishes []models.ScoredDish, f models.SearchFilters) []models.ScoredDish {
	if len(f.Dietary) == 0 {
		return dishes
	}
	kept := dishes[:0]
	for _, d := range dishes {
		if matchesAnyDietary(d.Dish, f.Dietary) {
			kept = append(kept, d)
		}
	}
	return kept
}

func matchesAnyDietary(d models.Dish, requested []string) bool {
	description := strings.ToLower(d.Description)
	for _, want := range requested {
		needle := strings.ToLower(want)
		if needle == "" {
			continue
		}
		if strings.Contains(description, needle) {
			return true
		}
		for _, tag := range d.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

func filterAllergens(dishes []models.ScoredDish, f models.SearchFilters) []models.ScoredDish {
	if len(f.ExcludeAllergens) == 0 {
		return dishes
	}
	excluded := make(map[string]bool, len(f.ExcludeAllergens))
	for _, a := range f.ExcludeAllergens {
		excluded[strings.ToLower(a)] = true
	}
	kept := dishes[:0]
	for _, d := range dishes {
		safe := true
		for _, allergen := range d.Allergens {
			if excluded[strings.ToLower(allergen)] {
				safe = false
				break
			}
		}
		if safe {
			kept = append(kept, d)
		}
	}
	return kept
}

func (p *Pipeline) filterCookingStyle(ctx context.Context, dishes []models.ScoredDish, f models.SearchFilters) []models.ScoredDish {
	if f.CookingStyle == "" {
		return dishes
	}
	cooks, err := p.cooks.GetAllCooks(ctx)
	if err != nil {
		// fail open: skip the dimension instead of emptying the result set
		p.log.Warn("cook lookup failed, skipping cooking-style filter", zap.Error(err))
		return dishes
	}
	matching := make(map[string]bool)
	for _, cook := range cooks {
		if strings.EqualFold(cook.CookingStyle, f.CookingStyle) {
			matching[cook.ID] = true
		}
	}
	kept := dishes[:0]
	for _, d := range dishes {
		if matching[d.CookerID] {
			kept = append(kept, d)
		}
	}
	return kept
}

func (p *Pipeline) filterByDistance(ctx context.Context, dishes []models.ScoredDish, f models.SearchFilters) []models.ScoredDish {
	if f.Location == nil {
		return dishes
	}
	radius := f.MaxDistanceKm
	if radius <= 0 {
		radius = models.DefaultMaxDistanceKm
	}
	nearby, err := p.geo.GetNearbyCooks(ctx, *f.Location, radius)
	if err != nil {
		p.log.Warn("nearby cook lookup failed, skipping geo filter", zap.Error(err))
		return dishes
	}
	byCook := make(map[string]geo.CookDistance, len(nearby))
	for _, cd := range nearby {
		byCook[cd.Cook.ID] = cd
	}
	kept := dishes[:0]
	for _, d := range dishes {
		cd, ok := byCook[d.CookerID]
		if !ok {
			continue
		}
		distance := cd.DistanceKm
		d.DistanceKm = &distance
		if fee, eta, err := p.geo.EstimateDelivery(ctx, cd.Cook.Location, *f.Location); err == nil {
			d.DeliveryFee = fee
			d.EstimatedDeliveryMinutes = eta
		}
		kept = append(kept, d)
	}
	return kept
}
