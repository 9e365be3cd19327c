package search

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/vicholitvak/moai-search/internal/models"
)

// KnownCategories is the category vocabulary that seeds the category facet.
// Categories outside the vocabulary are still counted when present, but every
// known category appears even at zero so the UI can render disabled chips.
var KnownCategories = []string{
	"Italiana",
	"Chilena",
	"Japonesa",
	"Mexicana",
	"China",
	"India",
	"Vegetariana",
	"Vegana",
	"Sandwiches",
	"Postres",
}

// DietaryKeywords is the fixed vocabulary the dietary facet counts against.
var DietaryKeywords = []string{"vegetarian", "vegan", "gluten-free", "keto", "paleo"}

type priceBand struct {
	label string
	max   float64 // inclusive upper bound, +Inf for the open band
}

var priceBands = []priceBand{
	{"0 - 5.000", 5000},
	{"5.000 - 10.000", 10000},
	{"10.000 - 15.000", 15000},
	{"15.000 - 20.000", 20000},
	{"20.000+", math.Inf(1)},
}

var prepTimeBuckets = []struct {
	label string
	max   int
}{
	{"15 min", 15},
	{"30 min", 30},
	{"45 min", 45},
	{"60+ min", math.MaxInt32},
}

// Aggregator computes dimension-wise counts over the filtered result set.
// Category, dietary and prep-time facets keep zero-count entries (fixed
// vocabularies); price bands, rating floors and cooking styles only list
// what actually occurs.
type Aggregator struct {
	cooks CookLookup
	log   *zap.Logger
}

func NewAggregator(cooks CookLookup, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{cooks: cooks, log: log}
}

func (a *Aggregator) Aggregate(ctx context.Context, dishes []models.ScoredDish) models.Facets {
	facets := models.Facets{
		Categories:    make(map[string]int, len(KnownCategories)),
		Ratings:       make(map[int]int),
		CookingStyles: make(map[string]int),
		Dietary:       make(map[string]int, len(DietaryKeywords)),
		PrepTime:      make(map[string]int, len(prepTimeBuckets)),
	}

	for _, category := range KnownCategories {
		facets.Categories[category] = 0
	}
	for _, keyword := range DietaryKeywords {
		facets.Dietary[keyword] = 0
	}
	for _, bucket := range prepTimeBuckets {
		facets.PrepTime[bucket.label] = 0
	}

	bandCounts := make([]int, len(priceBands))

	for _, d := range dishes {
		facets.Categories[d.Category]++
		facets.Ratings[int(math.Floor(d.Rating))]++

		for i, band := range priceBands {
			if d.Price <= band.max {
				bandCounts[i]++
				break
			}
		}

		// first match wins, buckets are mutually exclusive
		for _, bucket := range prepTimeBuckets {
			if d.PrepTimeMinutes <= bucket.max {
				facets.PrepTime[bucket.label]++
				break
			}
		}

		for _, keyword := range DietaryKeywords {
			if dishMentions(d.Dish, keyword) {
				facets.Dietary[keyword]++
			}
		}
	}

	// zero-count bands are dropped, unlike categories
	for i, band := range priceBands {
		if bandCounts[i] > 0 {
			facets.PriceBands = append(facets.PriceBands, models.PriceBandCount{
				Label: band.label,
				Count: bandCounts[i],
			})
		}
	}

	a.countCookingStyles(ctx, dishes, facets.CookingStyles)

	return facets
}

func (a *Aggregator) countCookingStyles(ctx context.Context, dishes []models.ScoredDish, counts map[string]int) {
	if len(dishes) == 0 {
		return
	}
	cooks, err := a.cooks.GetAllCooks(ctx)
	if err != nil {
		a.log.Warn("cook lookup failed, omitting cooking-style facet", zap.Error(err))
		return
	}
	styleByCook := make(map[string]string, len(cooks))
	for _, cook := range cooks {
		styleByCook[cook.ID] = cook.CookingStyle
	}
	for _, d := range dishes {
		if style, ok := styleByCook[d.CookerID]; ok && style != "" {
			counts[style]++
		}
	}
}

func dishMentions(d models.Dish, keyword string) bool {
	if strings.Contains(strings.ToLower(d.Description), keyword) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), keyword) {
			return true
		}
	}
	return false
}
