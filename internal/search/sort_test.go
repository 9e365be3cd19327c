package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vicholitvak/moai-search/internal/models"
)

func TestSortDishes(t *testing.T) {
	near := 1.5
	far := 9.0

	base := func() []models.ScoredDish {
		return []models.ScoredDish{
			{Dish: models.Dish{ID: "a", Price: 9000, Rating: 4.0, PrepTimeMinutes: 30}, Score: 50, DistanceKm: &far},
			{Dish: models.Dish{ID: "b", Price: 5000, Rating: 4.8, PrepTimeMinutes: 10}, Score: 90},
			{Dish: models.Dish{ID: "c", Price: 12000, Rating: 4.8, PrepTimeMinutes: 20}, Score: 70, DistanceKm: &near},
		}
	}

	tests := []struct {
		name    string
		key     models.SortKey
		wantIDs []string
	}{
		{"relevance_default", "", []string{"b", "c", "a"}},
		{"price_low", models.SortPriceLow, []string{"b", "a", "c"}},
		{"price_high", models.SortPriceHigh, []string{"c", "a", "b"}},
		{"rating_stable_on_ties", models.SortRating, []string{"b", "c", "a"}},
		{"prep_time", models.SortPrepTime, []string{"b", "c", "a"}},
		// missing distance sorts as zero, so "b" comes first
		{"distance_nil_first", models.SortDistance, []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dishes := base()
			SortDishes(dishes, tt.key)
			assert.Equal(t, tt.wantIDs, dishIDs(dishes))
		})
	}
}

func TestSortDishes_StableOnEqualKeys(t *testing.T) {
	dishes := []models.ScoredDish{
		{Dish: models.Dish{ID: "first", Price: 5000}},
		{Dish: models.Dish{ID: "second", Price: 5000}},
		{Dish: models.Dish{ID: "third", Price: 5000}},
	}

	SortDishes(dishes, models.SortPriceLow)

	assert.Equal(t, []string{"first", "second", "third"}, dishIDs(dishes))
}
