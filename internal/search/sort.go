package search

import (
	"sort"

	"github.com/vicholitvak/moai-search/internal/models"
)

// SortDishes orders the scored dishes by the selected key. The sort is
// stable so identical keys keep catalog iteration order and repeated calls
// are reproducible. A missing distance sorts as zero, i.e. first.
func SortDishes(dishes []models.ScoredDish, key models.SortKey) {
	var less func(i, j int) bool

	switch key {
	case models.SortPriceLow:
		less = func(i, j int) bool { return dishes[i].Price < dishes[j].Price }
	case models.SortPriceHigh:
		less = func(i, j int) bool { return dishes[i].Price > dishes[j].Price }
	case models.SortRating:
		less = func(i, j int) bool { return dishes[i].Rating > dishes[j].Rating }
	case models.SortPrepTime:
		less = func(i, j int) bool { return dishes[i].PrepTimeMinutes < dishes[j].PrepTimeMinutes }
	case models.SortDistance:
		less = func(i, j int) bool { return distanceOrZero(dishes[i]) < distanceOrZero(dishes[j]) }
	default: // relevance
		less = func(i, j int) bool { return dishes[i].Score > dishes[j].Score }
	}

	sort.SliceStable(dishes, less)
}

func distanceOrZero(d models.ScoredDish) float64 {
	if d.DistanceKm == nil {
		return 0
	}
	return *d.DistanceKm
}
