package catalog

import (
	"strings"

	"github.com/vicholitvak/moai-search/internal/models"
)

const defaultPrepTimeMinutes = 15

// NormalizeDish repairs the loosely-typed fields that come back from the
// document store so everything downstream can assume complete, well-typed
// records. Ratings are clamped to [0,5], negative counts and prices to 0,
// and a missing prep time falls back to a sane default.
func NormalizeDish(d models.Dish) models.Dish {
	d.Name = strings.TrimSpace(d.Name)
	d.Category = strings.TrimSpace(d.Category)
	d.CookerName = strings.TrimSpace(d.CookerName)

	if d.Price < 0 {
		d.Price = 0
	}
	if d.Rating < 0 {
		d.Rating = 0
	}
	if d.Rating > 5 {
		d.Rating = 5
	}
	if d.ReviewCount < 0 {
		d.ReviewCount = 0
	}
	if d.PrepTimeMinutes <= 0 {
		d.PrepTimeMinutes = defaultPrepTimeMinutes
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if d.Ingredients == nil {
		d.Ingredients = []string{}
	}
	if d.Allergens == nil {
		d.Allergens = []string{}
	}
	return d
}

func NormalizeCook(c models.Cook) models.Cook {
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	c.CookingStyle = strings.TrimSpace(c.CookingStyle)
	if c.Rating < 0 {
		c.Rating = 0
	}
	if c.Rating > 5 {
		c.Rating = 5
	}
	return c
}

func NormalizeDishes(dishes []models.Dish) []models.Dish {
	out := make([]models.Dish, len(dishes))
	for i, d := range dishes {
		out[i] = NormalizeDish(d)
	}
	return out
}

func NormalizeCooks(cooks []models.Cook) []models.Cook {
	out := make([]models.Cook, len(cooks))
	for i, c := range cooks {
		out[i] = NormalizeCook(c)
	}
	return out
}
