package recommend

import (
	"strings"

	"github.com/vicholitvak/moai-search/internal/models"
)

// mealKeywords maps each meal period to the category/keyword allow-list the
// time-relevance filter matches against. A dish is time-relevant when its
// category, tags or name mention any keyword for the active period.
var mealKeywords = map[models.MealPeriod][]string{
	models.MealBreakfast: {
		"desayuno", "café", "cafe", "jugo", "pasteles", "pan", "huevos", "avena", "breakfast",
	},
	models.MealLunch: {
		"almuerzo", "ensalada", "sandwich", "menú", "menu", "sopa", "cazuela", "lunch", "bowl",
	},
	models.MealDinner: {
		"cena", "pizza", "pasta", "parrilla", "asado", "sushi", "curry", "lasaña", "dinner", "italiana", "japonesa",
	},
	models.MealLateNight: {
		"pizza", "completo", "hamburguesa", "snack", "empanada", "tacos", "fast food", "late",
	},
}

func isTimeRelevant(d models.Dish, period models.MealPeriod) bool {
	keywords := mealKeywords[period]
	category := strings.ToLower(d.Category)
	name := strings.ToLower(d.Name)
	for _, keyword := range keywords {
		if strings.Contains(category, keyword) || strings.Contains(name, keyword) {
			return true
		}
		for _, tag := range d.Tags {
			if strings.Contains(strings.ToLower(tag), keyword) {
				return true
			}
		}
	}
	return false
}
