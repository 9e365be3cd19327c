package factories

import (
	"math/rand"
	"time"

	"github.com/lucsky/cuid"

	"github.com/vicholitvak/moai-search/internal/models"
)

var dishesByCategory = map[string][]string{
	"Italiana":    {"Pizza Margherita", "Lasaña de la Casa", "Spaghetti Carbonara", "Risotto de Champiñones"},
	"Chilena":     {"Empanadas de Pino", "Pastel de Choclo", "Cazuela de Vacuno", "Completo Italiano", "Charquicán"},
	"Japonesa":    {"Sushi Roll Premium", "Ramen de Cerdo", "Gyozas", "Poke de Salmón"},
	"Mexicana":    {"Tacos al Pastor", "Burrito de Carne", "Quesadilla de Queso", "Guacamole con Totopos"},
	"China":       {"Arroz Chaufa", "Pollo Kung Pao", "Dumplings al Vapor", "Chapsui de Verduras"},
	"India":       {"Pollo Tikka Masala", "Curry de Garbanzos", "Naan con Ajo", "Biryani de Cordero"},
	"Vegetariana": {"Bowl de Quinoa", "Hamburguesa de Lentejas", "Ensalada César Veggie", "Wrap de Falafel"},
	"Vegana":      {"Buddha Bowl", "Curry de Tofu", "Pasta con Pesto de Palta", "Ceviche de Champiñones"},
	"Sandwiches":  {"Barros Luco", "Chacarero", "Lomito Completo", "Ave Palta"},
	"Postres":     {"Tres Leches", "Mote con Huesillo", "Brownie con Helado", "Cheesecake de Frambuesa"},
}

var tagPool = []string{
	"casero", "picante", "tradicional", "gourmet", "familiar",
	"vegetarian", "vegan", "gluten-free", "keto", "saludable",
}

var ingredientPool = []string{
	"pollo", "vacuno", "cerdo", "salmón", "tofu", "queso", "tomate",
	"lechuga", "cebolla", "ajo", "pan", "arroz", "pasta", "huevo",
	"palta", "choclo", "porotos", "merkén",
}

var allergenPool = []string{"gluten", "lactosa", "maní", "mariscos", "soya", "huevo"}

type DishFactory struct{}

// CreateDish generates a plausible Chilean marketplace dish priced in CLP.
func (df *DishFactory) CreateDish(cook *models.Cook) *models.Dish {
	category := cook.CookingStyle
	names, ok := dishesByCategory[category]
	if !ok {
		category = cookingStyles[rand.Intn(len(cookingStyles))]
		names = dishesByCategory[category]
	}

	createdAt := fake.Time().TimeBetween(time.Now().AddDate(0, -3, 0), time.Now())

	return &models.Dish{
		ID:              cuid.New(),
		Name:            names[rand.Intn(len(names))],
		Description:     fake.Lorem().Sentence(12),
		Category:        category,
		Tags:            sample(tagPool, 1, 4),
		Ingredients:     sample(ingredientPool, 2, 6),
		Allergens:       sample(allergenPool, 0, 2),
		Price:           float64(rand.Intn(2201)+300) * 10, // 3.000 to 25.000 CLP
		Rating:          fake.Float64(1, 3, 5),
		ReviewCount:     rand.Intn(200),
		PrepTimeMinutes: rand.Intn(56) + 5,
		IsAvailable:     rand.Float64() < 0.85,
		CookerID:        cook.ID,
		CookerName:      cook.DisplayName,
		CreatedAt:       &createdAt,
	}
}

func sample(pool []string, min, max int) []string {
	n := min
	if max > min {
		n += rand.Intn(max - min + 1)
	}
	picked := make([]string, 0, n)
	seen := make(map[int]struct{}, n)
	for len(picked) < n {
		i := rand.Intn(len(pool))
		if _, ok := seen[i]; ok {
			continue
		}
		seen[i] = struct{}{}
		picked = append(picked, pool[i])
	}
	return picked
}
