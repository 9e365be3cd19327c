package factories

import (
	"math"
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/vicholitvak/moai-search/internal/models"
)

var fake = faker.New()

var cookingStyles = []string{
	"Italiana", "Chilena", "Japonesa", "Mexicana", "China",
	"India", "Vegetariana", "Vegana", "Sandwiches", "Postres",
}

type CookFactory struct{}

// CreateCook places a cook at a random point inside the configured urban
// radius around the city center.
func (cf *CookFactory) CreateCook(config *models.Config) *models.Cook {
	latRange := config.UrbanRadius / 111.0 // approx. km to degrees
	lonRange := latRange / math.Cos(config.CityLat*math.Pi/180.0)

	lat := config.CityLat + (rand.Float64()*2-1)*latRange
	lon := config.CityLon + (rand.Float64()*2-1)*lonRange

	return &models.Cook{
		ID:           cuid.New(),
		DisplayName:  fake.Person().Name(),
		Rating:       fake.Float64(1, 3, 5),
		CookingStyle: cookingStyles[rand.Intn(len(cookingStyles))],
		Location: models.Location{
			Lat: lat,
			Lon: lon,
		},
		IsActive: rand.Float64() < 0.9,
	}
}
