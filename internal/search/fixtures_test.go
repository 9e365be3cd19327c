package search

import (
	"context"
	"errors"

	"github.com/vicholitvak/moai-search/internal/geo"
	"github.com/vicholitvak/moai-search/internal/models"
)

func fixtureCooks() []models.Cook {
	return []models.Cook{
		{ID: "cook-1", DisplayName: "María Pérez", Rating: 4.7, CookingStyle: "Italiana",
			Location: models.Location{Lat: -33.45, Lon: -70.66}, IsActive: true},
		{ID: "cook-2", DisplayName: "Jorge Soto", Rating: 4.2, CookingStyle: "Chilena",
			Location: models.Location{Lat: -33.44, Lon: -70.65}, IsActive: true},
		{ID: "cook-3", DisplayName: "Akira Tanaka", Rating: 4.9, CookingStyle: "Japonesa",
			Location: models.Location{Lat: -33.50, Lon: -70.60}, IsActive: true},
	}
}

func fixtureDishes() []models.Dish {
	return []models.Dish{
		{
			ID: "dish-pizza", Name: "Pizza Margherita", Description: "Pizza napolitana con albahaca fresca",
			Category: "Italiana", Tags: []string{"pizza", "tradicional"},
			Ingredients: []string{"queso", "tomate"}, Allergens: []string{"gluten", "lactosa"},
			Price: 8990, Rating: 4.8, ReviewCount: 120, PrepTimeMinutes: 25,
			IsAvailable: true, CookerID: "cook-1", CookerName: "María Pérez",
		},
		{
			ID: "dish-empanada", Name: "Empanadas de Pino", Description: "Seis empanadas al horno",
			Category: "Chilena", Tags: []string{"tradicional", "familiar"},
			Ingredients: []string{"vacuno", "cebolla", "huevo"}, Allergens: []string{"gluten", "huevo"},
			Price: 6500, Rating: 4.4, ReviewCount: 45, PrepTimeMinutes: 40,
			IsAvailable: true, CookerID: "cook-2", CookerName: "Jorge Soto",
		},
		{
			ID: "dish-sushi", Name: "Sushi Roll Premium", Description: "Roll de salmón gluten-free",
			Category: "Japonesa", Tags: []string{"gluten-free", "gourmet"},
			Ingredients: []string{"salmón", "arroz", "palta"}, Allergens: []string{"mariscos"},
			Price: 12990, Rating: 4.9, ReviewCount: 88, PrepTimeMinutes: 15,
			IsAvailable: true, CookerID: "cook-3", CookerName: "Akira Tanaka",
		},
		{
			ID: "dish-oculto", Name: "Cazuela de Vacuno", Description: "Cazuela casera",
			Category: "Chilena", Tags: []string{"casero"},
			Ingredients: []string{"vacuno", "choclo"}, Allergens: []string{},
			Price: 7500, Rating: 4.1, ReviewCount: 12, PrepTimeMinutes: 50,
			IsAvailable: false, CookerID: "cook-2", CookerName: "Jorge Soto",
		},
	}
}

type staticCooks struct {
	cooks []models.Cook
}

func (s staticCooks) GetAllCooks(ctx context.Context) ([]models.Cook, error) {
	return s.cooks, nil
}

type failingCooks struct{}

func (failingCooks) GetAllCooks(ctx context.Context) ([]models.Cook, error) {
	return nil, errors.New("cook store down")
}

type staticCatalog struct {
	dishes []models.Dish
	cooks  []models.Cook
}

func (s staticCatalog) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	return s.dishes, nil
}

func (s staticCatalog) GetAllCooks(ctx context.Context) ([]models.Cook, error) {
	return s.cooks, nil
}

type failingCatalog struct{}

func (failingCatalog) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	return nil, errors.New("catalog down")
}

func (failingCatalog) GetAllCooks(ctx context.Context) ([]models.Cook, error) {
	return nil, errors.New("catalog down")
}

// fakeGeo returns fixed distances per cook ID.
type fakeGeo struct {
	distances map[string]float64
	cooks     []models.Cook
	err       error
}

func (f fakeGeo) GetNearbyCooks(ctx context.Context, origin models.Location, radiusKm float64) ([]geo.CookDistance, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []geo.CookDistance
	for _, c := range f.cooks {
		d, ok := f.distances[c.ID]
		if !ok || d > radiusKm {
			continue
		}
		out = append(out, geo.CookDistance{Cook: c, DistanceKm: d})
	}
	return out, nil
}

func (f fakeGeo) EstimateDelivery(ctx context.Context, origin, destination models.Location) (float64, int, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	return 2000, 30, nil
}
