package catalog

import (
	"context"

	"github.com/vicholitvak/moai-search/internal/models"
)

// StaticCatalog serves a fixed in-memory snapshot. It backs the demo CLI and
// most tests; the engine only ever sees the CatalogAccess interface.
type StaticCatalog struct {
	dishes   []models.Dish
	cooks    []models.Cook
	profiles map[string]models.UserProfile
}

func NewStaticCatalog(dishes []models.Dish, cooks []models.Cook) *StaticCatalog {
	return &StaticCatalog{
		dishes:   NormalizeDishes(dishes),
		cooks:    NormalizeCooks(cooks),
		profiles: make(map[string]models.UserProfile),
	}
}

func (s *StaticCatalog) AddProfile(profile models.UserProfile) {
	s.profiles[profile.UserID] = profile
}

func (s *StaticCatalog) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	out := make([]models.Dish, len(s.dishes))
	copy(out, s.dishes)
	return out, nil
}

func (s *StaticCatalog) GetAllCooks(ctx context.Context) ([]models.Cook, error) {
	out := make([]models.Cook, len(s.cooks))
	copy(out, s.cooks)
	return out, nil
}

func (s *StaticCatalog) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, models.ErrUpstreamData
	}
	return &profile, nil
}
