package catalog

import (
	"context"

	"github.com/vicholitvak/moai-search/internal/models"
)

// CatalogAccess supplies the full dish and cook collections. The engine
// treats each call as a snapshot read and never mutates what it receives.
type CatalogAccess interface {
	GetAllDishes(ctx context.Context) ([]models.Dish, error)
	GetAllCooks(ctx context.Context) ([]models.Cook, error)
}

// ProfileAccess supplies the per-user signals for personalized
// recommendations.
type ProfileAccess interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}
