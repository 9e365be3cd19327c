package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vicholitvak/moai-search/internal/catalog"
	"github.com/vicholitvak/moai-search/internal/models"
)

// Catalog bundles the repositories behind the CatalogAccess and ProfileAccess
// interfaces, normalizing rows at the boundary.
type Catalog struct {
	Dishes   *DishRepository
	Cooks    *CookRepository
	Profiles *ProfileRepository
}

func NewCatalog(ctx context.Context, dsn string) (*Catalog, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return &Catalog{
		Dishes:   NewDishRepository(pool),
		Cooks:    NewCookRepository(pool),
		Profiles: NewProfileRepository(pool),
	}, nil
}

func (c *Catalog) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	dishes, err := c.Dishes.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dishes: %w", err)
	}
	return catalog.NormalizeDishes(dishes), nil
}

func (c *Catalog) GetAllCooks(ctx context.Context) ([]models.Cook, error) {
	cooks, err := c.Cooks.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cooks: %w", err)
	}
	return catalog.NormalizeCooks(cooks), nil
}

func (c *Catalog) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return c.Profiles.GetByUserID(ctx, userID)
}
