package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vicholitvak/moai-search/internal/models"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `
        SELECT
            user_id, favorite_categories, favorite_cook_ids,
            ordered_dish_ids, diet_restrictions
        FROM user_profiles
        WHERE user_id = $1
    `
	var profile models.UserProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.FavoriteCategories,
		&profile.FavoriteCookIDs,
		&profile.OrderedDishIDs,
		&profile.DietaryRestrictions,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", userID, models.ErrUpstreamData)
		}
		return nil, err
	}
	return &profile, nil
}
