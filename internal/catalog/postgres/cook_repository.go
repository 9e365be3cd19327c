package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vicholitvak/moai-search/internal/models"
)

type CookRepository struct {
	pool *pgxpool.Pool
}

func NewCookRepository(pool *pgxpool.Pool) *CookRepository {
	return &CookRepository{pool: pool}
}

func (r *CookRepository) BulkCreate(ctx context.Context, cooks []*models.Cook) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, cook := range cooks {
		query := `
            INSERT INTO cooks (
                id, display_name, rating, cooking_style, location, is_active
            ) VALUES (
                $1, $2, $3, $4,
                ST_SetSRID(ST_MakePoint($5, $6), 4326)::geography,
                $7
            )
        `

		_, err = tx.Exec(ctx, query,
			cook.ID,
			cook.DisplayName,
			cook.Rating,
			cook.CookingStyle,
			cook.Location.Lon,
			cook.Location.Lat,
			cook.IsActive,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *CookRepository) GetAll(ctx context.Context) ([]models.Cook, error) {
	query := `
        SELECT
            id, display_name, rating, cooking_style,
            ST_X(location::geometry) as longitude,
            ST_Y(location::geometry) as latitude,
            is_active
        FROM cooks
        ORDER BY id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cooks []models.Cook
	for rows.Next() {
		var cook models.Cook
		if err := rows.Scan(
			&cook.ID,
			&cook.DisplayName,
			&cook.Rating,
			&cook.CookingStyle,
			&cook.Location.Lon,
			&cook.Location.Lat,
			&cook.IsActive,
		); err != nil {
			return nil, err
		}
		cooks = append(cooks, cook)
	}
	return cooks, rows.Err()
}

func (r *CookRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM cooks").Scan(&count)
	return count, err
}

func (r *CookRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM cooks")
	return err
}
