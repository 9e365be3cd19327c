package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vicholitvak/moai-search/internal/models"
)

type DishRepository struct {
	pool *pgxpool.Pool
}

func NewDishRepository(pool *pgxpool.Pool) *DishRepository {
	return &DishRepository{pool: pool}
}

func (r *DishRepository) BulkCreate(ctx context.Context, dishes []*models.Dish) error {
	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"dishes"},
		[]string{
			"id", "name", "description", "category", "tags", "ingredients",
			"allergens", "price", "rating", "review_count", "prep_time_minutes",
			"is_available", "cooker_id", "cooker_name", "created_at",
		},
		pgx.CopyFromSlice(len(dishes), func(i int) ([]interface{}, error) {
			return []interface{}{
				dishes[i].ID,
				dishes[i].Name,
				dishes[i].Description,
				dishes[i].Category,
				dishes[i].Tags,
				dishes[i].Ingredients,
				dishes[i].Allergens,
				dishes[i].Price,
				dishes[i].Rating,
				dishes[i].ReviewCount,
				dishes[i].PrepTimeMinutes,
				dishes[i].IsAvailable,
				dishes[i].CookerID,
				dishes[i].CookerName,
				dishes[i].CreatedAt,
			}, nil
		}),
	)
	return err
}

func (r *DishRepository) Create(ctx context.Context, dish *models.Dish) error {
	query := `
        INSERT INTO dishes (
            id, name, description, category, tags, ingredients, allergens,
            price, rating, review_count, prep_time_minutes, is_available,
            cooker_id, cooker_name, created_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
        )
    `

	_, err := r.pool.Exec(ctx, query,
		dish.ID,
		dish.Name,
		dish.Description,
		dish.Category,
		dish.Tags,
		dish.Ingredients,
		dish.Allergens,
		dish.Price,
		dish.Rating,
		dish.ReviewCount,
		dish.PrepTimeMinutes,
		dish.IsAvailable,
		dish.CookerID,
		dish.CookerName,
		dish.CreatedAt,
	)
	return err
}

func (r *DishRepository) GetAll(ctx context.Context) ([]models.Dish, error) {
	query := `
        SELECT
            id, name, description, category, tags, ingredients, allergens,
            price, rating, review_count, prep_time_minutes, is_available,
            cooker_id, cooker_name, created_at
        FROM dishes
        ORDER BY created_at NULLS LAST, id
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dishes []models.Dish
	for rows.Next() {
		var dish models.Dish
		var createdAt *time.Time
		if err := rows.Scan(
			&dish.ID,
			&dish.Name,
			&dish.Description,
			&dish.Category,
			&dish.Tags,
			&dish.Ingredients,
			&dish.Allergens,
			&dish.Price,
			&dish.Rating,
			&dish.ReviewCount,
			&dish.PrepTimeMinutes,
			&dish.IsAvailable,
			&dish.CookerID,
			&dish.CookerName,
			&createdAt,
		); err != nil {
			return nil, err
		}
		dish.CreatedAt = createdAt
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *DishRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM dishes").Scan(&count)
	return count, err
}

func (r *DishRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM dishes")
	return err
}
