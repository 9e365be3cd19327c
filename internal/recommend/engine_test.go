package recommend

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicholitvak/moai-search/internal/catalog"
	"github.com/vicholitvak/moai-search/internal/models"
)

// dinnerTime falls inside the 16-22 dinner window.
var dinnerTime = time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return dinnerTime }

func fixedRand() *rand.Rand { return rand.New(rand.NewSource(1)) }

func recommendFixture() ([]models.Dish, []models.Cook) {
	recent := dinnerTime.AddDate(0, 0, -2)
	old := dinnerTime.AddDate(0, -2, 0)
	dishes := []models.Dish{
		{
			ID: "pizza", Name: "Pizza Margherita", Category: "Italiana",
			Tags: []string{"pizza"}, Price: 8990, Rating: 4.8, ReviewCount: 120,
			PrepTimeMinutes: 25, IsAvailable: true, CookerID: "c1", CreatedAt: &old,
		},
		{
			ID: "sushi", Name: "Sushi Roll", Category: "Japonesa",
			Tags: []string{"gourmet"}, Price: 16990, Rating: 4.9, ReviewCount: 80,
			PrepTimeMinutes: 15, IsAvailable: true, CookerID: "c2", CreatedAt: &recent,
		},
		{
			ID: "empanada", Name: "Empanadas de Pino", Category: "Chilena",
			Tags: []string{"tradicional", "vegetarian"}, Price: 4500, Rating: 4.2, ReviewCount: 30,
			PrepTimeMinutes: 18, IsAvailable: true, CookerID: "c1", CreatedAt: &old,
		},
		{
			ID: "oculto", Name: "Cazuela", Category: "Chilena",
			Price: 7000, Rating: 4.6, ReviewCount: 50,
			PrepTimeMinutes: 45, IsAvailable: false, CookerID: "c1", CreatedAt: &old,
		},
	}
	cooks := []models.Cook{
		{ID: "c1", DisplayName: "María", Rating: 4.7, CookingStyle: "Italiana", IsActive: true},
		{ID: "c2", DisplayName: "Akira", Rating: 4.9, CookingStyle: "Japonesa", IsActive: true},
	}
	return dishes, cooks
}

func newTestEngine(t *testing.T) (*Engine, *catalog.StaticCatalog) {
	t.Helper()
	dishes, cooks := recommendFixture()
	cat := catalog.NewStaticCatalog(dishes, cooks)
	engine := NewEngine(cat, cat, nil,
		WithClock(fixedClock),
		WithRandSource(fixedRand),
	)
	return engine, cat
}

type downCatalog struct{}

func (downCatalog) GetAllDishes(ctx context.Context) ([]models.Dish, error) {
	return nil, errors.New("catalog down")
}

func (downCatalog) GetAllCooks(ctx context.Context) ([]models.Cook, error) {
	return nil, errors.New("catalog down")
}

func (downCatalog) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	return nil, errors.New("catalog down")
}

func bucketIDs(bucket []models.RecommendedDish) []string {
	ids := make([]string, 0, len(bucket))
	for _, d := range bucket {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestGetRecommendations_Buckets(t *testing.T) {
	engine, _ := newTestEngine(t)

	result := engine.GetRecommendations(context.Background(), models.RecommendationOptions{})

	assert.Equal(t, models.MealDinner, result.TimeOfDay)

	// unavailable dishes never surface in any bucket
	for _, bucket := range [][]models.RecommendedDish{
		result.Featured, result.Trending, result.Popular, result.NearYou,
		result.ForYou, result.NewAndExciting, result.QuickBites, result.PremiumPicks,
	} {
		assert.NotContains(t, bucketIDs(bucket), "oculto")
	}

	// dinner window: pizza and sushi are time relevant with rating >= 4.0
	assert.ElementsMatch(t, []string{"pizza", "sushi"}, bucketIDs(result.Featured))

	// only the recently created dish counts as new at this seed
	assert.Contains(t, bucketIDs(result.NewAndExciting), "sushi")

	// prep <= 20 sorted ascending
	assert.Equal(t, []string{"sushi", "empanada"}, bucketIDs(result.QuickBites))

	// price > 15000 and rating >= 4.5
	assert.Equal(t, []string{"sushi"}, bucketIDs(result.PremiumPicks))

	require.NotEmpty(t, result.QuickBites[0].Reasons)
	assert.Equal(t, "Listo en 15 minutos", result.QuickBites[0].Reasons[0])
}

func TestGetRecommendations_DeterministicForFixedSeed(t *testing.T) {
	engine, _ := newTestEngine(t)

	first := engine.GetRecommendations(context.Background(), models.RecommendationOptions{})
	second := engine.GetRecommendations(context.Background(), models.RecommendationOptions{})

	assert.Equal(t, first, second)
}

func TestGetRecommendations_BudgetAndDietary(t *testing.T) {
	engine, _ := newTestEngine(t)

	result := engine.GetRecommendations(context.Background(), models.RecommendationOptions{
		Budget:              &models.PriceRange{Min: 4000, Max: 10000},
		DietaryRestrictions: []string{"vegetarian"},
	})

	// only the vegetarian empanada fits both constraints
	for _, bucket := range [][]models.RecommendedDish{
		result.Trending, result.Popular, result.QuickBites,
	} {
		for _, d := range bucket {
			assert.Equal(t, "empanada", d.ID)
		}
	}
	assert.Empty(t, result.PremiumPicks)
}

func TestGetRecommendations_LimitOverride(t *testing.T) {
	engine, _ := newTestEngine(t)

	result := engine.GetRecommendations(context.Background(), models.RecommendationOptions{Limit: 1})

	assert.LessOrEqual(t, len(result.Trending), 1)
	assert.LessOrEqual(t, len(result.Popular), 1)
	assert.LessOrEqual(t, len(result.Featured), 1)
}

func TestGetRecommendations_CatalogDown(t *testing.T) {
	engine := NewEngine(downCatalog{}, downCatalog{}, nil, WithClock(fixedClock))

	result := engine.GetRecommendations(context.Background(), models.RecommendationOptions{})

	assert.Equal(t, models.MealDinner, result.TimeOfDay)
	assert.Empty(t, result.Featured)
	assert.NotNil(t, result.Featured)
	assert.Empty(t, result.Trending)
}

func TestGetRecommendations_ForYouFallback(t *testing.T) {
	engine, _ := newTestEngine(t)

	// no preferences: the bucket falls back to highly rated dishes
	result := engine.GetRecommendations(context.Background(), models.RecommendationOptions{})

	require.NotEmpty(t, result.ForYou)
	for _, d := range result.ForYou {
		assert.GreaterOrEqual(t, d.Rating, 4.2)
		assert.Contains(t, d.Reasons, "Muy bien evaluado")
	}

	// with a matching preference the reason changes
	preferred := engine.GetRecommendations(context.Background(), models.RecommendationOptions{
		UserPreferences: []string{"Italiana"},
	})
	require.NotEmpty(t, preferred.ForYou)
	assert.Equal(t, "pizza", preferred.ForYou[0].ID)
	assert.Contains(t, preferred.ForYou[0].Reasons, "Basado en tus preferencias")
}

func TestGetTrendingDishes(t *testing.T) {
	engine, _ := newTestEngine(t)

	trending := engine.GetTrendingDishes(context.Background(), 2)

	require.Len(t, trending, 2)
	assert.GreaterOrEqual(t, trending[0].Score, trending[1].Score)
}

func TestGetPopularCategories(t *testing.T) {
	engine, _ := newTestEngine(t)

	stats := engine.GetPopularCategories(context.Background(), 0)

	require.Len(t, stats, 3)
	for _, s := range stats {
		assert.Equal(t, 1, s.DishCount)
	}
}

func TestIsTimeRelevant(t *testing.T) {
	tests := []struct {
		name   string
		dish   models.Dish
		period models.MealPeriod
		want   bool
	}{
		{"pizza_at_dinner", models.Dish{Name: "Pizza Margherita"}, models.MealDinner, true},
		{"pizza_late_night", models.Dish{Name: "Pizza Margherita"}, models.MealLateNight, true},
		{"pizza_at_breakfast", models.Dish{Name: "Pizza Margherita"}, models.MealBreakfast, false},
		{"cazuela_at_lunch", models.Dish{Name: "Cazuela de Vacuno"}, models.MealLunch, true},
		{"category_match", models.Dish{Name: "Lasaña", Category: "Italiana"}, models.MealDinner, true},
		{"tag_match", models.Dish{Name: "Tabla", Tags: []string{"desayuno"}}, models.MealBreakfast, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTimeRelevant(tt.dish, tt.period))
		})
	}
}
