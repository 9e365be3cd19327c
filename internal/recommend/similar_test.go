package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicholitvak/moai-search/internal/catalog"
	"github.com/vicholitvak/moai-search/internal/models"
)

func similarFixture() []models.Dish {
	return []models.Dish{
		{
			ID: "ref", Name: "Pizza Margherita", Category: "Italiana",
			Tags: []string{"pizza", "tradicional"}, Ingredients: []string{"queso", "tomate", "masa"},
			Price: 10000, Rating: 4.8, PrepTimeMinutes: 25, IsAvailable: true, CookerID: "c1",
		},
		{
			ID: "twin", Name: "Pizza Pepperoni", Category: "Italiana",
			Tags: []string{"pizza"}, Ingredients: []string{"queso", "tomate", "pepperoni"},
			Price: 11000, Rating: 4.6, PrepTimeMinutes: 25, IsAvailable: true, CookerID: "c1",
		},
		{
			ID: "cousin", Name: "Lasaña", Category: "Italiana",
			Tags: []string{"tradicional"}, Ingredients: []string{"queso"},
			Price: 20000, Rating: 4.5, PrepTimeMinutes: 40, IsAvailable: true, CookerID: "c2",
		},
		{
			ID: "stranger", Name: "Sushi Roll", Category: "Japonesa",
			Tags: []string{"gourmet"}, Ingredients: []string{"arroz", "salmón"},
			Price: 90000, Rating: 4.9, PrepTimeMinutes: 15, IsAvailable: true, CookerID: "c3",
		},
		{
			ID: "hidden", Name: "Pizza Cuatro Quesos", Category: "Italiana",
			Tags: []string{"pizza"}, Ingredients: []string{"queso"},
			Price: 10500, Rating: 4.4, PrepTimeMinutes: 30, IsAvailable: false, CookerID: "c1",
		},
	}
}

func newSimilarEngine(t *testing.T) *Engine {
	t.Helper()
	cat := catalog.NewStaticCatalog(similarFixture(), nil)
	return NewEngine(cat, cat, nil, WithClock(fixedClock), WithRandSource(fixedRand))
}

func TestGetSimilarDishes(t *testing.T) {
	engine := newSimilarEngine(t)

	similar := engine.GetSimilarDishes(context.Background(), "ref", 10)

	require.Len(t, similar, 2, "no-overlap and unavailable dishes are omitted")

	// twin: category 40 + 1 tag 10 + price 20 + cook 30 + 2 ingredients 10 = 110
	assert.Equal(t, "twin", similar[0].ID)
	assert.InDelta(t, 110, similar[0].Score, 0.001)
	assert.Contains(t, similar[0].Reasons, "Misma categoría")
	assert.Contains(t, similar[0].Reasons, "Del mismo cocinero")

	// cousin: category 40 + 1 tag 10 + 1 ingredient 5 = 55
	assert.Equal(t, "cousin", similar[1].ID)
	assert.InDelta(t, 55, similar[1].Score, 0.001)
}

func TestGetSimilarDishes_UnknownReference(t *testing.T) {
	engine := newSimilarEngine(t)

	similar := engine.GetSimilarDishes(context.Background(), "no-existe", 10)

	assert.NotNil(t, similar)
	assert.Empty(t, similar)
}

func TestGetSimilarDishes_LimitApplied(t *testing.T) {
	engine := newSimilarEngine(t)

	similar := engine.GetSimilarDishes(context.Background(), "ref", 1)

	assert.Len(t, similar, 1)
	assert.Equal(t, "twin", similar[0].ID)
}
