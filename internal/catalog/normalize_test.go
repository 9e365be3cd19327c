package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicholitvak/moai-search/internal/models"
)

func TestNormalizeDish(t *testing.T) {
	tests := []struct {
		name string
		in   models.Dish
		want func(t *testing.T, got models.Dish)
	}{
		{
			name: "clamps_rating_above_five",
			in:   models.Dish{Rating: 7.3},
			want: func(t *testing.T, got models.Dish) {
				assert.Equal(t, 5.0, got.Rating)
			},
		},
		{
			name: "negative_values_zeroed",
			in:   models.Dish{Price: -100, Rating: -1, ReviewCount: -5},
			want: func(t *testing.T, got models.Dish) {
				assert.Equal(t, 0.0, got.Price)
				assert.Equal(t, 0.0, got.Rating)
				assert.Equal(t, 0, got.ReviewCount)
			},
		},
		{
			name: "missing_prep_time_defaults",
			in:   models.Dish{PrepTimeMinutes: 0},
			want: func(t *testing.T, got models.Dish) {
				assert.Equal(t, 15, got.PrepTimeMinutes)
			},
		},
		{
			name: "nil_slices_become_empty",
			in:   models.Dish{},
			want: func(t *testing.T, got models.Dish) {
				assert.NotNil(t, got.Tags)
				assert.NotNil(t, got.Ingredients)
				assert.NotNil(t, got.Allergens)
			},
		},
		{
			name: "names_trimmed",
			in:   models.Dish{Name: "  Pizza Margherita  ", Category: " Italiana "},
			want: func(t *testing.T, got models.Dish) {
				assert.Equal(t, "Pizza Margherita", got.Name)
				assert.Equal(t, "Italiana", got.Category)
			},
		},
		{
			name: "valid_dish_untouched",
			in: models.Dish{
				Name: "Sushi", Price: 9990, Rating: 4.5, ReviewCount: 10,
				PrepTimeMinutes: 20, Tags: []string{"gourmet"},
			},
			want: func(t *testing.T, got models.Dish) {
				assert.Equal(t, 9990.0, got.Price)
				assert.Equal(t, 4.5, got.Rating)
				assert.Equal(t, 20, got.PrepTimeMinutes)
				assert.Equal(t, []string{"gourmet"}, got.Tags)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.want(t, NormalizeDish(tt.in))
		})
	}
}

func TestNormalizeCook(t *testing.T) {
	got := NormalizeCook(models.Cook{DisplayName: " María ", Rating: 9})

	assert.Equal(t, "María", got.DisplayName)
	assert.Equal(t, 5.0, got.Rating)
}

func TestStaticCatalog(t *testing.T) {
	ctx := context.Background()
	cat := NewStaticCatalog(
		[]models.Dish{{ID: "d1", Rating: 8}},
		[]models.Cook{{ID: "c1", Rating: -2}},
	)

	dishes, err := cat.GetAllDishes(ctx)
	require.NoError(t, err)
	require.Len(t, dishes, 1)
	assert.Equal(t, 5.0, dishes[0].Rating, "snapshot is normalized at construction")

	cooks, err := cat.GetAllCooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cooks[0].Rating)

	// mutating the returned slice must not affect later reads
	dishes[0].Rating = 1
	again, _ := cat.GetAllDishes(ctx)
	assert.Equal(t, 5.0, again[0].Rating)
}

func TestStaticCatalog_Profiles(t *testing.T) {
	ctx := context.Background()
	cat := NewStaticCatalog(nil, nil)

	_, err := cat.GetUserProfile(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrUpstreamData)

	cat.AddProfile(models.UserProfile{UserID: "u1", FavoriteCategories: []string{"Chilena"}})
	profile, err := cat.GetUserProfile(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chilena"}, profile.FavoriteCategories)
}
