package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortKeyValid(t *testing.T) {
	valid := []SortKey{SortRelevance, SortPriceLow, SortPriceHigh, SortRating, SortPrepTime, SortDistance}
	for _, key := range valid {
		assert.True(t, key.Valid(), "%s should be valid", key)
	}
	assert.False(t, SortKey("best").Valid())
	assert.False(t, SortKey("").Valid())
}

func TestParsePrepTimeBucket(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantMax      int
		wantOpen     bool
		wantErr      bool
	}{
		{"empty_is_noop", "", 0, false, false},
		{"fifteen", "15 min", 15, false, false},
		{"thirty", "30 min", 30, false, false},
		{"open_ended", "60+", 60, true, false},
		{"garbage", "pronto", 0, false, true},
		{"negative", "-5 min", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxMinutes, openEnded, err := ParsePrepTimeBucket(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				var confErr *ConfigurationError
				assert.ErrorAs(t, err, &confErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMax, maxMinutes)
			assert.Equal(t, tt.wantOpen, openEnded)
		})
	}
}

func TestSearchFiltersValidate(t *testing.T) {
	badRating := 7.0
	goodRating := 4.0

	tests := []struct {
		name    string
		filters SearchFilters
		wantErr bool
	}{
		{"zero_value_valid", SearchFilters{}, false},
		{"valid_sort", SearchFilters{SortBy: SortRating}, false},
		{"unknown_sort", SearchFilters{SortBy: "best"}, true},
		{"bad_prep_bucket", SearchFilters{PrepTimeBucket: "ya"}, true},
		{"negative_price_min", SearchFilters{PriceRange: &PriceRange{Min: -1, Max: 100}}, true},
		{"inverted_price_range", SearchFilters{PriceRange: &PriceRange{Min: 200, Max: 100}}, true},
		{"rating_out_of_range", SearchFilters{MinRating: &badRating}, true},
		{"rating_in_range", SearchFilters{MinRating: &goodRating}, false},
		{"negative_distance", SearchFilters{MaxDistanceKm: -3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filters.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchFiltersQueryTokens(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Pizza", []string{"pizza"}},
		{"multi_whitespace", "  pizza   napolitana ", []string{"pizza", "napolitana"}},
		{"short_tokens_dropped", "a la olla", []string{"la", "olla"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SearchFilters{Query: tt.query}.QueryTokens())
		})
	}
}
