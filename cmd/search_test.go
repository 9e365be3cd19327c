package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicholitvak/moai-search/internal/models"
)

func TestSearchFlagDefaults(t *testing.T) {
	sortFlag := searchCmd.Flags().Lookup("sort")
	require.NotNil(t, sortFlag)
	assert.Equal(t, string(models.SortRelevance), sortFlag.DefValue)
	assert.True(t, models.SortKey(sortFlag.DefValue).Valid())
}

func TestFiltersFromFlags(t *testing.T) {
	require.NoError(t, searchCmd.Flags().Set("query", "pizza"))
	require.NoError(t, searchCmd.Flags().Set("price-max", "12000"))
	t.Cleanup(func() {
		_ = searchCmd.Flags().Set("query", "")
		_ = searchCmd.Flags().Set("price-max", "0")
	})

	filters, err := filtersFromFlags(searchCmd)

	require.NoError(t, err)
	assert.Equal(t, "pizza", filters.Query)
	assert.Equal(t, models.SortRelevance, filters.SortBy)
	require.NotNil(t, filters.PriceRange)
	assert.Equal(t, 12000.0, filters.PriceRange.Max)
	assert.Nil(t, filters.Location)
}
