package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vicholitvak/moai-search/internal/models"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the dish catalog",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer a.Close()

		filters, err := filtersFromFlags(cmd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		result := a.search.Search(ctx, filters)
		printJSON(result)
	},
}

func init() {
	searchCmd.Flags().String("query", "", "Free-text query")
	searchCmd.Flags().String("category", "", "Category filter")
	searchCmd.Flags().Float64("price-min", 0, "Minimum price in CLP")
	searchCmd.Flags().Float64("price-max", 0, "Maximum price in CLP (0 disables the price filter)")
	searchCmd.Flags().Float64("min-rating", 0, "Minimum rating (0 disables)")
	searchCmd.Flags().String("prep-time", "", `Prep time bucket ("15 min", "30 min", "45 min", "60+")`)
	searchCmd.Flags().StringSlice("dietary", nil, "Dietary keywords, all results must match at least one")
	searchCmd.Flags().StringSlice("exclude-allergens", nil, "Allergens to exclude")
	searchCmd.Flags().String("cooking-style", "", "Cooking style of the dish's cook")
	searchCmd.Flags().Float64("lat", 0, "Search origin latitude")
	searchCmd.Flags().Float64("lon", 0, "Search origin longitude")
	searchCmd.Flags().Float64("max-distance", models.DefaultMaxDistanceKm, "Search radius in km")
	searchCmd.Flags().String("sort", string(models.SortRelevance), "Sort key (relevance, price_low, price_high, rating, prep_time, distance)")

	rootCmd.AddCommand(searchCmd)
}

func filtersFromFlags(cmd *cobra.Command) (models.SearchFilters, error) {
	flags := cmd.Flags()

	query, _ := flags.GetString("query")
	category, _ := flags.GetString("category")
	priceMin, _ := flags.GetFloat64("price-min")
	priceMax, _ := flags.GetFloat64("price-max")
	minRating, _ := flags.GetFloat64("min-rating")
	prepTime, _ := flags.GetString("prep-time")
	dietary, _ := flags.GetStringSlice("dietary")
	allergens, _ := flags.GetStringSlice("exclude-allergens")
	cookingStyle, _ := flags.GetString("cooking-style")
	sortBy, _ := flags.GetString("sort")

	filters := models.SearchFilters{
		Query:            query,
		Category:         category,
		PrepTimeBucket:   prepTime,
		Dietary:          dietary,
		ExcludeAllergens: allergens,
		CookingStyle:     cookingStyle,
		SortBy:           models.SortKey(sortBy),
	}

	if priceMax > 0 {
		filters.PriceRange = &models.PriceRange{Min: priceMin, Max: priceMax}
	}
	if minRating > 0 {
		filters.MinRating = &minRating
	}
	if flags.Changed("lat") || flags.Changed("lon") {
		lat, _ := flags.GetFloat64("lat")
		lon, _ := flags.GetFloat64("lon")
		filters.Location = &models.Location{Lat: lat, Lon: lon}
		maxDistance, _ := flags.GetFloat64("max-distance")
		filters.MaxDistanceKm = maxDistance
	}

	return filters, filters.Validate()
}

func printJSON(v interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
