package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vicholitvak/moai-search/internal/models"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate the recommendation buckets",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer a.Close()

		flags := cmd.Flags()
		timeOfDay, _ := flags.GetString("time-of-day")
		preferences, _ := flags.GetStringSlice("preferences")
		dietary, _ := flags.GetStringSlice("dietary")
		budgetMin, _ := flags.GetFloat64("budget-min")
		budgetMax, _ := flags.GetFloat64("budget-max")
		limit, _ := flags.GetInt("limit")
		userID, _ := flags.GetString("user")

		if userID != "" {
			printJSON(a.recommend.GetDishRecommendations(ctx, userID, limit))
			return
		}

		opts := models.RecommendationOptions{
			TimeOfDay:           models.MealPeriod(timeOfDay),
			UserPreferences:     preferences,
			DietaryRestrictions: dietary,
			Limit:               limit,
		}
		if budgetMax > 0 {
			opts.Budget = &models.PriceRange{Min: budgetMin, Max: budgetMax}
		}
		printJSON(a.recommend.GetRecommendations(ctx, opts))
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar <dish-id>",
	Short: "List dishes similar to a reference dish",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer a.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		printJSON(a.recommend.GetSimilarDishes(ctx, args[0], limit))
	},
}

func init() {
	recommendCmd.Flags().String("time-of-day", "", "Meal period override (breakfast, lunch, dinner, late_night)")
	recommendCmd.Flags().StringSlice("preferences", nil, "Preferred categories or tags")
	recommendCmd.Flags().StringSlice("dietary", nil, "Dietary restriction keywords")
	recommendCmd.Flags().Float64("budget-min", 0, "Minimum budget in CLP")
	recommendCmd.Flags().Float64("budget-max", 0, "Maximum budget in CLP (0 disables)")
	recommendCmd.Flags().Int("limit", 0, "Per-bucket limit override")
	recommendCmd.Flags().String("user", "", "User ID for personalized dish recommendations")

	similarCmd.Flags().Int("limit", 6, "Maximum similar dishes")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(similarCmd)
}
