package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	pgcatalog "github.com/vicholitvak/moai-search/internal/catalog/postgres"
	"github.com/vicholitvak/moai-search/internal/factories"
	"github.com/vicholitvak/moai-search/internal/models"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the Postgres catalog with generated dishes and cooks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if cfg.PostgresDSN == "" {
			return fmt.Errorf("seed requires postgres_dsn")
		}

		store, err := pgcatalog.NewCatalog(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}

		truncate, _ := cmd.Flags().GetBool("truncate")
		if truncate {
			if err := store.Dishes.DeleteAll(ctx); err != nil {
				return err
			}
			if err := store.Cooks.DeleteAll(ctx); err != nil {
				return err
			}
		}

		rand.Seed(cfg.Seed)
		cookFactory := &factories.CookFactory{}
		dishFactory := &factories.DishFactory{}

		cooks := make([]*models.Cook, 0, cfg.InitialCooks)
		bar := progressbar.Default(int64(cfg.InitialCooks), "generating cooks")
		for i := 0; i < cfg.InitialCooks; i++ {
			cooks = append(cooks, cookFactory.CreateCook(cfg))
			bar.Add(1)
		}
		if err := store.Cooks.BulkCreate(ctx, cooks); err != nil {
			return fmt.Errorf("failed to insert cooks: %w", err)
		}

		dishes := make([]*models.Dish, 0, cfg.InitialDishes)
		bar = progressbar.Default(int64(cfg.InitialDishes), "generating dishes")
		for i := 0; i < cfg.InitialDishes; i++ {
			cook := cooks[rand.Intn(len(cooks))]
			dishes = append(dishes, dishFactory.CreateDish(cook))
			bar.Add(1)
		}
		if err := store.Dishes.BulkCreate(ctx, dishes); err != nil {
			return fmt.Errorf("failed to insert dishes: %w", err)
		}

		fmt.Fprintf(os.Stdout, "seeded %d cooks and %d dishes\n", len(cooks), len(dishes))
		return nil
	},
}

func init() {
	seedCmd.Flags().Bool("truncate", false, "Delete existing rows before seeding")
	rootCmd.AddCommand(seedCmd)
}
