package cmd

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vicholitvak/moai-search/internal/analytics"
	"github.com/vicholitvak/moai-search/internal/catalog"
	pgcatalog "github.com/vicholitvak/moai-search/internal/catalog/postgres"
	"github.com/vicholitvak/moai-search/internal/factories"
	"github.com/vicholitvak/moai-search/internal/geo"
	"github.com/vicholitvak/moai-search/internal/models"
	"github.com/vicholitvak/moai-search/internal/recommend"
	"github.com/vicholitvak/moai-search/internal/search"
)

// catalogStore is the full catalog contract: dish/cook reads plus profiles.
type catalogStore interface {
	catalog.CatalogAccess
	catalog.ProfileAccess
}

// app wires the engines from configuration. Commands build one per run.
type app struct {
	cfg       *models.Config
	log       *zap.Logger
	search    *search.Engine
	recommend *recommend.Engine
	closers   []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, log: log}

	store, err := openCatalog(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	var access catalog.CatalogAccess = store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		access = catalog.NewCachedCatalog(access, client, cfg.CacheTTL, log)
		a.closers = append(a.closers, client.Close)
	}

	geoSvc := geo.NewHaversineService(access, geo.DeliveryConfig{
		BaseFee:             cfg.BaseDeliveryFee,
		FeePerKm:            cfg.DeliveryFeePerKm,
		SpeedKmh:            cfg.DeliverySpeedKmh,
		PickupBufferMinutes: cfg.DeliveryPickupBuffer,
	})

	sink, err := analytics.NewSink(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating analytics sink: %w", err)
	}
	a.closers = append(a.closers, sink.Close)
	publisher := analytics.NewPublisher(sink, log)

	a.search = search.NewEngine(access, geoSvc, log,
		search.WithQueryCounter(search.NewMemoryQueryCounter()),
		search.WithPublisher(publisher),
	)
	a.recommend = recommend.NewEngine(access, store, log)

	return a, nil
}

func (a *app) Close() {
	for _, closer := range a.closers {
		if err := closer(); err != nil {
			a.log.Warn("close failed", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(lvl)
	return logConfig.Build()
}

func openCatalog(ctx context.Context, cfg *models.Config, log *zap.Logger) (catalogStore, error) {
	if cfg.PostgresDSN != "" {
		return pgcatalog.NewCatalog(ctx, cfg.PostgresDSN)
	}
	log.Info("no postgres DSN configured, generating demo catalog",
		zap.Int("dishes", cfg.InitialDishes), zap.Int("cooks", cfg.InitialCooks))
	return demoCatalog(cfg), nil
}

// demoCatalog builds an in-memory catalog from the factories, deterministic
// for a fixed seed.
func demoCatalog(cfg *models.Config) *catalog.StaticCatalog {
	rand.Seed(cfg.Seed)

	cookFactory := &factories.CookFactory{}
	dishFactory := &factories.DishFactory{}

	cooks := make([]models.Cook, 0, cfg.InitialCooks)
	for i := 0; i < cfg.InitialCooks; i++ {
		cooks = append(cooks, *cookFactory.CreateCook(cfg))
	}

	dishes := make([]models.Dish, 0, cfg.InitialDishes)
	for i := 0; i < cfg.InitialDishes; i++ {
		cook := cooks[rand.Intn(len(cooks))]
		dishes = append(dishes, *dishFactory.CreateDish(&cook))
	}

	return catalog.NewStaticCatalog(catalog.NormalizeDishes(dishes), catalog.NormalizeCooks(cooks))
}
