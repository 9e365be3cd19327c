package search

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vicholitvak/moai-search/internal/analytics"
	"github.com/vicholitvak/moai-search/internal/catalog"
	"github.com/vicholitvak/moai-search/internal/geo"
	"github.com/vicholitvak/moai-search/internal/models"
)

// Engine is the search entry point. Search never returns an error or panics:
// any failure, upstream or internal, degrades to an empty but well-formed
// result. Each call is a pure function of the catalog snapshot and filters,
// so concurrent calls need no locking here.
type Engine struct {
	catalog   catalog.CatalogAccess
	pipeline  *Pipeline
	facets    *Aggregator
	counter   QueryCounter
	publisher *analytics.Publisher
	log       *zap.Logger
}

type EngineOption func(*Engine)

// WithQueryCounter injects the counter store that records query terms.
func WithQueryCounter(counter QueryCounter) EngineOption {
	return func(e *Engine) { e.counter = counter }
}

// WithPublisher injects a best-effort search event sink.
func WithPublisher(publisher *analytics.Publisher) EngineOption {
	return func(e *Engine) { e.publisher = publisher }
}

func NewEngine(cat catalog.CatalogAccess, geoSvc geo.Service, log *zap.Logger, opts ...EngineOption) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		catalog:  cat,
		pipeline: NewPipeline(cat, geoSvc, log),
		facets:   NewAggregator(cat, log),
		counter:  NopQueryCounter{},
		log:      log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Search runs the full pipeline: filter, score, sort, facet, suggest.
// Scoring always runs, even for non-relevance sorts, because the match
// reasons feed the UI.
func (e *Engine) Search(ctx context.Context, filters models.SearchFilters) (result models.SearchResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("search panicked, returning empty result", zap.Any("panic", r))
			result = e.emptyResult(start)
		}
	}()

	if err := filters.Validate(); err != nil {
		e.log.Warn("rejecting malformed search filters", zap.Error(err))
		return e.emptyResult(start)
	}

	dishes, err := e.catalog.GetAllDishes(ctx)
	if err != nil {
		e.log.Error("catalog fetch failed", zap.Error(err))
		return e.emptyResult(start)
	}

	filtered := e.pipeline.Apply(ctx, dishes, filters)
	ScoreDishes(filtered, filters)
	SortDishes(filtered, filters.SortBy)
	facets := e.facets.Aggregate(ctx, filtered)

	for _, token := range filters.QueryTokens() {
		e.counter.Record(token)
	}

	result = models.SearchResult{
		Dishes:       filtered,
		TotalResults: len(filtered),
		Facets:       facets,
		Suggestions:  e.suggest(filters.Query),
		SearchTimeMs: time.Since(start).Milliseconds(),
	}

	e.publish(filters, result)
	return result
}

func (e *Engine) emptyResult(start time.Time) models.SearchResult {
	return models.SearchResult{
		Dishes:       []models.ScoredDish{},
		TotalResults: 0,
		Facets:       e.facets.Aggregate(context.Background(), nil),
		Suggestions:  e.suggest(""),
		SearchTimeMs: time.Since(start).Milliseconds(),
	}
}

func (e *Engine) publish(filters models.SearchFilters, result models.SearchResult) {
	if e.publisher == nil {
		return
	}
	event := analytics.SearchEvent{
		Timestamp:    time.Now().Unix(),
		Query:        filters.Query,
		Category:     filters.Category,
		SortBy:       string(filters.SortBy),
		ResultCount:  result.TotalResults,
		SearchTimeMs: result.SearchTimeMs,
	}
	if filters.PriceRange != nil {
		event.HasPriceFilter = true
	}
	if filters.Location != nil {
		event.HasGeoFilter = true
	}
	e.publisher.Publish(event)
}
