package recommend

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vicholitvak/moai-search/internal/catalog"
	"github.com/vicholitvak/moai-search/internal/models"
)

// Bucket reason labels.
const (
	reasonFeatured   = "Ideal para esta hora del día"
	reasonTrending   = "Tendencia ahora"
	reasonPopular    = "Popular entre los clientes"
	reasonNearYou    = "Cerca de ti"
	reasonForYou     = "Basado en tus preferencias"
	reasonTopRated   = "Muy bien evaluado"
	reasonNew        = "Nuevo en Moai"
	reasonPremium    = "Selección premium"
	quickBiteFormat  = "Listo en %d minutos"
)

// BucketLimits caps each of the eight buckets independently.
type BucketLimits struct {
	Featured       int
	Trending       int
	Popular        int
	NearYou        int
	ForYou         int
	NewAndExciting int
	QuickBites     int
	PremiumPicks   int
}

func DefaultBucketLimits() BucketLimits {
	return BucketLimits{
		Featured:       8,
		Trending:       8,
		Popular:        8,
		NearYou:        6,
		ForYou:         8,
		NewAndExciting: 6,
		QuickBites:     6,
		PremiumPicks:   6,
	}
}

// Engine generates the recommendation buckets and the personalized lists.
// Every call consumes a fresh catalog snapshot and a private random draw;
// there is no shared mutable state, so concurrent calls are independent.
type Engine struct {
	catalog  catalog.CatalogAccess
	profiles catalog.ProfileAccess
	limits   BucketLimits
	newRand  func() *rand.Rand
	now      func() time.Time
	log      *zap.Logger
}

type Option func(*Engine)

// WithRandSource fixes the per-call random generator, letting tests freeze
// the stochastic signals.
func WithRandSource(newRand func() *rand.Rand) Option {
	return func(e *Engine) { e.newRand = newRand }
}

// WithClock overrides the wall clock used for time-of-day classification.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithBucketLimits(limits BucketLimits) Option {
	return func(e *Engine) { e.limits = limits }
}

func NewEngine(cat catalog.CatalogAccess, profiles catalog.ProfileAccess, log *zap.Logger, opts ...Option) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Engine{
		catalog:  cat,
		profiles: profiles,
		limits:   DefaultBucketLimits(),
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now: time.Now,
		log: log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// scoredCandidate pairs a dish with the stochastic signals of this call.
type scoredCandidate struct {
	dish models.Dish
	sig  signals
}

// GetRecommendations builds the eight buckets. Like search, it never
// returns an error: a failed catalog fetch yields empty buckets.
func (e *Engine) GetRecommendations(ctx context.Context, opts models.RecommendationOptions) models.RecommendationResult {
	now := e.now()
	period := opts.TimeOfDay
	if period == "" {
		period = models.MealPeriodForHour(now.Hour())
	}
	result := emptyResult(period)

	dishes, err := e.catalog.GetAllDishes(ctx)
	if err != nil {
		e.log.Error("catalog fetch failed, returning empty recommendations", zap.Error(err))
		return result
	}

	rng := e.newRand()
	pool := e.buildPool(dishes, opts, now, rng)
	limits := e.effectiveLimits(opts.Limit)

	result.Featured = e.featured(pool, period, limits.Featured)
	result.Trending = e.trending(pool, limits.Trending)
	result.Popular = e.popular(pool, limits.Popular)
	result.NearYou = e.nearYou(pool, rng, limits.NearYou)
	result.ForYou = e.forYou(pool, period, opts.UserPreferences, limits.ForYou)
	result.NewAndExciting = e.newAndExciting(pool, limits.NewAndExciting)
	result.QuickBites = e.quickBites(pool, limits.QuickBites)
	result.PremiumPicks = e.premiumPicks(pool, limits.PremiumPicks)

	return result
}

func emptyResult(period models.MealPeriod) models.RecommendationResult {
	return models.RecommendationResult{
		TimeOfDay:      period,
		Featured:       []models.RecommendedDish{},
		Trending:       []models.RecommendedDish{},
		Popular:        []models.RecommendedDish{},
		NearYou:        []models.RecommendedDish{},
		ForYou:         []models.RecommendedDish{},
		NewAndExciting: []models.RecommendedDish{},
		QuickBites:     []models.RecommendedDish{},
		PremiumPicks:   []models.RecommendedDish{},
	}
}

func (e *Engine) effectiveLimits(override int) BucketLimits {
	if override <= 0 {
		return e.limits
	}
	return BucketLimits{
		Featured:       override,
		Trending:       override,
		Popular:        override,
		NearYou:        override,
		ForYou:         override,
		NewAndExciting: override,
		QuickBites:     override,
		PremiumPicks:   override,
	}
}

// buildPool applies the cross-bucket constraints (availability, budget,
// dietary restrictions) and computes every dish's signals for this call.
func (e *Engine) buildPool(dishes []models.Dish, opts models.RecommendationOptions, now time.Time, rng *rand.Rand) []scoredCandidate {
	pool := make([]scoredCandidate, 0, len(dishes))
	for _, d := range dishes {
		if !d.IsAvailable {
			continue
		}
		if opts.Budget != nil && (d.Price < opts.Budget.Min || d.Price > opts.Budget.Max) {
			continue
		}
		if len(opts.DietaryRestrictions) > 0 && !matchesAnyKeyword(d, opts.DietaryRestrictions) {
			continue
		}
		pool = append(pool, scoredCandidate{dish: d, sig: computeSignals(d, now, rng)})
	}
	return pool
}

func matchesAnyKeyword(d models.Dish, keywords []string) bool {
	description := strings.ToLower(d.Description)
	for _, keyword := range keywords {
		needle := strings.ToLower(keyword)
		if needle == "" {
			continue
		}
		if strings.Contains(description, needle) {
			return true
		}
		for _, tag := range d.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

func (e *Engine) featured(pool []scoredCandidate, period models.MealPeriod, limit int) []models.RecommendedDish {
	var picks []scoredCandidate
	for _, c := range pool {
		if c.dish.Rating >= 4.0 && isTimeRelevant(c.dish, period) {
			picks = append(picks, c)
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return featuredScore(picks[i].dish) > featuredScore(picks[j].dish)
	})
	return takeWithScore(picks, limit, func(c scoredCandidate) (float64, []string) {
		return featuredScore(c.dish), []string{reasonFeatured}
	})
}

func featuredScore(d models.Dish) float64 {
	return d.Rating*100 + float64(d.ReviewCount)
}

func (e *Engine) trending(pool []scoredCandidate, limit int) []models.RecommendedDish {
	picks := append([]scoredCandidate{}, pool...)
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].sig.trending > picks[j].sig.trending
	})
	return takeWithScore(picks, limit, func(c scoredCandidate) (float64, []string) {
		return c.sig.trending, []string{reasonTrending}
	})
}

func (e *Engine) popular(pool []scoredCandidate, limit int) []models.RecommendedDish {
	picks := append([]scoredCandidate{}, pool...)
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].sig.popularity > picks[j].sig.popularity
	})
	return takeWithScore(picks, limit, func(c scoredCandidate) (float64, []string) {
		return c.sig.popularity, []string{reasonPopular}
	})
}

// nearYou is a placeholder until real geo filtering is wired into the
// recommendation path: it samples roughly 30% of the pool and sorts by
// rating.
func (e *Engine) nearYou(pool []scoredCandidate, rng *rand.Rand, limit int) []models.RecommendedDish {
	var picks []scoredCandidate
	for _, c := range pool {
		if rng.Float64() < 0.3 {
			picks = append(picks, c)
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].dish.Rating > picks[j].dish.Rating
	})
	return takeWithScore(picks, limit, func(c scoredCandidate) (float64, []string) {
		return c.dish.Rating, []string{reasonNearYou}
	})
}

func (e *Engine) forYou(pool []scoredCandidate, period models.MealPeriod, preferences []string, limit int) []models.RecommendedDish {
	var picks []scoredCandidate
	if len(preferences) > 0 {
		for _, c := range pool {
			if isTimeRelevant(c.dish, period) && matchesPreference(c.dish, preferences) {
				picks = append(picks, c)
			}
		}
	}
	reason := reasonForYou
	if len(picks) == 0 {
		// no preference matches: fall back to highly rated dishes
		reason = reasonTopRated
		for _, c := range pool {
			if c.dish.Rating >= 4.2 {
				picks = append(picks, c)
			}
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].dish.Rating > picks[j].dish.Rating
	})
	return takeWithScore(picks, limit, func(c scoredCandidate) (float64, []string) {
		return c.dish.Rating, []string{reason}
	})
}

func matchesPreference(d models.Dish, preferences []string) bool {
	category := strings.ToLower(d.Category)
	for _, pref := range preferences {
		needle := strings.ToLower(pref)
		if needle == "" {
			continue
		}
		if strings.Contains(category, needle) {
			return true
		}
		for _, tag := range d.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

func (e *Engine) newAndExciting(pool []scoredCandidate, limit int) []models.RecommendedDish {
	var picks []scoredCandidate
	for _, c := range pool {
		if c.sig.isNew {
			picks = append(picks, c)
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].dish.Rating > picks[j].dish.Rating
	})
	return takeWithScore(picks, limit, func(c scoredCandidate) (float64, []string) {
		return c.dish.Rating, []string{reasonNew}
	})
}

func (e *Engine) quickBites(pool []scoredCandidate, limit int) []models.RecommendedDish {
	var picks []scoredCandidate
	for _, c := range pool {
		if c.sig.isQuick {
			picks = append(picks, c)
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].dish.PrepTimeMinutes < picks[j].dish.PrepTimeMinutes
	})
	return takeWithScore(picks, limit, func(c scoredCandidate) (float64, []string) {
		return float64(c.dish.PrepTimeMinutes), []string{fmt.Sprintf(quickBiteFormat, c.dish.PrepTimeMinutes)}
	})
}

func (e *Engine) premiumPicks(pool []scoredCandidate, limit int) []models.RecommendedDish {
	var picks []scoredCandidate
	for _, c := range pool {
		if c.sig.isPremium {
			picks = append(picks, c)
		}
	}
	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].dish.Price > picks[j].dish.Price
	})
	return takeWithScore(picks, limit, func(c scoredCandidate) (float64, []string) {
		return c.dish.Price, []string{reasonPremium}
	})
}

func takeWithScore(picks []scoredCandidate, limit int, describe func(scoredCandidate) (float64, []string)) []models.RecommendedDish {
	if limit > len(picks) {
		limit = len(picks)
	}
	out := make([]models.RecommendedDish, 0, limit)
	for _, c := range picks[:limit] {
		score, reasons := describe(c)
		out = append(out, models.RecommendedDish{
			Dish:    c.dish,
			Score:   score,
			Reasons: reasons,
		})
	}
	return out
}
