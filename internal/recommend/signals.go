package recommend

import (
	"math"
	"math/rand"
	"time"

	"github.com/vicholitvak/moai-search/internal/models"
)

const newDishWindow = 7 * 24 * time.Hour

// signals holds the stochastic per-dish scores recomputed on every call.
// The jitters are documented placeholders for real telemetry (order
// velocity, live geolocation) that is not wired here; the random source is
// injected so tests can freeze it.
type signals struct {
	popularity float64
	trending   float64
	isNew      bool
	isPremium  bool
	isQuick    bool
}

func computeSignals(d models.Dish, now time.Time, rng *rand.Rand) signals {
	sig := signals{
		isPremium: d.Price > 15000 && d.Rating >= 4.5,
		isQuick:   d.PrepTimeMinutes <= 20,
	}

	if d.CreatedAt != nil {
		sig.isNew = now.Sub(*d.CreatedAt) <= newDishWindow
	} else {
		// no creation date recorded: 10% random fallback
		sig.isNew = rng.Float64() < 0.1
	}

	sig.popularity = d.Rating*20 + math.Min(float64(d.ReviewCount)*2, 40) + rng.Float64()*40

	sig.trending = rng.Float64() * 100
	if d.Rating >= 4.5 {
		sig.trending += 20
	}
	if sig.isNew {
		sig.trending += 30
	}

	return sig
}
