package models

import (
	"fmt"
	"strings"
)

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortPriceLow  SortKey = "price_low"
	SortPriceHigh SortKey = "price_high"
	SortRating    SortKey = "rating"
	SortPrepTime  SortKey = "prep_time"
	SortDistance  SortKey = "distance"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortRelevance, SortPriceLow, SortPriceHigh, SortRating, SortPrepTime, SortDistance:
		return true
	}
	return false
}

const DefaultMaxDistanceKm = 15.0

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type SearchFilters struct {
	Query            string      `json:"query,omitempty"`
	Category         string      `json:"category,omitempty"`
	PriceRange       *PriceRange `json:"price_range,omitempty"`
	MinRating        *float64    `json:"min_rating,omitempty"`
	PrepTimeBucket   string      `json:"prep_time,omitempty"` // "15 min", "30 min", ... or "60+"
	Dietary          []string    `json:"dietary,omitempty"`
	ExcludeAllergens []string    `json:"allergens,omitempty"`
	CookingStyle     string      `json:"cooking_style,omitempty"`
	Location         *Location   `json:"location,omitempty"`
	MaxDistanceKm    float64     `json:"max_distance_km,omitempty"`
	SortBy           SortKey     `json:"sort_by,omitempty"`
	Availability     *bool       `json:"availability,omitempty"`
}

// ParsePrepTimeBucket interprets the prep-time filter value. "X min" means
// prepTime <= X; "60+" means prepTime >= 60. An empty value is a no-op.
func ParsePrepTimeBucket(s string) (maxMinutes int, openEnded bool, err error) {
	if s == "" {
		return 0, false, nil
	}
	if s == "60+" {
		return 60, true, nil
	}
	var minutes int
	if _, err := fmt.Sscanf(s, "%d min", &minutes); err != nil || minutes <= 0 {
		return 0, false, &ConfigurationError{Field: "prep_time", Detail: fmt.Sprintf("unrecognised bucket %q", s)}
	}
	return minutes, false, nil
}

// Validate rejects malformed filter values at the engine boundary. Unset
// dimensions are always valid.
func (f SearchFilters) Validate() error {
	if f.SortBy != "" && !f.SortBy.Valid() {
		return &ConfigurationError{Field: "sort_by", Detail: fmt.Sprintf("unknown sort key %q", f.SortBy)}
	}
	if _, _, err := ParsePrepTimeBucket(f.PrepTimeBucket); err != nil {
		return err
	}
	if f.PriceRange != nil {
		if f.PriceRange.Min < 0 {
			return &ConfigurationError{Field: "price_range", Detail: "min must be >= 0"}
		}
		if f.PriceRange.Min > f.PriceRange.Max {
			return &ConfigurationError{Field: "price_range", Detail: "min greater than max"}
		}
	}
	if f.MinRating != nil && (*f.MinRating < 0 || *f.MinRating > 5) {
		return &ConfigurationError{Field: "min_rating", Detail: "must be between 0 and 5"}
	}
	if f.MaxDistanceKm < 0 {
		return &ConfigurationError{Field: "max_distance_km", Detail: "must be >= 0"}
	}
	return nil
}

// QueryTokens splits the free-text query on whitespace and drops tokens of
// length <= 1, lowercased for case-insensitive matching.
func (f SearchFilters) QueryTokens() []string {
	var tokens []string
	for _, t := range strings.Fields(strings.ToLower(f.Query)) {
		if len(t) > 1 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

type PriceBandCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type Facets struct {
	Categories    map[string]int   `json:"categories"`
	PriceBands    []PriceBandCount `json:"price_bands"`
	Ratings       map[int]int      `json:"ratings"`
	CookingStyles map[string]int   `json:"cooking_styles"`
	Dietary       map[string]int   `json:"dietary"`
	PrepTime      map[string]int   `json:"prep_time"`
}

type SearchResult struct {
	Dishes       []ScoredDish `json:"dishes"`
	TotalResults int          `json:"total_results"`
	Facets       Facets       `json:"facets"`
	Suggestions  []string     `json:"suggestions"`
	SearchTimeMs int64        `json:"search_time_ms"`
}
