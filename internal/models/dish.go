package models

import "time"

type Dish struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	Tags            []string   `json:"tags"`
	Ingredients     []string   `json:"ingredients"`
	Allergens       []string   `json:"allergens"`
	Price           float64    `json:"price"`
	Rating          float64    `json:"rating"`
	ReviewCount     int        `json:"review_count"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	IsAvailable     bool       `json:"is_available"`
	CookerID        string     `json:"cooker_id"`
	CookerName      string     `json:"cooker_name"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
}

// ScoredDish is a dish decorated with per-request relevance data. The score
// only orders results within a single call and is never persisted.
type ScoredDish struct {
	Dish
	Score                    float64  `json:"score"`
	MatchReasons             []string `json:"match_reasons,omitempty"`
	DistanceKm               *float64 `json:"distance_km,omitempty"`
	DeliveryFee              float64  `json:"delivery_fee,omitempty"`
	EstimatedDeliveryMinutes int      `json:"estimated_delivery_minutes,omitempty"`
}
