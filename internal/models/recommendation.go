package models

type MealPeriod string

const (
	MealBreakfast MealPeriod = "breakfast"
	MealLunch     MealPeriod = "lunch"
	MealDinner    MealPeriod = "dinner"
	MealLateNight MealPeriod = "late_night"
)

// MealPeriodForHour classifies a wall-clock hour into one of the four meal
// periods: 06-10 breakfast, 11-15 lunch, 16-22 dinner, 23-05 late night.
func MealPeriodForHour(hour int) MealPeriod {
	switch {
	case hour >= 6 && hour <= 10:
		return MealBreakfast
	case hour >= 11 && hour <= 15:
		return MealLunch
	case hour >= 16 && hour <= 22:
		return MealDinner
	default:
		return MealLateNight
	}
}

type RecommendationOptions struct {
	TimeOfDay           MealPeriod  `json:"time_of_day,omitempty"` // empty means derive from the clock
	UserPreferences     []string    `json:"user_preferences,omitempty"`
	Location            *Location   `json:"location,omitempty"`
	Budget              *PriceRange `json:"budget,omitempty"`
	DietaryRestrictions []string    `json:"diet_restrictions,omitempty"`
	PreviousOrders      []string    `json:"previous_orders,omitempty"`
	Limit               int         `json:"limit,omitempty"` // per-bucket override, 0 keeps defaults
}

type RecommendedDish struct {
	Dish
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// RecommendationResult carries the eight independently capped buckets.
type RecommendationResult struct {
	TimeOfDay      MealPeriod        `json:"time_of_day"`
	Featured       []RecommendedDish `json:"featured"`
	Trending       []RecommendedDish `json:"trending"`
	Popular        []RecommendedDish `json:"popular"`
	NearYou        []RecommendedDish `json:"near_you"`
	ForYou         []RecommendedDish `json:"for_you"`
	NewAndExciting []RecommendedDish `json:"new_and_exciting"`
	QuickBites     []RecommendedDish `json:"quick_bites"`
	PremiumPicks   []RecommendedDish `json:"premium_picks"`
}

// DishRecommendation is one entry of the personalized recommendation list.
// MatchType is single-valued: the last bonus stage that fires overwrites it.
type DishRecommendation struct {
	DishID     string   `json:"dish_id"`
	Score      float64  `json:"score"`
	MatchType  string   `json:"match_type"`
	Reasons    []string `json:"reasons"`
	Confidence float64  `json:"confidence"`
}

type CookRecommendation struct {
	CookID     string   `json:"cook_id"`
	Score      float64  `json:"score"`
	MatchType  string   `json:"match_type"`
	Reasons    []string `json:"reasons"`
	Confidence float64  `json:"confidence"`
}

type CategoryStat struct {
	Category  string  `json:"category"`
	DishCount int     `json:"dish_count"`
	AvgRating float64 `json:"avg_rating"`
}
