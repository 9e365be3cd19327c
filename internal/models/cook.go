package models

type Cook struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	Rating       float64  `json:"rating"`
	CookingStyle string   `json:"cooking_style"`
	Location     Location `json:"location"`
	IsActive     bool     `json:"is_active"`
}

// UserProfile holds the per-user signals consumed by the personalized
// recommendation path. It is assembled by ProfileAccess implementations.
type UserProfile struct {
	UserID              string   `json:"user_id"`
	FavoriteCategories  []string `json:"favorite_categories"`
	FavoriteCookIDs     []string `json:"favorite_cook_ids"`
	OrderedDishIDs      []string `json:"ordered_dish_ids"`
	DietaryRestrictions []string `json:"diet_restrictions"`
}
