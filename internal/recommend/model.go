package recommend

import "swaad/internal/llm"

// FoodSuggestions is the validated response for one restaurant. Every
// menu item name in it exists verbatim on the restaurant's menu; every
// custom food passed the user's dietary constraints.
type FoodSuggestions struct {
	RestaurantID   string                  `json:"restaurant_id"`
	RestaurantName string                  `json:"restaurant_name"`
	Cuisine        string                  `json:"cuisine"`
	MenuItems      []llm.SuggestedMenuItem `json:"menu_items"`
	CustomFoods    []llm.CustomFood        `json:"custom_foods"`
}

// UserRecommendations is the validated cross-restaurant response.
type UserRecommendations struct {
	Text             string               `json:"text"`
	Recommendations  []llm.Recommendation `json:"recommendations"`
	FollowUpQuestion string               `json:"follow_up_question"`
}
