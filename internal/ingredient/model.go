package ingredient

// Ingredient is immutable once created; the category set is closed.
type Ingredient struct {
	ID       string `json:"ingredient_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

const (
	CategoryProtein   = "protein"
	CategoryVegetable = "vegetable"
	CategoryGrain     = "grain"
	CategoryDairy     = "dairy"
	CategorySpiceHerb = "spice_herb"
	CategoryFruit     = "fruit"
	CategoryOther     = "other"
)

var validCategories = map[string]bool{
	CategoryProtein:   true,
	CategoryVegetable: true,
	CategoryGrain:     true,
	CategoryDairy:     true,
	CategorySpiceHerb: true,
	CategoryFruit:     true,
	CategoryOther:     true,
}

func ValidCategory(category string) bool {
	return validCategories[category]
}

// PopularIngredient is an ingredient ranked by how many distinct
// restaurants offer it.
type PopularIngredient struct {
	Ingredient
	RestaurantCount int `json:"restaurant_count"`
}

// Link is one row of the restaurant->ingredient relation.
type Link struct {
	RestaurantID   string
	RestaurantName string
	Cuisine        string
	Ingredient     Ingredient
}

// RestaurantMatch is a search result row. MatchCount is the exact size of
// the intersection between requested and offered ingredient names.
type RestaurantMatch struct {
	RestaurantID       string   `json:"restaurant_id"`
	Name               string   `json:"name"`
	Cuisine            string   `json:"cuisine"`
	MatchCount         int      `json:"match_count"`
	MatchedIngredients []string `json:"matched_ingredients"`
}
