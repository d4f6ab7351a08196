package ingredient

import "fmt"

// vocabulary is the seed ingredient set, grouped by category. The importer
// writes these rows once; identifiers are positional and stable.
var vocabulary = []struct {
	category string
	names    []string
}{
	{CategoryProtein, []string{
		"chicken", "beef", "pork", "lamb", "fish", "shrimp", "tofu", "eggs", "turkey",
	}},
	{CategoryVegetable, []string{
		"tomato", "lettuce", "onion", "garlic", "bell pepper", "carrot", "broccoli",
		"spinach", "mushroom", "cucumber", "zucchini", "potato", "sweet potato",
	}},
	{CategoryGrain, []string{
		"rice", "pasta", "bread", "quinoa", "couscous", "noodles", "tortilla",
	}},
	{CategoryDairy, []string{
		"cheese", "milk", "cream", "yogurt", "butter",
	}},
	{CategorySpiceHerb, []string{
		"salt", "pepper", "cumin", "coriander", "basil", "oregano", "thyme", "rosemary",
		"cilantro", "parsley", "mint", "ginger", "turmeric", "cinnamon", "paprika",
	}},
	{CategoryFruit, []string{
		"lemon", "lime", "orange", "apple", "banana", "avocado", "mango", "pineapple",
	}},
	{CategoryOther, []string{
		"olive oil", "vinegar", "soy sauce", "honey", "maple syrup", "flour", "sugar",
		"nuts", "beans", "chickpeas", "lentils",
	}},
}

// DefaultVocabulary returns the seed ingredient list with stable ids.
func DefaultVocabulary() []Ingredient {
	var out []Ingredient
	i := 0
	for _, group := range vocabulary {
		for _, name := range group.names {
			out = append(out, Ingredient{
				ID:       fmt.Sprintf("ing_%03d", i),
				Name:     name,
				Category: group.category,
			})
			i++
		}
	}
	return out
}
