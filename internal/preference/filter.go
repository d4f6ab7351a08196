package preference

import "strings"

// restrictionTable maps a dietary restriction tag to the ingredient and
// keyword names it forbids. The table is static and inspectable; it is
// never inferred from model output. Unknown tags forbid nothing.
var restrictionTable = map[string][]string{
	"vegetarian": {
		"chicken", "beef", "pork", "lamb", "fish", "shrimp", "turkey",
		"meat", "bacon", "ham", "anchovy", "gelatin",
	},
	"vegan": {
		"chicken", "beef", "pork", "lamb", "fish", "shrimp", "turkey",
		"meat", "bacon", "ham", "anchovy", "gelatin",
		"cheese", "milk", "cream", "yogurt", "butter", "eggs", "honey",
	},
	"pescatarian": {
		"chicken", "beef", "pork", "lamb", "turkey", "bacon", "ham",
	},
	"gluten-free": {
		"pasta", "bread", "flour", "noodles", "couscous", "tortilla",
		"wheat", "soy sauce",
	},
	"dairy-free": {
		"cheese", "milk", "cream", "yogurt", "butter",
	},
	"halal": {
		"pork", "bacon", "ham",
	},
	"kosher": {
		"pork", "bacon", "ham", "shrimp",
	},
}

// IsCompatible is the single enforcement point for dietary constraints.
// It returns false when any candidate ingredient matches an avoid entry
// or a keyword forbidden by one of the user's dietary restrictions.
// Every generative candidate passes through here before it may appear in
// a response; model output is never trusted to respect constraints.
func IsCompatible(candidateIngredients []string, pref Preference) bool {
	if len(candidateIngredients) == 0 {
		return true
	}

	forbidden := make([]string, 0, len(pref.Avoid))
	for _, entry := range pref.Avoid {
		forbidden = append(forbidden, strings.ToLower(strings.TrimSpace(entry)))
	}
	for _, restriction := range pref.DietaryRestrictions {
		tag := normalizeRestriction(restriction)
		forbidden = append(forbidden, restrictionTable[tag]...)
	}

	for _, candidate := range candidateIngredients {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if candidate == "" {
			continue
		}
		for _, bad := range forbidden {
			if bad == "" {
				continue
			}
			// substring in either direction so "mushrooms" matches
			// "mushroom" and "wild mushroom" matches "mushroom"
			if strings.Contains(candidate, bad) || strings.Contains(bad, candidate) {
				return false
			}
		}
	}

	return true
}

// Forbidden returns the keyword list for one restriction tag. Exposed so
// callers can render the active constraints into prompts.
func Forbidden(restriction string) []string {
	return restrictionTable[normalizeRestriction(restriction)]
}

func normalizeRestriction(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	return strings.ReplaceAll(tag, "_", "-")
}
