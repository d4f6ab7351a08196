package llm

import (
	"fmt"
	"sort"
	"strings"
)

// Plain-data context passed into prompt builders. Keeping these free of
// other internal packages avoids import cycles between the feature
// services and this package.
type RestaurantContext struct {
	ID      string
	Name    string
	Borough string
	Cuisine string
}

type MenuEntry struct {
	Name        string
	Section     string
	Description string
	Price       float64
}

type PreferenceContext struct {
	DietaryRestrictions []string
	SpiceLevel          string
	PreferredProtein    string
	Avoid               []string
	OtherPreferences    map[string]string
}

type OrderSummary struct {
	RestaurantName string
	Items          []string
}

func (p PreferenceContext) empty() bool {
	return len(p.DietaryRestrictions) == 0 &&
		p.SpiceLevel == "" &&
		p.PreferredProtein == "" &&
		len(p.Avoid) == 0 &&
		len(p.OtherPreferences) == 0
}

// renderPreferences writes the preference block in a fixed order so the
// same inputs always produce the same prompt.
func renderPreferences(b *strings.Builder, pref PreferenceContext) {
	if pref.empty() {
		b.WriteString("The user has no recorded preferences.\n")
		return
	}

	b.WriteString("USER PREFERENCES (hard constraints, never violate them):\n")
	if len(pref.DietaryRestrictions) > 0 {
		fmt.Fprintf(b, "- Dietary restrictions: %s\n", strings.Join(pref.DietaryRestrictions, ", "))
	}
	if pref.SpiceLevel != "" {
		fmt.Fprintf(b, "- Spice level: %s\n", pref.SpiceLevel)
	}
	if pref.PreferredProtein != "" {
		fmt.Fprintf(b, "- Preferred protein: %s\n", pref.PreferredProtein)
	}
	if len(pref.Avoid) > 0 {
		fmt.Fprintf(b, "- Avoid at all costs: %s\n", strings.Join(pref.Avoid, ", "))
	}
	if len(pref.OtherPreferences) > 0 {
		keys := make([]string, 0, len(pref.OtherPreferences))
		for k := range pref.OtherPreferences {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, "- %s: %s\n", k, pref.OtherPreferences[k])
		}
	}
}

func renderMenu(b *strings.Builder, menu []MenuEntry) {
	if len(menu) == 0 {
		b.WriteString("The restaurant has no recorded menu items.\n")
		return
	}

	b.WriteString("MENU:\n")
	for _, m := range menu {
		fmt.Fprintf(b, "- %s", m.Name)
		if m.Section != "" {
			fmt.Fprintf(b, " (%s)", m.Section)
		}
		if m.Price > 0 {
			fmt.Fprintf(b, " $%.2f", m.Price)
		}
		if m.Description != "" {
			fmt.Fprintf(b, ": %s", m.Description)
		}
		b.WriteString("\n")
	}
}

func renderHistory(b *strings.Builder, history []OrderSummary) {
	if len(history) == 0 {
		return
	}

	b.WriteString("RECENT ORDERS (newest first):\n")
	for _, o := range history {
		fmt.Fprintf(b, "- %s: %s\n", o.RestaurantName, strings.Join(o.Items, ", "))
	}
}

func renderQuery(b *strings.Builder, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	fmt.Fprintf(b, "USER REQUEST: %s\n", query)
}

// BuildFoodSuggestionPrompt asks the model to pick menu items from one
// restaurant and to invent a few dishes from its known ingredients.
func BuildFoodSuggestionPrompt(
	rest RestaurantContext,
	menu []MenuEntry,
	ingredients []string,
	pref PreferenceContext,
	history []OrderSummary,
	query string,
) string {

	var b strings.Builder

	b.WriteString("You are a food recommendation engine.\n\n")
	fmt.Fprintf(&b, "RESTAURANT: %s", rest.Name)
	if rest.Cuisine != "" {
		fmt.Fprintf(&b, " (%s cuisine)", rest.Cuisine)
	}
	if rest.Borough != "" {
		fmt.Fprintf(&b, ", %s", rest.Borough)
	}
	b.WriteString("\n\n")

	renderMenu(&b, menu)
	b.WriteString("\n")

	if len(ingredients) > 0 {
		fmt.Fprintf(&b, "AVAILABLE INGREDIENTS: %s\n\n", strings.Join(ingredients, ", "))
	}

	renderPreferences(&b, pref)
	b.WriteString("\n")
	renderHistory(&b, history)
	renderQuery(&b, query)

	b.WriteString(`
Your task:
- Suggest menu items from the MENU above, using EXACT menu item names.
- Suggest custom dishes the kitchen could make from the AVAILABLE INGREDIENTS.
- Every suggestion MUST respect the user preferences.

Output rules:
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

Required JSON schema:
{
  "menu_items": [
    {
      "name": "string (exact menu item name)",
      "reason": "string",
      "modifications": "string"
    }
  ],
  "custom_foods": [
    {
      "name": "string",
      "description": "string",
      "main_ingredients": ["string"],
      "instructions": "string",
      "cooking_time": "string"
    }
  ]
}
`)

	return b.String()
}

// BuildUserRecommendationPrompt asks the model to pick restaurants the
// user has not visited yet.
func BuildUserRecommendationPrompt(
	candidates []RestaurantContext,
	menus map[string][]MenuEntry,
	pref PreferenceContext,
	history []OrderSummary,
	query string,
) string {

	var b strings.Builder

	b.WriteString("You are a restaurant recommendation engine.\n\n")
	b.WriteString("CANDIDATE RESTAURANTS:\n")
	for _, r := range candidates {
		fmt.Fprintf(&b, "- %s", r.Name)
		if r.Cuisine != "" {
			fmt.Fprintf(&b, " (%s)", r.Cuisine)
		}
		if r.Borough != "" {
			fmt.Fprintf(&b, ", %s", r.Borough)
		}
		b.WriteString("\n")
		for _, m := range menus[r.ID] {
			fmt.Fprintf(&b, "    * %s\n", m.Name)
		}
	}
	b.WriteString("\n")

	renderPreferences(&b, pref)
	b.WriteString("\n")
	renderHistory(&b, history)
	renderQuery(&b, query)

	b.WriteString(`
Your task:
- Recommend restaurants from the CANDIDATE RESTAURANTS list above, using EXACT restaurant names.
- Recommend items using EXACT menu item names from that restaurant.
- Every recommendation MUST respect the user preferences.

Output rules:
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

Required JSON schema:
{
  "text": "string (short friendly summary)",
  "recommendations": [
    {
      "restaurant_name": "string (exact restaurant name)",
      "cuisine": "string",
      "recommended_items": ["string (exact menu item names)"],
      "reason": "string"
    }
  ],
  "follow_up_question": "string"
}
`)

	return b.String()
}

// BuildNotesPrompt asks the model for short behavioral insights about
// the user, derived from order history and preferences.
func BuildNotesPrompt(pref PreferenceContext, history []OrderSummary) string {
	var b strings.Builder

	b.WriteString("You are an analyst writing short notes about a food delivery user.\n\n")
	renderPreferences(&b, pref)
	b.WriteString("\n")
	renderHistory(&b, history)

	b.WriteString(`
Your task:
- Write 2 to 5 short insights about this user's eating habits and tastes.
- Each insight is one sentence.

Output rules:
- Output MUST be valid JSON.
- Output MUST start with { and end with }.
- Output MUST contain ONLY JSON.
- NO explanations.
- NO markdown.
- NO extra text.

Required JSON schema:
{
  "notes": ["string"]
}
`)

	return b.String()
}
