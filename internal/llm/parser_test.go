package llm

import (
	"errors"
	"strings"
	"testing"

	"swaad/internal/core"
)

func TestExtractJSONFromFencedBlock(t *testing.T) {
	raw := "```json\n{\"menu_items\": []}\n```"

	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != `{"menu_items": []}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractJSONFromChattyPreamble(t *testing.T) {
	raw := "Sure! Here are my picks:\n{\"notes\": [\"likes spicy food\"]}\nHope that helps!"

	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.HasPrefix(got, "{") || !strings.HasSuffix(got, "}") {
		t.Fatalf("extraction not brace-delimited: %q", got)
	}
}

func TestExtractJSONRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"",
		"I could not find anything suitable.",
		"{broken json",
		"{\"unterminated\": ",
	} {
		if _, err := ExtractJSON(raw); !errors.Is(err, core.ErrMalformedUpstreamResponse) {
			t.Fatalf("input %q: expected malformed response error, got %v", raw, err)
		}
	}
}

func TestParseFoodSuggestion(t *testing.T) {
	raw := `{
		"menu_items": [
			{"name": "Paneer Tikka", "reason": "fits vegetarian", "modifications": "less spicy"}
		],
		"custom_foods": [
			{
				"name": "Garlic Rice Bowl",
				"description": "simple bowl",
				"main_ingredients": ["rice", "garlic"],
				"instructions": "fry garlic, add rice",
				"cooking_time": "15 minutes"
			}
		]
	}`

	payload, err := ParseFoodSuggestion(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(payload.MenuItems) != 1 || payload.MenuItems[0].Name != "Paneer Tikka" {
		t.Fatalf("unexpected menu items: %+v", payload.MenuItems)
	}
	if len(payload.CustomFoods) != 1 || payload.CustomFoods[0].MainIngredients[1] != "garlic" {
		t.Fatalf("unexpected custom foods: %+v", payload.CustomFoods)
	}
}

func TestParseFoodSuggestionMissingSectionsBecomeEmpty(t *testing.T) {
	payload, err := ParseFoodSuggestion(`{}`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if payload.MenuItems == nil || payload.CustomFoods == nil {
		t.Fatal("expected empty slices, got nil")
	}
	if len(payload.MenuItems) != 0 || len(payload.CustomFoods) != 0 {
		t.Fatalf("expected empty payload, got %+v", payload)
	}
}

func TestParseRecommendation(t *testing.T) {
	raw := "```json\n" + `{
		"text": "Two spots for you",
		"recommendations": [
			{
				"restaurant_name": "Taj Palace",
				"cuisine": "Indian",
				"recommended_items": ["Dal Makhani"],
				"reason": "matches vegetarian"
			}
		],
		"follow_up_question": "Want dessert ideas too?"
	}` + "\n```"

	payload, err := ParseRecommendation(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if payload.Text == "" || payload.FollowUpQuestion == "" {
		t.Fatalf("missing text fields: %+v", payload)
	}
	if len(payload.Recommendations) != 1 ||
		payload.Recommendations[0].RestaurantName != "Taj Palace" {
		t.Fatalf("unexpected recommendations: %+v", payload.Recommendations)
	}
}

func TestParseNotesFromJSON(t *testing.T) {
	notes, err := ParseNotes(`{"notes": ["prefers mild dishes", "  orders rice often  ", ""]}`)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %v", notes)
	}
	if notes[1] != "orders rice often" {
		t.Fatalf("note not trimmed: %q", notes[1])
	}
}

func TestParseNotesPlainTextFallback(t *testing.T) {
	raw := "- prefers mild dishes\n- 2. orders rice often\n\n"

	notes, err := ParseNotes(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %v", notes)
	}
	if notes[0] != "prefers mild dishes" {
		t.Fatalf("bullet not stripped: %q", notes[0])
	}
}

func TestParseNotesEmptyOutput(t *testing.T) {
	if _, err := ParseNotes("   \n \n"); !errors.Is(err, core.ErrMalformedUpstreamResponse) {
		t.Fatalf("expected malformed response error, got %v", err)
	}
}

func TestPromptsAreDeterministic(t *testing.T) {
	pref := PreferenceContext{
		DietaryRestrictions: []string{"vegetarian"},
		SpiceLevel:          "mild",
		OtherPreferences: map[string]string{
			"zeta":  "last",
			"alpha": "first",
			"mid":   "middle",
		},
	}

	first := BuildNotesPrompt(pref, nil)
	for i := 0; i < 20; i++ {
		if got := BuildNotesPrompt(pref, nil); got != first {
			t.Fatal("prompt changed between identical calls")
		}
	}

	if !strings.Contains(first, "alpha: first") {
		t.Fatalf("other preferences missing from prompt:\n%s", first)
	}
}
