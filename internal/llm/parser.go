package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"swaad/internal/core"
)

// ------------------------------------------------------------------
// Model output payloads
// ------------------------------------------------------------------

type FoodSuggestionPayload struct {
	MenuItems   []SuggestedMenuItem `json:"menu_items"`
	CustomFoods []CustomFood        `json:"custom_foods"`
}

type SuggestedMenuItem struct {
	Name          string `json:"name"`
	Reason        string `json:"reason"`
	Modifications string `json:"modifications"`
}

type CustomFood struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	MainIngredients []string `json:"main_ingredients"`
	Instructions    string   `json:"instructions"`
	CookingTime     string   `json:"cooking_time"`
}

type RecommendationPayload struct {
	Text             string           `json:"text"`
	Recommendations  []Recommendation `json:"recommendations"`
	FollowUpQuestion string           `json:"follow_up_question"`
}

type Recommendation struct {
	RestaurantName   string   `json:"restaurant_name"`
	Cuisine          string   `json:"cuisine"`
	RecommendedItems []string `json:"recommended_items"`
	Reason           string   `json:"reason"`
}

type notesPayload struct {
	Notes []string `json:"notes"`
}

// ------------------------------------------------------------------
// Extraction
// ------------------------------------------------------------------

// ExtractJSON pulls the JSON object out of raw model text. Models wrap
// output in markdown fences or chatty preambles often enough that we
// always scan for the outermost braces instead of trusting the text.
func ExtractJSON(text string) (string, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object in model output: %w", core.ErrMalformedUpstreamResponse)
	}

	candidate := cleaned[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", fmt.Errorf("model output is not valid JSON: %w", core.ErrMalformedUpstreamResponse)
	}

	return candidate, nil
}

// ParseFoodSuggestion decodes a food suggestion payload from raw model
// text. Structural failures map to ErrMalformedUpstreamResponse;
// semantic cleanup (dropping invented items) happens in the caller.
func ParseFoodSuggestion(raw string) (*FoodSuggestionPayload, error) {
	jsonText, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var payload FoodSuggestionPayload
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, fmt.Errorf("suggestion payload undecodable: %w", core.ErrMalformedUpstreamResponse)
	}

	if payload.MenuItems == nil {
		payload.MenuItems = []SuggestedMenuItem{}
	}
	if payload.CustomFoods == nil {
		payload.CustomFoods = []CustomFood{}
	}

	return &payload, nil
}

func ParseRecommendation(raw string) (*RecommendationPayload, error) {
	jsonText, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var payload RecommendationPayload
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, fmt.Errorf("recommendation payload undecodable: %w", core.ErrMalformedUpstreamResponse)
	}

	if payload.Recommendations == nil {
		payload.Recommendations = []Recommendation{}
	}

	return &payload, nil
}

// ParseNotes is more forgiving than the other parsers: if the model
// ignored the JSON contract but still produced usable text, each
// non-empty line becomes a note.
func ParseNotes(raw string) ([]string, error) {
	if jsonText, err := ExtractJSON(raw); err == nil {
		var payload notesPayload
		if err := json.Unmarshal([]byte(jsonText), &payload); err == nil && len(payload.Notes) > 0 {
			return cleanNotes(payload.Notes), nil
		}
	}

	// Plain-text fallback
	var notes []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789. ")
		if line != "" {
			notes = append(notes, line)
		}
	}

	if len(notes) == 0 {
		return nil, fmt.Errorf("no usable notes in model output: %w", core.ErrMalformedUpstreamResponse)
	}

	return notes, nil
}

func cleanNotes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
