package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"swaad/internal/core"
	"swaad/internal/ingredient"
	"swaad/internal/llm"
	"swaad/internal/order"
	"swaad/internal/preference"
	"swaad/internal/restaurant"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type mockRestaurants struct {
	restaurants []*restaurant.Restaurant
	menus       map[string][]restaurant.MenuItem
}

func (m *mockRestaurants) List(ctx context.Context) ([]*restaurant.Restaurant, error) {
	return m.restaurants, nil
}

func (m *mockRestaurants) ByID(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	for _, r := range m.restaurants {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("restaurant %s: %w", id, core.ErrNotFound)
}

func (m *mockRestaurants) MenuByRestaurant(ctx context.Context, id string) ([]restaurant.MenuItem, error) {
	return m.menus[id], nil
}

type mockIngredients struct {
	byRestaurant map[string][]ingredient.Ingredient
}

func (m *mockIngredients) IngredientsOf(ctx context.Context, id string) ([]ingredient.Ingredient, error) {
	return m.byRestaurant[id], nil
}

type mockPrefs struct {
	pref preference.Preference
}

func (m *mockPrefs) ByUser(ctx context.Context, userID string) (preference.Preference, error) {
	return m.pref, nil
}

type mockOrders struct {
	orders []order.Order
}

func (m *mockOrders) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	return m.orders, nil
}

type mockUsers struct {
	known map[string]bool
}

func (m *mockUsers) Exists(ctx context.Context, userID string) (bool, error) {
	return m.known[userID], nil
}

type stubModel struct {
	raw        string
	err        error
	lastPrompt string
}

func (s *stubModel) Invoke(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.raw, nil
}

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

func newFixtureService(model llm.Client, pref preference.Preference, orders []order.Order) *Service {
	restaurants := &mockRestaurants{
		restaurants: []*restaurant.Restaurant{
			{ID: "r1", Name: "Taj Palace", Borough: "Queens", Cuisine: "Indian"},
			{ID: "r2", Name: "Dragon Court", Borough: "Manhattan", Cuisine: "Chinese"},
			{ID: "r3", Name: "Pasta House", Borough: "Brooklyn", Cuisine: "Italian"},
		},
		menus: map[string][]restaurant.MenuItem{
			"r1": {
				{ID: "m1", RestaurantID: "r1", Name: "Chicken Tikka"},
				{ID: "m2", RestaurantID: "r1", Name: "Dal Makhani"},
				{ID: "m3", RestaurantID: "r1", Name: "Mushroom Curry"},
			},
			"r2": {
				{ID: "m4", RestaurantID: "r2", Name: "Kung Pao Chicken"},
				{ID: "m5", RestaurantID: "r2", Name: "Vegetable Fried Rice"},
			},
			"r3": {
				{ID: "m6", RestaurantID: "r3", Name: "Margherita Pizza"},
			},
		},
	}

	ingredients := &mockIngredients{
		byRestaurant: map[string][]ingredient.Ingredient{
			"r1": {
				{ID: "ing_001", Name: "chicken", Category: ingredient.CategoryProtein},
				{ID: "ing_002", Name: "rice", Category: ingredient.CategoryGrain},
				{ID: "ing_003", Name: "mushroom", Category: ingredient.CategoryVegetable},
			},
		},
	}

	return NewService(
		restaurants,
		ingredients,
		&mockPrefs{pref: pref},
		&mockOrders{orders: orders},
		&mockUsers{known: map[string]bool{"u1": true}},
		model,
	)
}

// --------------------------------------------------
// Food suggestions
// --------------------------------------------------

func TestSuggestFoodDropsInventedMenuItems(t *testing.T) {
	model := &stubModel{raw: `{
		"menu_items": [
			{"name": "dal makhani", "reason": "rich and vegetarian"},
			{"name": "Golden Unicorn Steak", "reason": "invented"}
		],
		"custom_foods": []
	}`}
	svc := newFixtureService(model, preference.Preference{}, nil)

	got, err := svc.SuggestFood(context.Background(), "r1", "", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got.MenuItems) != 1 {
		t.Fatalf("expected 1 surviving menu item, got %+v", got.MenuItems)
	}
	// canonical casing comes from the menu, not the model
	if got.MenuItems[0].Name != "Dal Makhani" {
		t.Fatalf("expected canonical name, got %q", got.MenuItems[0].Name)
	}
	if got.RestaurantName != "Taj Palace" || got.RestaurantID != "r1" {
		t.Fatalf("wrong restaurant envelope: %+v", got)
	}
}

func TestSuggestFoodEnforcesConstraints(t *testing.T) {
	model := &stubModel{raw: `{
		"menu_items": [
			{"name": "Chicken Tikka", "reason": "popular"},
			{"name": "Mushroom Curry", "reason": "earthy"},
			{"name": "Dal Makhani", "reason": "safe pick"}
		],
		"custom_foods": [
			{"name": "Mushroom Rice", "main_ingredients": ["mushrooms", "rice"]},
			{"name": "Lemon Rice", "main_ingredients": ["rice", "lemon"]}
		]
	}`}
	pref := preference.Preference{
		DietaryRestrictions: []string{"vegetarian"},
		Avoid:               []string{"mushroom"},
	}
	svc := newFixtureService(model, pref, nil)

	got, err := svc.SuggestFood(context.Background(), "r1", "u1", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got.MenuItems) != 1 || got.MenuItems[0].Name != "Dal Makhani" {
		t.Fatalf("constraint filter failed on menu items: %+v", got.MenuItems)
	}
	if len(got.CustomFoods) != 1 || got.CustomFoods[0].Name != "Lemon Rice" {
		t.Fatalf("constraint filter failed on custom foods: %+v", got.CustomFoods)
	}
}

func TestSuggestFoodEmptyAfterValidationIsSuccess(t *testing.T) {
	model := &stubModel{raw: `{
		"menu_items": [{"name": "Invented Dish", "reason": "made up"}],
		"custom_foods": [{"name": "Bacon Bomb", "main_ingredients": ["bacon"]}]
	}`}
	pref := preference.Preference{DietaryRestrictions: []string{"vegetarian"}}
	svc := newFixtureService(model, pref, nil)

	got, err := svc.SuggestFood(context.Background(), "r1", "u1", "")
	if err != nil {
		t.Fatalf("empty result must not be an error, got %v", err)
	}
	if len(got.MenuItems) != 0 || len(got.CustomFoods) != 0 {
		t.Fatalf("expected everything filtered out, got %+v", got)
	}
}

func TestSuggestFoodGarbledOutput(t *testing.T) {
	model := &stubModel{raw: "I love food but I cannot produce JSON today."}
	svc := newFixtureService(model, preference.Preference{}, nil)

	_, err := svc.SuggestFood(context.Background(), "r1", "", "")
	if !errors.Is(err, core.ErrMalformedUpstreamResponse) {
		t.Fatalf("expected malformed response error, got %v", err)
	}
}

func TestSuggestFoodUpstreamFailurePropagates(t *testing.T) {
	model := &stubModel{err: fmt.Errorf("connection refused: %w", core.ErrUpstreamUnavailable)}
	svc := newFixtureService(model, preference.Preference{}, nil)

	_, err := svc.SuggestFood(context.Background(), "r1", "", "")
	if !errors.Is(err, core.ErrUpstreamUnavailable) {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
}

func TestSuggestFoodUnknownRestaurant(t *testing.T) {
	svc := newFixtureService(&stubModel{raw: "{}"}, preference.Preference{}, nil)

	_, err := svc.SuggestFood(context.Background(), "r404", "", "")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

// --------------------------------------------------
// User recommendations
// --------------------------------------------------

func TestRecommendForUserExcludesVisitedAndValidates(t *testing.T) {
	model := &stubModel{raw: `{
		"text": "Here you go",
		"recommendations": [
			{
				"restaurant_name": "dragon court",
				"cuisine": "whatever",
				"recommended_items": ["vegetable fried rice", "Kung Pao Chicken", "Imaginary Dumplings"],
				"reason": "variety"
			},
			{
				"restaurant_name": "Phantom Diner",
				"recommended_items": ["Ghost Burger"],
				"reason": "does not exist"
			}
		],
		"follow_up_question": "More ideas?"
	}`}
	pref := preference.Preference{DietaryRestrictions: []string{"vegetarian"}}
	orders := []order.Order{
		{ID: "o1", UserID: "u1", RestaurantID: "r1", Items: []string{"Dal Makhani"}},
	}
	svc := newFixtureService(model, pref, orders)

	got, err := svc.RecommendForUser(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// visited restaurant stays out of the candidate prompt
	if strings.Contains(model.lastPrompt, "Taj Palace (Indian)") {
		t.Fatal("visited restaurant leaked into candidates")
	}
	if !strings.Contains(model.lastPrompt, "Dragon Court") {
		t.Fatal("unvisited restaurant missing from candidates")
	}

	if len(got.Recommendations) != 1 {
		t.Fatalf("expected invented restaurant dropped, got %+v", got.Recommendations)
	}
	rec := got.Recommendations[0]
	if rec.RestaurantName != "Dragon Court" || rec.Cuisine != "Chinese" {
		t.Fatalf("expected canonical restaurant fields, got %+v", rec)
	}
	// invented item dropped, chicken item blocked by vegetarian filter
	if len(rec.RecommendedItems) != 1 || rec.RecommendedItems[0] != "Vegetable Fried Rice" {
		t.Fatalf("item validation failed: %+v", rec.RecommendedItems)
	}
}

func TestRecommendForUserUnknownUser(t *testing.T) {
	svc := newFixtureService(&stubModel{raw: "{}"}, preference.Preference{}, nil)

	_, err := svc.RecommendForUser(context.Background(), "u404", "")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRecommendForUserUpstreamErrorPropagates(t *testing.T) {
	model := &stubModel{err: fmt.Errorf("status 500: %w", core.ErrUpstreamError)}
	svc := newFixtureService(model, preference.Preference{}, nil)

	_, err := svc.RecommendForUser(context.Background(), "u1", "")
	if !errors.Is(err, core.ErrUpstreamError) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
