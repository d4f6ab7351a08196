package recommend

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"swaad/internal/core"
	"swaad/internal/ingredient"
	"swaad/internal/llm"
	"swaad/internal/order"
	"swaad/internal/preference"
	"swaad/internal/restaurant"
)

// candidateCap bounds how many unvisited restaurants go into one
// recommendation prompt. Candidates are ordered by ID first, so the
// slice is stable across calls.
const candidateCap = 30

// Reader interfaces declare only the slices of the other stores this
// service needs. The concrete repositories satisfy them directly.
type RestaurantReader interface {
	List(ctx context.Context) ([]*restaurant.Restaurant, error)
	ByID(ctx context.Context, restaurantID string) (*restaurant.Restaurant, error)
	MenuByRestaurant(ctx context.Context, restaurantID string) ([]restaurant.MenuItem, error)
}

type IngredientReader interface {
	IngredientsOf(ctx context.Context, restaurantID string) ([]ingredient.Ingredient, error)
}

type PreferenceReader interface {
	ByUser(ctx context.Context, userID string) (preference.Preference, error)
}

type OrderReader interface {
	ListByUser(ctx context.Context, userID string) ([]order.Order, error)
}

type UserChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type Service struct {
	restaurants RestaurantReader
	ingredients IngredientReader
	prefs       PreferenceReader
	orders      OrderReader
	users       UserChecker
	model       llm.Client
}

func NewService(
	restaurants RestaurantReader,
	ingredients IngredientReader,
	prefs PreferenceReader,
	orders OrderReader,
	users UserChecker,
	model llm.Client,
) *Service {
	return &Service{
		restaurants: restaurants,
		ingredients: ingredients,
		prefs:       prefs,
		orders:      orders,
		users:       users,
		model:       model,
	}
}

// --------------------------------------------------
// Per-restaurant food suggestions
// --------------------------------------------------

// SuggestFood builds a suggestion prompt for one restaurant, invokes the
// model, and validates the output. userID is optional; when given, the
// user's preferences and order history shape and filter the result.
func (s *Service) SuggestFood(
	ctx context.Context,
	restaurantID string,
	userID string,
	query string,
) (*FoodSuggestions, error) {

	rest, err := s.restaurants.ByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	menu, err := s.restaurants.MenuByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	ings, err := s.ingredients.IngredientsOf(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	ingredientNames := make([]string, 0, len(ings))
	for _, ing := range ings {
		ingredientNames = append(ingredientNames, ing.Name)
	}

	var (
		pref    preference.Preference
		history []llm.OrderSummary
	)
	if userID != "" {
		exists, err := s.users.Exists(ctx, userID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("user %s: %w", userID, core.ErrNotFound)
		}
		pref, err = s.prefs.ByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		history, err = s.orderHistory(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	prompt := llm.BuildFoodSuggestionPrompt(
		restaurantContext(rest),
		menuEntries(menu),
		ingredientNames,
		preferenceContext(pref),
		history,
		query,
	)

	raw, err := s.model.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := llm.ParseFoodSuggestion(raw)
	if err != nil {
		return nil, err
	}

	return &FoodSuggestions{
		RestaurantID:   rest.ID,
		RestaurantName: rest.Name,
		Cuisine:        rest.Cuisine,
		MenuItems:      validateMenuItems(payload.MenuItems, menu, pref),
		CustomFoods:    validateCustomFoods(payload.CustomFoods, pref),
	}, nil
}

// --------------------------------------------------
// Cross-restaurant user recommendations
// --------------------------------------------------

// RecommendForUser recommends restaurants the user has not ordered from
// yet. Model output is validated against the real catalog: invented
// restaurants and invented menu items are dropped, not surfaced.
func (s *Service) RecommendForUser(
	ctx context.Context,
	userID string,
	query string,
) (*UserRecommendations, error) {

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, core.ErrNotFound)
	}

	pref, err := s.prefs.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	all, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, err
	}

	visited := make(map[string]bool)
	for _, o := range orders {
		visited[o.RestaurantID] = true
	}

	var candidates []*restaurant.Restaurant
	for _, r := range all {
		if !visited[r.ID] {
			candidates = append(candidates, r)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID < candidates[j].ID
	})
	if len(candidates) > candidateCap {
		candidates = candidates[:candidateCap]
	}

	contexts := make([]llm.RestaurantContext, 0, len(candidates))
	menus := make(map[string][]llm.MenuEntry, len(candidates))
	menusByName := make(map[string]canonicalMenu, len(candidates))
	for _, r := range candidates {
		contexts = append(contexts, restaurantContext(r))

		menu, err := s.restaurants.MenuByRestaurant(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		menus[r.ID] = menuEntries(menu)
		menusByName[strings.ToLower(r.Name)] = canonicalMenu{
			restaurant: r,
			items:      menuNameIndex(menu),
		}
	}

	history, err := s.orderHistory(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt := llm.BuildUserRecommendationPrompt(contexts, menus, preferenceContext(pref), history, query)

	raw, err := s.model.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := llm.ParseRecommendation(raw)
	if err != nil {
		return nil, err
	}

	validated := make([]llm.Recommendation, 0, len(payload.Recommendations))
	for _, rec := range payload.Recommendations {
		cm, ok := menusByName[strings.ToLower(strings.TrimSpace(rec.RestaurantName))]
		if !ok {
			continue
		}

		items := make([]string, 0, len(rec.RecommendedItems))
		for _, item := range rec.RecommendedItems {
			canonical, ok := cm.items[strings.ToLower(strings.TrimSpace(item))]
			if !ok {
				continue
			}
			if !preference.IsCompatible([]string{canonical}, pref) {
				continue
			}
			items = append(items, canonical)
		}

		rec.RestaurantName = cm.restaurant.Name
		rec.Cuisine = cm.restaurant.Cuisine
		rec.RecommendedItems = items
		validated = append(validated, rec)
	}

	return &UserRecommendations{
		Text:             payload.Text,
		Recommendations:  validated,
		FollowUpQuestion: payload.FollowUpQuestion,
	}, nil
}

// --------------------------------------------------
// Validation helpers
// --------------------------------------------------

type canonicalMenu struct {
	restaurant *restaurant.Restaurant
	items      map[string]string
}

// validateMenuItems keeps only suggestions naming a real menu item, with
// the item name rewritten to the menu's canonical casing, and drops any
// item that violates the user's constraints.
func validateMenuItems(
	suggested []llm.SuggestedMenuItem,
	menu []restaurant.MenuItem,
	pref preference.Preference,
) []llm.SuggestedMenuItem {

	index := menuNameIndex(menu)

	kept := make([]llm.SuggestedMenuItem, 0, len(suggested))
	for _, item := range suggested {
		canonical, ok := index[strings.ToLower(strings.TrimSpace(item.Name))]
		if !ok {
			continue
		}
		if !preference.IsCompatible([]string{canonical}, pref) {
			continue
		}
		item.Name = canonical
		kept = append(kept, item)
	}
	return kept
}

// validateCustomFoods drops any invented dish whose ingredients violate
// the user's constraints. A dish with no listed ingredients is kept; the
// filter only rejects on positive evidence.
func validateCustomFoods(
	foods []llm.CustomFood,
	pref preference.Preference,
) []llm.CustomFood {

	kept := make([]llm.CustomFood, 0, len(foods))
	for _, food := range foods {
		probe := append([]string{food.Name}, food.MainIngredients...)
		if !preference.IsCompatible(probe, pref) {
			continue
		}
		kept = append(kept, food)
	}
	return kept
}

func menuNameIndex(menu []restaurant.MenuItem) map[string]string {
	index := make(map[string]string, len(menu))
	for _, m := range menu {
		index[strings.ToLower(m.Name)] = m.Name
	}
	return index
}

func (s *Service) orderHistory(ctx context.Context, userID string) ([]llm.OrderSummary, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	summaries := make([]llm.OrderSummary, 0, len(orders))
	for _, o := range orders {
		name, ok := names[o.RestaurantID]
		if !ok {
			if r, err := s.restaurants.ByID(ctx, o.RestaurantID); err == nil {
				name = r.Name
			} else {
				name = o.RestaurantID
			}
			names[o.RestaurantID] = name
		}
		summaries = append(summaries, llm.OrderSummary{
			RestaurantName: name,
			Items:          o.Items,
		})
	}
	return summaries, nil
}

func restaurantContext(r *restaurant.Restaurant) llm.RestaurantContext {
	return llm.RestaurantContext{
		ID:      r.ID,
		Name:    r.Name,
		Borough: r.Borough,
		Cuisine: r.Cuisine,
	}
}

func menuEntries(menu []restaurant.MenuItem) []llm.MenuEntry {
	entries := make([]llm.MenuEntry, 0, len(menu))
	for _, m := range menu {
		entries = append(entries, llm.MenuEntry{
			Name:        m.Name,
			Section:     m.Section,
			Description: m.Description,
			Price:       m.Price,
		})
	}
	return entries
}

func preferenceContext(p preference.Preference) llm.PreferenceContext {
	return llm.PreferenceContext{
		DietaryRestrictions: p.DietaryRestrictions,
		SpiceLevel:          p.SpiceLevel,
		PreferredProtein:    p.PreferredProtein,
		Avoid:               p.Avoid,
		OtherPreferences:    p.OtherPreferences,
	}
}
