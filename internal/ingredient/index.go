package ingredient

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"swaad/internal/core"
)

const DefaultLimit = 10

// Index aggregates the restaurant->ingredient relation into popularity
// rankings and multi-restaurant searches. All ordering is deterministic:
// ties break on identifier so repeated calls return identical results.
type Index struct {
	repo Repository
}

func NewIndex(repo Repository) *Index {
	return &Index{repo: repo}
}

// --------------------------------------------------
// Popular ingredients (distinct-restaurant count)
// --------------------------------------------------
func (ix *Index) Popular(
	ctx context.Context,
	category string,
	limit int,
) ([]PopularIngredient, error) {

	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive: %w", core.ErrInvalidArgument)
	}
	if category != "" && !ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q: %w", category, core.ErrInvalidArgument)
	}

	links, err := ix.repo.Links(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]map[string]bool) // ingredient_id -> restaurant set
	byID := make(map[string]Ingredient)

	for _, l := range links {
		if category != "" && l.Ingredient.Category != category {
			continue
		}
		byID[l.Ingredient.ID] = l.Ingredient
		if counts[l.Ingredient.ID] == nil {
			counts[l.Ingredient.ID] = make(map[string]bool)
		}
		counts[l.Ingredient.ID][l.RestaurantID] = true
	}

	ranked := make([]PopularIngredient, 0, len(counts))
	for id, restaurants := range counts {
		ranked = append(ranked, PopularIngredient{
			Ingredient:      byID[id],
			RestaurantCount: len(restaurants),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].RestaurantCount != ranked[j].RestaurantCount {
			return ranked[i].RestaurantCount > ranked[j].RestaurantCount
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// --------------------------------------------------
// Ingredient set of one restaurant
// --------------------------------------------------
func (ix *Index) IngredientsOf(
	ctx context.Context,
	restaurantID string,
) ([]Ingredient, error) {

	exists, err := ix.repo.RestaurantExists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("restaurant %s: %w", restaurantID, core.ErrNotFound)
	}

	ingredients, err := ix.repo.ByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if ingredients == nil {
		ingredients = []Ingredient{}
	}
	return ingredients, nil
}

// --------------------------------------------------
// Multi-restaurant ingredient search
// --------------------------------------------------

// SearchByIngredients returns restaurants offering at least one
// (matchAll=false) or all (matchAll=true) of the named ingredients.
// Unknown names count as zero-match; a typo never fails the search.
func (ix *Index) SearchByIngredients(
	ctx context.Context,
	names []string,
	matchAll bool,
	limit int,
) ([]RestaurantMatch, error) {

	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive: %w", core.ErrInvalidArgument)
	}

	requested := make(map[string]bool)
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			requested[name] = true
		}
	}
	if len(requested) == 0 {
		return nil, fmt.Errorf("no ingredient names given: %w", core.ErrInvalidArgument)
	}

	links, err := ix.repo.Links(ctx)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		name    string
		cuisine string
		matched map[string]bool
	}
	buckets := make(map[string]*bucket)

	for _, l := range links {
		ingName := strings.ToLower(l.Ingredient.Name)
		if !requested[ingName] {
			continue
		}
		b := buckets[l.RestaurantID]
		if b == nil {
			b = &bucket{
				name:    l.RestaurantName,
				cuisine: l.Cuisine,
				matched: make(map[string]bool),
			}
			buckets[l.RestaurantID] = b
		}
		b.matched[ingName] = true
	}

	var matches []RestaurantMatch
	for id, b := range buckets {
		if matchAll && len(b.matched) != len(requested) {
			continue
		}

		matched := make([]string, 0, len(b.matched))
		for name := range b.matched {
			matched = append(matched, name)
		}
		sort.Strings(matched)

		matches = append(matches, RestaurantMatch{
			RestaurantID:       id,
			Name:               b.name,
			Cuisine:            b.cuisine,
			MatchCount:         len(b.matched),
			MatchedIngredients: matched,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].MatchCount != matches[j].MatchCount {
			return matches[i].MatchCount > matches[j].MatchCount
		}
		return matches[i].RestaurantID < matches[j].RestaurantID
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	if matches == nil {
		matches = []RestaurantMatch{}
	}
	return matches, nil
}
