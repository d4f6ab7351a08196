package notes

import (
	"context"
	"fmt"
	"log"

	"swaad/internal/core"
	"swaad/internal/llm"
	"swaad/internal/order"
	"swaad/internal/preference"
	"swaad/internal/restaurant"
)

type UserChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type PreferenceReader interface {
	ByUser(ctx context.Context, userID string) (preference.Preference, error)
}

type OrderReader interface {
	ListByUser(ctx context.Context, userID string) ([]order.Order, error)
}

type RestaurantReader interface {
	ByID(ctx context.Context, restaurantID string) (*restaurant.Restaurant, error)
}

type Service struct {
	repo        Repository
	users       UserChecker
	prefs       PreferenceReader
	orders      OrderReader
	restaurants RestaurantReader
	model       llm.Client
}

func NewService(
	repo Repository,
	users UserChecker,
	prefs PreferenceReader,
	orders OrderReader,
	restaurants RestaurantReader,
	model llm.Client,
) *Service {
	return &Service{
		repo:        repo,
		users:       users,
		prefs:       prefs,
		orders:      orders,
		restaurants: restaurants,
		model:       model,
	}
}

// GetNotes returns the user's stored insight notes, generating fresh
// ones when the store is empty or forceGenerate is set. Generation
// failures degrade to whatever is already stored; only an unknown user
// or a storage failure is an error.
func (s *Service) GetNotes(
	ctx context.Context,
	userID string,
	forceGenerate bool,
) (*NotesResult, error) {

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, core.ErrNotFound)
	}

	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing = []Note{}
	}

	if !forceGenerate && len(existing) > 0 {
		return &NotesResult{Notes: existing}, nil
	}

	generated, genErr := s.generate(ctx, userID)
	if genErr != nil {
		log.Println("note generation failed:", genErr)
		return &NotesResult{
			Notes:   existing,
			Message: "could not generate new notes right now, showing stored notes",
		}, nil
	}

	if err := s.repo.Append(ctx, userID, generated, TypeInsight); err != nil {
		return nil, err
	}

	all, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &NotesResult{Notes: all}, nil
}

func (s *Service) generate(ctx context.Context, userID string) ([]string, error) {
	pref, err := s.prefs.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string)
	history := make([]llm.OrderSummary, 0, len(orders))
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
		history = append(history, llm.OrderSummary{
			RestaurantName: name,
			Items:          o.Items,
		})
	}

	prompt := llm.BuildNotesPrompt(llm.PreferenceContext{
		DietaryRestrictions: pref.DietaryRestrictions,
		SpiceLevel:          pref.SpiceLevel,
		PreferredProtein:    pref.PreferredProtein,
		Avoid:               pref.Avoid,
		OtherPreferences:    pref.OtherPreferences,
	}, history)

	raw, err := s.model.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return llm.ParseNotes(raw)
}
