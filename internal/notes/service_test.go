package notes

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"swaad/internal/core"
	"swaad/internal/order"
	"swaad/internal/preference"
	"swaad/internal/restaurant"
)

// --------------------------------------------------
// Mocks
// --------------------------------------------------

type mockRepository struct {
	notes  []Note
	nextID int
}

func (m *mockRepository) Append(ctx context.Context, userID string, texts []string, noteType string) error {
	for _, text := range texts {
		m.nextID++
		m.notes = append(m.notes, Note{ID: m.nextID, Text: text, Type: noteType})
	}
	return nil
}

func (m *mockRepository) ListByUser(ctx context.Context, userID string) ([]Note, error) {
	return m.notes, nil
}

type mockUsers struct {
	known map[string]bool
}

func (m *mockUsers) Exists(ctx context.Context, userID string) (bool, error) {
	return m.known[userID], nil
}

type mockPrefs struct{}

func (m *mockPrefs) ByUser(ctx context.Context, userID string) (preference.Preference, error) {
	return preference.Preference{SpiceLevel: preference.SpiceMild}, nil
}

type mockOrders struct {
	orders []order.Order
}

func (m *mockOrders) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	return m.orders, nil
}

type mockRestaurants struct{}

func (m *mockRestaurants) ByID(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	return &restaurant.Restaurant{ID: id, Name: "Taj Palace"}, nil
}

type stubModel struct {
	raw     string
	err     error
	invoked int
}

func (s *stubModel) Invoke(ctx context.Context, prompt string) (string, error) {
	s.invoked++
	if s.err != nil {
		return "", s.err
	}
	return s.raw, nil
}

func newNotesService(repo *mockRepository, model *stubModel) *Service {
	return NewService(
		repo,
		&mockUsers{known: map[string]bool{"u1": true}},
		&mockPrefs{},
		&mockOrders{},
		&mockRestaurants{},
		model,
	)
}

// --------------------------------------------------
// Tests
// --------------------------------------------------

func TestGetNotesStoredNotesSkipGeneration(t *testing.T) {
	repo := &mockRepository{notes: []Note{{ID: 1, Text: "likes mild food", Type: TypeInsight}}}
	model := &stubModel{raw: `{"notes": ["should never be used"]}`}
	svc := newNotesService(repo, model)

	result, err := svc.GetNotes(context.Background(), "u1", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if model.invoked != 0 {
		t.Fatal("model invoked despite stored notes")
	}
	if len(result.Notes) != 1 || result.Notes[0].Text != "likes mild food" {
		t.Fatalf("unexpected notes: %+v", result.Notes)
	}
	if result.Message != "" {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestGetNotesGeneratesWhenEmpty(t *testing.T) {
	repo := &mockRepository{}
	model := &stubModel{raw: `{"notes": ["prefers mild dishes", "orders Indian often"]}`}
	svc := newNotesService(repo, model)

	result, err := svc.GetNotes(context.Background(), "u1", false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if model.invoked != 1 {
		t.Fatalf("expected one model call, got %d", model.invoked)
	}
	if len(result.Notes) != 2 {
		t.Fatalf("expected 2 generated notes, got %+v", result.Notes)
	}
	if result.Notes[0].Type != TypeInsight {
		t.Fatalf("expected insight type, got %q", result.Notes[0].Type)
	}
}

func TestGetNotesForceGenerateAppends(t *testing.T) {
	repo := &mockRepository{notes: []Note{{ID: 1, Text: "old note", Type: TypeInsight}}, nextID: 1}
	model := &stubModel{raw: `{"notes": ["new note"]}`}
	svc := newNotesService(repo, model)

	result, err := svc.GetNotes(context.Background(), "u1", true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if model.invoked != 1 {
		t.Fatal("force_generate must invoke the model")
	}
	if len(result.Notes) != 2 {
		t.Fatalf("expected old + new notes, got %+v", result.Notes)
	}
}

func TestGetNotesGenerationFailureDegrades(t *testing.T) {
	repo := &mockRepository{}
	model := &stubModel{err: fmt.Errorf("timeout: %w", core.ErrUpstreamUnavailable)}
	svc := newNotesService(repo, model)

	result, err := svc.GetNotes(context.Background(), "u1", false)
	if err != nil {
		t.Fatalf("generation failure must not fail the request, got %v", err)
	}
	if result.Notes == nil || len(result.Notes) != 0 {
		t.Fatalf("expected empty non-nil notes, got %+v", result.Notes)
	}
	if result.Message == "" {
		t.Fatal("expected explanatory message")
	}
}

func TestGetNotesMalformedOutputKeepsStored(t *testing.T) {
	repo := &mockRepository{notes: []Note{{ID: 1, Text: "old note", Type: TypeInsight}}, nextID: 1}
	model := &stubModel{raw: "   \n \n"}
	svc := newNotesService(repo, model)

	result, err := svc.GetNotes(context.Background(), "u1", true)
	if err != nil {
		t.Fatalf("expected degraded success, got %v", err)
	}
	if len(result.Notes) != 1 || result.Notes[0].Text != "old note" {
		t.Fatalf("expected stored notes untouched, got %+v", result.Notes)
	}
	if result.Message == "" {
		t.Fatal("expected explanatory message")
	}
}

func TestGetNotesPlainTextFallbackAppends(t *testing.T) {
	repo := &mockRepository{notes: []Note{{ID: 1, Text: "old note", Type: TypeInsight}}, nextID: 1}
	model := &stubModel{raw: "- enjoys rich vegetarian curries"}
	svc := newNotesService(repo, model)

	result, err := svc.GetNotes(context.Background(), "u1", true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result.Notes) != 2 || result.Notes[1].Text != "enjoys rich vegetarian curries" {
		t.Fatalf("expected fallback-parsed note appended, got %+v", result.Notes)
	}
}

func TestGetNotesUnknownUser(t *testing.T) {
	svc := newNotesService(&mockRepository{}, &stubModel{raw: "{}"})

	_, err := svc.GetNotes(context.Background(), "u404", false)
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
