package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/punchcards/shared/domain"
)

// --- service mocks ---

type MockCardService struct {
	MockCreate   func(data domain.CardCreationData) (domain.Card, error)
	MockDelete   func(id domain.CardId) error
	MockListFull func() ([]domain.FullCard, error)
}

func (m *MockCardService) Create(ctx context.Context, data domain.CardCreationData) (domain.Card, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Card{}, nil
}

func (m *MockCardService) Delete(ctx context.Context, id domain.CardId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id)
	}
	return nil
}

func (m *MockCardService) ListFull(ctx context.Context) ([]domain.FullCard, error) {
	if m.MockListFull != nil {
		return m.MockListFull()
	}
	return []domain.FullCard{}, nil
}

type MockPersonService struct {
	MockCreate func(data domain.PersonCreationData) (domain.Person, error)
	MockList   func() ([]domain.Person, error)
}

func (m *MockPersonService) Create(ctx context.Context, data domain.PersonCreationData) (domain.Person, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Person{}, nil
}

func (m *MockPersonService) List(ctx context.Context) ([]domain.Person, error) {
	if m.MockList != nil {
		return m.MockList()
	}
	return []domain.Person{}, nil
}

type MockPunchService struct {
	MockCreate func(data domain.PunchCreationData) (domain.Punch, error)
}

func (m *MockPunchService) Create(ctx context.Context, data domain.PunchCreationData) (domain.Punch, error) {
	if m.MockCreate != nil {
		return m.MockCreate(data)
	}
	return domain.Punch{}, nil
}

// newTestRouter mounts h the same way the production router does.
func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/persons", h.GetPersons)
	r.Post("/person", h.CreatePerson)
	r.Get("/cards", h.GetCards)
	r.Post("/card", h.CreateCard)
	r.Delete("/card/{id}", h.DeleteCard)
	r.Post("/punch", h.CreatePunch)
	return r
}
