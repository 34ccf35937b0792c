package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/itchan-dev/punchcards/shared/api"
	"github.com/itchan-dev/punchcards/shared/domain"
)

// === Card Methods ===

func (c *APIClient) GetCards(ctx context.Context) ([]domain.FullCard, error) {
	resp, err := c.do(ctx, http.MethodGet, "/cards", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "list cards")
	}
	var cards []domain.FullCard
	if err := decode(resp, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *APIClient) CreateCard(ctx context.Context, data api.CreateCardRequest) (domain.Card, error) {
	var card domain.Card
	resp, err := c.do(ctx, http.MethodPost, "/card", data)
	if err != nil {
		return card, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return card, statusError(resp, "create card")
	}
	err = decode(resp, &card)
	return card, err
}

// DeleteCard removes the card and all of its punches.
func (c *APIClient) DeleteCard(ctx context.Context, id domain.CardId) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/card/%d", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return statusError(resp, fmt.Sprintf("delete card %d", id))
	}
	return nil
}
