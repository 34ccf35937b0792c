package service

import (
	"context"

	"github.com/itchan-dev/punchcards/backend/internal/service/utils"
	"github.com/itchan-dev/punchcards/shared/domain"
)

// to mock service in tests
type CardService interface {
	Create(ctx context.Context, data domain.CardCreationData) (domain.Card, error)
	Delete(ctx context.Context, id domain.CardId) error
	ListFull(ctx context.Context) ([]domain.FullCard, error)
}

type Card struct {
	storage   CardStorage
	validator CardValidator
}

type CardStorage interface {
	CreateCard(ctx context.Context, data domain.CardCreationData) (domain.Card, error)
	DeleteCard(ctx context.Context, id domain.CardId) error
	ListCardsFull(ctx context.Context) ([]domain.FullCard, error)
}

type CardValidator interface {
	Title(title string) error
	Capacity(capacity int) error
}

func NewCard(storage CardStorage, validator CardValidator) CardService {
	return &Card{storage, validator}
}

func (c *Card) Create(ctx context.Context, data domain.CardCreationData) (domain.Card, error) {
	data.Title = utils.SanitizeText(data.Title)
	if err := c.validator.Title(data.Title); err != nil {
		return domain.Card{}, err
	}
	if err := c.validator.Capacity(data.Capacity); err != nil {
		return domain.Card{}, err
	}

	return c.storage.CreateCard(ctx, data)
}

func (c *Card) Delete(ctx context.Context, id domain.CardId) error {
	return c.storage.DeleteCard(ctx, id)
}

func (c *Card) ListFull(ctx context.Context) ([]domain.FullCard, error) {
	return c.storage.ListCardsFull(ctx)
}
