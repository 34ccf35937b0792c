package service

import (
	"context"

	"github.com/itchan-dev/punchcards/backend/internal/service/utils"
	"github.com/itchan-dev/punchcards/shared/domain"
)

type PersonService interface {
	Create(ctx context.Context, data domain.PersonCreationData) (domain.Person, error)
	List(ctx context.Context) ([]domain.Person, error)
}

type Person struct {
	storage   PersonStorage
	validator PersonValidator
}

type PersonStorage interface {
	CreatePerson(ctx context.Context, data domain.PersonCreationData) (domain.Person, error)
	ListPeople(ctx context.Context) ([]domain.Person, error)
}

type PersonValidator interface {
	Name(name string) error
}

func NewPerson(storage PersonStorage, validator PersonValidator) PersonService {
	return &Person{storage, validator}
}

func (p *Person) Create(ctx context.Context, data domain.PersonCreationData) (domain.Person, error) {
	data.Name = utils.SanitizeText(data.Name)
	data.Email = utils.SanitizeOptional(data.Email)
	data.PhoneNumber = utils.SanitizeOptional(data.PhoneNumber)
	if err := p.validator.Name(data.Name); err != nil {
		return domain.Person{}, err
	}

	return p.storage.CreatePerson(ctx, data)
}

func (p *Person) List(ctx context.Context) ([]domain.Person, error) {
	return p.storage.ListPeople(ctx)
}
