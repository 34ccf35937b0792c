package apiclient

import (
	"context"
	"net/http"

	"github.com/itchan-dev/punchcards/shared/api"
	"github.com/itchan-dev/punchcards/shared/domain"
)

// === Person Methods ===

func (c *APIClient) GetPersons(ctx context.Context) ([]domain.Person, error) {
	resp, err := c.do(ctx, http.MethodGet, "/persons", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, "list persons")
	}
	var people []domain.Person
	if err := decode(resp, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (c *APIClient) CreatePerson(ctx context.Context, data api.CreatePersonRequest) (domain.Person, error) {
	var person domain.Person
	resp, err := c.do(ctx, http.MethodPost, "/person", data)
	if err != nil {
		return person, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return person, statusError(resp, "create person")
	}
	err = decode(resp, &person)
	return person, err
}
