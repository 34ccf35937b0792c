package pg

import (
	"context"

	internal_errors "github.com/itchan-dev/punchcards/backend/internal/errors"
	"github.com/itchan-dev/punchcards/shared/domain"
)

func (s *Storage) CreatePerson(ctx context.Context, data domain.PersonCreationData) (domain.Person, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.createPerson(ctx, s.db, data)
}

func (s *Storage) ListPeople(ctx context.Context) ([]domain.Person, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.listPeople(ctx, s.db)
}

// createPerson stores absent email and phone number as NULL.
func (s *Storage) createPerson(ctx context.Context, q Querier, data domain.PersonCreationData) (domain.Person, error) {
	person := domain.Person{Name: data.Name, Email: data.Email, PhoneNumber: data.PhoneNumber}
	err := q.QueryRowContext(ctx,
		"INSERT INTO person (full_name, email, phone_number) VALUES ($1, $2, $3) RETURNING person_id",
		data.Name, data.Email, data.PhoneNumber,
	).Scan(&person.Id)
	if err != nil {
		return domain.Person{}, internal_errors.Storage("insert person", err)
	}
	return person, nil
}

func (s *Storage) listPeople(ctx context.Context, q Querier) ([]domain.Person, error) {
	rows, err := q.QueryContext(ctx, "SELECT person_id, full_name, email, phone_number FROM person ORDER BY person_id")
	if err != nil {
		return nil, internal_errors.Storage("query people", err)
	}
	defer rows.Close()

	people := []domain.Person{}
	for rows.Next() {
		var person domain.Person
		if err := rows.Scan(&person.Id, &person.Name, &person.Email, &person.PhoneNumber); err != nil {
			return nil, internal_errors.Storage("scan person", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, internal_errors.Storage("iterate people", err)
	}
	return people, nil
}
