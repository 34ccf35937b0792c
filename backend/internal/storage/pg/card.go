package pg

import (
	"context"
	"database/sql"
	"fmt"

	internal_errors "github.com/itchan-dev/punchcards/backend/internal/errors"
	"github.com/itchan-dev/punchcards/shared/domain"
)

// =========================================================================
// Public Methods (satisfy the service.CardStorage interface)
// =========================================================================

func (s *Storage) CreateCard(ctx context.Context, data domain.CardCreationData) (domain.Card, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.createCard(ctx, s.db, data)
}

// DeleteCard removes the card and all of its punches in one transaction.
// Nothing is removed when the card does not exist.
func (s *Storage) DeleteCard(ctx context.Context, id domain.CardId) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.deleteCard(ctx, tx, id)
	})
}

// ListCardsFull returns every card with its punches and their punchers,
// fetched with a single query.
func (s *Storage) ListCardsFull(ctx context.Context) ([]domain.FullCard, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.listCardsFull(ctx, s.db)
}

// =========================================================================
// Internal Methods (Core Database Logic)
// =========================================================================

func (s *Storage) createCard(ctx context.Context, q Querier, data domain.CardCreationData) (domain.Card, error) {
	card := domain.Card{Title: data.Title, Capacity: data.Capacity}
	err := q.QueryRowContext(ctx,
		"INSERT INTO card (title, capacity) VALUES ($1, $2) RETURNING card_id",
		data.Title, data.Capacity,
	).Scan(&card.Id)
	if err != nil {
		return domain.Card{}, internal_errors.Storage("insert card", err)
	}
	return card, nil
}

func (s *Storage) deleteCard(ctx context.Context, q Querier, id domain.CardId) error {
	// punches go first, they reference the card
	if _, err := q.ExecContext(ctx, "DELETE FROM punch WHERE card_id = $1", id); err != nil {
		return internal_errors.Storage("delete punches", err)
	}

	result, err := q.ExecContext(ctx, "DELETE FROM card WHERE card_id = $1", id)
	if err != nil {
		return internal_errors.Storage("delete card", err)
	}
	rowsDeleted, err := result.RowsAffected()
	if err != nil {
		return internal_errors.Storage("check deleted cards", err)
	}
	if rowsDeleted == 0 {
		return fmt.Errorf("card %d: %w", id, internal_errors.NotFound)
	}
	return nil
}

func (s *Storage) listCardsFull(ctx context.Context, q Querier) ([]domain.FullCard, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT
			c.card_id, c.title, c.capacity,
			p.punch_id, p.date, p.reason,
			pe.person_id, pe.full_name, pe.email, pe.phone_number
		FROM card AS c
		LEFT JOIN punch AS p
			ON p.card_id = c.card_id
		LEFT JOIN person AS pe
			ON pe.person_id = p.puncher_id
		ORDER BY c.card_id, p.punch_id`)
	if err != nil {
		return nil, internal_errors.Storage("query cards", err)
	}
	defer rows.Close()

	cards := []domain.FullCard{}
	for rows.Next() {
		var (
			card     domain.Card
			punchId  sql.NullInt64
			date     sql.NullTime
			reason   sql.NullString
			personId sql.NullInt64
			name     sql.NullString
			email    sql.NullString
			phone    sql.NullString
		)
		if err := rows.Scan(
			&card.Id, &card.Title, &card.Capacity,
			&punchId, &date, &reason,
			&personId, &name, &email, &phone,
		); err != nil {
			return nil, internal_errors.Storage("scan card row", err)
		}

		// rows arrive grouped by card_id
		if len(cards) == 0 || cards[len(cards)-1].Id != card.Id {
			cards = append(cards, domain.FullCard{Card: card, Punches: []domain.CardPunch{}})
		}
		if !punchId.Valid {
			continue
		}
		current := &cards[len(cards)-1]
		current.Punches = append(current.Punches, domain.CardPunch{
			Id: punchId.Int64,
			Puncher: domain.Person{
				Id:          personId.Int64,
				Name:        name.String,
				Email:       nullableString(email),
				PhoneNumber: nullableString(phone),
			},
			Date:   date.Time.UTC(),
			Reason: reason.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, internal_errors.Storage("iterate card rows", err)
	}
	return cards, nil
}

func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
