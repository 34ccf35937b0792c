package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	internal_errors "github.com/itchan-dev/punchcards/backend/internal/errors"
	"github.com/itchan-dev/punchcards/shared/domain"

	"github.com/lib/pq"
)

const foreignKeyViolation = pq.ErrorCode("23503")

// CreatePunch punches a card unless the card is already full.
//
// The card row is locked with FOR UPDATE before counting, so concurrent
// punches of one card are serialised and can never overshoot its capacity.
func (s *Storage) CreatePunch(ctx context.Context, data domain.PunchCreationData) (domain.Punch, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var punch domain.Punch
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		capacity, err := s.lockCard(ctx, tx, data.CardId)
		if err != nil {
			return err
		}
		count, err := s.punchCount(ctx, tx, data.CardId)
		if err != nil {
			return err
		}
		if count >= capacity {
			return fmt.Errorf("card %d has %d of %d punches: %w", data.CardId, count, capacity, internal_errors.CapacityExceeded)
		}

		punch, err = s.insertPunch(ctx, tx, data)
		return err
	})
	return punch, err
}

// lockCard returns the capacity of the card, holding its row lock until
// the surrounding transaction ends.
func (s *Storage) lockCard(ctx context.Context, q Querier, id domain.CardId) (int, error) {
	var capacity int
	err := q.QueryRowContext(ctx, "SELECT capacity FROM card WHERE card_id = $1 FOR UPDATE", id).Scan(&capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("card %d: %w", id, internal_errors.NotFound)
		}
		return 0, internal_errors.Storage("lock card", err)
	}
	return capacity, nil
}

func (s *Storage) punchCount(ctx context.Context, q Querier, cardId domain.CardId) (int, error) {
	var count int
	if err := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM punch WHERE card_id = $1", cardId).Scan(&count); err != nil {
		return 0, internal_errors.Storage("count punches", err)
	}
	return count, nil
}

func (s *Storage) insertPunch(ctx context.Context, q Querier, data domain.PunchCreationData) (domain.Punch, error) {
	punch := domain.Punch{
		CardId:    data.CardId,
		PuncherId: data.PuncherId,
		Date:      data.Date.UTC(),
		Reason:    data.Reason,
	}
	err := q.QueryRowContext(ctx,
		"INSERT INTO punch (card_id, puncher_id, date, reason) VALUES ($1, $2, $3, $4) RETURNING punch_id",
		punch.CardId, punch.PuncherId, punch.Date, punch.Reason,
	).Scan(&punch.Id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return domain.Punch{}, fmt.Errorf("puncher %d: %w", data.PuncherId, internal_errors.NotFound)
		}
		return domain.Punch{}, internal_errors.Storage("insert punch", err)
	}
	return punch, nil
}
