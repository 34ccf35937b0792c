package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/itchan-dev/punchcards/shared/logger"
)

type migration struct {
	name string
	stmt string
}

// migrations are applied in slice order and recorded by name. Append only;
// never edit or reorder an entry that has shipped.
var migrations = []migration{
	{
		name: "create-person",
		stmt: `CREATE TABLE IF NOT EXISTS person (
			person_id    BIGSERIAL PRIMARY KEY,
			full_name    TEXT NOT NULL,
			email        TEXT,
			phone_number TEXT
		)`,
	},
	{
		name: "create-card",
		stmt: `CREATE TABLE IF NOT EXISTS card (
			card_id  BIGSERIAL PRIMARY KEY,
			title    TEXT NOT NULL,
			capacity INTEGER NOT NULL
		)`,
	},
	{
		name: "create-punch",
		stmt: `CREATE TABLE IF NOT EXISTS punch (
			punch_id   BIGSERIAL PRIMARY KEY,
			card_id    BIGINT NOT NULL REFERENCES card(card_id),
			puncher_id BIGINT NOT NULL REFERENCES person(person_id),
			date       TIMESTAMPTZ NOT NULL,
			reason     TEXT NOT NULL
		)`,
	},
	{
		name: "add-punch-card-index",
		stmt: `CREATE INDEX IF NOT EXISTS punch_card_id_idx ON punch(card_id)`,
	},
	{
		name: "add-card-capacity-check",
		stmt: `ALTER TABLE card ADD CONSTRAINT card_capacity_positive CHECK (capacity > 0)`,
	},
}

// advisory lock key shared by every instance running migrations
const migrationLockKey = 7_345_112

// Migrate applies every migration that has not been recorded yet.
func (s *Storage) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			name       TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		if err := s.runMigration(ctx, m); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
	}
	return nil
}

func (s *Storage) runMigration(ctx context.Context, m migration) error {
	applied := false
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", migrationLockKey); err != nil {
			return err
		}

		var exists bool
		if err := tx.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM migrations WHERE name = $1)", m.name).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return nil
		}

		if _, err := tx.ExecContext(ctx, m.stmt); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO migrations (name) VALUES ($1)", m.name); err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return err
	}

	if applied {
		logger.Log.Info("migration applied", "name", m.name)
	} else {
		logger.Log.Debug("migration already applied, skipping", "name", m.name)
	}
	return nil
}
