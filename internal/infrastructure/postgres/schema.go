package postgres

import (
	"context"
	"fmt"
)

// schema tablas del agente. Idempotente.
const schema = `
CREATE TABLE IF NOT EXISTS device_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS submissions (
	id         UUID PRIMARY KEY,
	kind       TEXT NOT NULL,
	endpoint   TEXT NOT NULL,
	actor_id   TEXT NOT NULL,
	amount     NUMERIC(14,2) NOT NULL DEFAULT 0,
	payload    JSONB NOT NULL,
	succeeded  BOOLEAN NOT NULL,
	error      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS submissions_created_at_idx ON submissions (created_at DESC);
`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
