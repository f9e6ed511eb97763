package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/smart-distribution/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore implementación de KeyValueStore sobre la tabla device_kv (usable con pool o tx).
type KVStore struct {
	q Querier
}

// NewKVStore construye el adaptador. Pasar pool o tx (Querier).
func NewKVStore(q Querier) *KVStore {
	return &KVStore{q: q}
}

// Get devuelve el valor de key; ok=false si no existe.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.q.QueryRow(ctx, `SELECT value FROM device_kv WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get kv %s: %w", key, err)
	}
	return v, true, nil
}

// Set inserta o reemplaza el valor (el último en escribir gana).
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO device_kv (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set kv %s: %w", key, err)
	}
	return nil
}

// Delete borra las claves dadas; las inexistentes se ignoran.
func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if _, err := s.q.Exec(ctx, `DELETE FROM device_kv WHERE key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("delete kv: %w", err)
	}
	return nil
}
