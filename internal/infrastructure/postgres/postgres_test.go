package postgres_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/internal/infrastructure/postgres"
	"github.com/jhoicas/smart-distribution/pkg/config"
)

// testTx abre un pool contra TEST_DATABASE_URL; sin esa variable el test se omite.
// Cada test corre dentro de una transacción que se descarta al final.
func testTx(t *testing.T) postgres.Querier {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))

	return begin(t, pool)
}

func begin(t *testing.T, pool *pgxpool.Pool) postgres.Querier {
	tx, err := pool.Begin(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

func TestKVStore_SetGetDelete(t *testing.T) {
	q := testTx(t)
	ctx := context.Background()
	s := postgres.NewKVStore(q)

	_, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "user", `{"id":"admin"}`))
	require.NoError(t, s.Set(ctx, "user", `{"id":"rider1"}`))
	require.NoError(t, s.Set(ctx, "role", "rider"))

	v, ok, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"rider1"}`, v, "el último en escribir gana")

	require.NoError(t, s.Delete(ctx, "user", "role", "missing"))
	_, ok, _ = s.Get(ctx, "role")
	assert.False(t, ok)
}

func TestSubmissionRepo_GuardaYListaRecientes(t *testing.T) {
	q := testTx(t)
	ctx := context.Background()
	r := postgres.NewSubmissionRepository(q)

	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	first := &entity.Submission{
		ID: uuid.New(), Kind: entity.SubmissionOrder, Endpoint: "/webhook/order-submit", ActorID: "BK-101",
		Amount: decimal.RequireFromString("230.40"), Payload: json.RawMessage(`{"Shop_ID":"SHP-003"}`),
		Succeeded: true, CreatedAt: base,
	}
	second := &entity.Submission{
		ID: uuid.New(), Kind: entity.SubmissionStaff, Endpoint: "/webhook/add-staff", ActorID: "admin",
		Amount: decimal.NewFromInt(45000), Payload: json.RawMessage(`{}`),
		Error: "server: HTTP 500", CreatedAt: base.Add(time.Minute),
	}
	require.NoError(t, r.Save(ctx, first))
	require.NoError(t, r.Save(ctx, second))
	require.NoError(t, r.Save(ctx, first), "un id repetido no es error")

	list, err := r.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(list), 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.False(t, list[0].Succeeded)
	assert.Equal(t, first.ID, list[1].ID)
	assert.True(t, decimal.RequireFromString("230.4").Equal(list[1].Amount))
	assert.JSONEq(t, `{"Shop_ID":"SHP-003"}`, string(list[1].Payload))

	limited, err := r.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
