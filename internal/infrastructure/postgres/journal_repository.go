package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/internal/domain/repository"
)

var _ repository.SubmissionRepository = (*SubmissionRepo)(nil)

// SubmissionRepo diario de envíos sobre PostgreSQL. amount es NUMERIC (codec pgx-shopspring-decimal).
type SubmissionRepo struct {
	q Querier
}

// NewSubmissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubmissionRepository(q Querier) *SubmissionRepo {
	return &SubmissionRepo{q: q}
}

// Save persiste un envío. Un id repetido no es error: el envío ya estaba registrado.
func (r *SubmissionRepo) Save(ctx context.Context, s *entity.Submission) error {
	query := `
		INSERT INTO submissions (id, kind, endpoint, actor_id, amount, payload, succeeded, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.q.Exec(ctx, query,
		s.ID, string(s.Kind), s.Endpoint, s.ActorID, s.Amount, []byte(s.Payload), s.Succeeded, s.Error, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// ListRecent del más reciente al más antiguo; limit <= 0 devuelve todo.
func (r *SubmissionRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Submission, error) {
	query := `
		SELECT id, kind, endpoint, actor_id, amount, payload, succeeded, error, created_at
		FROM submissions ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	list, err := pgx.CollectRows(rows, scanSubmission)
	if err != nil {
		return nil, fmt.Errorf("scan submissions: %w", err)
	}
	return list, nil
}

func scanSubmission(row pgx.CollectableRow) (*entity.Submission, error) {
	var (
		s       entity.Submission
		kind    string
		payload []byte
	)
	if err := row.Scan(&s.ID, &kind, &s.Endpoint, &s.ActorID, &s.Amount, &payload, &s.Succeeded, &s.Error, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Kind = entity.SubmissionKind(kind)
	s.Payload = payload
	return &s, nil
}
