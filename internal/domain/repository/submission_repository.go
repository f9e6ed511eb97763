package repository

import (
	"context"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// SubmissionRepository diario local de formularios enviados al backend.
type SubmissionRepository interface {
	Save(ctx context.Context, s *entity.Submission) error
	// ListRecent devuelve los últimos envíos, del más reciente al más antiguo.
	ListRecent(ctx context.Context, limit int) ([]*entity.Submission, error)
}
