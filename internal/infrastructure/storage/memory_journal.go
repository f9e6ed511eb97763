package storage

import (
	"context"
	"sync"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/internal/domain/repository"
)

var _ repository.SubmissionRepository = (*MemoryJournal)(nil)

// MemoryJournal diario de envíos en memoria, acotado a capacity entradas (las más viejas se descartan).
type MemoryJournal struct {
	mu       sync.RWMutex
	items    []*entity.Submission
	capacity int
}

// DefaultJournalCapacity capacidad por defecto de MemoryJournal.
const DefaultJournalCapacity = 500

// NewMemoryJournal construye un diario; capacity <= 0 usa DefaultJournalCapacity.
func NewMemoryJournal(capacity int) *MemoryJournal {
	if capacity <= 0 {
		capacity = DefaultJournalCapacity
	}
	return &MemoryJournal{capacity: capacity}
}

// Save agrega una entrada.
func (j *MemoryJournal) Save(_ context.Context, s *entity.Submission) error {
	c := *s
	j.mu.Lock()
	j.items = append(j.items, &c)
	if over := len(j.items) - j.capacity; over > 0 {
		j.items = append([]*entity.Submission(nil), j.items[over:]...)
	}
	j.mu.Unlock()
	return nil
}

// ListRecent del más reciente al más antiguo.
func (j *MemoryJournal) ListRecent(_ context.Context, limit int) ([]*entity.Submission, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if limit <= 0 || limit > len(j.items) {
		limit = len(j.items)
	}
	out := make([]*entity.Submission, 0, limit)
	for i := len(j.items) - 1; i >= 0 && len(out) < limit; i-- {
		c := *j.items[i]
		out = append(out, &c)
	}
	return out, nil
}
