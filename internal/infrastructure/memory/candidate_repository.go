// Package memory holds process-local implementations of the core ports. They
// back the default configuration and the CLI.
package memory

import (
	"context"
	"sync"

	"github.com/resumatch/candidate-search/internal/core/domain"
)

// CandidateRepository keeps candidates in insertion order.
type CandidateRepository struct {
	mu    sync.RWMutex
	items []*domain.CandidateRecord
}

// NewCandidateRepository returns a repository holding seed in order.
func NewCandidateRepository(seed ...*domain.CandidateRecord) *CandidateRepository {
	items := make([]*domain.CandidateRecord, 0, len(seed))
	items = append(items, seed...)
	return &CandidateRepository{items: items}
}

func (r *CandidateRepository) List(_ context.Context) ([]*domain.CandidateRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.CandidateRecord, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *CandidateRepository) Add(_ context.Context, c *domain.CandidateRecord) (*domain.CandidateRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, c)
	return c, nil
}

func (r *CandidateRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrCandidateNotFound
}
