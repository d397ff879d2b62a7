package holders

import (
	"context"
	"sync"

	"github.com/mothlight/delve/internal/effects"
)

// inMemoryRepository implements Repository with a map, used when Redis is not
// configured and in tests.
type inMemoryRepository struct {
	mu      sync.RWMutex
	records map[string][]*effects.Effect
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		records: make(map[string][]*effects.Effect),
	}
}

func (r *inMemoryRepository) Get(_ context.Context, holderID string) ([]*effects.Effect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneList(r.records[holderID]), nil
}

func (r *inMemoryRepository) Set(_ context.Context, holderID string, active []*effects.Effect) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[holderID] = cloneList(active)
	return nil
}

func (r *inMemoryRepository) Delete(_ context.Context, holderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, holderID)
	return nil
}

func (r *inMemoryRepository) GetAll(_ context.Context) (map[string][]*effects.Effect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]*effects.Effect, len(r.records))
	for holderID, list := range r.records {
		out[holderID] = cloneList(list)
	}
	return out, nil
}

// cloneList keeps stored instances and handed-out instances independent.
func cloneList(list []*effects.Effect) []*effects.Effect {
	out := make([]*effects.Effect, len(list))
	for i, e := range list {
		out[i] = e.Clone()
	}
	return out
}
