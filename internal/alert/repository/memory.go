package repository

import (
	"context"
	"sync"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	resolved map[string]bool
	snoozed  map[string]bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		resolved: map[string]bool{},
		snoozed:  map[string]bool{},
	}
}

func (r *MemoryRepository) Resolve(ctx context.Context, ids ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		r.resolved[id] = true
	}
	return nil
}

func (r *MemoryRepository) ResolvedIDs(ctx context.Context) (map[string]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copySet(r.resolved), nil
}

// ToggleSnooze flips the snooze flag and returns the new value.
func (r *MemoryRepository) ToggleSnooze(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snoozed[id] {
		delete(r.snoozed, id)
		return false, nil
	}
	r.snoozed[id] = true
	return true, nil
}

func (r *MemoryRepository) SnoozedIDs(ctx context.Context) (map[string]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copySet(r.snoozed), nil
}

func copySet(src map[string]bool) map[string]bool {
	dst := make(map[string]bool, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
