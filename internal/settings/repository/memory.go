package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-console/internal/model"
)

type MemoryRepository struct {
	mu       sync.RWMutex
	settings model.Settings
}

func NewMemoryRepository(initial model.Settings) *MemoryRepository {
	return &MemoryRepository{settings: initial}
}

func (r *MemoryRepository) Get(ctx context.Context) (*model.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.settings
	return &s, nil
}

func (r *MemoryRepository) Save(ctx context.Context, s *model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = *s
	return nil
}
