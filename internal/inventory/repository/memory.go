package repository

import (
	"context"
	"sync"

	"github.com/fekuna/omnipos-console/internal/inventory/dto"
	"github.com/fekuna/omnipos-console/internal/model"
)

type MemoryRepository struct {
	mu        sync.RWMutex
	movements []model.StockMovement
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) LogMovements(ctx context.Context, movements []model.StockMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.movements = append(r.movements, movements...)
	return nil
}

// ListMovements returns matches newest first.
func (r *MemoryRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.StockMovement, 0)
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.MovementType != "" && string(m.MovementType) != f.MovementType {
			continue
		}
		if f.ReferenceID != "" && m.ReferenceID != f.ReferenceID {
			continue
		}
		if f.StartDate != nil && m.CreatedAt.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && m.CreatedAt.After(*f.EndDate) {
			continue
		}
		items = append(items, m)
	}

	count := len(items)
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * f.PageSize
		if start > count {
			start = count
		}
		end := start + f.PageSize
		if end > count {
			end = count
		}
		items = items[start:end]
	}
	return items, count, nil
}
