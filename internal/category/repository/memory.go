package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/fekuna/omnipos-console/internal/category/dto"
	"github.com/fekuna/omnipos-console/internal/store"
	"github.com/shopspring/decimal"
)

const Uncategorized = "Uncategorized"

type MemoryRepository struct {
	Store *store.Store
}

func NewMemoryRepository(st *store.Store) *MemoryRepository {
	return &MemoryRepository{Store: st}
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.CategoryFilters) ([]dto.Category, error) {
	byName := map[string]*dto.Category{}
	for _, p := range r.Store.View().Products {
		if f.ActiveOnly && !p.Active {
			continue
		}
		name := strings.TrimSpace(p.Category)
		if name == "" {
			name = Uncategorized
		}
		c, ok := byName[name]
		if !ok {
			c = &dto.Category{Name: name, InventoryValue: decimal.Zero}
			byName[name] = c
		}
		c.Products++
		if p.Active {
			c.ActiveProducts++
		}
		c.Stock += p.Stock
		c.InventoryValue = c.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
	}

	categories := make([]dto.Category, 0, len(byName))
	for _, c := range byName {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// Rename moves every product in category from to category to and reports how
// many products changed.
func (r *MemoryRepository) Rename(ctx context.Context, from, to string) (int, error) {
	changed := 0
	_, err := r.Store.Apply(func(snap store.Snapshot) (store.Snapshot, error) {
		for i := range snap.Products {
			if strings.EqualFold(strings.TrimSpace(snap.Products[i].Category), from) {
				snap.Products[i].Category = to
				changed++
			}
		}
		return snap, nil
	})
	return changed, err
}
