package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/product/dto"
	"github.com/fekuna/omnipos-console/internal/store"
)

type MemoryRepository struct {
	Store *store.Store
}

func NewMemoryRepository(st *store.Store) *MemoryRepository {
	return &MemoryRepository{Store: st}
}

func (r *MemoryRepository) Create(ctx context.Context, p *model.Product) error {
	_, err := r.Store.Apply(func(snap store.Snapshot) (store.Snapshot, error) {
		if model.FindProduct(snap.Products, p.ID) >= 0 {
			return snap, apperr.Validationf("product %s already exists", p.ID)
		}
		snap.Products = append(snap.Products, *p)
		return snap, nil
	})
	return err
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	products := r.Store.View().Products
	i := model.FindProduct(products, id)
	if i < 0 {
		return nil, nil
	}
	p := products[i]
	return &p, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.ProductFilters) ([]model.Product, int, error) {
	all := r.Store.View().Products
	products := make([]model.Product, 0, len(all))

	term := strings.ToLower(strings.TrimSpace(f.SearchQuery))
	for _, p := range all {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.IsActive != nil && p.Active != *f.IsActive {
			continue
		}
		if f.InStockOnly && p.Stock <= 0 {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) {
			continue
		}
		products = append(products, p)
	}

	if f.SortBy != "" {
		desc := strings.ToLower(f.SortOrder) == "desc"
		var less func(a, b model.Product) bool
		switch f.SortBy {
		case "name":
			less = func(a, b model.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
		case "price":
			less = func(a, b model.Product) bool { return a.Price.LessThan(b.Price) }
		case "stock":
			less = func(a, b model.Product) bool { return a.Stock < b.Stock }
		}
		if less != nil {
			sort.SliceStable(products, func(i, j int) bool {
				if desc {
					return less(products[j], products[i])
				}
				return less(products[i], products[j])
			})
		}
	}

	count := len(products)
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
		products = products[start:end]
	}

	return products, count, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, edit func(p *model.Product) error) (*model.Product, *model.Product, error) {
	var before, after model.Product
	_, err := r.Store.Apply(func(snap store.Snapshot) (store.Snapshot, error) {
		i := model.FindProduct(snap.Products, id)
		if i < 0 {
			return snap, apperr.NotFound("product", id)
		}
		before = snap.Products[i]
		next := before
		if err := edit(&next); err != nil {
			return snap, err
		}
		next.ID = before.ID
		snap.Products[i] = next
		after = next
		return snap, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &before, &after, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Store.Apply(func(snap store.Snapshot) (store.Snapshot, error) {
		next := make([]model.Product, 0, len(snap.Products))
		for _, p := range snap.Products {
			if p.ID != id {
				next = append(next, p)
			}
		}
		snap.Products = next
		return snap, nil
	})
	return err
}

func (r *MemoryRepository) IsIDUnique(ctx context.Context, id string) (bool, error) {
	return model.FindProduct(r.Store.View().Products, id) < 0, nil
}
