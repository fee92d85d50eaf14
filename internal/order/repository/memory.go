package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/order"
	"github.com/fekuna/omnipos-console/internal/order/dto"
	"github.com/fekuna/omnipos-console/internal/order/reconcile"
	"github.com/fekuna/omnipos-console/internal/store"
)

type MemoryRepository struct {
	Store *store.Store
}

func NewMemoryRepository(st *store.Store) *MemoryRepository {
	return &MemoryRepository{Store: st}
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	orders := r.Store.View().Orders
	i := model.FindOrder(orders, id)
	if i < 0 {
		return nil, nil
	}
	o := orders[i]
	return &o, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.OrderFilters) ([]model.Order, int, error) {
	all := r.Store.View().Orders
	orders := make([]model.Order, 0, len(all))

	term := strings.ToLower(strings.TrimSpace(f.CustomerQuery))
	for _, o := range all {
		if f.Status != "" && !strings.EqualFold(string(o.Status), f.Status) {
			continue
		}
		if f.ProductID != "" && o.ProductID != f.ProductID {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(o.CustomerName), term) {
			continue
		}
		orders = append(orders, o)
	}

	var less func(a, b model.Order) bool
	switch f.SortBy {
	case "date":
		less = func(a, b model.Order) bool { return a.Date < b.Date }
	case "total":
		less = func(a, b model.Order) bool { return a.TotalPrice.LessThan(b.TotalPrice) }
	}
	if less != nil {
		desc := strings.ToLower(f.SortOrder) == "desc"
		sort.SliceStable(orders, func(i, j int) bool {
			if desc {
				return less(orders[j], orders[i])
			}
			return less(orders[i], orders[j])
		})
	}

	count := len(orders)
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
		orders = orders[start:end]
	}
	return orders, count, nil
}

func (r *MemoryRepository) Reconcile(ctx context.Context, fn order.ReconcileFunc) (reconcile.Result, error) {
	var res reconcile.Result
	_, err := r.Store.Apply(func(snap store.Snapshot) (store.Snapshot, error) {
		var err error
		res, err = fn(snap.Products, snap.Orders)
		if err != nil {
			return snap, err
		}
		snap.Products = res.Products
		snap.Orders = res.Orders
		return snap, nil
	})
	if err != nil {
		return reconcile.Result{}, err
	}
	return res, nil
}
