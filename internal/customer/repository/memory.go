package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/fekuna/omnipos-console/internal/apperr"
	"github.com/fekuna/omnipos-console/internal/customer/dto"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/store"
)

const idPrefix = "CUST-"

type MemoryRepository struct {
	Store *store.Store

	mu     sync.Mutex
	lastID int
}

func NewMemoryRepository(st *store.Store) *MemoryRepository {
	r := &MemoryRepository{Store: st}
	r.observe(st.View().Customers)
	return r
}

func (r *MemoryRepository) Create(ctx context.Context, c *model.Customer) error {
	_, err := r.Store.Apply(func(snap store.Snapshot) (store.Snapshot, error) {
		if model.FindCustomer(snap.Customers, c.ID) >= 0 {
			return snap, apperr.Validationf("customer %s already exists", c.ID)
		}
		snap.Customers = append(snap.Customers, *c)
		return snap, nil
	})
	return err
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	customers := r.Store.View().Customers
	i := model.FindCustomer(customers, id)
	if i < 0 {
		return nil, nil
	}
	c := customers[i]
	return &c, nil
}

func (r *MemoryRepository) FindAll(ctx context.Context, f *dto.CustomerFilters) ([]model.Customer, int, error) {
	all := r.Store.View().Customers
	customers := make([]model.Customer, 0, len(all))

	term := strings.ToLower(strings.TrimSpace(f.SearchQuery))
	for _, c := range all {
		if f.Status != "" && !strings.EqualFold(string(c.Status), f.Status) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Email), term) &&
			!strings.Contains(strings.ToLower(c.Phone), term) {
			continue
		}
		customers = append(customers, c)
	}

	count := len(customers)
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
		customers = customers[start:end]
	}
	return customers, count, nil
}

func (r *MemoryRepository) Update(ctx context.Context, c *model.Customer) error {
	_, err := r.Store.Apply(func(snap store.Snapshot) (store.Snapshot, error) {
		i := model.FindCustomer(snap.Customers, c.ID)
		if i < 0 {
			return snap, apperr.NotFound("customer", c.ID)
		}
		snap.Customers[i] = *c
		return snap, nil
	})
	return err
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Store.Apply(func(snap store.Snapshot) (store.Snapshot, error) {
		next := make([]model.Customer, 0, len(snap.Customers))
		for _, c := range snap.Customers {
			if c.ID != id {
				next = append(next, c)
			}
		}
		snap.Customers = next
		return snap, nil
	})
	return err
}

func (r *MemoryRepository) NextID(ctx context.Context) (string, error) {
	r.observe(r.Store.View().Customers)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	return fmt.Sprintf("%s%03d", idPrefix, r.lastID), nil
}

func (r *MemoryRepository) observe(customers []model.Customer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range customers {
		if !strings.HasPrefix(c.ID, idPrefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(c.ID, idPrefix)); err == nil && n > r.lastID {
			r.lastID = n
		}
	}
}
