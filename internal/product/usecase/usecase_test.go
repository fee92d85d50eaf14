package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-console/internal/apperr"
	invDto "github.com/fekuna/omnipos-console/internal/inventory/dto"
	invRepo "github.com/fekuna/omnipos-console/internal/inventory/repository"
	invUC "github.com/fekuna/omnipos-console/internal/inventory/usecase"
	"github.com/fekuna/omnipos-console/internal/logger"
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/fekuna/omnipos-console/internal/product/dto"
	"github.com/fekuna/omnipos-console/internal/product/repository"
	"github.com/fekuna/omnipos-console/internal/store"
)

func newUseCase(t *testing.T, products ...model.Product) (*productUseCase, *store.Store) {
	t.Helper()
	st := store.New(store.Snapshot{Products: products})
	repo := repository.NewMemoryRepository(st)
	log := logger.NewNop()
	inv := invUC.NewInventoryUseCase(invRepo.NewMemoryRepository(), repo, 2, log)
	return NewProductUseCase(repo, inv, log).(*productUseCase), st
}

func TestCreateProduct(t *testing.T) {
	uc, st := newUseCase(t, model.Product{ID: "P1", Name: "Existing"})
	ctx := context.Background()

	t.Run("generated id", func(t *testing.T) {
		p, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "Beacon", Stock: 4, Price: decimal.NewFromInt(12)})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.Nil(t, p.ImageURL)
		assert.Len(t, st.View().Products, 2)

		movements, _, err := uc.inventory.ListMovements(ctx, &invDto.MovementFilters{ProductID: p.ID})
		require.NoError(t, err)
		require.Len(t, movements, 1)
		assert.Equal(t, model.MovementRestock, movements[0].MovementType)
		assert.Equal(t, 4, movements[0].QuantityAfter)
	})

	t.Run("duplicate id", func(t *testing.T) {
		_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{ID: "P1", Name: "Copy"})
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := uc.CreateProduct(ctx, &dto.CreateProductInput{Name: " "})
		assert.True(t, apperr.IsValidation(err))
		_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "X", Stock: -1})
		assert.True(t, apperr.IsValidation(err))
		_, err = uc.CreateProduct(ctx, &dto.CreateProductInput{Name: "X", Price: decimal.NewFromInt(-1)})
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestUpdateProductRecordsAdjustment(t *testing.T) {
	uc, _ := newUseCase(t, model.Product{ID: "P1", Name: "Tag", Stock: 5})
	ctx := context.Background()

	stock := 2
	name := "Tag v2"
	p, err := uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: "P1", Name: &name, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, "Tag v2", p.Name)

	movements, _, err := uc.inventory.ListMovements(ctx, &invDto.MovementFilters{})
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, model.MovementManualAdjustment, movements[0].MovementType)
	assert.Equal(t, -3, movements[0].QuantityChange)

	_, err = uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: "P9"})
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateProductDoesNotOverwriteConcurrentStockChanges(t *testing.T) {
	uc, st := newUseCase(t, model.Product{ID: "P1", Name: "Tag", Stock: 100})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("Tag %d", i)
			_, err := uc.UpdateProduct(ctx, &dto.UpdateProductInput{ID: "P1", Name: &name})
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			_, err := st.Apply(func(snap store.Snapshot) (store.Snapshot, error) {
				snap.Products[0].Stock--
				return snap, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, st.View().Products[0].Stock)
}

func TestUpdateProductRejectedLeavesProductUnchanged(t *testing.T) {
	uc, st := newUseCase(t, model.Product{ID: "P1", Name: "Tag", Stock: 5})

	blank := " "
	stock := 9
	_, err := uc.UpdateProduct(context.Background(), &dto.UpdateProductInput{ID: "P1", Name: &blank, Stock: &stock})
	assert.True(t, apperr.IsValidation(err))
	assert.Equal(t, "Tag", st.View().Products[0].Name)
	assert.Equal(t, 5, st.View().Products[0].Stock)
}

func TestDeleteProduct(t *testing.T) {
	uc, st := newUseCase(t, model.Product{ID: "P1", Name: "Tag"})
	ctx := context.Background()

	require.NoError(t, uc.DeleteProduct(ctx, "P1"))
	assert.Empty(t, st.View().Products)
	assert.True(t, apperr.IsNotFound(uc.DeleteProduct(ctx, "P1")))
}

func TestListProducts(t *testing.T) {
	uc, _ := newUseCase(t,
		model.Product{ID: "P1", Name: "Beta", Category: "Sensors", Stock: 0, Price: decimal.NewFromInt(5), Active: true},
		model.Product{ID: "P2", Name: "alpha", Category: "Trackers", Stock: 3, Price: decimal.NewFromInt(9)},
		model.Product{ID: "P3", Name: "Gamma", Category: "Sensors", Stock: 8, Price: decimal.NewFromInt(1), Active: true},
	)
	ctx := context.Background()

	tests := []struct {
		name    string
		filters dto.ProductFilters
		want    []string
	}{
		{"all", dto.ProductFilters{}, []string{"P1", "P2", "P3"}},
		{"category", dto.ProductFilters{Category: "sensors"}, []string{"P1", "P3"}},
		{"in stock", dto.ProductFilters{InStockOnly: true}, []string{"P2", "P3"}},
		{"search", dto.ProductFilters{SearchQuery: "track"}, []string{"P2"}},
		{"by name", dto.ProductFilters{SortBy: "name"}, []string{"P2", "P1", "P3"}},
		{"by price desc", dto.ProductFilters{SortBy: "price", SortOrder: "desc"}, []string{"P2", "P1", "P3"}},
		{"paged", dto.ProductFilters{SortBy: "stock", Page: 2, PageSize: 2}, []string{"P3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.filters
			products, _, err := uc.ListProducts(ctx, &f)
			require.NoError(t, err)
			ids := make([]string, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
