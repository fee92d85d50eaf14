package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-console/internal/model"
)

func TestLengthIDsCollideAfterDelete(t *testing.T) {
	orders := []model.Order{{ID: "ORD-001"}, {ID: "ORD-003"}}
	assert.Equal(t, "ORD-003", LengthIDs{}.NextOrderID(orders))
}

func TestMonotonicIDs(t *testing.T) {
	g := &MonotonicIDs{}

	assert.Equal(t, "ORD-001", g.NextOrderID(nil))

	orders := []model.Order{{ID: "ORD-001"}, {ID: "ORD-002"}, {ID: "ORD-003"}}
	assert.Equal(t, "ORD-004", g.NextOrderID(orders))

	// ORD-004 was handed out and then its order went away
	assert.Equal(t, "ORD-005", g.NextOrderID(orders[:1]))

	assert.Equal(t, "ORD-1001", g.NextOrderID([]model.Order{{ID: "ORD-1000"}, {ID: "legacy-7"}}))
}

func TestMonotonicIDsNeverCollideAfterDeletes(t *testing.T) {
	p := fixedPolicy()
	p.IDs = &MonotonicIDs{}
	products := []model.Product{{ID: "A", Name: "A", Stock: 100, Price: dec("1")}}
	var orders []model.Order

	for i := 0; i < 3; i++ {
		res, err := Create(Draft{ProductID: "A", Quantity: 1}, products, orders, p)
		require.NoError(t, err)
		products, orders = res.Products, res.Orders
	}

	res, err := Delete("ORD-002", products, orders, p)
	require.NoError(t, err)
	products, orders = res.Products, res.Orders

	res, err = Create(Draft{ProductID: "A", Quantity: 1}, products, orders, p)
	require.NoError(t, err)
	assert.Equal(t, "ORD-004", res.Order.ID)

	seen := map[string]bool{}
	for _, o := range res.Orders {
		assert.False(t, seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
	}
}

func TestNewIDGenerator(t *testing.T) {
	seeded := []model.Order{{ID: "ORD-001"}, {ID: "ORD-002"}}

	g, err := NewIDGenerator("", seeded)
	require.NoError(t, err)
	assert.IsType(t, &MonotonicIDs{}, g)
	// ORD-002 was deleted before anything new was placed
	assert.Equal(t, "ORD-003", g.NextOrderID(seeded[:1]))

	g, err = NewIDGenerator("LENGTH", seeded)
	require.NoError(t, err)
	assert.IsType(t, LengthIDs{}, g)

	_, err = NewIDGenerator("uuid", nil)
	assert.Error(t, err)
}

func TestParseOrderNumber(t *testing.T) {
	n, ok := ParseOrderNumber("ORD-042")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = ParseOrderNumber("ORD-x")
	assert.False(t, ok)
	_, ok = ParseOrderNumber("42")
	assert.False(t, ok)
}
