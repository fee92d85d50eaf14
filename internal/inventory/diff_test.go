package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-console/internal/model"
)

func TestDiffStock(t *testing.T) {
	before := []model.Product{{ID: "A", Stock: 5}, {ID: "B", Stock: 2}, {ID: "C", Stock: 1}}
	after := []model.Product{{ID: "A", Stock: 3}, {ID: "B", Stock: 2}, {ID: "D", Stock: 9}}

	got := DiffStock(before, after, model.MovementSale, "ORD-001", "order created")
	require.Len(t, got, 1)
	assert.Equal(t, model.StockMovement{
		ProductID:      "A",
		MovementType:   model.MovementSale,
		QuantityChange: -2,
		QuantityBefore: 5,
		QuantityAfter:  3,
		ReferenceID:    "ORD-001",
		Notes:          "order created",
	}, got[0])

	assert.Empty(t, DiffStock(before, before, model.MovementSale, "", ""))
}
