package inventory

import (
	"github.com/fekuna/omnipos-console/internal/model"
)

// DiffStock returns one movement per product whose stock differs between the
// two product lists. Products missing from after are skipped.
func DiffStock(before, after []model.Product, movementType model.MovementType, referenceID, notes string) []model.StockMovement {
	prior := make(map[string]int, len(before))
	for _, p := range before {
		prior[p.ID] = p.Stock
	}

	var movements []model.StockMovement
	for _, p := range after {
		was, ok := prior[p.ID]
		if !ok || was == p.Stock {
			continue
		}
		movements = append(movements, model.StockMovement{
			ProductID:      p.ID,
			MovementType:   movementType,
			QuantityChange: p.Stock - was,
			QuantityBefore: was,
			QuantityAfter:  p.Stock,
			ReferenceID:    referenceID,
			Notes:          notes,
		})
	}
	return movements
}
