package model

import "time"

type MovementType string

const (
	MovementSale             MovementType = "sale"
	MovementSaleEdit         MovementType = "sale_edit"
	MovementRestock          MovementType = "restock"
	MovementCart             MovementType = "cart"
	MovementOrderDelete      MovementType = "order_delete"
	MovementManualAdjustment MovementType = "manual_adjustment"
)

type StockMovement struct {
	ID             string       `json:"id"`
	ProductID      string       `json:"productId"`
	MovementType   MovementType `json:"movementType"`
	QuantityChange int          `json:"quantityChange"`
	QuantityBefore int          `json:"quantityBefore"`
	QuantityAfter  int          `json:"quantityAfter"`
	ReferenceID    string       `json:"referenceId,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	CreatedBy      string       `json:"createdBy,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}
