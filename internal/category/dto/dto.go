package dto

import "github.com/shopspring/decimal"

type CategoryFilters struct {
	ActiveOnly bool
}

type Category struct {
	Name           string          `json:"name"`
	Products       int             `json:"products"`
	ActiveProducts int             `json:"activeProducts"`
	Stock          int             `json:"stock"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
}

type RenameCategoryInput struct {
	From string
	To   string
}
