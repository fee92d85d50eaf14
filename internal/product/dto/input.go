package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	ID       string // generated when blank
	Name     string
	Category string
	Battery  string
	Status   string
	Alerts   int
	LastSync string
	Stock    int
	Active   bool
	Price    decimal.Decimal
	ImageURL string
}

// UpdateProductInput carries only the fields being changed.
type UpdateProductInput struct {
	ID       string
	Name     *string
	Category *string
	Battery  *string
	Status   *string
	Alerts   *int
	LastSync *string
	Stock    *int
	Active   *bool
	Price    *decimal.Decimal
	ImageURL *string
}
