package dto

import (
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/shopspring/decimal"
)

type CreateCustomerInput struct {
	Name          string
	Email         string
	Phone         string
	Status        model.CustomerStatus
	Joined        string
	TotalOrders   int
	TotalSpend    decimal.Decimal
	LastOrderDate string
	Notes         string
}

type UpdateCustomerInput struct {
	ID            string
	Name          *string
	Email         *string
	Phone         *string
	Status        *model.CustomerStatus
	Joined        *string
	TotalOrders   *int
	TotalSpend    *decimal.Decimal
	LastOrderDate *string
	Notes         *string
}
