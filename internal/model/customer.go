package model

import "github.com/shopspring/decimal"

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerVIP      CustomerStatus = "VIP"
	CustomerRisk     CustomerStatus = "Risk"
	CustomerInactive CustomerStatus = "Inactive"
)

var CustomerStatuses = []CustomerStatus{CustomerActive, CustomerVIP, CustomerRisk, CustomerInactive}

func (s CustomerStatus) IsValid() bool {
	for _, v := range CustomerStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Customer totals are edited by hand and are not derived from orders.
type Customer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Status        CustomerStatus  `json:"status"`
	Joined        string          `json:"joined"`
	TotalOrders   int             `json:"totalOrders"`
	TotalSpend    decimal.Decimal `json:"totalSpend"`
	LastOrderDate string          `json:"lastOrderDate"`
	Notes         string          `json:"notes"`
}

func FindCustomer(customers []Customer, id string) int {
	for i := range customers {
		if customers[i].ID == id {
			return i
		}
	}
	return -1
}
