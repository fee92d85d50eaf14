package model

import "github.com/shopspring/decimal"

type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Battery  string          `json:"battery"`  // e.g. "42%"
	Status   string          `json:"status"`   // "Connected" or anything else
	Alerts   int             `json:"alerts"`   // active alert count reported by the device
	LastSync string          `json:"lastSync"` // free text, e.g. "5 min ago"
	Stock    int             `json:"stock"`
	Active   bool            `json:"active"`
	Price    decimal.Decimal `json:"price"`
	ImageURL *string         `json:"imageUrl,omitempty"`
}

const StatusConnected = "Connected"

// FindProduct returns the index of the product with the given id, or -1.
func FindProduct(products []Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
