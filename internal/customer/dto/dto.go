package dto

import "github.com/shopspring/decimal"

type CustomerFilters struct {
	SearchQuery string // name, email or phone
	Status      string
	Page        int
	PageSize    int
}

type CustomerStats struct {
	Total      int             `json:"total"`
	Active     int             `json:"active"`
	VIP        int             `json:"vip"`
	TotalSpend decimal.Decimal `json:"totalSpend"`
}
