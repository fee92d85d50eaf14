package dto

import (
	"github.com/fekuna/omnipos-console/internal/model"
	"github.com/shopspring/decimal"
)

type SeriesPoint struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type StatusCount struct {
	Status model.OrderStatus `json:"status"`
	Count  int               `json:"count"`
}

type StatusBreakdown struct {
	Counts []StatusCount `json:"counts"`
	// Total is never zero so callers can divide by it.
	Total int `json:"total"`
}

type ProductRevenue struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
}

type Dashboard struct {
	Revenue       decimal.Decimal `json:"revenue"`
	TotalOrders   int             `json:"totalOrders"`
	AvgOrder      decimal.Decimal `json:"avgOrder"`
	InStock       int             `json:"inStock"`
	LowStock      int             `json:"lowStock"`
	OutOfStock    int             `json:"outOfStock"`
	ActiveAlerts  int             `json:"activeAlerts"`
	DevicesOnline int             `json:"devicesOnline"`
	RevenueSeries []SeriesPoint   `json:"revenueSeries"`
	Status        StatusBreakdown `json:"statusBreakdown"`
}

type Summary struct {
	TotalRevenue  decimal.Decimal  `json:"totalRevenue"`
	TotalOrders   int              `json:"totalOrders"`
	AvgOrder      decimal.Decimal  `json:"avgOrder"`
	InStock       int              `json:"inStock"`
	OutOfStock    int              `json:"outOfStock"`
	RevenueSeries []SeriesPoint    `json:"revenueSeries"`
	Status        StatusBreakdown  `json:"statusBreakdown"`
	TopProducts   []ProductRevenue `json:"topProducts"`
	RecentOrders  []model.Order    `json:"recentOrders"`
}
