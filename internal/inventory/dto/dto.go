package dto

import (
	"time"

	"github.com/fekuna/omnipos-console/internal/model"
)

type MovementFilters struct {
	ProductID    string
	MovementType string
	ReferenceID  string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	PageSize     int
}

type StockLevels struct {
	LowStockThreshold int             `json:"lowStockThreshold"`
	LowStock          []model.Product `json:"lowStock"`
	OutOfStock        []model.Product `json:"outOfStock"`
}
