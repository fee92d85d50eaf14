package dto

type ProductFilters struct {
	Category    string
	IsActive    *bool
	InStockOnly bool
	SearchQuery string // name or category
	SortBy      string // name, price, stock
	SortOrder   string // asc, desc
	Page        int
	PageSize    int
}
