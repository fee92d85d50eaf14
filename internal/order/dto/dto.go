package dto

type OrderFilters struct {
	Status        string
	ProductID     string
	CustomerQuery string
	SortBy        string // date, total
	SortOrder     string // asc, desc
	Page          int
	PageSize      int
}
