package dto

type AlertFilters struct {
	SearchQuery string // product name, type or detail
	Type        string
	Severity    string
	ShowSnoozed bool
}

// AlertStats counts unresolved alerts only.
type AlertStats struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Snoozed  int `json:"snoozed"`
}
