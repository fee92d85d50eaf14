package model

type AlertType string

const (
	AlertOutOfStock   AlertType = "Out of stock"
	AlertLowStock     AlertType = "Low stock"
	AlertBatteryLow   AlertType = "Battery low"
	AlertDisconnected AlertType = "Disconnected"
	AlertActive       AlertType = "Active alerts"
	AlertSyncDelayed  AlertType = "Sync delayed"
)

var AlertTypes = []AlertType{
	AlertOutOfStock, AlertLowStock, AlertBatteryLow,
	AlertDisconnected, AlertActive, AlertSyncDelayed,
}

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Alert is derived from a product on every read and never stored.
type Alert struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Type        AlertType `json:"type"`
	Severity    Severity  `json:"severity"`
	Detail      string    `json:"detail"`
	Time        string    `json:"time"`
	Snoozed     bool      `json:"snoozed,omitempty"`
}
