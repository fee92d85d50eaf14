// Package deriver computes alerts from the product list. It holds no state:
// the same products always produce the same alerts, with the same ids, in the
// same order.
package deriver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-console/internal/model"
)

type Thresholds struct {
	LowStock             int     // 0 < stock <= LowStock
	BatteryLow           float64 // battery <= BatteryLow
	ActiveAlertsCritical int     // alerts > ActiveAlertsCritical is critical
	SyncDelayMinutes     int     // minutes since sync > SyncDelayMinutes
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		LowStock:             2,
		BatteryLow:           15,
		ActiveAlertsCritical: 2,
		SyncDelayMinutes:     30,
	}
}

var lastSyncPattern = regexp.MustCompile(`(?i)(\d+)\s*(min|mins|minute|minutes|hr|hrs|hour|hours|day|days)`)

// Derive evaluates every rule for every product. Output follows product order,
// and within a product the rule order: stock, battery, connectivity, active
// alerts, sync staleness.
func Derive(products []model.Product, th Thresholds) []model.Alert {
	alerts := make([]model.Alert, 0)

	for _, p := range products {
		emit := func(suffix string, typ model.AlertType, sev model.Severity, detail string) {
			alerts = append(alerts, model.Alert{
				ID:          AlertID(p.ID, suffix),
				ProductID:   p.ID,
				ProductName: p.Name,
				Type:        typ,
				Severity:    sev,
				Detail:      detail,
				Time:        p.LastSync,
			})
		}

		if p.Stock == 0 {
			emit("out-of-stock", model.AlertOutOfStock, model.SeverityCritical, "No inventory available")
		} else if p.Stock > 0 && p.Stock <= th.LowStock {
			emit("low-stock", model.AlertLowStock, model.SeverityWarning, fmt.Sprintf("Only %d left", p.Stock))
		}

		if battery, ok := ParseBattery(p.Battery); ok && battery <= th.BatteryLow {
			emit("battery-low", model.AlertBatteryLow, model.SeverityCritical,
				fmt.Sprintf("Battery at %s%%", strconv.FormatFloat(battery, 'f', -1, 64)))
		}

		if p.Status != "" && p.Status != model.StatusConnected {
			emit("disconnected", model.AlertDisconnected, model.SeverityCritical, "Device is offline")
		}

		if p.Alerts > 0 {
			sev := model.SeverityWarning
			if p.Alerts > th.ActiveAlertsCritical {
				sev = model.SeverityCritical
			}
			emit("alerts", model.AlertActive, sev, fmt.Sprintf("%d active alerts", p.Alerts))
		}

		if minutes, ok := ParseLastSyncMinutes(p.LastSync); ok && minutes > th.SyncDelayMinutes {
			emit("stale", model.AlertSyncDelayed, model.SeverityWarning, "Last sync "+p.LastSync)
		}
	}

	return alerts
}

func AlertID(productID, suffix string) string {
	return productID + "-" + suffix
}

// ParseBattery reads "42%" or "42". Blank or non-numeric values are not a
// reading.
func ParseBattery(battery string) (float64, bool) {
	s := strings.TrimSuffix(strings.TrimSpace(battery), "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseLastSyncMinutes turns "5 min ago", "2 hrs ago" or "1 day ago" into
// minutes.
func ParseLastSyncMinutes(lastSync string) (int, bool) {
	m := lastSyncPattern.FindStringSubmatch(lastSync)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	unit := strings.ToLower(m[2])
	switch {
	case strings.HasPrefix(unit, "h"):
		return amount * 60, true
	case strings.HasPrefix(unit, "day"):
		return amount * 1440, true
	default:
		return amount, true
	}
}
