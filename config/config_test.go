package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, 2, cfg.Alerts.LowStock)
	assert.Equal(t, 15.0, cfg.Alerts.BatteryLow)
	assert.Equal(t, 30, cfg.Alerts.SyncDelayMinutes)
	assert.Equal(t, "monotonic", cfg.Orders.IDStrategy)
	assert.False(t, cfg.Orders.RestoreStockOnDelete)
	assert.Equal(t, "SAR", cfg.Settings.Currency)
	assert.Equal(t, []string{"SAR", "USD", "EUR"}, cfg.Settings.SupportedCurrencies)
	assert.Empty(t, cfg.Seed.File)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ALERT_LOW_STOCK", "5")
	t.Setenv("ALERT_BATTERY_LOW", "20.5")
	t.Setenv("ORDER_ID_STRATEGY", "length")
	t.Setenv("ORDER_RESTORE_STOCK_ON_DELETE", "true")
	t.Setenv("SUPPORTED_CURRENCIES", "SAR,USD")
	t.Setenv("ALERT_SYNC_DELAY_MINUTES", "soon")

	cfg := LoadEnv()

	assert.Equal(t, 5, cfg.Alerts.LowStock)
	assert.Equal(t, 20.5, cfg.Alerts.BatteryLow)
	assert.Equal(t, "length", cfg.Orders.IDStrategy)
	assert.True(t, cfg.Orders.RestoreStockOnDelete)
	assert.Equal(t, []string{"SAR", "USD"}, cfg.Settings.SupportedCurrencies)
	assert.Equal(t, 30, cfg.Alerts.SyncDelayMinutes, "unparseable values fall back")
}
