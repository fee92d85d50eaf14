package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Alerts   AlertsConfig
	Orders   OrdersConfig
	Settings SettingsConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	AppEnv string
	Prompt string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// AuthConfig is the single static console credential.
type AuthConfig struct {
	Email    string
	Password string
}

type AlertsConfig struct {
	LowStock             int
	BatteryLow           float64
	ActiveAlertsCritical int
	SyncDelayMinutes     int
}

type OrdersConfig struct {
	// IDStrategy is "monotonic" or "length".
	IDStrategy           string
	RestoreStockOnDelete bool
	GuestCustomerName    string
}

type SettingsConfig struct {
	Currency            string
	Theme               string
	SupportedCurrencies []string
}

// SeedConfig points at a replacement for the embedded seed data.
type SeedConfig struct {
	File string
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv: getEnv("APP_ENV", "dev"),
			Prompt: getEnv("CONSOLE_PROMPT", "omnipos> "),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "info"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Auth: AuthConfig{
			Email:    getEnv("ADMIN_EMAIL", "ShahadAlotaibi@hashplus.com"),
			Password: getEnv("ADMIN_PASSWORD", "password123"),
		},
		Alerts: AlertsConfig{
			LowStock:             getEnvInt("ALERT_LOW_STOCK", 2),
			BatteryLow:           getEnvFloat("ALERT_BATTERY_LOW", 15),
			ActiveAlertsCritical: getEnvInt("ALERT_ACTIVE_CRITICAL", 2),
			SyncDelayMinutes:     getEnvInt("ALERT_SYNC_DELAY_MINUTES", 30),
		},
		Orders: OrdersConfig{
			IDStrategy:           getEnv("ORDER_ID_STRATEGY", "monotonic"),
			RestoreStockOnDelete: getEnvBool("ORDER_RESTORE_STOCK_ON_DELETE", false),
			GuestCustomerName:    getEnv("ORDER_GUEST_CUSTOMER", "Guest Customer"),
		},
		Settings: SettingsConfig{
			Currency:            getEnv("DEFAULT_CURRENCY", "SAR"),
			Theme:               getEnv("DEFAULT_THEME", "dark"),
			SupportedCurrencies: getEnvSlice("SUPPORTED_CURRENCIES", []string{"SAR", "USD", "EUR"}),
		},
		Seed: SeedConfig{
			File: getEnv("SEED_FILE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}
