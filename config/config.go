package config

import (
	"os"
	"time"

	"github.com/spf13/cast"
)

// AppConfig holds everything the storefront reads from the environment.
// All business data lives behind BackendURL; the only local state is the
// credential cache at StateDB.
type AppConfig struct {
	Port            string
	BackendURL      string
	SuperAdminEmail string
	DeliveryFee     float64
	StateDB         string
	LogMode         string
	LogFile         string
	PollInterval    time.Duration
}

func Load() *AppConfig {
	cfg := &AppConfig{
		Port:            getenv("PORT", "9000"),
		BackendURL:      getenv("BACKEND_URL", "http://localhost:8000/api"),
		SuperAdminEmail: getenv("SUPER_ADMIN_EMAIL", "admin@foodie.com"),
		DeliveryFee:     cast.ToFloat64(getenv("DELIVERY_FEE", "50")),
		StateDB:         getenv("STATE_DB", "foodie-state.db"),
		LogMode:         getenv("LOG_MODE", "dev"),
		LogFile:         os.Getenv("LOG_FILE"),
	}
	seconds := cast.ToInt(getenv("POLL_INTERVAL_SECONDS", "30"))
	if seconds < 1 {
		seconds = 30
	}
	cfg.PollInterval = time.Duration(seconds) * time.Second
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
