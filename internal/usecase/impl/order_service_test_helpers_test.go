package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		CartSession: config.CartSessionConfig{
			Secret: "test-secret",
			TTL:    time.Hour,
		},
		Shipping: config.ShippingConfig{
			FreeThreshold: "20",
			FlatRate:      "5",
		},
	}

	return cfg
}
