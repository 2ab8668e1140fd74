package app

import (
	"os"

	"service-orders/internal/config"
	"service-orders/internal/logx"
)

// NewLogger returns a JSON logger on stdout at cfg.LogLevel.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	level, err := logx.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return logx.NewJSON(os.Stdout, level).With(logx.String("service", "service-orders")), nil
}
