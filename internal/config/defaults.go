package config

import "time"

const (
	defaultPort            = 8080
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 15 * time.Second
)

var defaultRateLimit = RateLimitConfig{
	Enabled:    true,
	Rate:       50,
	Burst:      100,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = PprofConfig{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimitConfig {
	return defaultRateLimit
}

// DefaultPprof returns the default profiling server settings.
func DefaultPprof() PprofConfig {
	return defaultPprof
}
