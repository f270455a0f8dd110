package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string  // Endpoint path pattern (supports prefix matching)
	Method string  // HTTP method (GET, POST, etc.)
	Rate   float64 // Requests per second; <= 0 means unlimited
	Burst  int     // Burst capacity (defaults to ceil(Rate) if 0)
}

// NewConfig returns an enabled configuration with the given per-client default rate and burst
// plus the standard endpoint overrides.
func NewConfig(rps float64, burst int) *Config {
	return &Config{
		Enabled:         true,
		DefaultRate:     rps,
		DefaultBurst:    burst,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		EndpointConfigs: DefaultEndpointConfigs(rps, burst),
	}
}

// LoadConfig builds on base with RATE_LIMIT_* environment variables.
func LoadConfig(base *Config) *Config {
	cfg := *base
	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", base.Enabled)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", base.CleanupInterval)
	cfg.Whitelist = parseIPList(getEnvString("RATE_LIMIT_WHITELIST", ""))
	cfg.Blacklist = parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", ""))
	return &cfg
}

// DefaultEndpointConfigs returns the endpoint-specific overrides for the given default rate.
// Batch scoring costs more per request and gets a quarter of the budget.
func DefaultEndpointConfigs(rps float64, burst int) []EndpointConfig {
	return []EndpointConfig{
		{Path: "/match/batch", Method: "POST", Rate: rps / 4, Burst: max(1, burst/4)},
		{Path: "/taxonomy", Method: "GET", Rate: 0},
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
