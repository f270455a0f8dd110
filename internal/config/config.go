// Package config provides configuration loading and validation for the CLI and HTTP server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/cv-wizard/internal/coverage"
	"github.com/jonathan/cv-wizard/internal/matching"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Analysis
	Language string `json:"language,omitempty" validate:"omitempty,max=16"` // Default language tag (tr, en)
	TopK     int    `json:"top_k,omitempty" validate:"gte=0,lte=200"`       // Job keywords considered by the match score
	Taxonomy string `json:"taxonomy,omitempty"`                             // Path to a taxonomy YAML file replacing the embedded one

	// Coverage tier boundaries in percent. nil means unset; an explicit 0 is kept.
	CoverageLowBelow *float64 `json:"coverage_low_below,omitempty" validate:"omitempty,gte=0,lte=100"`
	CoverageGoodFrom *float64 `json:"coverage_good_from,omitempty" validate:"omitempty,gte=0,lte=100"`

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn error disabled"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=json pretty"`

	// Server
	Port           int     `json:"port,omitempty" validate:"gte=0,lte=65535"`
	RateLimitRPS   float64 `json:"rate_limit_rps,omitempty" validate:"gte=0"`   // Requests per second per client
	RateLimitBurst int     `json:"rate_limit_burst,omitempty" validate:"gte=0"` // Burst size per client
}

var validate = newValidator()

// newValidator reports fields by their JSON names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Language:         "tr",
		TopK:             matching.DefaultTopK,
		CoverageLowBelow: floatPtr(coverage.DefaultLowBelow),
		CoverageGoodFrom: floatPtr(coverage.DefaultGoodFrom),
		LogLevel:         "info",
		LogFormat:        "pretty",
		Port:             8080,
		RateLimitRPS:     10,
		RateLimitBurst:   20,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field ranges and cross-field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: '%s' failed '%s' check (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.CoverageLowBelow != nil && c.CoverageGoodFrom != nil && *c.CoverageLowBelow > *c.CoverageGoodFrom {
		return fmt.Errorf("config error: 'coverage_low_below' (%g) must not exceed 'coverage_good_from' (%g)", *c.CoverageLowBelow, *c.CoverageGoodFrom)
	}

	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero or unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Language == "" {
		result.Language = defaults.Language
	}
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Numeric fields: use default if zero
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitRPS == 0 {
		result.RateLimitRPS = defaults.RateLimitRPS
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}

	// Pointer fields: use default if unset, so an explicit 0 survives
	if result.CoverageLowBelow == nil {
		result.CoverageLowBelow = defaults.CoverageLowBelow
	}
	if result.CoverageGoodFrom == nil {
		result.CoverageGoodFrom = defaults.CoverageGoodFrom
	}

	return result
}

// ApplyEnv overrides fields from CV_* environment variables.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	integer := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", key, err)
		}
		*dst = n
		return nil
	}

	str("CV_LANGUAGE", &c.Language)
	str("CV_TAXONOMY", &c.Taxonomy)
	str("CV_LOG_LEVEL", &c.LogLevel)
	str("CV_LOG_FORMAT", &c.LogFormat)
	if err := integer("CV_TOP_K", &c.TopK); err != nil {
		return err
	}
	if err := integer("CV_PORT", &c.Port); err != nil {
		return err
	}
	return nil
}

// Thresholds returns the coverage tier boundaries. Unset boundaries take the defaults.
func (c *Config) Thresholds() coverage.Thresholds {
	t := coverage.DefaultThresholds()
	if c.CoverageLowBelow != nil {
		t.LowBelow = *c.CoverageLowBelow
	}
	if c.CoverageGoodFrom != nil {
		t.GoodFrom = *c.CoverageGoodFrom
	}
	return t
}

func floatPtr(v float64) *float64 {
	return &v
}
