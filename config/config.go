// SPDX-License-Identifier: MIT

// Package config loads the gridbelief CLI settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridbelief/belief"
)

// Environment variable names.
const (
	EnvScenarioFile = "GRIDBELIEF_SCENARIO_FILE"
	EnvScenario     = "GRIDBELIEF_SCENARIO"
	EnvLogLevel     = "GRIDBELIEF_LOG_LEVEL"
	EnvLogFormat    = "GRIDBELIEF_LOG_FORMAT"
	EnvColor        = "GRIDBELIEF_COLOR"
	EnvEdgePolicy   = "GRIDBELIEF_EDGE_POLICY"
	EnvPrecision    = "GRIDBELIEF_PRECISION"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Bounds on the rendered decimals per cell.
const (
	MinPrecision = 1
	MaxPrecision = 12
)

// ErrInvalidValue is returned when an environment variable cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the CLI configuration.
type Config struct {
	ScenarioFile string     // YAML/JSON scenario document; empty runs the built-ins
	Scenario     string     // run only the scenario with this name; empty runs all
	LogLevel     slog.Level // minimum level logged
	LogFormat    string     // FormatText or FormatJSON
	Color        bool       // colored heat maps
	Precision    int        // decimals per rendered cell
	// Edge overrides every scenario's edge policy when non-nil.
	Edge *belief.EdgePolicy
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:  slog.LevelInfo,
		LogFormat: FormatText,
		Precision: 4,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// process environment without overriding variables already set, then
// builds a Config from the environment. Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment over Default.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.ScenarioFile = getEnvWithDefault(EnvScenarioFile, "")
	cfg.Scenario = getEnvWithDefault(EnvScenario, "")

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, invalid(EnvLogLevel, v)
		}
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		f, err := ParseFormat(v)
		if err != nil {
			return Config{}, err
		}
		cfg.LogFormat = f
	}
	if v, ok := os.LookupEnv(EnvColor); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, invalid(EnvColor, v)
		}
		cfg.Color = b
	}
	if v, ok := os.LookupEnv(EnvPrecision); ok {
		n, err := strconv.Atoi(v)
		if err != nil || CheckPrecision(n) != nil {
			return Config{}, invalid(EnvPrecision, v)
		}
		cfg.Precision = n
	}
	if v := getEnvWithDefault(EnvEdgePolicy, ""); v != "" {
		p, err := belief.ParseEdgePolicy(v)
		if err != nil {
			return Config{}, invalid(EnvEdgePolicy, v)
		}
		cfg.Edge = &p
	}

	return cfg, nil
}

// ParseFormat accepts "text" or "json" (case-insensitive).
func ParseFormat(s string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", invalid(EnvLogFormat, s)
	}
}

// CheckPrecision returns ErrInvalidValue unless n is within
// [MinPrecision, MaxPrecision].
func CheckPrecision(n int) error {
	if n < MinPrecision || n > MaxPrecision {
		return fmt.Errorf("%w: precision %d outside [%d,%d]", ErrInvalidValue, n, MinPrecision, MaxPrecision)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func invalid(key, value string) error {
	return fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
}
