// Package config reads the runtime settings of the helmsman binary from the
// environment, loading a .env file first when one is present.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Logging LoggingConfig
	Flight  FlightConfig
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

type FlightConfig struct {
	// StarCount overrides the star pool size.
	StarCount int

	// Seed fixes the random source; 0 picks one at startup.
	Seed uint64

	// Scene is the catalog scene the player starts in.
	Scene string

	// ShowAll starts in the show-all debug view.
	ShowAll bool
}

// Load reads the configuration. Each file in envFiles is loaded into the
// environment if it exists; with none given, ".env" is tried. Variables
// already set in the environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func load() (*Config, error) {
	flight, err := loadFlightConfig()
	if err != nil {
		return nil, err
	}
	logging, err := loadLoggingConfig()
	if err != nil {
		return nil, err
	}
	return &Config{Logging: logging, Flight: flight}, nil
}

func loadLoggingConfig() (LoggingConfig, error) {
	jsonFormat, err := strconv.ParseBool(getEnv("HELMSMAN_LOG_JSON", "false"))
	if err != nil {
		return LoggingConfig{}, fmt.Errorf("HELMSMAN_LOG_JSON: %w", err)
	}
	return LoggingConfig{
		Level:      getEnv("HELMSMAN_LOG_LEVEL", "info"),
		JSONFormat: jsonFormat,
	}, nil
}

func loadFlightConfig() (FlightConfig, error) {
	starCount, err := strconv.Atoi(getEnv("HELMSMAN_STAR_COUNT", "300"))
	if err != nil {
		return FlightConfig{}, fmt.Errorf("HELMSMAN_STAR_COUNT: %w", err)
	}
	seed, err := strconv.ParseUint(getEnv("HELMSMAN_SEED", "0"), 10, 64)
	if err != nil {
		return FlightConfig{}, fmt.Errorf("HELMSMAN_SEED: %w", err)
	}
	showAll, err := strconv.ParseBool(getEnv("HELMSMAN_SHOW_ALL", "false"))
	if err != nil {
		return FlightConfig{}, fmt.Errorf("HELMSMAN_SHOW_ALL: %w", err)
	}
	return FlightConfig{
		StarCount: starCount,
		Seed:      seed,
		Scene:     getEnv("HELMSMAN_SCENE", "Control Room"),
		ShowAll:   showAll,
	}, nil
}

func (c *Config) validate() error {
	if c.Flight.StarCount <= 0 {
		return fmt.Errorf("HELMSMAN_STAR_COUNT must be positive, got %d", c.Flight.StarCount)
	}
	if c.Flight.Scene == "" {
		return fmt.Errorf("HELMSMAN_SCENE is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("HELMSMAN_LOG_LEVEL %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
