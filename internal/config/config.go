package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Dataset source kinds accepted in DATASET_SOURCE.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceSQLite   = "sqlite"
	SourcePostgres = "postgres"
)

// Depot is the shop the map is centered on.
type Depot struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

type Config struct {
	Port          string
	DatasetSource string
	DatasetPath   string
	DBPath        string
	DatabaseURL   string
	LoadTimeout   time.Duration
	WaitTimeout   time.Duration
	LogLevel      string
	Depot         Depot
}

// LoadDotEnv loads .env into the process environment when the file exists.
// It reports whether a file was found.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:          Get("PORT", "8080"),
		DatasetSource: strings.ToLower(Get("DATASET_SOURCE", SourceEmbedded)),
		DatasetPath:   Get("DATASET_PATH", ""),
		DBPath:        Get("DB_PATH", "data/customers.db"),
		DatabaseURL:   Get("DATABASE_URL", ""),
		LogLevel:      Get("LOG_LEVEL", "info"),
		Depot: Depot{
			Name:    Get("DEPOT_NAME", "Cintas Shop - Route 33"),
			Address: Get("DEPOT_ADDRESS", "2502 Churn Creek Rd, Redding, CA"),
		},
	}

	var err error
	if cfg.LoadTimeout, err = getDuration("LOAD_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.WaitTimeout, err = getDuration("WAIT_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Depot.Latitude, err = getFloat("DEPOT_LAT", 40.5865); err != nil {
		return Config{}, err
	}
	if cfg.Depot.Longitude, err = getFloat("DEPOT_LON", -122.3917); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the selected dataset source has what it needs.
func (c Config) Validate() error {
	switch c.DatasetSource {
	case SourceEmbedded, SourceSQLite:
	case SourceFile:
		if c.DatasetPath == "" {
			return fmt.Errorf("config: DATASET_PATH is required for source %q", c.DatasetSource)
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for source %q", c.DatasetSource)
		}
	default:
		return fmt.Errorf("config: unknown DATASET_SOURCE %q", c.DatasetSource)
	}

	if c.LoadTimeout <= 0 || c.WaitTimeout <= 0 {
		return fmt.Errorf("config: LOAD_TIMEOUT and WAIT_TIMEOUT must be positive")
	}

	return nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, v, err)
	}
	return d, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: parse %s=%q: %w", key, v, err)
	}
	return f, nil
}
