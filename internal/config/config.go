package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Master data sources.
const (
	MasterSourceYAML     = "yaml"
	MasterSourcePostgres = "postgres"
)

// FleetCalc holds all configuration for the fleetcalc CLI.
type FleetCalc struct {
	LogLevel string `yaml:"log_level"` // debug, info, warn, error

	Master MasterConfig `yaml:"master"`

	// PlanPath is the default plan file; -plan overrides it.
	PlanPath string `yaml:"plan_path"`

	// AirState is the assumed air battle result for spotting: "as+", "as" or "other".
	AirState string `yaml:"air_state"`

	// Database is used when Master.Source is "postgres".
	Database DatabaseConfig `yaml:"database"`
}

// MasterConfig selects where gear and ship master records come from.
type MasterConfig struct {
	Source string `yaml:"source"` // yaml | postgres
	Path   string `yaml:"path"`   // YAML master file
	// Migrate runs goose migrations before loading from postgres.
	Migrate bool `yaml:"migrate"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultFleetCalc returns FleetCalc config with sensible defaults.
func DefaultFleetCalc() FleetCalc {
	return FleetCalc{
		LogLevel: "info",
		Master: MasterConfig{
			Source:  MasterSourceYAML,
			Path:    "data/master.yaml",
			Migrate: true,
		},
		PlanPath: "data/plan.yaml",
		AirState: "as+",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "fleetcalc",
			Password: "fleetcalc",
			DBName:   "fleetcalc",
			SSLMode:  "disable",
		},
	}
}

// Validate checks values the CLI cannot run without.
func (c FleetCalc) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	switch c.AirState {
	case "as+", "as", "other":
	default:
		return fmt.Errorf("unknown air_state %q", c.AirState)
	}

	switch c.Master.Source {
	case MasterSourceYAML:
		if c.Master.Path == "" {
			return fmt.Errorf("master.path is required for source %q", MasterSourceYAML)
		}
	case MasterSourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("database host and dbname are required for source %q", MasterSourcePostgres)
		}
	default:
		return fmt.Errorf("unknown master.source %q", c.Master.Source)
	}
	return nil
}

// LoadFleetCalc loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadFleetCalc(path string) (FleetCalc, error) {
	cfg := DefaultFleetCalc()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}
