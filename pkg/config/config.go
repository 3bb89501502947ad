package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives one retrieval run.
type Config struct {
	// Series is the document type: beigebook, minutes or statements.
	Series string `yaml:"series"`
	// StartYear is the first year to discover; 0 uses the series default.
	StartYear int `yaml:"start_year"`
	// HistoricalSplit is the last year served from the historical archive;
	// 0 uses the series default.
	HistoricalSplit int `yaml:"historical_split"`
	// Workers caps the number of concurrently in-flight document fetches.
	Workers int `yaml:"workers"`
	// Verbose enables status lines and per-document progress records.
	Verbose bool `yaml:"verbose"`
	// UseFeed also discovers recent locations from the RSS press feed.
	UseFeed bool `yaml:"use_feed"`
	// UserAgent overrides the spoofed client identity header.
	UserAgent string `yaml:"user_agent"`
	// Output is the dataset save path (.gob, .pkl or .pickle).
	Output string `yaml:"output"`

	Mongo    MongoConfig    `yaml:"mongo"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// MongoConfig configures the optional Mongo document archive.
type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// PostgresConfig configures the optional relational release store.
type PostgresConfig struct {
	DSN   string `yaml:"dsn"`
	Table string `yaml:"table"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Series:  "beigebook",
		Workers: 10,
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Series == "" {
		return fmt.Errorf("series must be set")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.StartYear < 0 || c.HistoricalSplit < 0 {
		return fmt.Errorf("start_year and historical_split cannot be negative")
	}
	return nil
}
