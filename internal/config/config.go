package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/journeystats/internal/model"
)

// Default batch sizing for the classification pipeline.
const (
	DefaultBatchSize = 5000
	DefaultWorkers   = 4
)

// Config holds all runtime configuration for a journeyload run.
type Config struct {
	DSN         string
	LogFormat   string // "text" or "json"
	SnapshotDir string
	CatalogPath string // optional catalog override

	DateFrom string // inclusive, YYYY-MM-DD
	DateTo   string // exclusive, YYYY-MM-DD

	Workers   int
	BatchSize int

	RunID   string // report/export target; empty means latest complete run
	OutPath string // export destination

	Categories []string `yaml:"categories"` // subset of categories to export
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	DateFrom   string   `yaml:"date_from"`
	DateTo     string   `yaml:"date_to"`
	Workers    int      `yaml:"workers"`
	BatchSize  int      `yaml:"batch_size"`
	Catalog    string   `yaml:"catalog"`
	Categories []string `yaml:"categories"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Flag values already set take precedence over file values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.DateFrom == "" {
		c.DateFrom = yc.DateFrom
	}
	if c.DateTo == "" {
		c.DateTo = yc.DateTo
	}
	if c.Workers == 0 {
		c.Workers = yc.Workers
	}
	if c.BatchSize == 0 {
		c.BatchSize = yc.BatchSize
	}
	if c.CatalogPath == "" {
		c.CatalogPath = yc.Catalog
	}
	if len(c.Categories) == 0 {
		c.Categories = yc.Categories
	}
	return c.validateCategories()
}

// validateCategories checks that every entry is a known category name.
func (c *Config) validateCategories() error {
	for _, name := range c.Categories {
		if _, ok := model.CategoryByName(name); !ok {
			return fmt.Errorf("unknown category %q in config", name)
		}
	}
	return nil
}

// DateRange parses the configured date range. From is inclusive, To exclusive.
func (c *Config) DateRange() (from, to time.Time, err error) {
	from, err = time.Parse("2006-01-02", c.DateFrom)
	if err != nil {
		return from, to, fmt.Errorf("invalid --from date %q: %w", c.DateFrom, err)
	}
	to, err = time.Parse("2006-01-02", c.DateTo)
	if err != nil {
		return from, to, fmt.Errorf("invalid --to date %q: %w", c.DateTo, err)
	}
	if !from.Before(to) {
		return from, to, fmt.Errorf("--from %s must be before --to %s", c.DateFrom, c.DateTo)
	}
	return from, to, nil
}

// Validate checks the fields every classifying command needs.
func (c *Config) Validate() error {
	if c.DateFrom == "" || c.DateTo == "" {
		return fmt.Errorf("--from and --to are required")
	}
	if _, _, err := c.DateRange(); err != nil {
		return err
	}
	if c.Workers < 0 || c.BatchSize < 0 {
		return fmt.Errorf("--workers and --batch-size must be positive")
	}
	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); err != nil {
			return fmt.Errorf("catalog file not accessible: %w", err)
		}
	}
	return c.validateCategories()
}

// ValidateWithDSN checks both the run fields and the DSN.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or JOURNEY_DB_URL is required")
	}
	return nil
}

// EffectiveWorkers returns the worker count, applying the default.
func (c *Config) EffectiveWorkers() int {
	if c.Workers <= 0 {
		return DefaultWorkers
	}
	return c.Workers
}

// EffectiveBatchSize returns the batch size, applying the default.
func (c *Config) EffectiveBatchSize() int {
	if c.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return c.BatchSize
}
