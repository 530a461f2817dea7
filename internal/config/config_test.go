package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	os.WriteFile(path, []byte(content), 0644)
	return path
}

func TestLoadFromFile_Valid(t *testing.T) {
	path := writeConfig(t, "date_from: \"2025-01-01\"\ndate_to: \"2025-07-01\"\nworkers: 8\nbatch_size: 1000\n")

	var c Config
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.DateFrom != "2025-01-01" || c.DateTo != "2025-07-01" {
		t.Errorf("unexpected dates: %s to %s", c.DateFrom, c.DateTo)
	}
	if c.Workers != 8 || c.BatchSize != 1000 {
		t.Errorf("unexpected sizing: workers=%d batch=%d", c.Workers, c.BatchSize)
	}
}

func TestLoadFromFile_FlagsWin(t *testing.T) {
	path := writeConfig(t, "date_from: \"2025-01-01\"\nworkers: 8\n")

	c := Config{DateFrom: "2024-06-01", Workers: 2}
	if err := c.LoadFromFile(path); err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if c.DateFrom != "2024-06-01" {
		t.Errorf("flag date overridden by file: %s", c.DateFrom)
	}
	if c.Workers != 2 {
		t.Errorf("flag workers overridden by file: %d", c.Workers)
	}
}

func TestLoadFromFile_UnknownCategory(t *testing.T) {
	path := writeConfig(t, "categories:\n  - current_95\n  - bogus_category\n")

	var c Config
	if err := c.LoadFromFile(path); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	var c Config
	if err := c.LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDateRange(t *testing.T) {
	c := Config{DateFrom: "2025-01-01", DateTo: "2025-02-01"}
	from, to, err := c.DateRange()
	if err != nil {
		t.Fatalf("DateRange: %v", err)
	}
	if !from.Before(to) {
		t.Error("from must be before to")
	}

	c = Config{DateFrom: "2025-02-01", DateTo: "2025-01-01"}
	if _, _, err := c.DateRange(); err == nil {
		t.Fatal("expected error for inverted range")
	}

	c = Config{DateFrom: "01/01/2025", DateTo: "2025-02-01"}
	if _, _, err := c.DateRange(); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestValidate(t *testing.T) {
	c := Config{}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when dates missing")
	}

	c = Config{DateFrom: "2025-01-01", DateTo: "2025-02-01"}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := c.ValidateWithDSN(); err == nil {
		t.Fatal("expected error when DSN missing")
	}
}

func TestEffectiveDefaults(t *testing.T) {
	var c Config
	if c.EffectiveWorkers() != DefaultWorkers {
		t.Errorf("EffectiveWorkers = %d, want %d", c.EffectiveWorkers(), DefaultWorkers)
	}
	if c.EffectiveBatchSize() != DefaultBatchSize {
		t.Errorf("EffectiveBatchSize = %d, want %d", c.EffectiveBatchSize(), DefaultBatchSize)
	}

	c = Config{Workers: 3, BatchSize: 100}
	if c.EffectiveWorkers() != 3 || c.EffectiveBatchSize() != 100 {
		t.Error("explicit sizing must win over defaults")
	}
}
