// Package catalog holds the versioned set of procedure codes treated as
// administrative rather than clinical. The repository ships one embedded
// default; every classification run records which catalog version it used.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/journeystats/internal/normalize"
)

//go:embed data/exclusions.yaml
var defaultYAML []byte

// yamlCatalog is the on-disk YAML structure.
type yamlCatalog struct {
	Version           string              `yaml:"version"`
	CancellationCodes []string            `yaml:"cancellation_codes"`
	CodeSets          map[string][]string `yaml:"code_sets"`
}

// Catalog answers exclusion and cancellation membership for procedure codes.
// Codes are normalized (trimmed, uppercased) on load, so lookups are
// case-insensitive.
type Catalog struct {
	version       string
	excluded      map[string]struct{}
	cancellations map[string]struct{}
	setNames      []string
}

// Parse builds a Catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var yc yamlCatalog
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if yc.Version == "" {
		return nil, fmt.Errorf("catalog has no version")
	}

	c := &Catalog{
		version:       yc.Version,
		excluded:      make(map[string]struct{}),
		cancellations: make(map[string]struct{}),
	}

	for _, code := range yc.CancellationCodes {
		n := normalize.Code(code)
		if n == "" {
			return nil, fmt.Errorf("empty cancellation code in catalog %s", yc.Version)
		}
		c.cancellations[n] = struct{}{}
		c.excluded[n] = struct{}{}
	}

	for name, codes := range yc.CodeSets {
		if len(codes) == 0 {
			return nil, fmt.Errorf("code set %q is empty in catalog %s", name, yc.Version)
		}
		c.setNames = append(c.setNames, name)
		for _, code := range codes {
			n := normalize.Code(code)
			if n == "" {
				return nil, fmt.Errorf("empty code in set %q of catalog %s", name, yc.Version)
			}
			c.excluded[n] = struct{}{}
		}
	}
	sort.Strings(c.setNames)

	return c, nil
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultYAML)
}

// LoadFile reads a catalog override from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Version returns the catalog version string.
func (c *Catalog) Version() string {
	return c.version
}

// SetNames returns the sorted names of the administrative code sets.
func (c *Catalog) SetNames() []string {
	return c.setNames
}

// IsExcluded reports whether the code is administrative rather than clinical.
func (c *Catalog) IsExcluded(procCode string) bool {
	_, ok := c.excluded[normalize.Code(procCode)]
	return ok
}

// IsCancellation reports whether the code marks a missed or cancelled
// appointment.
func (c *Catalog) IsCancellation(procCode string) bool {
	_, ok := c.cancellations[normalize.Code(procCode)]
	return ok
}

// Size returns the number of distinct excluded codes.
func (c *Catalog) Size() int {
	return len(c.excluded)
}
