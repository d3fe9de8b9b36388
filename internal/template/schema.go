package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"gopkg.in/yaml.v3"
)

// Catalog is the phase template table: one ordered phase list per project
// type. Phase order is layout order.
type Catalog struct {
	ID          string                                        `json:"id" yaml:"id"`
	Name        string                                        `json:"name" yaml:"name"`
	Variant     domain.Variant                                `json:"variant" yaml:"variant"`
	Description string                                        `json:"description,omitempty" yaml:"description,omitempty"`
	Phases      map[domain.ProjectType][]domain.PhaseTemplate `json:"phases" yaml:"phases"`
}

// PhasesFor returns the ordered phase templates for a project type.
// The returned slice is a copy.
func (c *Catalog) PhasesFor(t domain.ProjectType) []domain.PhaseTemplate {
	src := c.Phases[t]
	out := make([]domain.PhaseTemplate, len(src))
	copy(out, src)
	return out
}

// LoadFile reads and parses a catalog file. The format is chosen by
// extension: .json, .yaml or .yml.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes catalog data in the format named by ext.
func Parse(data []byte, ext string) (*Catalog, error) {
	var c Catalog
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing catalog: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}
	if c.Variant == "" {
		c.Variant = domain.VariantDetailed
	}
	return &c, nil
}

// LoadValid loads a catalog file and rejects it if validation fails.
func LoadValid(path string) (*Catalog, error) {
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if errs := Validate(c); len(errs) > 0 {
		return nil, fmt.Errorf("catalog %s: %w", filepath.Base(path), errs[0])
	}
	return c, nil
}

// LoadDir loads every catalog file in dir. Files that fail to parse or
// validate are reported in the error slice and skipped.
func LoadDir(dir string) ([]*Catalog, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("reading catalog directory: %w", err)}
	}

	var catalogs []*Catalog
	var errs []error
	for _, entry := range entries {
		if entry.IsDir() || !isCatalogFile(entry.Name()) {
			continue
		}
		c, err := LoadValid(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		catalogs = append(catalogs, c)
	}
	return catalogs, errs
}

func isCatalogFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
