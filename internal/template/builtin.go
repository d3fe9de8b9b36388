package template

import (
	"embed"
	"fmt"
	"path"

	"github.com/Ateeq-afk/sahara/internal/domain"
)

//go:embed builtin/*
var builtinFS embed.FS

var (
	detailed = mustLoadBuiltin("builtin/detailed.json")
	compact  = mustLoadBuiltin("builtin/compact.yaml")
)

// Detailed returns the full phase breakdown.
func Detailed() *Catalog { return detailed }

// Compact returns the condensed phase breakdown.
func Compact() *Catalog { return compact }

// Builtins returns every built-in catalog.
func Builtins() []*Catalog {
	return []*Catalog{detailed, compact}
}

// ForVariant returns the built-in catalog for v.
func ForVariant(v domain.Variant) (*Catalog, error) {
	switch v {
	case domain.VariantDetailed, "":
		return detailed, nil
	case domain.VariantCompact:
		return compact, nil
	}
	return nil, fmt.Errorf("no built-in catalog for variant %q", v)
}

func mustLoadBuiltin(name string) *Catalog {
	data, err := builtinFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("reading built-in catalog %s: %v", name, err))
	}
	c, err := Parse(data, path.Ext(name))
	if err != nil {
		panic(fmt.Sprintf("parsing built-in catalog %s: %v", name, err))
	}
	if errs := Validate(c); len(errs) > 0 {
		panic(fmt.Sprintf("built-in catalog %s is invalid: %v", name, errs[0]))
	}
	return c
}
