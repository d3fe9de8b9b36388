package domain

import "strings"

type ProjectType string

const (
	ProjectConstruction ProjectType = "construction"
	ProjectInterior     ProjectType = "interior"
	ProjectRenovation   ProjectType = "renovation"
)

// ProjectTypes lists every project type in display order.
var ProjectTypes = []ProjectType{ProjectConstruction, ProjectInterior, ProjectRenovation}

func (t ProjectType) Valid() bool {
	switch t {
	case ProjectConstruction, ProjectInterior, ProjectRenovation:
		return true
	}
	return false
}

type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityStandard Complexity = "standard"
	ComplexityComplex  Complexity = "complex"
)

// Complexities lists every complexity from lightest to heaviest.
var Complexities = []Complexity{ComplexitySimple, ComplexityStandard, ComplexityComplex}

func (c Complexity) Valid() bool {
	switch c {
	case ComplexitySimple, ComplexityStandard, ComplexityComplex:
		return true
	}
	return false
}

type SizeCategory string

const (
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
	SizeXLarge SizeCategory = "xlarge"
)

// Variant selects which phase breakdown a schedule is presented with.
// All variants share the same factor table.
type Variant string

const (
	VariantDetailed Variant = "detailed"
	VariantCompact  Variant = "compact"
)

func (v Variant) Valid() bool {
	return v == VariantDetailed || v == VariantCompact
}

// ParseProjectType normalizes s and returns the matching ProjectType.
func ParseProjectType(s string) (ProjectType, error) {
	t := ProjectType(normalize(s))
	if !t.Valid() {
		return "", newInvalidSpec("projectType", s, "must be one of construction, interior, renovation")
	}
	return t, nil
}

// ParseComplexity normalizes s and returns the matching Complexity.
func ParseComplexity(s string) (Complexity, error) {
	c := Complexity(normalize(s))
	if !c.Valid() {
		return "", newInvalidSpec("complexity", s, "must be one of simple, standard, complex")
	}
	return c, nil
}

// ParseVariant normalizes s and returns the matching Variant.
// An empty string selects VariantDetailed.
func ParseVariant(s string) (Variant, error) {
	if strings.TrimSpace(s) == "" {
		return VariantDetailed, nil
	}
	v := Variant(normalize(s))
	if !v.Valid() {
		return "", newInvalidSpec("variant", s, "must be one of detailed, compact")
	}
	return v, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
