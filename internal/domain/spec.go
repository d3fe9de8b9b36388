package domain

import (
	"math"
	"time"
)

// Size category thresholds in square feet. Bounds are inclusive on the
// lower category: 1500 is medium, 3500 is medium, 6000 is large.
const (
	smallAreaLimit  = 1500
	mediumAreaLimit = 3500
	largeAreaLimit  = 6000
)

// Area bounds offered by input collectors. The engine itself accepts any
// positive area.
const (
	MinAreaSqFt = 500
	MaxAreaSqFt = 10000
)

// ProjectSpecification is the immutable input of one estimation request.
type ProjectSpecification struct {
	ProjectType           ProjectType `json:"project_type"`
	AreaSqFt              float64     `json:"area_sq_ft"`
	Complexity            Complexity  `json:"complexity"`
	StartDate             time.Time   `json:"start_date"`
	FastTrack             bool        `json:"fast_track"`
	SeasonalBufferEnabled bool        `json:"seasonal_buffer_enabled"`
}

// Validate checks the caller contract. Past start dates are accepted.
func (s ProjectSpecification) Validate() error {
	if !s.ProjectType.Valid() {
		return newInvalidSpec("projectType", string(s.ProjectType), "must be one of construction, interior, renovation")
	}
	if math.IsNaN(s.AreaSqFt) || math.IsInf(s.AreaSqFt, 0) || s.AreaSqFt <= 0 {
		return newInvalidSpec("areaSqFt", s.AreaSqFt, "must be a positive number")
	}
	if !s.Complexity.Valid() {
		return newInvalidSpec("complexity", string(s.Complexity), "must be one of simple, standard, complex")
	}
	if s.StartDate.IsZero() {
		return newInvalidSpec("startDate", "", "is required")
	}
	return nil
}

// SeasonalBufferApplies reports whether the monsoon buffer is in effect.
// It only applies to new construction.
func (s ProjectSpecification) SeasonalBufferApplies() bool {
	return s.SeasonalBufferEnabled && s.ProjectType == ProjectConstruction
}

// SizeCategoryFor buckets a floor area.
func SizeCategoryFor(areaSqFt float64) SizeCategory {
	switch {
	case areaSqFt < smallAreaLimit:
		return SizeSmall
	case areaSqFt <= mediumAreaLimit:
		return SizeMedium
	case areaSqFt <= largeAreaLimit:
		return SizeLarge
	default:
		return SizeXLarge
	}
}
