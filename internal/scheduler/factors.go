package scheduler

import "github.com/Ateeq-afk/sahara/internal/domain"

// FactorTable holds the duration multipliers. There is exactly one
// canonical table; catalog variants never change it.
type FactorTable struct {
	Complexity map[domain.Complexity]float64
	Size       map[domain.SizeCategory]float64
	FastTrack  float64
}

// DefaultFactors returns the canonical factor table.
func DefaultFactors() FactorTable {
	return FactorTable{
		Complexity: map[domain.Complexity]float64{
			domain.ComplexitySimple:   0.8,
			domain.ComplexityStandard: 1.0,
			domain.ComplexityComplex:  1.3,
		},
		Size: map[domain.SizeCategory]float64{
			domain.SizeSmall:  0.8,
			domain.SizeMedium: 1.0,
			domain.SizeLarge:  1.2,
			domain.SizeXLarge: 1.5,
		},
		FastTrack: 0.8,
	}
}

// Factors are the multipliers resolved for one specification.
type Factors struct {
	Complexity   float64
	SizeCategory domain.SizeCategory
	Size         float64
	FastTrack    float64 // 1.0 when fast-track is off
	Combined     float64
}

// Resolve looks up the multipliers that apply to spec. The spec must
// already be validated.
func (ft FactorTable) Resolve(spec domain.ProjectSpecification) Factors {
	size := domain.SizeCategoryFor(spec.AreaSqFt)
	f := Factors{
		Complexity:   ft.Complexity[spec.Complexity],
		SizeCategory: size,
		Size:         ft.Size[size],
		FastTrack:    1.0,
	}
	if spec.FastTrack {
		f.FastTrack = ft.FastTrack
	}
	f.Combined = f.Complexity * f.Size * f.FastTrack
	return f
}
