package testutil

import (
	"time"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/Ateeq-afk/sahara/internal/scheduler"
	"github.com/google/uuid"
)

// SpecOption customises a test specification.
type SpecOption func(*domain.ProjectSpecification)

func WithProjectType(pt domain.ProjectType) SpecOption {
	return func(s *domain.ProjectSpecification) { s.ProjectType = pt }
}

func WithArea(sqft float64) SpecOption {
	return func(s *domain.ProjectSpecification) { s.AreaSqFt = sqft }
}

func WithComplexity(c domain.Complexity) SpecOption {
	return func(s *domain.ProjectSpecification) { s.Complexity = c }
}

func WithStartDate(d time.Time) SpecOption {
	return func(s *domain.ProjectSpecification) { s.StartDate = d }
}

func WithFastTrack() SpecOption {
	return func(s *domain.ProjectSpecification) { s.FastTrack = true }
}

func WithSeasonalBuffer() SpecOption {
	return func(s *domain.ProjectSpecification) { s.SeasonalBufferEnabled = true }
}

// NewTestSpec returns a medium, standard construction project starting
// 2024-01-01, with opts applied.
func NewTestSpec(opts ...SpecOption) domain.ProjectSpecification {
	s := domain.ProjectSpecification{
		ProjectType: domain.ProjectConstruction,
		AreaSqFt:    2500,
		Complexity:  domain.ComplexityStandard,
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestEstimate estimates spec with the default engine and wraps it in an
// unsaved Estimate. It panics on an invalid spec.
func NewTestEstimate(label string, spec domain.ProjectSpecification) *domain.Estimate {
	sched, err := scheduler.Estimate(spec)
	if err != nil {
		panic(err)
	}
	return &domain.Estimate{
		ID:        uuid.New().String(),
		Label:     label,
		Spec:      spec,
		Schedule:  *sched,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
