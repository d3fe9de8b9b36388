package scheduler

import (
	"fmt"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/Ateeq-afk/sahara/internal/template"
)

// Engine computes phased schedules from project specifications. It holds
// no mutable state after construction and is safe for concurrent use.
type Engine struct {
	catalog *template.Catalog
	factors FactorTable
}

// New creates an Engine over the given phase catalog. A nil catalog selects
// the built-in detailed catalog.
func New(catalog *template.Catalog) *Engine {
	if catalog == nil {
		catalog = template.Detailed()
	}
	return &Engine{catalog: catalog, factors: DefaultFactors()}
}

// NewForVariant creates an Engine over the built-in catalog for v.
func NewForVariant(v domain.Variant) (*Engine, error) {
	c, err := template.ForVariant(v)
	if err != nil {
		return nil, err
	}
	return New(c), nil
}

var defaultEngine = New(nil)

// Estimate runs the default engine (detailed catalog).
func Estimate(spec domain.ProjectSpecification) (*domain.Schedule, error) {
	return defaultEngine.Estimate(spec)
}

// Catalog returns the phase catalog the engine lays out.
func (e *Engine) Catalog() *template.Catalog {
	return e.catalog
}

// Factors returns the multipliers that apply to spec.
func (e *Engine) Factors(spec domain.ProjectSpecification) (Factors, error) {
	if err := spec.Validate(); err != nil {
		return Factors{}, err
	}
	return e.factors.Resolve(spec), nil
}

// Estimate computes a fresh Schedule for spec:
//  1. adjust every phase of the project type independently,
//  2. lay the phases out back to back from week 0,
//  3. append the monsoon buffer for construction when requested,
//  4. project the total onto the calendar.
func (e *Engine) Estimate(spec domain.ProjectSpecification) (*domain.Schedule, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	templates := e.catalog.PhasesFor(spec.ProjectType)
	if len(templates) == 0 {
		return nil, fmt.Errorf("catalog %s has no phases for %s", e.catalog.ID, spec.ProjectType)
	}
	for _, t := range templates {
		if err := template.CheckPhaseRange(t); err != nil {
			return nil, fmt.Errorf("catalog %s phase %q: %w", e.catalog.ID, t.Name, err)
		}
	}

	f := e.factors.Resolve(spec)
	phases, total := LayoutPhases(templates, f)

	start := StartOfDay(spec.StartDate)

	var seasonal int
	if spec.SeasonalBufferApplies() {
		seasonal = SeasonalBufferWeeks(start, total)
		total += seasonal
	}

	return &domain.Schedule{
		Phases:         phases,
		TotalWeeks:     total,
		TotalMonths:    TotalMonths(total),
		SeasonalWeeks:  seasonal,
		StartDate:      start,
		EndDate:        addWeeks(start, total),
		SeasonalImpact: seasonal > 0,
		SizeCategory:   f.SizeCategory,
		Variant:        e.catalog.Variant,
	}, nil
}

// Comparison pairs a complexity level with its schedule.
type Comparison struct {
	Complexity domain.Complexity `json:"complexity"`
	Schedule   *domain.Schedule  `json:"schedule"`
}

// Compare estimates spec once per complexity level, holding every other
// field fixed. Results are ordered simple, standard, complex.
func (e *Engine) Compare(spec domain.ProjectSpecification) ([]Comparison, error) {
	out := make([]Comparison, 0, len(domain.Complexities))
	for _, c := range domain.Complexities {
		s := spec
		s.Complexity = c
		sched, err := e.Estimate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, Comparison{Complexity: c, Schedule: sched})
	}
	return out, nil
}
