package template

import (
	"fmt"

	"github.com/Ateeq-afk/sahara/internal/domain"
)

// MaxPhaseWeeks caps a phase's max_weeks. It keeps every schedule, and the
// monsoon walk over it, within a few hundred weeks.
const MaxPhaseWeeks = 104

// Validate checks a Catalog for structural errors.
// Returns a slice of errors (empty if valid).
func Validate(c *Catalog) []error {
	var errs []error

	if c.ID == "" {
		errs = append(errs, fmt.Errorf("catalog id is required"))
	}
	if c.Name == "" {
		errs = append(errs, fmt.Errorf("catalog name is required"))
	}
	if !c.Variant.Valid() {
		errs = append(errs, fmt.Errorf("catalog variant %q is not recognised", c.Variant))
	}

	for t := range c.Phases {
		if !t.Valid() {
			errs = append(errs, fmt.Errorf("unknown project type %q", t))
		}
	}

	// Every project type needs a phase list, otherwise the engine has
	// nothing to lay out.
	for _, t := range domain.ProjectTypes {
		phases := c.Phases[t]
		if len(phases) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one phase is required", t))
			continue
		}

		names := map[string]bool{}
		for i, p := range phases {
			if p.Name == "" {
				errs = append(errs, fmt.Errorf("%s phase[%d]: name is required", t, i))
			}
			if names[p.Name] {
				errs = append(errs, fmt.Errorf("%s phase[%d]: duplicate name %q", t, i, p.Name))
			}
			names[p.Name] = true

			if err := CheckPhaseRange(p); err != nil {
				errs = append(errs, fmt.Errorf("%s phase[%d]: %w", t, i, err))
			}
		}
	}

	return errs
}

// CheckPhaseRange enforces 0 < min_weeks <= max_weeks <= MaxPhaseWeeks.
// NaN fails every comparison and is rejected.
func CheckPhaseRange(p domain.PhaseTemplate) error {
	switch {
	case !(p.MinWeeks > 0):
		return fmt.Errorf("min_weeks must be positive")
	case !(p.MaxWeeks >= p.MinWeeks):
		return fmt.Errorf("max_weeks must be >= min_weeks")
	case !(p.MaxWeeks <= MaxPhaseWeeks):
		return fmt.Errorf("max_weeks must be at most %d", MaxPhaseWeeks)
	}
	return nil
}
