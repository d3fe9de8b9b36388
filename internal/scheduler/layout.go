package scheduler

import (
	"math"

	"github.com/Ateeq-afk/sahara/internal/domain"
)

// roundingSlack absorbs float error so that, e.g., 4.000000000000001
// weeks rounds to 4 rather than 5.
const roundingSlack = 1e-9

// AdjustWeeks scales a phase's midpoint duration by the resolved factors
// and rounds up to whole weeks, never below 1. Phases are adjusted
// independently of each other.
func AdjustWeeks(p domain.PhaseTemplate, f Factors) int {
	adjusted := p.BaseWeeks() * f.Complexity * f.Size * f.FastTrack
	weeks := int(math.Ceil(adjusted - roundingSlack))
	if weeks < 1 {
		return 1
	}
	return weeks
}

// LayoutPhases places adjusted phases back to back starting at week 0 and
// returns them with the running total.
func LayoutPhases(templates []domain.PhaseTemplate, f Factors) ([]domain.PhaseResult, int) {
	phases := make([]domain.PhaseResult, 0, len(templates))
	running := 0
	for _, t := range templates {
		d := AdjustWeeks(t, f)
		phases = append(phases, domain.PhaseResult{
			Name:          t.Name,
			DurationWeeks: d,
			StartWeek:     running,
			EndWeek:       running + d,
		})
		running += d
	}
	return phases, running
}
