package scheduler

import (
	"testing"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/stretchr/testify/assert"
)

func unitFactors() Factors {
	return Factors{Complexity: 1, Size: 1, FastTrack: 1, Combined: 1}
}

func TestAdjustWeeks(t *testing.T) {
	cases := []struct {
		name  string
		phase domain.PhaseTemplate
		f     Factors
		want  int
	}{
		{"whole median", domain.PhaseTemplate{MinWeeks: 3, MaxWeeks: 5}, unitFactors(), 4},
		{"half median rounds up", domain.PhaseTemplate{MinWeeks: 1, MaxWeeks: 2}, unitFactors(), 2},
		{"exact product does not round up", domain.PhaseTemplate{MinWeeks: 4, MaxWeeks: 6},
			Factors{Complexity: 1, Size: 1, FastTrack: 0.8}, 4},
		{"scaled up", domain.PhaseTemplate{MinWeeks: 6, MaxWeeks: 10},
			Factors{Complexity: 1.3, Size: 1.5, FastTrack: 1}, 16},
		{"floor of one week", domain.PhaseTemplate{MinWeeks: 0.1, MaxWeeks: 0.1},
			Factors{Complexity: 0.8, Size: 0.8, FastTrack: 0.8}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AdjustWeeks(tc.phase, tc.f))
		})
	}
}

func TestLayoutPhases_Sequential(t *testing.T) {
	templates := []domain.PhaseTemplate{
		{Name: "A", MinWeeks: 2, MaxWeeks: 2},
		{Name: "B", MinWeeks: 1, MaxWeeks: 2},
		{Name: "C", MinWeeks: 5, MaxWeeks: 7},
	}

	phases, total := LayoutPhases(templates, unitFactors())

	assert.Equal(t, []domain.PhaseResult{
		{Name: "A", DurationWeeks: 2, StartWeek: 0, EndWeek: 2},
		{Name: "B", DurationWeeks: 2, StartWeek: 2, EndWeek: 4},
		{Name: "C", DurationWeeks: 6, StartWeek: 4, EndWeek: 10},
	}, phases)
	assert.Equal(t, 10, total)
}

func TestLayoutPhases_Empty(t *testing.T) {
	phases, total := LayoutPhases(nil, unitFactors())
	assert.Empty(t, phases)
	assert.Zero(t, total)
}
