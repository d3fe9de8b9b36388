package domain

import "time"

// PhaseTemplate is the unadjusted duration range of one phase under median
// conditions.
type PhaseTemplate struct {
	Name     string  `json:"name" yaml:"name"`
	MinWeeks float64 `json:"min_weeks" yaml:"min_weeks"`
	MaxWeeks float64 `json:"max_weeks" yaml:"max_weeks"`
}

// BaseWeeks is the midpoint of the phase's range.
func (p PhaseTemplate) BaseWeeks() float64 {
	return (p.MinWeeks + p.MaxWeeks) / 2
}

// PhaseResult is one laid-out phase. StartWeek and EndWeek are offsets from
// project start (week 0).
type PhaseResult struct {
	Name          string `json:"name"`
	DurationWeeks int    `json:"duration_weeks"`
	StartWeek     int    `json:"start_week"`
	EndWeek       int    `json:"end_week"`
}

// SharePct returns the fraction (0..1) of totalWeeks this phase occupies.
func (p PhaseResult) SharePct(totalWeeks int) float64 {
	if totalWeeks <= 0 {
		return 0
	}
	return float64(p.DurationWeeks) / float64(totalWeeks)
}

// Schedule is the derived output of one estimation call.
type Schedule struct {
	Phases         []PhaseResult `json:"phases"`
	TotalWeeks     int           `json:"total_weeks"`
	TotalMonths    int           `json:"total_months"`
	SeasonalWeeks  int           `json:"seasonal_weeks"`
	StartDate      time.Time     `json:"start_date"`
	EndDate        time.Time     `json:"end_date"`
	SeasonalImpact bool          `json:"seasonal_impact"`
	SizeCategory   SizeCategory  `json:"size_category"`
	Variant        Variant       `json:"variant"`
}

// PhaseWeeks sums the phase durations, excluding any seasonal buffer.
func (s *Schedule) PhaseWeeks() int {
	total := 0
	for _, p := range s.Phases {
		total += p.DurationWeeks
	}
	return total
}
