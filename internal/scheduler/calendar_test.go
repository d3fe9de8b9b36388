package scheduler

import (
	"testing"
	"time"

	"github.com/Ateeq-afk/sahara/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTotalMonths(t *testing.T) {
	assert.Equal(t, 0, TotalMonths(0))
	assert.Equal(t, 1, TotalMonths(1))
	assert.Equal(t, 1, TotalMonths(4))
	assert.Equal(t, 2, TotalMonths(5))
	assert.Equal(t, 8, TotalMonths(32))
	assert.Equal(t, 10, TotalMonths(43))
	assert.Equal(t, 11, TotalMonths(44))
}

func TestStartOfDay_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 3, 10, 23, 45, 10, 5, loc)

	got := StartOfDay(in)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestPhaseWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := &domain.Schedule{StartDate: start}
	p := domain.PhaseResult{Name: "Foundation", DurationWeeks: 4, StartWeek: 6, EndWeek: 10}

	from, to := PhaseWindow(s, p)
	assert.Equal(t, time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), to)
}
