package scheduler

import (
	"math"
	"time"

	"github.com/Ateeq-afk/sahara/internal/domain"
)

// weeksPerMonth is the average number of weeks in a calendar month.
const weeksPerMonth = 4.33

// TotalMonths converts a week count to whole months, rounding up.
func TotalMonths(weeks int) int {
	if weeks <= 0 {
		return 0
	}
	return int(math.Ceil(float64(weeks) / weeksPerMonth))
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func addWeeks(t time.Time, weeks int) time.Time {
	return t.AddDate(0, 0, 7*weeks)
}

// PhaseWindow returns the calendar dates a phase starts and ends on.
func PhaseWindow(s *domain.Schedule, p domain.PhaseResult) (start, end time.Time) {
	return addWeeks(s.StartDate, p.StartWeek), addWeeks(s.StartDate, p.EndWeek)
}
