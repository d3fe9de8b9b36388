package scheduler

import (
	"math"
	"time"
)

// monsoonDelayRate is the fraction of a week lost for every week that
// falls inside the monsoon window.
const monsoonDelayRate = 0.3

// InMonsoon reports whether t falls in the June–September window of any year.
func InMonsoon(t time.Time) bool {
	m := t.Month()
	return m >= time.June && m <= time.September
}

// MonsoonOverlapWeeks walks from start in 7-day steps up to (but not
// including) start + weeks×7 days and counts the steps inside the monsoon
// window.
func MonsoonOverlapWeeks(start time.Time, weeks int) int {
	end := addWeeks(start, weeks)
	overlap := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 7) {
		if InMonsoon(d) {
			overlap++
		}
	}
	return overlap
}

// SeasonalBufferWeeks returns the extra weeks added for monsoon overlap.
// Only the pre-buffer window is examined; the extended tail is not
// re-checked.
func SeasonalBufferWeeks(start time.Time, preBufferWeeks int) int {
	overlap := MonsoonOverlapWeeks(start, preBufferWeeks)
	if overlap == 0 {
		return 0
	}
	return int(math.Ceil(float64(overlap)*monsoonDelayRate - roundingSlack))
}
