package repository

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// parseDate reads a stored calendar date as local midnight, matching how
// start dates are entered and normalised before saving.
func parseDate(field, s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", field, err)
	}
	return t, nil
}
