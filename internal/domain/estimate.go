package domain

import "time"

// Estimate is a saved schedule together with the specification it was
// computed from.
type Estimate struct {
	ID        string
	Label     string
	Spec      ProjectSpecification
	Schedule  Schedule
	CreatedAt time.Time
}

// DisplayID returns the first 8 characters of the ID.
func (e *Estimate) DisplayID() string {
	if len(e.ID) >= 8 {
		return e.ID[:8]
	}
	return e.ID
}
