package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // AdminID reference, or "system"
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// SameDate reports whether two timestamps fall on the same calendar date,
// each read in its own location. Stored log dates carry midnight UTC, so
// converting either side into the other's zone would shift the day for
// non-UTC callers.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateOf truncates a timestamp to midnight of its calendar date, keeping the
// location. Time logs are keyed by the clock-in date computed this way.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
