// Package scheduling holds the conflict-window arithmetic used when
// booking or moving appointments.
package scheduling

import "time"

// Window returns the inclusive time range scanned for conflicting
// bookings around a requested start. The range extends one full
// appointment duration on either side of the start, which is
// deliberately wider than a strict interval-overlap test: it rejects
// some back-to-back bookings a tighter check would allow, trading a
// few sellable slots for a guaranteed gap between appointments.
func Window(dateTime time.Time, durationMinutes int) (from, to time.Time) {
	d := time.Duration(durationMinutes) * time.Minute
	return dateTime.Add(-d), dateTime.Add(d)
}

// InWindow reports whether an existing appointment's start falls inside
// the inclusive [from, to] range.
func InWindow(start, from, to time.Time) bool {
	return !start.Before(from) && !start.After(to)
}
