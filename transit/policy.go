package transit

import (
	"math"
	"time"
)

// Field-fallback policies for the loosely typed upstream schema, kept as
// named functions so each rule is testable on its own.

// lineName returns the display name of a line, "?" when unknown.
func lineName(line object) string {
	return line.strOr("name", "?")
}

// vehicleMode resolves the vehicle category, preferring product over mode.
func vehicleMode(line object) string {
	if p := line.str("product"); p != "" {
		return p
	}
	return line.str("mode")
}

// destinationName resolves a departure's destination: the structured
// destination name when present, otherwise the raw direction string, "?" as
// the last resort.
func destinationName(dep object) string {
	if n := dep.object("destination").str("name"); n != "" {
		return n
	}
	return dep.strOr("direction", "?")
}

// delayMinutes converts the upstream delay in seconds to whole minutes using
// floor division. Absent or null delay means 0, not unknown.
func delayMinutes(entry object) int {
	if secs, ok := entry.num("delay"); ok {
		return int(math.Floor(secs / 60))
	}
	return 0
}

// durationMinutes returns the whole minutes between two ISO-8601 timestamps,
// truncated toward zero. Unparsable or empty input yields 0 instead of an
// error; a route with an unknown duration is still useful.
func durationMinutes(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	st, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return 0
	}
	et, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return 0
	}
	return int(et.Sub(st).Minutes())
}
