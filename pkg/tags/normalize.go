// Package tags normalizes raw OSM tag strings into typed values.
//
// Every function here is pure and total: malformed or missing input never
// errors, it degrades to absence (the zero value of the ok bool), which
// downstream callers treat as "use the default."
package tags

import (
	"strconv"
	"strings"
)

const mphToKMH = 1.60934

// Maxspeed parses an OSM maxspeed value ("50", "50 km/h", "30 mph") into
// km/h, converting mph values at ingest.
func Maxspeed(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	fields := strings.Fields(raw)
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}

	if strings.Contains(strings.ToLower(raw), "mph") {
		n = int(float64(n) * mphToKMH)
	}
	return n, true
}

// Metric parses a maxheight/maxweight value ("3.5", "3.5m", "3.5 m") into a
// float, stripping the unit suffix.
func Metric(raw string) (float64, bool) {
	clean := strings.NewReplacer("m", "", "t", "").Replace(raw)
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Int parses a raw integer tag value (e.g. lanes).
func Int(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Oneway reports whether the raw oneway tag is the literal "yes".
func Oneway(raw string) bool {
	return raw == "yes"
}

// String passes a raw tag value through unchanged, reporting absence for
// the empty string.
func String(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	return raw, true
}
