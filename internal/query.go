package internal

import (
	"strings"

	"golang.org/x/text/collate"
)

// FindExact returns the first record whose registration or fleet number
// equals the query, compared case-insensitively after trimming. Exact
// match only; an empty query never matches.
func FindExact(query string, records []VehicleRecord) *VehicleRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	for i := range records {
		r := &records[i]
		if (r.RegNo != "" && strings.ToLower(r.RegNo) == q) ||
			(r.FleetNo != "" && strings.ToLower(r.FleetNo) == q) {
			return r
		}
	}
	return nil
}

// SuggestionSource returns every non-empty registration number followed
// by every non-empty fleet number, in record order. Duplicates are kept;
// consumers cap and filter.
func SuggestionSource(records []VehicleRecord) []string {
	var out []string
	for i := range records {
		if records[i].RegNo != "" {
			out = append(out, records[i].RegNo)
		}
	}
	for i := range records {
		if records[i].FleetNo != "" {
			out = append(out, records[i].FleetNo)
		}
	}
	return out
}

// Suggest filters the suggestion source to identifiers starting with
// the query (case-insensitive), capped at limit. Used for "did you
// mean" output after a lookup miss.
func Suggest(query string, records []VehicleRecord, limit int) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}
	var out []string
	for _, id := range SuggestionSource(records) {
		if strings.HasPrefix(strings.ToLower(id), q) {
			out = append(out, id)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// UniqueValues collects the distinct values of a field, keyed by their
// normalized form so casing and whitespace variants collapse into one
// entry. The first-seen original (trimmed) value wins as the display
// value. Empty values are excluded; the result is sorted with natural,
// numeric-aware ordering.
func UniqueValues(records []VehicleRecord, field string) []string {
	seen := map[string]bool{}
	var values []string
	for i := range records {
		original := strings.TrimSpace(records[i].Field(field))
		if original == "" {
			continue
		}
		key := Normalize(original)
		if !seen[key] {
			seen[key] = true
			values = append(values, original)
		}
	}
	collate.New(CollationLanguage(), collate.Numeric).SortStrings(values)
	return values
}

// noFilter reports whether a criterion value is the "no filter"
// sentinel. Both the empty string and the literal "All" (any casing)
// mean unfiltered.
func noFilter(value string) bool {
	return value == "" || strings.EqualFold(value, "All")
}

// Filter returns the records matching every active criterion, in their
// original order. A criterion matches when the normalized record field
// equals the normalized criterion value; criteria carrying the
// no-filter sentinel are ignored, and with no active criteria the input
// is returned unchanged.
func Filter(records []VehicleRecord, criteria map[string]string) []VehicleRecord {
	active := make(map[string]string)
	for field, value := range criteria {
		if !noFilter(value) {
			active[field] = Normalize(value)
		}
	}
	if len(active) == 0 {
		return records
	}

	var out []VehicleRecord
	for i := range records {
		match := true
		for field, want := range active {
			if Normalize(records[i].Field(field)) != want {
				match = false
				break
			}
		}
		if match {
			out = append(out, records[i])
		}
	}
	return out
}
