package internal

import (
	"fmt"
	"math"
	"time"
)

// NoExpiry is the day count reported for records without a parseable
// expiry date. Such records sort after every real expiry and never fall
// into the expired or expiring buckets.
const NoExpiry = math.MaxInt32

// Remaining is the day distance from a reference date to an expiry,
// with its display label ("Expired", "Today", "5 day(s)", "N/A").
type Remaining struct {
	Days  int
	Label string
}

// Severity buckets an expiry distance for display emphasis.
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityWarning
	SeverityCritical
)

// DaysRemaining computes the rounded day difference between two UTC
// calendar days. The reference date is an explicit parameter so callers
// (and tests) control "today"; pass Today() for wall-clock behavior.
func DaysRemaining(expiry, today time.Time) Remaining {
	if expiry.IsZero() {
		return Remaining{Days: NoExpiry, Label: "N/A"}
	}
	days := int(math.Round(expiry.Sub(today).Hours() / 24))
	switch {
	case days < 0:
		return Remaining{Days: days, Label: "Expired"}
	case days == 0:
		return Remaining{Days: 0, Label: "Today"}
	default:
		return Remaining{Days: days, Label: fmt.Sprintf("%d day(s)", days)}
	}
}

// Expired returns the records whose registration expiry parses and lies
// strictly before the reference date.
func Expired(records []VehicleRecord, today time.Time) []VehicleRecord {
	var out []VehicleRecord
	for i := range records {
		expiry := ParseDate(records[i].RegistrationExpiry)
		if expiry.IsZero() {
			continue
		}
		if DaysRemaining(expiry, today).Days < 0 {
			out = append(out, records[i])
		}
	}
	return out
}

// Expiring returns the records whose registration expiry parses and
// falls within [0, windowDays] days of the reference date. Disjoint
// from Expired by construction.
func Expiring(records []VehicleRecord, windowDays int, today time.Time) []VehicleRecord {
	var out []VehicleRecord
	for i := range records {
		expiry := ParseDate(records[i].RegistrationExpiry)
		if expiry.IsZero() {
			continue
		}
		days := DaysRemaining(expiry, today).Days
		if days >= 0 && days <= windowDays {
			out = append(out, records[i])
		}
	}
	return out
}

// ClassifySeverity maps an expiry distance to a display severity:
// expired or due within a week is critical, 8-15 days is a warning,
// anything further out is normal. Presentation hint only, never a
// filter.
func ClassifySeverity(days int) Severity {
	switch {
	case days <= 7:
		return SeverityCritical
	case days <= 15:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// WorkingOnly narrows records to those in working status, the default
// scope of the alerts view.
func WorkingOnly(records []VehicleRecord) []VehicleRecord {
	var out []VehicleRecord
	for i := range records {
		if Normalize(records[i].Status) == StatusWorking {
			out = append(out, records[i])
		}
	}
	return out
}
