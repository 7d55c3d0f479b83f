package internal

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet tools hand out dates in at least three shapes: native
// date cells, day-serial numbers, and locale-formatted strings. All of
// them funnel through ParseDate into a single representation: a
// time.Time at midnight UTC, compared by calendar day only. The zero
// time.Time is the "no date" value. Anchoring to UTC keeps day
// difference math timezone-independent.

// excelSerialEpochOffset is the day count from the spreadsheet epoch
// (1899-12-30, which absorbs the 1900 leap-year bug) to 1970-01-01.
const excelSerialEpochOffset = 25569

const msPerDay = 86400000

var isoDateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// genericDateLayouts are the fallback string layouts tried after the
// strict ISO form. Day-first variants come before month-first since the
// master lists this tool reads are day-first.
var genericDateLayouts = []string{
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2-1-2006",
	"2/1/2006",
	"02-Jan-2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate converts a raw date value (string, number, or time.Time)
// into a UTC calendar day. Invalid, empty, or pre-1900 inputs return
// the zero time.
func ParseDate(input any) time.Time {
	switch v := input.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return calendarDay(v)
	case float64:
		return fromSerial(v)
	case int:
		return fromSerial(float64(v))
	case int64:
		return fromSerial(float64(v))
	case string:
		return parseDateString(v)
	default:
		return time.Time{}
	}
}

// calendarDay strips the time-of-day from a native date value, reading
// the calendar fields directly rather than converting the instant.
func calendarDay(t time.Time) time.Time {
	if t.Year() < 1900 {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// fromSerial interprets a spreadsheet day-serial count.
func fromSerial(serial float64) time.Time {
	if math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}
	}
	ms := int64((serial - excelSerialEpochOffset) * msPerDay)
	return calendarDay(time.UnixMilli(ms).UTC())
}

func parseDateString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	// Keep only the date part of datetime strings.
	if idx := strings.Index(s, "T"); idx != -1 {
		s = s[:idx]
	}

	// Strict YYYY-MM-DD first. The parsed fields must echo back the
	// same year/month/day, which rejects rollover such as day 32.
	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if year > 1900 {
			d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			if d.Year() == year && int(d.Month()) == month && d.Day() == day {
				return d
			}
		}
		return time.Time{}
	}

	for _, layout := range genericDateLayouts {
		if d, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return calendarDay(d)
		}
	}

	// Raw-cell reads hand serial numbers over as digit strings.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return fromSerial(serial)
	}

	return time.Time{}
}

// FormatDate renders a calendar day as zero-padded DD-MM-YYYY, reading
// the UTC components directly so the displayed day is never off by one.
// The zero time renders as "N/A".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return fmt.Sprintf("%02d-%02d-%04d", t.Day(), int(t.Month()), t.Year())
}

// Today returns the current calendar date at the UTC day boundary. It
// reads the wall clock on every call so long-running views track date
// changes.
func Today() time.Time {
	return calendarDay(time.Now().UTC())
}
