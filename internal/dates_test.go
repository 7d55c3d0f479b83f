package internal

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDateStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{"iso", "2021-01-01", day(2021, time.January, 1)},
		{"iso with time part", "2021-01-01T15:04:05", day(2021, time.January, 1)},
		{"iso padded", " 2024-12-25 ", day(2024, time.December, 25)},
		{"impossible day", "2021-02-30", time.Time{}},
		{"day 32", "2021-01-32", time.Time{}},
		{"month 13", "2021-13-01", time.Time{}},
		{"year at floor", "1900-01-01", time.Time{}},
		{"slash layout", "2024/03/05", day(2024, time.March, 5)},
		{"day first dashes", "25-12-2024", day(2024, time.December, 25)},
		{"day first slashes", "25/12/2024", day(2024, time.December, 25)},
		{"short day first", "5/3/2024", day(2024, time.March, 5)},
		{"abbreviated month", "02-Jan-2024", day(2024, time.January, 2)},
		{"spelled month", "2 January 2024", day(2024, time.January, 2)},
		{"us style", "Jan 2, 2024", day(2024, time.January, 2)},
		{"serial as string", "44197", day(2021, time.January, 1)},
		{"empty", "", time.Time{}},
		{"garbage", "not a date", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.input)
			if !got.Equal(tt.expected) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDateSerial(t *testing.T) {
	// 44197 is the spreadsheet serial for 2021-01-01.
	serial := ParseDate(44197)
	iso := ParseDate("2021-01-01")
	if serial.IsZero() || !serial.Equal(iso) {
		t.Errorf("ParseDate(44197) = %v, want %v", serial, iso)
	}

	if got := ParseDate(44197.0); !got.Equal(iso) {
		t.Errorf("ParseDate(44197.0) = %v, want %v", got, iso)
	}

	// Serials before 1900 are spreadsheet-epoch artifacts.
	if got := ParseDate(-10); !got.IsZero() {
		t.Errorf("ParseDate(-10) = %v, want zero", got)
	}
}

func TestParseDateNative(t *testing.T) {
	// Time-of-day and zone are discarded; only the calendar day survives.
	loc := time.FixedZone("AST", 3*3600)
	in := time.Date(2024, time.June, 15, 23, 30, 0, 0, loc)
	got := ParseDate(in)
	if !got.Equal(day(2024, time.June, 15)) {
		t.Errorf("ParseDate(%v) = %v, want %v", in, got, day(2024, time.June, 15))
	}

	if got := ParseDate(time.Time{}); !got.IsZero() {
		t.Errorf("ParseDate(zero time) = %v, want zero", got)
	}
}

func TestParseDateNil(t *testing.T) {
	if got := ParseDate(nil); !got.IsZero() {
		t.Errorf("ParseDate(nil) = %v, want zero", got)
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"zero", time.Time{}, "N/A"},
		{"padded", day(2024, time.March, 5), "05-03-2024"},
		{"end of year", day(2024, time.December, 25), "25-12-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDate(tt.input)
			if got != tt.expected {
				t.Errorf("FormatDate(%v) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDateFormatRoundTrip(t *testing.T) {
	// DD-MM-YYYY output re-parses to the same calendar day.
	for _, iso := range []string{"2021-01-01", "2024-02-29", "2030-12-31"} {
		d := ParseDate(iso)
		if d.IsZero() {
			t.Fatalf("ParseDate(%q) unexpectedly zero", iso)
		}
		reparsed := ParseDate(FormatDate(d))
		if !reparsed.Equal(d) {
			t.Errorf("round trip for %s: %v -> %q -> %v", iso, d, FormatDate(d), reparsed)
		}
	}
}
