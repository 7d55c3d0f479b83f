package internal

import (
	"reflect"
	"testing"
)

func sampleFleet() []VehicleRecord {
	return []VehicleRecord{
		{RegNo: "ABC-123", FleetNo: "F-1", BusinessUnit: "Ops", Status: "Working", VehicleOwner: "Al Jazeera Rentals"},
		{RegNo: "XYZ-789", FleetNo: "F-2", BusinessUnit: "ops ", Status: "Standby", VehicleOwner: "Gulf Fleet Co"},
		{RegNo: "DEF-456", BusinessUnit: "Logistics", Status: "Maintenance", VehicleOwner: "Al Jazeera Rentals"},
		{FleetNo: "F-10", BusinessUnit: "Ops", Status: "working", VehicleOwner: "GULF FLEET CO"},
	}
}

func TestFindExact(t *testing.T) {
	records := sampleFleet()

	tests := []struct {
		name      string
		query     string
		wantRegNo string
		wantNil   bool
	}{
		{"by reg no", "ABC-123", "ABC-123", false},
		{"case insensitive", "abc-123", "ABC-123", false},
		{"padded query", "  abc-123 ", "ABC-123", false},
		{"by fleet no", "f-2", "XYZ-789", false},
		{"no match", "NOPE-1", "", true},
		{"empty query", "", "", true},
		{"substring is not a match", "ABC", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindExact(tt.query, records)
			if tt.wantNil {
				if got != nil {
					t.Errorf("FindExact(%q) = %+v, want nil", tt.query, got)
				}
				return
			}
			if got == nil || got.RegNo != tt.wantRegNo {
				t.Errorf("FindExact(%q) = %+v, want RegNo %q", tt.query, got, tt.wantRegNo)
			}
		})
	}
}

func TestFindExactFirstMatchWins(t *testing.T) {
	records := []VehicleRecord{
		{RegNo: "DUP-1", VehicleDescription: "first"},
		{RegNo: "DUP-1", VehicleDescription: "second"},
	}
	got := FindExact("dup-1", records)
	if got == nil || got.VehicleDescription != "first" {
		t.Errorf("FindExact on duplicates = %+v, want the first record", got)
	}
}

func TestSuggestionSource(t *testing.T) {
	records := sampleFleet()
	got := SuggestionSource(records)
	want := []string{"ABC-123", "XYZ-789", "DEF-456", "F-1", "F-2", "F-10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestionSource = %v, want %v", got, want)
	}
}

func TestSuggest(t *testing.T) {
	records := sampleFleet()

	got := Suggest("f-", records, 5)
	want := []string{"F-1", "F-2", "F-10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest(\"f-\") = %v, want %v", got, want)
	}

	if got := Suggest("f-", records, 2); len(got) != 2 {
		t.Errorf("Suggest with limit 2 returned %d entries", len(got))
	}

	if got := Suggest("", records, 5); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}
}

func TestUniqueValues(t *testing.T) {
	records := sampleFleet()

	t.Run("collapses case and whitespace", func(t *testing.T) {
		got := UniqueValues(records, "businessUnit")
		// "Ops", "ops " and "Ops" are one value; first-seen casing wins.
		want := []string{"Logistics", "Ops"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("UniqueValues(businessUnit) = %v, want %v", got, want)
		}
	})

	t.Run("numeric-aware ordering", func(t *testing.T) {
		recs := []VehicleRecord{
			{Project: "Site 10"},
			{Project: "Site 2"},
			{Project: "Site 1"},
		}
		got := UniqueValues(recs, "project")
		want := []string{"Site 1", "Site 2", "Site 10"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("UniqueValues(project) = %v, want %v", got, want)
		}
	})

	t.Run("empty values excluded", func(t *testing.T) {
		got := UniqueValues(records, "regNo")
		if len(got) != 3 {
			t.Errorf("UniqueValues(regNo) = %v, want 3 entries", got)
		}
	})
}

func TestFilter(t *testing.T) {
	records := sampleFleet()

	t.Run("all-sentinel criteria ignored", func(t *testing.T) {
		got := Filter(records, map[string]string{"status": "All", "businessUnit": "Ops"})
		if len(got) != 3 {
			t.Fatalf("got %d records, want 3", len(got))
		}
		for _, r := range got {
			if Normalize(r.BusinessUnit) != "ops" {
				t.Errorf("record %+v does not match businessUnit filter", r)
			}
		}
	})

	t.Run("empty string is also no-filter", func(t *testing.T) {
		got := Filter(records, map[string]string{"status": "", "businessUnit": ""})
		if len(got) != len(records) {
			t.Errorf("got %d records, want all %d", len(got), len(records))
		}
	})

	t.Run("criteria are ANDed", func(t *testing.T) {
		got := Filter(records, map[string]string{
			"businessUnit": "ops",
			"vehicleOwner": "gulf fleet co",
		})
		if len(got) != 2 {
			t.Fatalf("got %d records, want 2", len(got))
		}
	})

	t.Run("normalized comparison", func(t *testing.T) {
		got := Filter(records, map[string]string{"vehicleOwner": "  AL JAZEERA   rentals "})
		if len(got) != 2 {
			t.Errorf("got %d records, want 2", len(got))
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		got := Filter(records, map[string]string{"businessUnit": "Ops"})
		if len(got) != 3 || got[0].RegNo != "ABC-123" || got[1].RegNo != "XYZ-789" || got[2].FleetNo != "F-10" {
			t.Errorf("filtered records out of order: %+v", got)
		}
	})

	t.Run("no criteria returns input unchanged", func(t *testing.T) {
		got := Filter(records, nil)
		if !reflect.DeepEqual(got, records) {
			t.Errorf("Filter with no criteria modified the input")
		}
	})
}
