package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestSubcommandWiring(t *testing.T) {
	tests := []struct {
		name string
		cmd  *cobra.Command
		flag string
	}{
		{"import", importCmd(), "store"},
		{"search", searchCmd(), "store"},
		{"report", reportCmd(), "business-unit"},
		{"summary", summaryCmd(), "by"},
		{"alerts", alertsCmd(), "window"},
		{"reset", resetCmd(), "store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.cmd == nil {
				t.Fatal("constructor returned nil")
			}
			if got := tt.cmd.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
			if tt.cmd.Flags().Lookup(tt.flag) == nil {
				t.Errorf("flag --%s not registered", tt.flag)
			}
		})
	}
}

func TestSummaryGrouping(t *testing.T) {
	tests := []struct {
		by        string
		wantField string
	}{
		{"supplier", "vehicleOwner"},
		{"category", "subCategory"},
		{"businessUnit", "businessUnit"},
	}
	for _, tt := range tests {
		if field, _ := summaryGrouping(tt.by); field != tt.wantField {
			t.Errorf("summaryGrouping(%q) = %q, want %q", tt.by, field, tt.wantField)
		}
	}
}
