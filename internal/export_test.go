package internal

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExportXLSX(t *testing.T) {
	base := filepath.Join(t.TempDir(), "Fleet_Report_All_2025-06-15")
	headers := []string{"S.No.", "Fleet No", "Status"}
	rows := []map[string]any{
		{"S.No.": 1, "Fleet No": "F-1", "Status": "Working"},
		{"S.No.": 2, "Fleet No": "F-9", "Status": "Standby"},
	}

	path, err := ExportXLSX(headers, rows, base)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}
	if path != base+".xlsx" {
		t.Errorf("path = %q, want %q", path, base+".xlsx")
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening export: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Report" {
		t.Fatalf("sheets = %v, want [Report]", sheets)
	}

	got, err := f.GetRows("Report")
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d rows, want 3 (header + 2)", len(got))
	}
	if got[0][0] != "S.No." || got[0][1] != "Fleet No" || got[0][2] != "Status" {
		t.Errorf("header row = %v", got[0])
	}
	if got[1][1] != "F-1" || got[2][2] != "Standby" {
		t.Errorf("data rows = %v", got[1:])
	}
}

func TestExportXLSXEmpty(t *testing.T) {
	base := filepath.Join(t.TempDir(), "empty")
	path, err := ExportXLSX([]string{"A", "B"}, nil, base)
	if err != nil {
		t.Fatalf("ExportXLSX with no rows: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopening export: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("Report")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Errorf("got %d rows, want header only", len(got))
	}
}
