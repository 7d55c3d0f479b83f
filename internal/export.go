package internal

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// exportSheetName is the single sheet every export is written to.
const exportSheetName = "Report"

// ExportXLSX writes rows of named fields to <fileBaseName>.xlsx with
// one "Report" sheet: a header row, then one row per record map with
// cells in header order (missing keys left blank). Returns the path of
// the written file.
func ExportXLSX(headers []string, rows []map[string]any, fileBaseName string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return "", fmt.Errorf("naming sheet: %w", err)
	}

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(exportSheetName, "A1", &headerRow); err != nil {
		return "", fmt.Errorf("writing header row: %w", err)
	}

	for i, row := range rows {
		cells := make([]any, len(headers))
		for j, h := range headers {
			cells[j] = row[h]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", fmt.Errorf("computing cell coordinates: %w", err)
		}
		if err := f.SetSheetRow(exportSheetName, cell, &cells); err != nil {
			return "", fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	path := fileBaseName + ".xlsx"
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving %s: %w", path, err)
	}
	return path, nil
}
