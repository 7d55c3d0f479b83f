package internal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptySource reports a workbook whose first sheet has no data rows.
// Ingestion aborts on it without touching any previously stored dataset.
var ErrEmptySource = errors.New("the file is empty or the first sheet has no data")

// ParseFleetXLSX reads vehicle records from the first sheet of a fleet
// master-list workbook. The first row is taken as the header row and
// matched against the column table; cells are read raw so date columns
// arrive as their underlying serial numbers and are normalized later by
// ParseDate. Rows with no usable cells still yield records - the mapper
// never drops a row.
func ParseFleetXLSX(path string, columns map[string]string) ([]VehicleRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in file")
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptySource
	}

	headers := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		headers[i] = strings.TrimSpace(cell)
	}

	var records []VehicleRecord
	for _, row := range rows[1:] {
		cells := make(map[string]string, len(headers))
		empty := true
		for j, cell := range row {
			if j >= len(headers) || headers[j] == "" {
				continue
			}
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
			cells[headers[j]] = cell
		}
		// Trailing all-blank rows are sheet padding, not data.
		if empty {
			continue
		}
		records = append(records, MapRow(cells, columns))
	}

	if len(records) == 0 {
		return nil, ErrEmptySource
	}
	return records, nil
}
