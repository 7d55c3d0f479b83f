package internal

import (
	"encoding/json"
	"fmt"
	"os"
)

// FleetJSONFormat is a plain JSON dump of vehicle records, for data
// already converted out of a spreadsheet. Example:
//
//	{
//	  "vehicles": [
//	    {"regNo": "ABC-123", "status": "Working", "registrationExpiry": "2025-06-01"}
//	  ]
//	}
type FleetJSONFormat struct {
	Vehicles []VehicleRecord `json:"vehicles"`
}

// ParseFleetJSON parses a fleet JSON dump. The column table is unused;
// the format is self-describing.
func ParseFleetJSON(path string, _ map[string]string) ([]VehicleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var jsonData FleetJSONFormat
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	if len(jsonData.Vehicles) == 0 {
		return nil, ErrEmptySource
	}

	records := make([]VehicleRecord, 0, len(jsonData.Vehicles))
	for _, rec := range jsonData.Vehicles {
		if rec.VehiclePhoto == "" {
			rec.VehiclePhoto = defaultPhotoURL(&rec)
		}
		records = append(records, rec)
	}
	return records, nil
}
