package internal

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultColumnMap returns the fixed table mapping master-list column
// headers to internal field names. Headers not listed here are ignored
// at ingestion time; listed fields with no matching header are simply
// left unset. The header spellings (trailing colons included) are the
// ones the master-list sheets actually ship with.
func DefaultColumnMap() map[string]string {
	return map[string]string{
		"RegNo:":             "regNo",
		"fleetNo:":           "fleetNo",
		"vehicleDescription": "vehicleDescription",
		"vehicleModel":       "vehicleModel",
		"vehicleOwner":       "vehicleOwner",
		"fuelSensorOwner":    "fuelSensorOwner",
		"FuelLimit":          "fuelLimit",
		"user":               "user",
		"designation":        "designation",
		"Status":             "status",
		"businessUnit":       "businessUnit",
		"Rent Amount (QAR)":  "rentAmount",
		"LastUpdated":        "lastUpdated",
		"vehiclePhoto":       "vehiclePhoto",
		"S. #":               "sNo",
		"SAP #":              "sapNo",
		"Category":           "category",
		"Sub-Category":       "subCategory",
		"Brand":              "brand",
		"Seating Capacity":   "seatingCapacity",
		"Capacity with":      "capacityWith",
		"UOM":                "uom",
		"Yom":                "yom",
		"Chassis No.":        "chassisNo",
		"Engine No.":         "engineNo",
		"Cylinders":          "cylinders",
		"Registration Expiry": "registrationExpiry",
		"Insurance Expiry":    "insuranceExpiry",
		"Insurance validity":  "insuranceValidity",
		"GPS":                 "gps",
		"Driver SAP No":       "driverSapNo",
		"Position":            "position",
		"Contact Number":      "contactNumber",
		"EVRF#":               "evrfNo",
		"On-Hire Date":        "onHireDate",
		"Off-Hire Date":       "offHireDate",
		"LVRF #":              "lvrfNo",
		"LVRF Approval Type":  "lvrfApprovalType",
		"Custody Date":        "custodyDate",
		"LVRF Expiry":         "lvrfExpiry",
		"Exf Date":            "exfDate",
		"Fuel Type":           "fuelType",
		"Rented or Owned":     "rentedOrOwned",
		"Contract":            "contract",
		"Project":             "project",
		"Remarks":             "remarks",
		"Replacement Vehicle": "replacementVehicle",
		"Replacement Vehicle.Registration Expiry": "replacementVehicleRegExpiry",
		"Sourcing Of Pmvs":                        "sourcingOfPmvs",
		"Link":                                    "link",
	}
}

var nonNumericRe = regexp.MustCompile(`[^0-9.]+`)

// ParseRentAmount coerces currency-formatted text ("QAR 12,500.50") to
// a number. Everything that is not a digit or decimal point is stripped
// before parsing; unparseable or non-finite input coerces to 0.
func ParseRentAmount(raw string) float64 {
	cleaned := nonNumericRe.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// MapRow maps one raw sheet row (cells keyed by header text) into a
// VehicleRecord using the given column table. Cells absent from the row
// or empty are skipped; per-field coercion failures degrade to zero
// values and never fail the row, so a row with no usable cells still
// yields a (mostly empty) record.
func MapRow(row map[string]string, columns map[string]string) VehicleRecord {
	var rec VehicleRecord
	for header, field := range columns {
		value, ok := row[header]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		if field == "rentAmount" {
			rec.RentAmount = ParseRentAmount(value)
			continue
		}
		setField(&rec, field, strings.TrimSpace(value))
	}
	if rec.VehiclePhoto == "" {
		rec.VehiclePhoto = defaultPhotoURL(&rec)
	}
	return rec
}

// defaultPhotoURL synthesizes a deterministic placeholder image
// reference seeded by the record's identifier.
func defaultPhotoURL(rec *VehicleRecord) string {
	return "https://picsum.photos/seed/" + rec.Identifier() + "/600/400"
}

func setField(rec *VehicleRecord, field, value string) {
	switch field {
	case "regNo":
		rec.RegNo = value
	case "fleetNo":
		rec.FleetNo = value
	case "vehicleDescription":
		rec.VehicleDescription = value
	case "vehicleModel":
		rec.VehicleModel = value
	case "vehicleOwner":
		rec.VehicleOwner = value
	case "fuelLimit":
		rec.FuelLimit = value
	case "user":
		rec.User = value
	case "designation":
		rec.Designation = value
	case "status":
		rec.Status = value
	case "businessUnit":
		rec.BusinessUnit = value
	case "lastUpdated":
		rec.LastUpdated = value
	case "vehiclePhoto":
		rec.VehiclePhoto = value
	case "sNo":
		rec.SNo = value
	case "sapNo":
		rec.SapNo = value
	case "category":
		rec.Category = value
	case "subCategory":
		rec.SubCategory = value
	case "brand":
		rec.Brand = value
	case "seatingCapacity":
		rec.SeatingCapacity = value
	case "capacityWith":
		rec.CapacityWith = value
	case "uom":
		rec.UOM = value
	case "yom":
		rec.Yom = value
	case "chassisNo":
		rec.ChassisNo = value
	case "engineNo":
		rec.EngineNo = value
	case "cylinders":
		rec.Cylinders = value
	case "registrationExpiry":
		rec.RegistrationExpiry = value
	case "insuranceExpiry":
		rec.InsuranceExpiry = value
	case "insuranceValidity":
		rec.InsuranceValidity = value
	case "gps":
		rec.GPS = value
	case "driverSapNo":
		rec.DriverSapNo = value
	case "position":
		rec.Position = value
	case "contactNumber":
		rec.ContactNumber = value
	case "evrfNo":
		rec.EvrfNo = value
	case "onHireDate":
		rec.OnHireDate = value
	case "offHireDate":
		rec.OffHireDate = value
	case "lvrfNo":
		rec.LvrfNo = value
	case "lvrfApprovalType":
		rec.LvrfApprovalType = value
	case "custodyDate":
		rec.CustodyDate = value
	case "lvrfExpiry":
		rec.LvrfExpiry = value
	case "fuelSensorOwner":
		rec.FuelSensorOwner = value
	case "exfDate":
		rec.ExfDate = value
	case "fuelType":
		rec.FuelType = value
	case "rentedOrOwned":
		rec.RentedOrOwned = value
	case "contract":
		rec.Contract = value
	case "project":
		rec.Project = value
	case "remarks":
		rec.Remarks = value
	case "replacementVehicle":
		rec.ReplacementVehicle = value
	case "replacementVehicleRegExpiry":
		rec.ReplacementVehicleRegExpiry = value
	case "sourcingOfPmvs":
		rec.SourcingOfPmvs = value
	case "link":
		rec.Link = value
	}
}
