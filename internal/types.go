package internal

import "time"

// VehicleRecord is one row's worth of mapped fleet master-list data.
// All fields are optional; RegNo and FleetNo are the lookup keys.
// Date-valued fields keep the raw ingested text (ISO strings, Excel
// serial numbers, locale-formatted strings) and are parsed on demand
// by ParseDate, so mixed raw forms survive persistence round-trips.
type VehicleRecord struct {
	RegNo              string  `json:"regNo,omitempty" yaml:"reg_no,omitempty"`
	FleetNo            string  `json:"fleetNo,omitempty" yaml:"fleet_no,omitempty"`
	VehicleDescription string  `json:"vehicleDescription,omitempty" yaml:"vehicle_description,omitempty"`
	VehicleModel       string  `json:"vehicleModel,omitempty" yaml:"vehicle_model,omitempty"`
	VehicleOwner       string  `json:"vehicleOwner,omitempty" yaml:"vehicle_owner,omitempty"`
	FuelLimit          string  `json:"fuelLimit,omitempty" yaml:"fuel_limit,omitempty"`
	User               string  `json:"user,omitempty" yaml:"user,omitempty"`
	Designation        string  `json:"designation,omitempty" yaml:"designation,omitempty"`
	Status             string  `json:"status,omitempty" yaml:"status,omitempty"`
	BusinessUnit       string  `json:"businessUnit,omitempty" yaml:"business_unit,omitempty"`
	RentAmount         float64 `json:"rentAmount,omitempty" yaml:"rent_amount,omitempty"`
	LastUpdated        string  `json:"lastUpdated,omitempty" yaml:"last_updated,omitempty"`
	VehiclePhoto       string  `json:"vehiclePhoto,omitempty" yaml:"vehicle_photo,omitempty"`

	SNo                         string `json:"sNo,omitempty" yaml:"s_no,omitempty"`
	SapNo                       string `json:"sapNo,omitempty" yaml:"sap_no,omitempty"`
	Category                    string `json:"category,omitempty" yaml:"category,omitempty"`
	SubCategory                 string `json:"subCategory,omitempty" yaml:"sub_category,omitempty"`
	Brand                       string `json:"brand,omitempty" yaml:"brand,omitempty"`
	SeatingCapacity             string `json:"seatingCapacity,omitempty" yaml:"seating_capacity,omitempty"`
	CapacityWith                string `json:"capacityWith,omitempty" yaml:"capacity_with,omitempty"`
	UOM                         string `json:"uom,omitempty" yaml:"uom,omitempty"`
	Yom                         string `json:"yom,omitempty" yaml:"yom,omitempty"`
	ChassisNo                   string `json:"chassisNo,omitempty" yaml:"chassis_no,omitempty"`
	EngineNo                    string `json:"engineNo,omitempty" yaml:"engine_no,omitempty"`
	Cylinders                   string `json:"cylinders,omitempty" yaml:"cylinders,omitempty"`
	RegistrationExpiry          string `json:"registrationExpiry,omitempty" yaml:"registration_expiry,omitempty"`
	InsuranceExpiry             string `json:"insuranceExpiry,omitempty" yaml:"insurance_expiry,omitempty"`
	InsuranceValidity           string `json:"insuranceValidity,omitempty" yaml:"insurance_validity,omitempty"`
	GPS                         string `json:"gps,omitempty" yaml:"gps,omitempty"`
	DriverSapNo                 string `json:"driverSapNo,omitempty" yaml:"driver_sap_no,omitempty"`
	Position                    string `json:"position,omitempty" yaml:"position,omitempty"`
	ContactNumber               string `json:"contactNumber,omitempty" yaml:"contact_number,omitempty"`
	EvrfNo                      string `json:"evrfNo,omitempty" yaml:"evrf_no,omitempty"`
	OnHireDate                  string `json:"onHireDate,omitempty" yaml:"on_hire_date,omitempty"`
	OffHireDate                 string `json:"offHireDate,omitempty" yaml:"off_hire_date,omitempty"`
	LvrfNo                      string `json:"lvrfNo,omitempty" yaml:"lvrf_no,omitempty"`
	LvrfApprovalType            string `json:"lvrfApprovalType,omitempty" yaml:"lvrf_approval_type,omitempty"`
	CustodyDate                 string `json:"custodyDate,omitempty" yaml:"custody_date,omitempty"`
	LvrfExpiry                  string `json:"lvrfExpiry,omitempty" yaml:"lvrf_expiry,omitempty"`
	FuelSensorOwner             string `json:"fuelSensorOwner,omitempty" yaml:"fuel_sensor_owner,omitempty"`
	ExfDate                     string `json:"exfDate,omitempty" yaml:"exf_date,omitempty"`
	FuelType                    string `json:"fuelType,omitempty" yaml:"fuel_type,omitempty"`
	RentedOrOwned               string `json:"rentedOrOwned,omitempty" yaml:"rented_or_owned,omitempty"`
	Contract                    string `json:"contract,omitempty" yaml:"contract,omitempty"`
	Project                     string `json:"project,omitempty" yaml:"project,omitempty"`
	Remarks                     string `json:"remarks,omitempty" yaml:"remarks,omitempty"`
	ReplacementVehicle          string `json:"replacementVehicle,omitempty" yaml:"replacement_vehicle,omitempty"`
	ReplacementVehicleRegExpiry string `json:"replacementVehicleRegExpiry,omitempty" yaml:"replacement_vehicle_reg_expiry,omitempty"`
	SourcingOfPmvs              string `json:"sourcingOfPmvs,omitempty" yaml:"sourcing_of_pmvs,omitempty"`
	Link                        string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Operational status tokens counted by the summary views, compared
// against Normalize(record.Status).
const (
	StatusWorking = "working"
	StatusStandby = "standby"
)

// StoredFleet is the single persisted dataset snapshot.
type StoredFleet struct {
	Vehicles    []VehicleRecord `yaml:"vehicles"`
	FileName    string          `yaml:"file_name"`
	LastUpdated time.Time       `yaml:"last_updated"`
}

// Field returns the value of a record field by its internal name
// (the camelCase names used in the column table and filter criteria).
// Unknown names return the empty string.
func (v *VehicleRecord) Field(name string) string {
	switch name {
	case "regNo":
		return v.RegNo
	case "fleetNo":
		return v.FleetNo
	case "vehicleDescription":
		return v.VehicleDescription
	case "vehicleModel":
		return v.VehicleModel
	case "vehicleOwner":
		return v.VehicleOwner
	case "fuelLimit":
		return v.FuelLimit
	case "user":
		return v.User
	case "designation":
		return v.Designation
	case "status":
		return v.Status
	case "businessUnit":
		return v.BusinessUnit
	case "lastUpdated":
		return v.LastUpdated
	case "vehiclePhoto":
		return v.VehiclePhoto
	case "sNo":
		return v.SNo
	case "sapNo":
		return v.SapNo
	case "category":
		return v.Category
	case "subCategory":
		return v.SubCategory
	case "brand":
		return v.Brand
	case "seatingCapacity":
		return v.SeatingCapacity
	case "capacityWith":
		return v.CapacityWith
	case "uom":
		return v.UOM
	case "yom":
		return v.Yom
	case "chassisNo":
		return v.ChassisNo
	case "engineNo":
		return v.EngineNo
	case "cylinders":
		return v.Cylinders
	case "registrationExpiry":
		return v.RegistrationExpiry
	case "insuranceExpiry":
		return v.InsuranceExpiry
	case "insuranceValidity":
		return v.InsuranceValidity
	case "gps":
		return v.GPS
	case "driverSapNo":
		return v.DriverSapNo
	case "position":
		return v.Position
	case "contactNumber":
		return v.ContactNumber
	case "evrfNo":
		return v.EvrfNo
	case "onHireDate":
		return v.OnHireDate
	case "offHireDate":
		return v.OffHireDate
	case "lvrfNo":
		return v.LvrfNo
	case "lvrfApprovalType":
		return v.LvrfApprovalType
	case "custodyDate":
		return v.CustodyDate
	case "lvrfExpiry":
		return v.LvrfExpiry
	case "fuelSensorOwner":
		return v.FuelSensorOwner
	case "exfDate":
		return v.ExfDate
	case "fuelType":
		return v.FuelType
	case "rentedOrOwned":
		return v.RentedOrOwned
	case "contract":
		return v.Contract
	case "project":
		return v.Project
	case "remarks":
		return v.Remarks
	case "replacementVehicle":
		return v.ReplacementVehicle
	case "replacementVehicleRegExpiry":
		return v.ReplacementVehicleRegExpiry
	case "sourcingOfPmvs":
		return v.SourcingOfPmvs
	case "link":
		return v.Link
	default:
		return ""
	}
}

// Identifier returns the value shown to the user when a record needs a
// single handle: fleet number first, registration number as fallback.
func (v *VehicleRecord) Identifier() string {
	if v.FleetNo != "" {
		return v.FleetNo
	}
	return v.RegNo
}
