package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/fleetops/fleet-master/internal"
)

func main() {
	boa.Cmd{
		Use:   "fleet-master",
		Short: "Search, filter, summarize and export a fleet master list",
		Long: "Imports a fleet master-list spreadsheet (.xlsx/.xls) into a local dataset, " +
			"then answers searches by registration or fleet number, produces filtered " +
			"reports, per-group summaries and registration-expiry alerts, and exports " +
			"any view back to a spreadsheet.",
		SubCmds: []*cobra.Command{
			importCmd(),
			searchCmd(),
			reportCmd(),
			summaryCmd(),
			alertsCmd(),
			resetCmd(),
		},
	}.Run()
}

type ImportParams struct {
	File   string `descr:"Path to the master-list file, optionally prefixed format:path" positional:"true"`
	Store  string `descr:"Override the dataset storage path"`
	Config string `descr:"Override the config file path"`
}

func importCmd() *cobra.Command {
	return boa.NewCmdT[ImportParams]("import").
		WithShort("Import a fleet master list, replacing the stored dataset").
		WithRunFunc(func(params *ImportParams) {
			cfg, err := internal.LoadConfig(configPath(params.Config))
			if err != nil {
				fail("Error loading config: %v", err)
			}

			format, path := internal.ParseFileArg(params.File)
			if format == "" {
				format = internal.SniffSource(path)
			}
			parser, err := internal.GetParser(format)
			if err != nil {
				fail("Error: %v", err)
			}

			records, err := parser.Parse(path, cfg.ColumnMap())
			if err != nil {
				if errors.Is(err, internal.ErrEmptySource) {
					fail("Error: %v", err)
				}
				fail("Error parsing file: %v", err)
			}

			fleet := &internal.StoredFleet{
				Vehicles:    records,
				FileName:    filepath.Base(path),
				LastUpdated: time.Now().UTC(),
			}
			if err := internal.SaveFleet(storePath(params.Store), fleet); err != nil {
				fail("Error saving dataset: %v", err)
			}

			fmt.Printf("Imported %d vehicles from %s\n", len(records), fleet.FileName)
		}).
		ToCobra()
}

type SearchParams struct {
	Query string `descr:"Registration or fleet number" positional:"true"`
	Store string `descr:"Override the dataset storage path"`
}

func searchCmd() *cobra.Command {
	return boa.NewCmdT[SearchParams]("search").
		WithShort("Look up one vehicle by registration or fleet number").
		WithRunFunc(func(params *SearchParams) {
			fleet := mustLoadFleet(params.Store)

			rec := internal.FindExact(params.Query, fleet.Vehicles)
			if rec == nil {
				fmt.Printf("No vehicle found for query: %q\n", params.Query)
				if suggestions := internal.Suggest(params.Query, fleet.Vehicles, 5); len(suggestions) > 0 {
					fmt.Printf("Did you mean: %s\n", strings.Join(suggestions, ", "))
				}
				return
			}
			internal.PrintVehicleCard(os.Stdout, rec)
		}).
		ToCobra()
}

type ReportParams struct {
	BusinessUnit  string `descr:"Filter by business unit (All = no filter)"`
	Status        string `descr:"Filter by status (All = no filter)"`
	Owner         string `descr:"Filter by vehicle owner (All = no filter)"`
	RentedOrOwned string `descr:"Filter by rented-or-owned (All = no filter)"`
	Export        bool   `descr:"Also export the report to an .xlsx file"`
	Store         string `descr:"Override the dataset storage path"`
}

func reportCmd() *cobra.Command {
	return boa.NewCmdT[ReportParams]("report").
		WithShort("Filtered fleet report").
		WithRunFunc(func(params *ReportParams) {
			fleet := mustLoadFleet(params.Store)

			criteria := map[string]string{
				"businessUnit":  params.BusinessUnit,
				"status":        params.Status,
				"vehicleOwner":  params.Owner,
				"rentedOrOwned": params.RentedOrOwned,
			}
			filtered := internal.Filter(fleet.Vehicles, criteria)
			internal.PrintReportTable(os.Stdout, filtered)

			if params.Export {
				exportReport(filtered, criteria)
			}
		}).
		ToCobra()
}

type SummaryParams struct {
	By     string `descr:"Grouping attribute" alts:"businessUnit,supplier,category" strict:"true" default:"businessUnit"`
	Group  string `descr:"Drill into one group and list its vehicles"`
	Export bool   `descr:"Also export the summary to an .xlsx file"`
	Store  string `descr:"Override the dataset storage path"`
}

func summaryCmd() *cobra.Command {
	return boa.NewCmdT[SummaryParams]("summary").
		WithShort("Working/standby counts grouped by business unit, supplier or category").
		WithRunFunc(func(params *SummaryParams) {
			fleet := mustLoadFleet(params.Store)
			field, header := summaryGrouping(params.By)

			if params.Group != "" {
				detail := internal.Filter(fleet.Vehicles, map[string]string{field: params.Group})
				internal.PrintReportTable(os.Stdout, detail)
				if params.Export {
					exportDetail(detail, params.By, params.Group)
				}
				return
			}

			groups := internal.Summarize(fleet.Vehicles, field)
			internal.PrintSummaryTable(os.Stdout, groups, header)
			if params.Export {
				exportSummary(groups, header, params.By)
			}
		}).
		ToCobra()
}

type AlertsParams struct {
	Expired bool   `descr:"Show only vehicles with an expired registration"`
	Window  int    `descr:"Show vehicles expiring within this many days (0 = overview of all windows)"`
	All     bool   `descr:"Include all statuses, not just working vehicles"`
	Export  bool   `descr:"Also export the alerts to an .xlsx file"`
	Store   string `descr:"Override the dataset storage path"`
	Config  string `descr:"Override the config file path"`
}

func alertsCmd() *cobra.Command {
	return boa.NewCmdT[AlertsParams]("alerts").
		WithShort("Registration-expiry alerts").
		WithRunFunc(func(params *AlertsParams) {
			cfg, err := internal.LoadConfig(configPath(params.Config))
			if err != nil {
				fail("Error loading config: %v", err)
			}

			fleet := mustLoadFleet(params.Store)
			today := internal.Today()

			scope := fleet.Vehicles
			if !params.All {
				scope = internal.WorkingOnly(scope)
			}

			var bucket []internal.VehicleRecord
			var bucketName string
			switch {
			case params.Expired:
				bucket = internal.Expired(scope, today)
				bucketName = "Expired"
			case params.Window > 0:
				bucket = internal.Expiring(scope, params.Window, today)
				bucketName = fmt.Sprintf("Expiring_in_%d_days", params.Window)
			default:
				printAlertOverview(scope, cfg.Windows(), today)
				return
			}

			internal.PrintAlertsTable(os.Stdout, bucket, today)
			if params.Export {
				exportAlerts(bucket, bucketName, today)
			}
		}).
		ToCobra()
}

type ResetParams struct {
	Store string `descr:"Override the dataset storage path"`
}

func resetCmd() *cobra.Command {
	return boa.NewCmdT[ResetParams]("reset").
		WithShort("Clear the stored dataset").
		WithRunFunc(func(params *ResetParams) {
			if err := internal.ClearFleet(storePath(params.Store)); err != nil {
				fail("Could not clear saved data: %v", err)
			}
			fmt.Println("Stored dataset cleared.")
		}).
		ToCobra()
}

// printAlertOverview prints per-window counts when no specific bucket
// was requested.
func printAlertOverview(scope []internal.VehicleRecord, windows []int, today time.Time) {
	fmt.Printf("Expired: %d vehicle(s)\n", len(internal.Expired(scope, today)))
	for _, w := range windows {
		fmt.Printf("Expiring within %d days: %d vehicle(s)\n", w, len(internal.Expiring(scope, w, today)))
	}
	fmt.Println("\nUse --expired or --window <days> for details.")
}

func summaryGrouping(by string) (field, header string) {
	switch by {
	case "supplier":
		return "vehicleOwner", "Supplier"
	case "category":
		return "subCategory", "Vehicle Category"
	default:
		return "businessUnit", "Business Unit"
	}
}

func exportReport(records []internal.VehicleRecord, criteria map[string]string) {
	headers := []string{"Serial Number", "Fleet No", "Reg No", "Vehicle Description", "User", "Project", "Status", "Rent Amount (QAR)", "Business Unit", "Vehicle Owner", "Rented or Owned"}
	rows := make([]map[string]any, 0, len(records))
	for i := range records {
		r := &records[i]
		rows = append(rows, map[string]any{
			"Serial Number":       i + 1,
			"Fleet No":            r.FleetNo,
			"Reg No":              r.RegNo,
			"Vehicle Description": r.VehicleDescription,
			"User":                r.User,
			"Project":             r.Project,
			"Status":              r.Status,
			"Rent Amount (QAR)":   r.RentAmount,
			"Business Unit":       r.BusinessUnit,
			"Vehicle Owner":       r.VehicleOwner,
			"Rented or Owned":     r.RentedOrOwned,
		})
	}

	var parts []string
	for _, field := range []string{"businessUnit", "status", "vehicleOwner", "rentedOrOwned"} {
		if v := criteria[field]; v != "" && !strings.EqualFold(v, "All") {
			parts = append(parts, fmt.Sprintf("%s-%s", field, v))
		}
	}
	filterPart := strings.Join(parts, "_")
	if filterPart == "" {
		filterPart = "All"
	}

	writeExport(headers, rows, fmt.Sprintf("Fleet_Report_%s_%s", filterPart, exportDate()))
}

func exportSummary(groups []internal.GroupSummary, groupHeader, by string) {
	headers := []string{"S.No.", groupHeader, "Working", "Standby", "Total"}
	rows := make([]map[string]any, 0, len(groups))
	for i, g := range groups {
		rows = append(rows, map[string]any{
			"S.No.":     i + 1,
			groupHeader: g.Name,
			"Working":   g.WorkingCount,
			"Standby":   g.StandbyCount,
			"Total":     g.Total,
		})
	}
	writeExport(headers, rows, fmt.Sprintf("Summary_by_%s_%s", by, exportDate()))
}

func exportDetail(records []internal.VehicleRecord, by, group string) {
	headers := []string{"S.No.", "Fleet No", "Reg No", "Vehicle Description", "User", "Project", "Status"}
	rows := make([]map[string]any, 0, len(records))
	for i := range records {
		r := &records[i]
		rows = append(rows, map[string]any{
			"S.No.":               i + 1,
			"Fleet No":            r.FleetNo,
			"Reg No":              r.RegNo,
			"Vehicle Description": r.VehicleDescription,
			"User":                r.User,
			"Project":             r.Project,
			"Status":              r.Status,
		})
	}
	writeExport(headers, rows, fmt.Sprintf("Details_%s_%s_%s", by, group, exportDate()))
}

func exportAlerts(records []internal.VehicleRecord, bucketName string, today time.Time) {
	headers := []string{"S.No.", "Fleet No", "Reg No", "Vehicle Description", "Status", "Expiry Date", "Days Remaining"}
	rows := make([]map[string]any, 0, len(records))
	for i := range records {
		r := &records[i]
		expiry := internal.ParseDate(r.RegistrationExpiry)
		rows = append(rows, map[string]any{
			"S.No.":               i + 1,
			"Fleet No":            r.FleetNo,
			"Reg No":              r.RegNo,
			"Vehicle Description": r.VehicleDescription,
			"Status":              r.Status,
			"Expiry Date":         internal.FormatDate(expiry),
			"Days Remaining":      internal.DaysRemaining(expiry, today).Label,
		})
	}
	writeExport(headers, rows, fmt.Sprintf("Vehicle_Alerts_%s_%s", bucketName, exportDate()))
}

func writeExport(headers []string, rows []map[string]any, baseName string) {
	path, err := internal.ExportXLSX(headers, rows, baseName)
	if err != nil {
		fail("Error exporting: %v", err)
	}
	fmt.Printf("Exported to %s\n", path)
}

func exportDate() string {
	return time.Now().UTC().Format("2006-01-02")
}

// mustLoadFleet loads the stored dataset or exits with a friendly
// message. A corrupt store is reported but treated like an empty one,
// so the fix is always "import again".
func mustLoadFleet(storeOverride string) *internal.StoredFleet {
	fleet, err := internal.LoadFleet(storePath(storeOverride))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load saved data: %v\n", err)
		fleet = nil
	}
	if fleet == nil || len(fleet.Vehicles) == 0 {
		fail("No dataset loaded. Run 'fleet-master import <file>' first.")
	}
	fmt.Printf("%s loaded (%d vehicles, last updated %s)\n\n",
		fleet.FileName, len(fleet.Vehicles), fleet.LastUpdated.Format("2006-01-02 15:04"))
	return fleet
}

func storePath(override string) string {
	if override != "" {
		return override
	}
	return internal.DefaultStorePath()
}

func configPath(override string) string {
	if override != "" {
		return override
	}
	return internal.DefaultConfigPath()
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
