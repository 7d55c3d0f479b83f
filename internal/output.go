package internal

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatRent renders a rent amount with locale-aware digit grouping,
// e.g. "QAR 12,500.50". The master lists are QAR-denominated.
func FormatRent(amount float64) string {
	p := message.NewPrinter(CollationLanguage())
	return "QAR " + p.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// statusCell colors a status value with the canonical palette: active
// green, inactive dimmed, maintenance yellow, anything else magenta.
func statusCell(status string) string {
	if status == "" {
		return ""
	}
	switch Normalize(status) {
	case "active", StatusWorking:
		return text.FgGreen.Sprint(status)
	case "inactive":
		return text.FgHiBlack.Sprint(status)
	case "maintenance":
		return text.FgYellow.Sprint(status)
	default:
		return text.FgMagenta.Sprint(status)
	}
}

// remainingCell colors a days-remaining label by severity: critical
// red (bold when already expired), warning yellow, normal plain.
func remainingCell(r Remaining) string {
	if r.Days == NoExpiry {
		return r.Label
	}
	switch ClassifySeverity(r.Days) {
	case SeverityCritical:
		if r.Days < 0 {
			return text.Colors{text.FgRed, text.Bold}.Sprint(r.Label)
		}
		return text.FgRed.Sprint(r.Label)
	case SeverityWarning:
		return text.FgYellow.Sprint(r.Label)
	default:
		return r.Label
	}
}

// PrintVehicleCard renders one record's details as a two-column table.
func PrintVehicleCard(w io.Writer, rec *VehicleRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	rows := []struct {
		label string
		value string
	}{
		{"Reg No", rec.RegNo},
		{"Fleet No", rec.FleetNo},
		{"Description", rec.VehicleDescription},
		{"Model", rec.VehicleModel},
		{"Brand", rec.Brand},
		{"Category", rec.Category},
		{"Sub-Category", rec.SubCategory},
		{"Owner", rec.VehicleOwner},
		{"Status", statusCell(rec.Status)},
		{"Business Unit", rec.BusinessUnit},
		{"Project", rec.Project},
		{"User", rec.User},
		{"Designation", rec.Designation},
		{"Position", rec.Position},
		{"Contact", rec.ContactNumber},
		{"Rent", FormatRent(rec.RentAmount)},
		{"Rented/Owned", rec.RentedOrOwned},
		{"Registration Expiry", FormatDate(ParseDate(rec.RegistrationExpiry))},
		{"Insurance Expiry", FormatDate(ParseDate(rec.InsuranceExpiry))},
		{"On-Hire Date", FormatDate(ParseDate(rec.OnHireDate))},
		{"Off-Hire Date", FormatDate(ParseDate(rec.OffHireDate))},
		{"Custody Date", FormatDate(ParseDate(rec.CustodyDate))},
		{"Photo", rec.VehiclePhoto},
	}
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		t.AppendRow(table.Row{text.Bold.Sprint(r.label), r.value})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// PrintReportTable renders the filtered fleet report.
func PrintReportTable(w io.Writer, records []VehicleRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"S.No.", "Fleet No", "Reg No", "Description", "User", "Project", "Status", "Rent", "Business Unit", "Owner"})

	for i := range records {
		r := &records[i]
		t.AppendRow(table.Row{
			i + 1,
			r.FleetNo,
			r.RegNo,
			r.VehicleDescription,
			r.User,
			r.Project,
			statusCell(r.Status),
			FormatRent(r.RentAmount),
			r.BusinessUnit,
			r.VehicleOwner,
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 8, Align: text.AlignRight},
	})
	t.Render()
	fmt.Fprintf(w, "%d vehicle(s)\n", len(records))
}

// PrintSummaryTable renders group summaries with a bold grand-total
// footer.
func PrintSummaryTable(w io.Writer, groups []GroupSummary, groupHeader string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"S.No.", groupHeader, "Working", "Standby", "Total"})

	for i, g := range groups {
		t.AppendRow(table.Row{i + 1, g.Name, g.WorkingCount, g.StandbyCount, g.Total})
	}

	working, standby, total := SummaryTotals(groups)
	t.AppendSeparator()
	t.AppendFooter(table.Row{
		"",
		text.Bold.Sprint("Total"),
		text.Bold.Sprint(working),
		text.Bold.Sprint(standby),
		text.Bold.Sprint(total),
	})

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Format.Footer = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.Render()
}

// PrintAlertsTable renders expiry alerts with days remaining colored by
// severity.
func PrintAlertsTable(w io.Writer, records []VehicleRecord, today time.Time) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"S.No.", "Fleet No", "Reg No", "Description", "Status", "Expiry Date", "Days Remaining"})

	for i := range records {
		r := &records[i]
		expiry := ParseDate(r.RegistrationExpiry)
		t.AppendRow(table.Row{
			i + 1,
			r.FleetNo,
			r.RegNo,
			r.VehicleDescription,
			statusCell(r.Status),
			FormatDate(expiry),
			remainingCell(DaysRemaining(expiry, today)),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.Render()
	fmt.Fprintf(w, "%d vehicle(s)\n", len(records))
}
