package internal

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
)

// GroupSummary is one row of a grouped fleet summary: how many vehicles
// in the group are working, how many are on standby, and the total of
// those two. Vehicles in any other status still belong to the group but
// are not counted.
type GroupSummary struct {
	Name         string
	WorkingCount int
	StandbyCount int
	Total        int
}

// Summarize groups records by the given field and counts working and
// standby vehicles per group. Records with an empty group value fall
// into an "N/A" group. The displayed name is the first-encountered
// original value for the group (the capitalized key when none
// survives). Groups where both counts are zero are dropped, and the
// result is sorted by name with locale-aware, numeric-aware ordering.
func Summarize(records []VehicleRecord, groupField string) []GroupSummary {
	type counts struct {
		working int
		standby int
		total   int
	}
	groups := map[string]*counts{}
	displayNames := map[string]string{}
	var order []string

	for i := range records {
		name := strings.TrimSpace(records[i].Field(groupField))
		if name == "" {
			name = "N/A"
		}
		key := Normalize(name)

		c, ok := groups[key]
		if !ok {
			c = &counts{}
			groups[key] = c
			displayNames[key] = name
			order = append(order, key)
		}

		switch Normalize(records[i].Status) {
		case StatusWorking:
			c.working++
			c.total++
		case StatusStandby:
			c.standby++
			c.total++
		}
	}

	var out []GroupSummary
	for _, key := range order {
		c := groups[key]
		if c.working == 0 && c.standby == 0 {
			continue
		}
		name := displayNames[key]
		if name == "" {
			name = capitalize(key)
		}
		out = append(out, GroupSummary{
			Name:         name,
			WorkingCount: c.working,
			StandbyCount: c.standby,
			Total:        c.total,
		})
	}

	c := collate.New(CollationLanguage(), collate.Numeric)
	sort.Slice(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}

// SummaryTotals reduces group summaries to grand totals.
func SummaryTotals(groups []GroupSummary) (working, standby, total int) {
	for _, g := range groups {
		working += g.WorkingCount
		standby += g.StandbyCount
		total += g.Total
	}
	return working, standby, total
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
