package report

import (
	"errors"
	"sort"

	"brandpulse/internal/domain/mention"
)

// ErrUnknownBrand is reported when a selection names a brand that is not
// a column of the primary table.
var ErrUnknownBrand = errors.New("unknown brand in selection")

// FilterWindow returns a new table restricted to days inside the window,
// sorted by date, with every brand cell null-filled to zero. The input
// table is never modified: the full table stays available for
// whole-dataset ranking.
func FilterWindow(t *mention.Table, w mention.Window) *mention.Table {
	brands := make([]string, len(t.Brands))
	copy(brands, t.Brands)

	var days []mention.Day
	for _, day := range t.Days {
		if !w.Contains(day.Date) {
			continue
		}
		counts := make(map[string]mention.Count, len(brands))
		for _, brand := range brands {
			c := day.Counts[brand]
			counts[brand] = mention.Count{Value: c.Value, Valid: true}
		}
		days = append(days, mention.Day{Date: day.Date, Counts: counts})
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})

	return &mention.Table{Brands: brands, Days: days}
}

// RankBrands sums each brand column over the table and sorts descending.
// Null cells count as zero; ties keep source column order (stable sort).
func RankBrands(t *mention.Table) []mention.BrandTotal {
	totals := make([]mention.BrandTotal, 0, len(t.Brands))
	for _, brand := range t.Brands {
		total := 0
		for _, day := range t.Days {
			if c := day.Counts[brand]; c.Valid {
				total += c.Value
			}
		}
		totals = append(totals, mention.BrandTotal{Brand: brand, Total: total})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})
	return totals
}
