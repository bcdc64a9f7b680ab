package mention

import (
	"time"
)

// Count is a single cell of the wide daily-counts table. A cell read from
// an empty or non-numeric field is invalid (null) until the window filter
// fills it with zero.
type Count struct {
	Value int
	Valid bool
}

// Day is one row of the wide table: the mention counts per brand for a
// single calendar date. Brands with no observation that day are absent
// from the map.
type Day struct {
	Date   time.Time
	Counts map[string]Count
}

// Table is the wide daily brand-count table. Brands preserves the source
// column order, which is the tie-break order for every ranking. Dates are
// unique across Days.
type Table struct {
	Brands []string
	Days   []Day
}

// Window is an inclusive calendar date range.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Overlaps reports whether the [start, end] bucket intersects the window.
func (w Window) Overlaps(start, end time.Time) bool {
	return !start.After(w.End) && !end.Before(w.Start)
}

// TidyRow is one observation of the long-format table: a brand's mention
// count on a single date.
type TidyRow struct {
	Date     time.Time `json:"date"`
	Brand    string    `json:"brand"`
	Mentions int       `json:"mentions"`
}

// BrandTotal is a brand's summed mention count over some range.
type BrandTotal struct {
	Brand string `json:"brand"`
	Total int    `json:"total"`
}

// Point is a single chart point on a brand's series.
type Point struct {
	Date     time.Time `json:"date"`
	Mentions int       `json:"mentions"`
}

// Series is one charted brand: its points in natural date order.
type Series struct {
	Brand  string  `json:"brand"`
	Points []Point `json:"points"`
}

// TopOverall is the optional top-10 view: brands ranked over the entire
// dataset, charted and totalled within the display window only.
type TopOverall struct {
	Brands       []string     `json:"brands"`
	Series       []Series     `json:"series"`
	WindowTotals []BrandTotal `json:"window_totals"`
}
