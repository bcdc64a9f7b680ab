package report

import (
	"fmt"
	"sort"

	"brandpulse/internal/domain/mention"
)

// Config contains configuration for the report service
type Config struct {
	Window               mention.Window
	DefaultSelectionSize int
	TopOverallSize       int
}

// Service implements the mention.Reporter interface over a loaded wide
// table. The table is immutable after construction; every method is an
// idempotent recomputation, so concurrent render cycles need no locking.
type Service struct {
	full     *mention.Table
	windowed *mention.Table
	config   Config
}

// NewService creates a report service over the loaded table.
func NewService(table *mention.Table, config Config) *Service {
	return &Service{
		full:     table,
		windowed: FilterWindow(table, config.Window),
		config:   config,
	}
}

// Window returns the display window.
func (s *Service) Window() mention.Window {
	return s.config.Window
}

// Brands returns the known brand identifiers in source column order.
func (s *Service) Brands() []string {
	brands := make([]string, len(s.full.Brands))
	copy(brands, s.full.Brands)
	return brands
}

// RankBrands returns per-brand totals over the display window,
// descending, ties in source column order.
func (s *Service) RankBrands() []mention.BrandTotal {
	return RankBrands(s.windowed)
}

// DefaultSelection returns the top brands by window total, up to the
// configured selection size.
func (s *Service) DefaultSelection() []string {
	ranked := s.RankBrands()
	n := s.config.DefaultSelectionSize
	if n > len(ranked) {
		n = len(ranked)
	}
	selection := make([]string, 0, n)
	for _, bt := range ranked[:n] {
		selection = append(selection, bt.Brand)
	}
	return selection
}

// ValidateSelection checks that every selected brand is a known brand
// column. An empty selection is valid.
func (s *Service) ValidateSelection(selection []string) error {
	known := make(map[string]bool, len(s.full.Brands))
	for _, b := range s.full.Brands {
		known[b] = true
	}
	for _, b := range selection {
		if !known[b] {
			return fmt.Errorf("%w: %s", ErrUnknownBrand, b)
		}
	}
	return nil
}

// Reshape returns tidy rows for the selected brands within the window,
// ordered brand ascending then date ascending. One row per (date, brand)
// pair; no aggregation.
func (s *Service) Reshape(selection []string) []mention.TidyRow {
	ordered := make([]string, len(selection))
	copy(ordered, selection)
	sort.Strings(ordered)

	rows := make([]mention.TidyRow, 0, len(ordered)*len(s.windowed.Days))
	for _, brand := range ordered {
		for _, day := range s.windowed.Days {
			rows = append(rows, mention.TidyRow{
				Date:     day.Date,
				Brand:    brand,
				Mentions: day.Counts[brand].Value,
			})
		}
	}
	return rows
}

// Series returns one chart series per selected brand, in selection
// order, points in natural date order.
func (s *Service) Series(selection []string) []mention.Series {
	return seriesFor(s.windowed, selection)
}

// TopOverall ranks brands over the entire unfiltered dataset, then
// re-slices the winners within the display window for charting and
// window totals. A brand whose volume lies entirely outside the window
// still appears, with a window total of zero.
func (s *Service) TopOverall() mention.TopOverall {
	overall := RankBrands(s.full)
	n := s.config.TopOverallSize
	if n > len(overall) {
		n = len(overall)
	}

	brands := make([]string, 0, n)
	for _, bt := range overall[:n] {
		brands = append(brands, bt.Brand)
	}

	totals := make([]mention.BrandTotal, 0, len(brands))
	for _, brand := range brands {
		total := 0
		for _, day := range s.windowed.Days {
			total += day.Counts[brand].Value
		}
		totals = append(totals, mention.BrandTotal{Brand: brand, Total: total})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].Total > totals[j].Total
	})

	return mention.TopOverall{
		Brands:       brands,
		Series:       seriesFor(s.windowed, brands),
		WindowTotals: totals,
	}
}

func seriesFor(t *mention.Table, brands []string) []mention.Series {
	series := make([]mention.Series, 0, len(brands))
	for _, brand := range brands {
		points := make([]mention.Point, 0, len(t.Days))
		for _, day := range t.Days {
			points = append(points, mention.Point{
				Date:     day.Date,
				Mentions: day.Counts[brand].Value,
			})
		}
		series = append(series, mention.Series{Brand: brand, Points: points})
	}
	return series
}
