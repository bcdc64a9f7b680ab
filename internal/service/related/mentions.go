package related

import (
	"sort"

	"brandpulse/internal/domain/mention"
	relatedDomain "brandpulse/internal/domain/related"
)

// MentionAggregatorConfig contains configuration for the mention
// aggregator
type MentionAggregatorConfig struct {
	Window   mention.Window
	Strategy relatedDomain.WindowStrategy
	PerBrand int
}

// MentionAggregator implements the related.MentionRanker interface for
// the simple weighted-list schema: each record carries one weight shared
// by all of its related entities.
type MentionAggregator struct {
	records []relatedDomain.MentionRecord
	config  MentionAggregatorConfig
}

// NewMentionAggregator creates an aggregator over the loaded records.
func NewMentionAggregator(records []relatedDomain.MentionRecord, config MentionAggregatorConfig) *MentionAggregator {
	return &MentionAggregator{records: records, config: config}
}

// TopEntities filters records to the window and selection, flat-maps
// entity lists (each entity inherits the full row weight, never a
// share of it), sums weight by (brand, entity), and returns the top
// entities per brand: brands ascending, weight descending, ties in
// first-seen order.
func (a *MentionAggregator) TopEntities(selection []string) ([]relatedDomain.EntityWeight, error) {
	selected := make(map[string]bool, len(selection))
	for _, b := range selection {
		selected[b] = true
	}

	type key struct {
		brand  string
		entity string
	}
	sums := make(map[key]int)
	var order []key

	for _, rec := range a.records {
		if !a.inWindow(rec) || !selected[rec.Brand] {
			continue
		}
		for _, entity := range rec.Entities {
			k := key{brand: rec.Brand, entity: entity}
			if _, seen := sums[k]; !seen {
				order = append(order, k)
			}
			sums[k] += rec.Weight
		}
	}

	if len(order) == 0 {
		return nil, relatedDomain.ErrNoRows
	}

	weights := make([]relatedDomain.EntityWeight, 0, len(order))
	for _, k := range order {
		weights = append(weights, relatedDomain.EntityWeight{
			Brand:  k.brand,
			Entity: k.entity,
			Weight: sums[k],
		})
	}
	sort.SliceStable(weights, func(i, j int) bool {
		if weights[i].Brand != weights[j].Brand {
			return weights[i].Brand < weights[j].Brand
		}
		return weights[i].Weight > weights[j].Weight
	})

	return headPerBrand(weights, a.config.PerBrand, func(w relatedDomain.EntityWeight) string {
		return w.Brand
	}), nil
}

func (a *MentionAggregator) inWindow(rec relatedDomain.MentionRecord) bool {
	// Single-date records have no extent, so containment and overlap
	// coincide; the strategy stays explicit for parity with the weekly
	// schema.
	switch a.config.Strategy {
	case relatedDomain.WindowOverlap:
		return a.config.Window.Overlaps(rec.Date, rec.Date)
	default:
		return a.config.Window.Contains(rec.Date)
	}
}

// headPerBrand keeps at most n leading rows per brand group, preserving
// order within each group.
func headPerBrand[T any](rows []T, n int, brandOf func(T) string) []T {
	kept := make([]T, 0, len(rows))
	counts := make(map[string]int)
	for _, row := range rows {
		brand := brandOf(row)
		if counts[brand] >= n {
			continue
		}
		counts[brand]++
		kept = append(kept, row)
	}
	return kept
}
