package related

import (
	"sort"

	"brandpulse/internal/domain/mention"
	relatedDomain "brandpulse/internal/domain/related"
)

// ChannelAggregatorConfig contains configuration for the channel
// aggregator
type ChannelAggregatorConfig struct {
	Window   mention.Window
	Strategy relatedDomain.WindowStrategy
	PerBrand int
}

// ChannelAggregator implements the related.ChannelRanker interface for
// the weekly multi-metric schema. Channels are already one-per-row, so
// there is no list expansion; weeks overlapping the display window are
// aggregated per (brand, channel).
type ChannelAggregator struct {
	rows   []relatedDomain.ChannelWeek
	config ChannelAggregatorConfig
}

// NewChannelAggregator creates an aggregator over the loaded weekly rows.
func NewChannelAggregator(rows []relatedDomain.ChannelWeek, config ChannelAggregatorConfig) *ChannelAggregator {
	return &ChannelAggregator{rows: rows, config: config}
}

// TopByReach returns the top channels per selected brand by aggregated
// subscriber count: brands ascending, subscribers descending, ties in
// first-seen order.
func (a *ChannelAggregator) TopByReach(selection []string) ([]relatedDomain.ChannelStats, error) {
	stats, err := a.aggregate(selection)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Brand != stats[j].Brand {
			return stats[i].Brand < stats[j].Brand
		}
		return stats[i].Subscribers > stats[j].Subscribers
	})
	return headPerBrand(stats, a.config.PerBrand, brandOfStats), nil
}

// TopByEngagement returns the top channels per selected brand by summed
// views + likes + comments.
func (a *ChannelAggregator) TopByEngagement(selection []string) ([]relatedDomain.ChannelStats, error) {
	stats, err := a.aggregate(selection)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Brand != stats[j].Brand {
			return stats[i].Brand < stats[j].Brand
		}
		return stats[i].Engagement > stats[j].Engagement
	})
	return headPerBrand(stats, a.config.PerBrand, brandOfStats), nil
}

// Availability reports the time range and brands present in the source
// file, independent of window and selection.
func (a *ChannelAggregator) Availability() relatedDomain.Availability {
	var avail relatedDomain.Availability
	brands := make(map[string]bool)
	for i, row := range a.rows {
		if i == 0 || row.WeekStart.Before(avail.From) {
			avail.From = row.WeekStart
		}
		if i == 0 || row.WeekEnd.After(avail.To) {
			avail.To = row.WeekEnd
		}
		brands[row.Brand] = true
	}
	for b := range brands {
		avail.Brands = append(avail.Brands, b)
	}
	sort.Strings(avail.Brands)
	return avail
}

// aggregate builds the shared per-(brand, channel) base table both
// rankings slice from. Subscribers aggregate by max: a channel's
// audience size is an attribute, not additive across weeks. Views,
// likes, and comments sum.
func (a *ChannelAggregator) aggregate(selection []string) ([]relatedDomain.ChannelStats, error) {
	selected := make(map[string]bool, len(selection))
	for _, b := range selection {
		selected[b] = true
	}

	type key struct {
		brand   string
		channel string
	}
	agg := make(map[key]*relatedDomain.ChannelStats)
	var order []key

	for _, row := range a.rows {
		if !a.inWindow(row) || !selected[row.Brand] {
			continue
		}
		k := key{brand: row.Brand, channel: row.Channel}
		st, seen := agg[k]
		if !seen {
			st = &relatedDomain.ChannelStats{Brand: row.Brand, Channel: row.Channel}
			agg[k] = st
			order = append(order, k)
		}
		if row.Subscribers > st.Subscribers {
			st.Subscribers = row.Subscribers
		}
		st.Views += row.Views
		st.Likes += row.Likes
		st.Comments += row.Comments
	}

	if len(order) == 0 {
		return nil, relatedDomain.ErrNoRows
	}

	stats := make([]relatedDomain.ChannelStats, 0, len(order))
	for _, k := range order {
		st := *agg[k]
		st.Engagement = st.Views + st.Likes + st.Comments
		stats = append(stats, st)
	}
	return stats, nil
}

func (a *ChannelAggregator) inWindow(row relatedDomain.ChannelWeek) bool {
	switch a.config.Strategy {
	case relatedDomain.WindowContain:
		return a.config.Window.Contains(row.WeekStart) && a.config.Window.Contains(row.WeekEnd)
	default:
		return a.config.Window.Overlaps(row.WeekStart, row.WeekEnd)
	}
}

func brandOfStats(st relatedDomain.ChannelStats) string {
	return st.Brand
}
