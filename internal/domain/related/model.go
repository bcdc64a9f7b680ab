package related

import (
	"errors"
	"time"
)

// ErrNoRows is reported when window and selection filtering leaves no
// related-entity rows to rank. Callers treat it as an informational
// empty state, not a failure.
var ErrNoRows = errors.New("no related-entity rows for the current window and selection")

// WindowStrategy names how a secondary record's time bucket is matched
// against the display window. The two source schemas disagree on this,
// so each variant declares its strategy explicitly.
type WindowStrategy string

const (
	// WindowContain matches records whose single date lies inside the
	// display window.
	WindowContain WindowStrategy = "contain"

	// WindowOverlap matches weekly buckets that intersect the display
	// window, even partially.
	WindowOverlap WindowStrategy = "overlap"
)

// MentionRecord is one row of the simple secondary schema: the entities
// related to a brand's mentions on a single date, sharing one weight.
// The delimited entity list is already split and trimmed at load time;
// an empty list loads as zero entities.
type MentionRecord struct {
	Date     time.Time
	Brand    string
	Weight   int
	Entities []string
}

// EntityWeight is an aggregated (brand, entity) weight.
type EntityWeight struct {
	Brand  string `json:"brand"`
	Entity string `json:"entity"`
	Weight int    `json:"weight"`
}

// ChannelWeek is one row of the multi-metric secondary schema: a
// channel's weekly metrics for a brand. WeekEnd is synthesized as
// WeekStart plus six days when the file omits it.
type ChannelWeek struct {
	WeekStart   time.Time
	WeekEnd     time.Time
	Brand       string
	Channel     string
	Subscribers int
	Views       int
	Likes       int
	Comments    int
}

// ChannelStats is the aggregated per-(brand, channel) metric set over
// the weeks that overlap the display window. Subscribers is a
// point-in-time attribute aggregated by max; the rest are summed.
type ChannelStats struct {
	Brand       string `json:"brand"`
	Channel     string `json:"channel"`
	Subscribers int    `json:"subscribers"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
	Comments    int    `json:"comments"`
	Engagement  int    `json:"engagement"`
}

// Availability describes what a secondary file covers. It is reported
// alongside an empty result so the user can adjust the window or the
// selection.
type Availability struct {
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Brands []string  `json:"brands"`
}
