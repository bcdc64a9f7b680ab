package related

// MentionRanker ranks related entities for a simple weighted-list source.
type MentionRanker interface {
	// TopEntities returns the top entities per selected brand by summed
	// weight, brands ascending, weights descending within a brand.
	// Returns ErrNoRows when filtering leaves nothing to rank.
	TopEntities(selection []string) ([]EntityWeight, error)
}

// ChannelRanker ranks channels for a weekly multi-metric source.
type ChannelRanker interface {
	// TopByReach returns the top channels per selected brand by
	// aggregated subscriber count.
	TopByReach(selection []string) ([]ChannelStats, error)

	// TopByEngagement returns the top channels per selected brand by
	// summed views + likes + comments.
	TopByEngagement(selection []string) ([]ChannelStats, error)

	// Availability reports the time range and brands present in the
	// source file, for empty-state hints.
	Availability() Availability
}
