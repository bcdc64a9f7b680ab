package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"brandpulse/internal/domain/related"
)

// ChannelWeekStore loads the weekly per-channel summary: one row per
// (week, brand, channel) with audience and engagement metrics.
type ChannelWeekStore struct {
	path string
}

// NewChannelWeekStore creates a store for the weekly summary at path.
// Load resolves the path with a one-directory-up fallback.
func NewChannelWeekStore(path string) *ChannelWeekStore {
	return &ChannelWeekStore{path: path}
}

// Load reads the weekly rows. All metric fields tolerate string-encoded
// numbers; non-numeric values load as zero. A missing or blank week_end
// is synthesized as week_start plus six days. A malformed date fails the
// load; the caller degrades the whole source to a hint rather than
// serving it with rows missing.
func (s *ChannelWeekStore) Load() ([]related.ChannelWeek, error) {
	path, err := resolvePath(s.path)
	if err != nil {
		return nil, fmt.Errorf("error locating weekly channel summary: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening weekly channel summary: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header of %s: %w", path, err)
	}

	idx, err := columnIndex(header, []string{
		"week_start", "keyword", "channel",
		"subscribers", "views", "likeCount", "commentCount",
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	weekEndIdx := -1
	if i, ok := idx["week_end"]; ok {
		weekEndIdx = i
	}

	var rows []related.ChannelWeek
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", path, err)
		}
		line++

		weekStart, err := parseDate(field(row, idx["week_start"]))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}

		weekEnd := weekStart.AddDate(0, 0, 6)
		if weekEndIdx >= 0 {
			if raw := strings.TrimSpace(field(row, weekEndIdx)); raw != "" {
				weekEnd, err = parseDate(raw)
				if err != nil {
					return nil, fmt.Errorf("%s line %d: %w", path, line, err)
				}
			}
		}

		subscribers, _ := parseCount(field(row, idx["subscribers"]))
		views, _ := parseCount(field(row, idx["views"]))
		likes, _ := parseCount(field(row, idx["likeCount"]))
		comments, _ := parseCount(field(row, idx["commentCount"]))

		rows = append(rows, related.ChannelWeek{
			WeekStart:   weekStart,
			WeekEnd:     weekEnd,
			Brand:       field(row, idx["keyword"]),
			Channel:     field(row, idx["channel"]),
			Subscribers: subscribers,
			Views:       views,
			Likes:       likes,
			Comments:    comments,
		})
	}

	return rows, nil
}
