package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"brandpulse/internal/domain/mention"
)

// metadataColumns are wide-table columns that are never enumerated as
// brands.
var metadataColumns = map[string]bool{
	"date":                 true,
	"total_mentions":       true,
	"num_brands_mentioned": true,
}

// MentionStore loads the primary wide daily brand-count table.
type MentionStore struct {
	path string
}

// NewMentionStore creates a store for the wide counts file at path.
func NewMentionStore(path string) *MentionStore {
	return &MentionStore{path: path}
}

// Load reads the wide table. Brand columns keep file order; empty or
// non-numeric count cells load as null. A malformed date fails the load:
// the primary table has no degraded mode.
func (s *MentionStore) Load() (*mention.Table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("error opening mention counts file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header of %s: %w", s.path, err)
	}

	dateIdx := -1
	var brands []string
	var brandIdx []int
	for i, h := range header {
		name := strings.TrimSpace(h)
		switch {
		case name == "date":
			dateIdx = i
		case metadataColumns[name]:
			// metadata, not a brand
		default:
			brands = append(brands, name)
			brandIdx = append(brandIdx, i)
		}
	}
	if dateIdx < 0 {
		return nil, fmt.Errorf("%w: date (in %s)", ErrMissingColumns, s.path)
	}

	var days []mention.Day
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %w", s.path, err)
		}
		line++

		date, err := parseDate(field(row, dateIdx))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.path, line, err)
		}

		counts := make(map[string]mention.Count, len(brands))
		for j, brand := range brands {
			if v, ok := parseCount(field(row, brandIdx[j])); ok {
				counts[brand] = mention.Count{Value: v, Valid: true}
			}
		}
		days = append(days, mention.Day{Date: date, Counts: counts})
	}

	return &mention.Table{Brands: brands, Days: days}, nil
}
