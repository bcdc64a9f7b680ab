package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"brandpulse/internal/domain/related"
)

// RelatedMentionStoreConfig names the variant-specific columns of the
// simple secondary schema. The YouTube export calls the weight column
// video_mentions and the list column top_channels; the forum export uses
// mentions and top_subreddits.
type RelatedMentionStoreConfig struct {
	WeightColumn string
	EntityColumn string
}

// RelatedMentionStore loads the simple secondary table: one row per
// (date, brand) with a shared weight and a delimited related-entity
// list.
type RelatedMentionStore struct {
	path   string
	config RelatedMentionStoreConfig
}

// NewRelatedMentionStore creates a store for the secondary file at path.
func NewRelatedMentionStore(path string, config RelatedMentionStoreConfig) *RelatedMentionStore {
	return &RelatedMentionStore{path: path, config: config}
}

// Load reads the secondary rows. Entity lists are split and trimmed
// here, so aggregation downstream is a flat-map over a proper relation.
// A malformed date fails the load; the caller degrades the whole
// secondary source to a hint rather than serving it with rows missing.
func (s *RelatedMentionStore) Load() ([]related.MentionRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("error opening related mentions file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading header of %s: %w", s.path, err)
	}

	idx, err := columnIndex(header, []string{"date", "keyword", s.config.WeightColumn, s.config.EntityColumn})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	var records []related.MentionRecord
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

		date, err := parseDate(field(row, idx["date"]))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.path, line, err)
		}

		weight, _ := parseCount(field(row, idx[s.config.WeightColumn]))
		records = append(records, related.MentionRecord{
			Date:     date,
			Brand:    field(row, idx["keyword"]),
			Weight:   weight,
			Entities: splitEntities(field(row, idx[s.config.EntityColumn])),
		})
	}

	return records, nil
}
