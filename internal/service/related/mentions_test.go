package related

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse/internal/domain/mention"
	relatedDomain "brandpulse/internal/domain/related"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func window(start, end string) mention.Window {
	return mention.Window{Start: day(start), End: day(end)}
}

func newMentionAggregator(records []relatedDomain.MentionRecord) *MentionAggregator {
	return NewMentionAggregator(records, MentionAggregatorConfig{
		Window:   window("2025-06-02", "2025-06-03"),
		Strategy: relatedDomain.WindowContain,
		PerBrand: 3,
	})
}

func TestTopEntitiesWeightSharedAcrossList(t *testing.T) {
	agg := newMentionAggregator([]relatedDomain.MentionRecord{
		{Date: day("2025-06-02"), Brand: "acme", Weight: 7, Entities: []string{"r/tech", "r/news", "r/biz"}},
	})

	rows, err := agg.TopEntities([]string{"acme"})
	require.NoError(t, err)

	// each entity carries the full row weight, not a share of it
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 7, row.Weight)
	}
}

func TestTopEntitiesAggregatesAcrossDays(t *testing.T) {
	agg := newMentionAggregator([]relatedDomain.MentionRecord{
		{Date: day("2025-06-02"), Brand: "acme", Weight: 3, Entities: []string{"r/tech", "r/news"}},
		{Date: day("2025-06-03"), Brand: "acme", Weight: 4, Entities: []string{"r/tech"}},
	})

	rows, err := agg.TopEntities([]string{"acme"})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, relatedDomain.EntityWeight{Brand: "acme", Entity: "r/tech", Weight: 7}, rows[0])
	assert.Equal(t, relatedDomain.EntityWeight{Brand: "acme", Entity: "r/news", Weight: 3}, rows[1])
}

func TestTopEntitiesCapPerBrand(t *testing.T) {
	agg := newMentionAggregator([]relatedDomain.MentionRecord{
		{Date: day("2025-06-02"), Brand: "acme", Weight: 1, Entities: []string{"e1"}},
		{Date: day("2025-06-02"), Brand: "acme", Weight: 2, Entities: []string{"e2"}},
		{Date: day("2025-06-02"), Brand: "acme", Weight: 3, Entities: []string{"e3"}},
		{Date: day("2025-06-02"), Brand: "acme", Weight: 4, Entities: []string{"e4"}},
		{Date: day("2025-06-02"), Brand: "globex", Weight: 9, Entities: []string{"e9"}},
	})

	rows, err := agg.TopEntities([]string{"acme", "globex"})
	require.NoError(t, err)

	perBrand := map[string]int{}
	last := map[string]int{}
	for _, row := range rows {
		perBrand[row.Brand]++
		if prev, ok := last[row.Brand]; ok {
			assert.LessOrEqual(t, row.Weight, prev, "weights must be non-increasing within a brand")
		}
		last[row.Brand] = row.Weight
	}
	assert.Equal(t, 3, perBrand["acme"])
	assert.Equal(t, 1, perBrand["globex"])

	// brands come back in ascending order
	assert.Equal(t, "acme", rows[0].Brand)
	assert.Equal(t, "globex", rows[len(rows)-1].Brand)
}

func TestTopEntitiesFiltersWindowAndSelection(t *testing.T) {
	agg := newMentionAggregator([]relatedDomain.MentionRecord{
		{Date: day("2025-06-01"), Brand: "acme", Weight: 50, Entities: []string{"stale"}},
		{Date: day("2025-06-02"), Brand: "acme", Weight: 2, Entities: []string{"fresh"}},
		{Date: day("2025-06-02"), Brand: "globex", Weight: 8, Entities: []string{"other"}},
	})

	rows, err := agg.TopEntities([]string{"acme"})
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "fresh", rows[0].Entity)
}

func TestTopEntitiesEmptyListContributesNothing(t *testing.T) {
	agg := newMentionAggregator([]relatedDomain.MentionRecord{
		{Date: day("2025-06-02"), Brand: "acme", Weight: 5, Entities: nil},
	})

	_, err := agg.TopEntities([]string{"acme"})
	assert.ErrorIs(t, err, relatedDomain.ErrNoRows)
}

func TestTopEntitiesNoRows(t *testing.T) {
	agg := newMentionAggregator(nil)

	_, err := agg.TopEntities([]string{"acme"})
	assert.ErrorIs(t, err, relatedDomain.ErrNoRows)
}
