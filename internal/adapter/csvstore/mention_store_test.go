package csvstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMentionStoreLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "counts.csv",
		"date,acme,total_mentions,globex,num_brands_mentioned\n"+
			"2025-06-01,3,10,7,2\n"+
			"2025-06-02,,5,5,1\n")

	table, err := NewMentionStore(path).Load()
	require.NoError(t, err)

	// metadata columns are not brands; file order is kept
	assert.Equal(t, []string{"acme", "globex"}, table.Brands)
	require.Len(t, table.Days, 2)

	d0 := table.Days[0]
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d0.Date)
	assert.Equal(t, 3, d0.Counts["acme"].Value)
	assert.True(t, d0.Counts["acme"].Valid)

	// empty cell loads as null, not zero
	_, ok := table.Days[1].Counts["acme"]
	assert.False(t, ok)
	assert.Equal(t, 5, table.Days[1].Counts["globex"].Value)
}

func TestMentionStoreCoercesFloats(t *testing.T) {
	path := writeFile(t, t.TempDir(), "counts.csv",
		"date,acme\n2025-06-01,4.0\n")

	table, err := NewMentionStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 4, table.Days[0].Counts["acme"].Value)
}

func TestMentionStoreMalformedDateFatal(t *testing.T) {
	path := writeFile(t, t.TempDir(), "counts.csv",
		"date,acme\nnot-a-date,4\n")

	_, err := NewMentionStore(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-date")
}

func TestMentionStoreMissingFile(t *testing.T) {
	_, err := NewMentionStore(filepath.Join(t.TempDir(), "nope.csv")).Load()
	assert.Error(t, err)
}

func TestMentionStoreMissingDateColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "counts.csv", "acme,globex\n1,2\n")

	_, err := NewMentionStore(path).Load()
	assert.ErrorIs(t, err, ErrMissingColumns)
}
