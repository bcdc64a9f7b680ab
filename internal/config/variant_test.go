package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse/internal/domain/related"
)

func writeVariant(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "variant.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadVariantDefaults(t *testing.T) {
	path := writeVariant(t, `
name: youtube
primary: data/counts.csv
window:
  start: "2025-06-02"
  end: "2025-06-08"
related:
  mode: channels
  path: data/weekly.csv
`)

	v, err := LoadVariant(path)
	require.NoError(t, err)

	assert.Equal(t, 5, v.DefaultSelectionSize)
	assert.Equal(t, 10, v.TopOverallSize)
	assert.Equal(t, 3, v.Related.PerBrand)
	// the weekly schema defaults to overlap semantics
	assert.Equal(t, string(related.WindowOverlap), v.Related.WindowStrategy)

	w, err := v.DisplayWindow()
	require.NoError(t, err)
	assert.True(t, w.End.After(w.Start))
}

func TestLoadVariantMentionsMode(t *testing.T) {
	path := writeVariant(t, `
name: forum
primary: data/counts.csv
window:
  start: "2025-06-02"
  end: "2025-06-08"
related:
  mode: mentions
  path: data/daily.csv
  weight_column: mentions
  entity_column: top_subreddits
`)

	v, err := LoadVariant(path)
	require.NoError(t, err)
	assert.Equal(t, string(related.WindowContain), v.Related.WindowStrategy)
}

func TestLoadVariantWindowEndBeforeStart(t *testing.T) {
	path := writeVariant(t, `
name: bad
primary: data/counts.csv
window:
  start: "2025-06-08"
  end: "2025-06-02"
`)

	_, err := LoadVariant(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before start")
}

func TestLoadVariantUnknownMode(t *testing.T) {
	path := writeVariant(t, `
name: bad
primary: data/counts.csv
window:
  start: "2025-06-02"
  end: "2025-06-08"
related:
  mode: telepathy
  path: data/x.csv
`)

	_, err := LoadVariant(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown related mode")
}

func TestLoadVariantMentionsModeRequiresColumns(t *testing.T) {
	path := writeVariant(t, `
name: bad
primary: data/counts.csv
window:
  start: "2025-06-02"
  end: "2025-06-08"
related:
  mode: mentions
  path: data/daily.csv
`)

	_, err := LoadVariant(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight_column")
}

func TestLoadVariantUnknownStrategy(t *testing.T) {
	path := writeVariant(t, `
name: bad
primary: data/counts.csv
window:
  start: "2025-06-02"
  end: "2025-06-08"
related:
  mode: channels
  path: data/weekly.csv
  window_strategy: sideways
`)

	_, err := LoadVariant(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window strategy")
}

func TestLoadVariantMissingPrimary(t *testing.T) {
	path := writeVariant(t, `
name: bad
window:
  start: "2025-06-02"
  end: "2025-06-08"
`)

	_, err := LoadVariant(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary")
}
