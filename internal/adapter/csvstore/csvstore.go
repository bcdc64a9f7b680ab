// Package csvstore reads the pre-aggregated mention CSVs the upstream
// collectors produce. It is the only layer that touches the filesystem;
// everything above it works on in-memory tables.
package csvstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ErrMissingColumns is reported when a secondary file is present but
// lacks required columns. Callers downgrade it to an informational
// message rather than failing the report.
var ErrMissingColumns = errors.New("missing required columns")

const dateLayout = "2006-01-02"

// parseDate parses an ISO-8601 calendar date. The caller decides whether
// a failure is fatal (primary date column) or not.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// parseCount coerces a count cell to an integer. Files sometimes carry
// counts as floats or quoted strings; anything non-numeric is reported
// as not ok and the caller treats it as missing or zero.
func parseCount(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f), true
	}
	return 0, false
}

// splitEntities splits a `;`-delimited entity list, trimming whitespace
// per element and dropping empties. An empty input yields no entities.
func splitEntities(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	entities := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			entities = append(entities, p)
		}
	}
	return entities
}

// resolvePath returns the first existing candidate: the configured path,
// then the same relative path one directory up. Collector runs sometimes
// leave the weekly summary next to the data directory instead of inside
// it.
func resolvePath(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	alt := filepath.Join("..", path)
	if _, err := os.Stat(alt); err == nil {
		return alt, nil
	}
	return "", fmt.Errorf("file not found at %s or %s", path, alt)
}

// columnIndex maps wanted column names to their positions in the header.
// Missing wanted columns are reported together in one error.
func columnIndex(header []string, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, c := range required {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return idx, nil
}

// field returns row[i] when the row is long enough, else "".
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
