package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brandpulse/internal/domain/mention"
	"brandpulse/internal/service/report"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func count(v int) mention.Count {
	return mention.Count{Value: v, Valid: true}
}

func testReporter() mention.Reporter {
	table := &mention.Table{
		Brands: []string{"acme", "globex"},
		Days: []mention.Day{
			{Date: day("2025-06-02"), Counts: map[string]mention.Count{
				"acme": count(10), "globex": count(4),
			}},
			{Date: day("2025-06-03"), Counts: map[string]mention.Count{
				"acme": count(5), "globex": count(3),
			}},
		},
	}
	return report.NewService(table, report.Config{
		Window:               mention.Window{Start: day("2025-06-02"), End: day("2025-06-03")},
		DefaultSelectionSize: 5,
		TopOverallSize:       10,
	})
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetBrands(t *testing.T) {
	h := NewReportHandler(testReporter())

	rec := httptest.NewRecorder()
	h.GetBrands(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report/brands", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.NotEmpty(t, body["cycle_id"])
	assert.Len(t, body["default_selection"], 2)
}

func TestGetSeriesDefaultSelection(t *testing.T) {
	h := NewReportHandler(testReporter())

	rec := httptest.NewRecorder()
	h.GetSeries(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report/series", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "x-unified", body["hover_mode"])
	assert.Len(t, body["series"], 2)
}

func TestGetSeriesUnknownBrand(t *testing.T) {
	h := NewReportHandler(testReporter())

	rec := httptest.NewRecorder()
	h.GetSeries(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report/series?brands=hooli", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSeriesEmptySelection(t *testing.T) {
	h := NewReportHandler(testReporter())

	rec := httptest.NewRecorder()
	h.GetSeries(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report/series?brands=", nil))

	// a valid terminal state, not an error
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, statusEmptySelection, body["status"])
}

func TestGetTable(t *testing.T) {
	h := NewReportHandler(testReporter())

	rec := httptest.NewRecorder()
	h.GetTable(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report/table?brands=globex", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	rows, ok := body["rows"].([]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 2)
}

func TestGetTopOverall(t *testing.T) {
	h := NewReportHandler(testReporter())

	rec := httptest.NewRecorder()
	h.GetTopOverall(rec, httptest.NewRequest(http.MethodGet, "/api/v1/report/top10", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Len(t, body["brands"], 2)
	assert.NotEmpty(t, body["window_totals"])
}
