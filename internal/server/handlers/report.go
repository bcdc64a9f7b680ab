package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"brandpulse/internal/domain/mention"
	"brandpulse/internal/service/report"
)

// ReportHandler handles primary report HTTP requests
type ReportHandler struct {
	reporter mention.Reporter
}

// NewReportHandler creates a new report handler
func NewReportHandler(reporter mention.Reporter) *ReportHandler {
	return &ReportHandler{reporter: reporter}
}

type brandsResponse struct {
	CycleID          string               `json:"cycle_id"`
	Window           windowPayload        `json:"window"`
	Brands           []string             `json:"brands"`
	Ranking          []mention.BrandTotal `json:"ranking"`
	DefaultSelection []string             `json:"default_selection"`
}

type chartResponse struct {
	CycleID   string           `json:"cycle_id"`
	Window    windowPayload    `json:"window"`
	XAxis     string           `json:"x_axis"`
	YAxis     string           `json:"y_axis"`
	HoverMode string           `json:"hover_mode"`
	Series    []mention.Series `json:"series"`
}

type tableResponse struct {
	CycleID string            `json:"cycle_id"`
	Window  windowPayload     `json:"window"`
	Rows    []mention.TidyRow `json:"rows"`
}

type topOverallResponse struct {
	CycleID      string               `json:"cycle_id"`
	Window       windowPayload        `json:"window"`
	Brands       []string             `json:"brands"`
	Chart        chartResponse        `json:"chart"`
	WindowTotals []mention.BrandTotal `json:"window_totals"`
}

// GetBrands returns the brand ranking over the display window and the
// default selection.
func (h *ReportHandler) GetBrands(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, brandsResponse{
		CycleID:          uuid.NewString(),
		Window:           newWindowPayload(h.reporter.Window()),
		Brands:           h.reporter.Brands(),
		Ranking:          h.reporter.RankBrands(),
		DefaultSelection: h.reporter.DefaultSelection(),
	})
}

// GetSeries returns the daily mention chart for the selected brands.
func (h *ReportHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	selection, ok := h.selection(w, r)
	if !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, chartResponse{
		CycleID:   uuid.NewString(),
		Window:    newWindowPayload(h.reporter.Window()),
		XAxis:     "date",
		YAxis:     "mentions",
		HoverMode: "x-unified",
		Series:    h.reporter.Series(selection),
	})
}

// GetTable returns the tidy rows for the selected brands, ordered brand
// then date.
func (h *ReportHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	selection, ok := h.selection(w, r)
	if !ok {
		return
	}

	respondWithJSON(w, http.StatusOK, tableResponse{
		CycleID: uuid.NewString(),
		Window:  newWindowPayload(h.reporter.Window()),
		Rows:    h.reporter.Reshape(selection),
	})
}

// GetTopOverall returns the optional top-10 view: brands ranked over the
// entire dataset, charted and totalled within the display window.
func (h *ReportHandler) GetTopOverall(w http.ResponseWriter, r *http.Request) {
	top := h.reporter.TopOverall()
	if len(top.Brands) == 0 {
		respondWithJSON(w, http.StatusOK, infoResponse{
			CycleID: uuid.NewString(),
			Status:  statusEmpty,
			Message: "No brands available to compute the top ranking.",
		})
		return
	}

	window := newWindowPayload(h.reporter.Window())
	respondWithJSON(w, http.StatusOK, topOverallResponse{
		CycleID: uuid.NewString(),
		Window:  window,
		Brands:  top.Brands,
		Chart: chartResponse{
			CycleID:   uuid.NewString(),
			Window:    window,
			XAxis:     "date",
			YAxis:     "mentions",
			HoverMode: "x-unified",
			Series:    top.Series,
		},
		WindowTotals: top.WindowTotals,
	})
}

// selection resolves and validates the brands parameter. It writes the
// response itself on validation failure or empty selection and reports
// whether the caller should continue.
func (h *ReportHandler) selection(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	selection, err := parseSelection(r, h.reporter)
	if err != nil {
		if errors.Is(err, report.ErrUnknownBrand) {
			respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to resolve selection", err)
		}
		return nil, false
	}
	if len(selection) == 0 {
		respondWithJSON(w, http.StatusOK, infoResponse{
			CycleID: uuid.NewString(),
			Status:  statusEmptySelection,
			Message: "Select at least one brand to display the report.",
		})
		return nil, false
	}
	return selection, true
}
