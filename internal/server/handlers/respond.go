package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"brandpulse/internal/domain/mention"
)

// Status values for informational (non-error) payloads.
const (
	statusEmptySelection = "empty_selection"
	statusEmpty          = "empty"
	statusUnavailable    = "unavailable"
)

// windowPayload renders the display window as calendar dates.
type windowPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func newWindowPayload(w mention.Window) windowPayload {
	return windowPayload{
		Start: w.Start.Format("2006-01-02"),
		End:   w.End.Format("2006-01-02"),
	}
}

// infoResponse is the degraded/empty-state payload: a message instead of
// tables, never an HTTP error.
type infoResponse struct {
	CycleID string      `json:"cycle_id"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

// parseSelection resolves the brands query parameter against the
// reporter. An absent parameter means the default selection; a present
// but empty one is the valid empty-selection state.
func parseSelection(r *http.Request, reporter mention.Reporter) ([]string, error) {
	values, ok := r.URL.Query()["brands"]
	if !ok {
		return reporter.DefaultSelection(), nil
	}

	var selection []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				selection = append(selection, part)
			}
		}
	}
	if err := reporter.ValidateSelection(selection); err != nil {
		return nil, err
	}
	return selection, nil
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	response := map[string]string{"error": message}

	if err != nil && code >= 500 {
		log.Error().Err(err).Int("code", code).Msg(message)
	}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}

// dateOnly formats a timestamp as its calendar date.
func dateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}
