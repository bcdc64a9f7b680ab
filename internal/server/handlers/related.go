package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"brandpulse/internal/domain/mention"
	relatedDomain "brandpulse/internal/domain/related"
	"brandpulse/internal/service/report"
)

// RelatedSources holds the optional secondary rankers. A nil ranker
// means its file was missing or unreadable at startup; the hint explains
// how to produce it. Either source can be absent without affecting the
// other or the primary report.
type RelatedSources struct {
	Mentions     relatedDomain.MentionRanker
	MentionsHint string
	Channels     relatedDomain.ChannelRanker
	ChannelsHint string
}

// RelatedHandler handles related-entity HTTP requests
type RelatedHandler struct {
	reporter mention.Reporter
	sources  RelatedSources
}

// NewRelatedHandler creates a new related-entity handler
func NewRelatedHandler(reporter mention.Reporter, sources RelatedSources) *RelatedHandler {
	return &RelatedHandler{reporter: reporter, sources: sources}
}

type entityResponse struct {
	CycleID string                       `json:"cycle_id"`
	Window  windowPayload                `json:"window"`
	Rows    []relatedDomain.EntityWeight `json:"rows"`
}

type channelsResponse struct {
	CycleID    string                       `json:"cycle_id"`
	Window     windowPayload                `json:"window"`
	Reach      []relatedDomain.ChannelStats `json:"reach"`
	Engagement []relatedDomain.ChannelStats `json:"engagement"`
}

// GetMentions returns the top related entities per selected brand by
// shared mention weight.
func (h *RelatedHandler) GetMentions(w http.ResponseWriter, r *http.Request) {
	if h.sources.Mentions == nil {
		respondWithJSON(w, http.StatusOK, infoResponse{
			CycleID: uuid.NewString(),
			Status:  statusUnavailable,
			Message: h.sources.MentionsHint,
		})
		return
	}

	selection, ok := h.selection(w, r)
	if !ok {
		return
	}

	rows, err := h.sources.Mentions.TopEntities(selection)
	if err != nil {
		if errors.Is(err, relatedDomain.ErrNoRows) {
			respondWithJSON(w, http.StatusOK, infoResponse{
				CycleID: uuid.NewString(),
				Status:  statusEmpty,
				Message: "No related-entity data for the selected window and brands.",
			})
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Failed to rank related entities", err)
		return
	}

	respondWithJSON(w, http.StatusOK, entityResponse{
		CycleID: uuid.NewString(),
		Window:  newWindowPayload(h.reporter.Window()),
		Rows:    rows,
	})
}

// GetChannels returns the top channels per selected brand by reach and
// by engagement, both sliced from the same aggregated base.
func (h *RelatedHandler) GetChannels(w http.ResponseWriter, r *http.Request) {
	if h.sources.Channels == nil {
		respondWithJSON(w, http.StatusOK, infoResponse{
			CycleID: uuid.NewString(),
			Status:  statusUnavailable,
			Message: h.sources.ChannelsHint,
		})
		return
	}

	selection, ok := h.selection(w, r)
	if !ok {
		return
	}

	reach, err := h.sources.Channels.TopByReach(selection)
	if err != nil {
		h.respondChannelsEmpty(w, err)
		return
	}
	engagement, err := h.sources.Channels.TopByEngagement(selection)
	if err != nil {
		h.respondChannelsEmpty(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, channelsResponse{
		CycleID:    uuid.NewString(),
		Window:     newWindowPayload(h.reporter.Window()),
		Reach:      reach,
		Engagement: engagement,
	})
}

// respondChannelsEmpty reports what the weekly file does cover, so the
// user can adjust the window or selection.
func (h *RelatedHandler) respondChannelsEmpty(w http.ResponseWriter, err error) {
	if !errors.Is(err, relatedDomain.ErrNoRows) {
		respondWithError(w, http.StatusInternalServerError, "Failed to rank channels", err)
		return
	}

	avail := h.sources.Channels.Availability()
	if avail.From.IsZero() {
		// loaded but empty: there is no range to point the user at
		respondWithJSON(w, http.StatusOK, infoResponse{
			CycleID: uuid.NewString(),
			Status:  statusEmpty,
			Message: "The weekly channel summary contains no data rows.",
		})
		return
	}
	respondWithJSON(w, http.StatusOK, infoResponse{
		CycleID: uuid.NewString(),
		Status:  statusEmpty,
		Message: fmt.Sprintf(
			"No weekly channel data after filtering. Available weeks: %s to %s.",
			dateOnly(avail.From), dateOnly(avail.To),
		),
		Detail: avail,
	})
}

func (h *RelatedHandler) selection(w http.ResponseWriter, r *http.Request) ([]string, bool) {
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
			Message: "Select at least one brand to rank related entities.",
		})
		return nil, false
	}
	return selection, true
}
