package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"brandpulse/internal/app"
	relatedDomain "brandpulse/internal/domain/related"
	"brandpulse/internal/output"
)

type stubChannelRanker struct {
	reach         []relatedDomain.ChannelStats
	reachErr      error
	engagement    []relatedDomain.ChannelStats
	engagementErr error
	avail         relatedDomain.Availability
}

func (s *stubChannelRanker) TopByReach(selection []string) ([]relatedDomain.ChannelStats, error) {
	return s.reach, s.reachErr
}

func (s *stubChannelRanker) TopByEngagement(selection []string) ([]relatedDomain.ChannelStats, error) {
	return s.engagement, s.engagementErr
}

func (s *stubChannelRanker) Availability() relatedDomain.Availability {
	return s.avail
}

func TestOutputRelatedChannelsEngagementError(t *testing.T) {
	var buf bytes.Buffer
	printer := output.NewPrinterWithWriter(&buf, false)
	pipeline := &app.Pipeline{Channels: &stubChannelRanker{
		reach:         []relatedDomain.ChannelStats{{Brand: "acme", Channel: "chanA"}},
		engagementErr: errors.New("ranking failed"),
	}}

	outputRelatedChannels(printer, pipeline, []string{"acme"})

	assert.Contains(t, buf.String(), "ranking failed")
}

func TestOutputRelatedChannelsEmptyFile(t *testing.T) {
	var buf bytes.Buffer
	printer := output.NewPrinterWithWriter(&buf, false)
	pipeline := &app.Pipeline{Channels: &stubChannelRanker{
		reachErr: relatedDomain.ErrNoRows,
	}}

	outputRelatedChannels(printer, pipeline, []string{"acme"})

	out := buf.String()
	assert.Contains(t, out, "no data rows")
	assert.NotContains(t, out, "0001-01-01")
}

func TestOutputRelatedChannelsHintWhenMissing(t *testing.T) {
	var buf bytes.Buffer
	printer := output.NewPrinterWithWriter(&buf, false)
	pipeline := &app.Pipeline{ChannelsHint: "Run the collector first."}

	outputRelatedChannels(printer, pipeline, []string{"acme"})

	assert.Contains(t, buf.String(), "collector")
}
