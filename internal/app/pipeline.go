// Package app wires a report variant into a runnable pipeline shared by
// the HTTP server and the CLI.
package app

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"brandpulse/internal/adapter/csvstore"
	"brandpulse/internal/config"
	"brandpulse/internal/domain/mention"
	relatedDomain "brandpulse/internal/domain/related"
	"brandpulse/internal/service/related"
	"brandpulse/internal/service/report"
)

// Pipeline is a fully wired report: the reporter over the primary table
// plus whichever secondary sources loaded. A nil ranker means its file
// was missing or unreadable; the matching hint says how to fix that.
type Pipeline struct {
	Variant      *config.Variant
	Window       mention.Window
	Reporter     *report.Service
	Mentions     relatedDomain.MentionRanker
	MentionsHint string
	Channels     relatedDomain.ChannelRanker
	ChannelsHint string
}

// Build loads the variant's input files and wires the pipeline. A
// primary-table failure is returned (the report cannot render without
// it); secondary failures degrade to hints and a warning log.
func Build(variantPath string) (*Pipeline, error) {
	variant, err := config.LoadVariant(variantPath)
	if err != nil {
		return nil, err
	}

	window, err := variant.DisplayWindow()
	if err != nil {
		return nil, err
	}

	table, err := csvstore.NewMentionStore(variant.Primary).Load()
	if err != nil {
		return nil, fmt.Errorf("loading primary counts: %w", err)
	}
	log.Info().
		Str("variant", variant.Name).
		Int("brands", len(table.Brands)).
		Int("days", len(table.Days)).
		Msg("Primary mention table loaded")

	p := &Pipeline{
		Variant: variant,
		Window:  window,
		Reporter: report.NewService(table, report.Config{
			Window:               window,
			DefaultSelectionSize: variant.DefaultSelectionSize,
			TopOverallSize:       variant.TopOverallSize,
		}),
	}
	p.loadRelated()
	return p, nil
}

func (p *Pipeline) loadRelated() {
	variant := p.Variant
	strategy := relatedDomain.WindowStrategy(variant.Related.WindowStrategy)

	switch variant.Related.Mode {
	case config.RelatedModeMentions:
		p.ChannelsHint = "This report variant has no weekly channel summary configured."

		store := csvstore.NewRelatedMentionStore(variant.Related.Path, csvstore.RelatedMentionStoreConfig{
			WeightColumn: variant.Related.WeightColumn,
			EntityColumn: variant.Related.EntityColumn,
		})
		records, err := store.Load()
		if err != nil {
			log.Warn().Err(err).Str("path", variant.Related.Path).Msg("Related mentions source unavailable")
			p.MentionsHint = fmt.Sprintf(
				"Could not read %s. Run the collector so it produces the related mentions file.",
				variant.Related.Path,
			)
			return
		}
		p.Mentions = related.NewMentionAggregator(records, related.MentionAggregatorConfig{
			Window:   p.Window,
			Strategy: strategy,
			PerBrand: variant.Related.PerBrand,
		})

	case config.RelatedModeChannels:
		p.MentionsHint = "This report variant has no related mentions file configured."

		rows, err := csvstore.NewChannelWeekStore(variant.Related.Path).Load()
		if err != nil {
			log.Warn().Err(err).Str("path", variant.Related.Path).Msg("Weekly channel summary unavailable")
			p.ChannelsHint = fmt.Sprintf(
				"Run the collector so it produces %q to show reach and engagement tables.",
				variant.Related.Path,
			)
			return
		}
		p.Channels = related.NewChannelAggregator(rows, related.ChannelAggregatorConfig{
			Window:   p.Window,
			Strategy: strategy,
			PerBrand: variant.Related.PerBrand,
		})

	default:
		p.MentionsHint = "This report variant has no related mentions file configured."
		p.ChannelsHint = "This report variant has no weekly channel summary configured."
	}
}
