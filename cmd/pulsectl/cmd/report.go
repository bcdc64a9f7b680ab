package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"brandpulse/internal/app"
	"brandpulse/internal/domain/mention"
	relatedDomain "brandpulse/internal/domain/related"
	"brandpulse/internal/output"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render the brand mention report",
	Long: `Render the configured report variant as terminal tables: daily
mentions per selected brand, top related entities, and optionally the
top-10 brands over the entire dataset.

Examples:
  pulsectl report                       # default selection (top 5 by window total)
  pulsectl report --brands acme,globex  # explicit selection
  pulsectl report --top10               # include the top-10-overall view
  pulsectl report --json                # output as JSON`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("brands", "", "comma-separated brand selection (default: top 5 by window total)")
	reportCmd.Flags().Bool("top10", false, "include top-10 brands over the entire dataset")
	reportCmd.Flags().Bool("json", false, "output as JSON")
}

func runReport(cmd *cobra.Command, args []string) error {
	pipeline, err := app.Build(variantPath)
	if err != nil {
		return err
	}

	brandsFlag, _ := cmd.Flags().GetString("brands")
	showTop10, _ := cmd.Flags().GetBool("top10")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	selection, err := resolveSelection(pipeline, cmd.Flags().Changed("brands"), brandsFlag)
	if err != nil {
		return err
	}

	if jsonOutput {
		return outputReportJSON(pipeline, selection, showTop10)
	}

	printer := output.NewPrinter(!noColor)
	outputReport(printer, pipeline, selection, showTop10)
	return nil
}

func resolveSelection(pipeline *app.Pipeline, explicit bool, brandsFlag string) ([]string, error) {
	if !explicit {
		return pipeline.Reporter.DefaultSelection(), nil
	}
	var selection []string
	for _, part := range strings.Split(brandsFlag, ",") {
		if part = strings.TrimSpace(part); part != "" {
			selection = append(selection, part)
		}
	}
	if err := pipeline.Reporter.ValidateSelection(selection); err != nil {
		return nil, err
	}
	return selection, nil
}

func outputReport(printer *output.Printer, pipeline *app.Pipeline, selection []string, showTop10 bool) {
	window := pipeline.Window
	printer.Heading("%s: daily brand mentions, %s to %s",
		pipeline.Variant.Name,
		window.Start.Format("2006-01-02"),
		window.End.Format("2006-01-02"),
	)
	printer.Blank()

	if len(selection) == 0 {
		printer.Info("Select at least one brand to display the report.")
		return
	}

	table := output.NewTable([]string{"Date", "Brand", "Mentions"})
	for _, row := range pipeline.Reporter.Reshape(selection) {
		table.AddRow([]string{
			row.Date.Format("2006-01-02"),
			row.Brand,
			strconv.Itoa(row.Mentions),
		})
	}
	table.Render()
	printer.Blank()

	outputRelatedMentions(printer, pipeline, selection)
	outputRelatedChannels(printer, pipeline, selection)

	if showTop10 {
		outputTopOverall(printer, pipeline)
	}
}

func outputRelatedMentions(printer *output.Printer, pipeline *app.Pipeline, selection []string) {
	if pipeline.Mentions == nil {
		if pipeline.MentionsHint != "" {
			printer.Info(pipeline.MentionsHint)
			printer.Blank()
		}
		return
	}

	printer.Heading("Top related entities for selected brands")
	rows, err := pipeline.Mentions.TopEntities(selection)
	if err != nil {
		if errors.Is(err, relatedDomain.ErrNoRows) {
			printer.Info("No related-entity data for the selected window and brands.")
		} else {
			printer.Info("Could not rank related entities: %v", err)
		}
		printer.Blank()
		return
	}

	table := output.NewTable([]string{"Brand", "Entity", "Weight"})
	for _, row := range rows {
		table.AddRow([]string{row.Brand, row.Entity, strconv.Itoa(row.Weight)})
	}
	table.Render()
	printer.Blank()
}

func outputRelatedChannels(printer *output.Printer, pipeline *app.Pipeline, selection []string) {
	if pipeline.Channels == nil {
		if pipeline.ChannelsHint != "" {
			printer.Info(pipeline.ChannelsHint)
			printer.Blank()
		}
		return
	}

	reach, err := pipeline.Channels.TopByReach(selection)
	if err != nil {
		if errors.Is(err, relatedDomain.ErrNoRows) {
			avail := pipeline.Channels.Availability()
			if avail.From.IsZero() {
				printer.Info("The weekly channel summary contains no data rows.")
			} else {
				printer.Info("No weekly channel data after filtering. Available weeks: %s to %s. Brands present: %s.",
					avail.From.Format("2006-01-02"),
					avail.To.Format("2006-01-02"),
					strings.Join(avail.Brands, ", "),
				)
			}
		} else {
			printer.Info("Could not rank channels: %v", err)
		}
		printer.Blank()
		return
	}

	printer.Heading("Top channels for selected brands (by reach: subscribers)")
	outputChannelTable(reach)
	printer.Blank()

	engagement, err := pipeline.Channels.TopByEngagement(selection)
	if err != nil {
		printer.Info("Could not rank channels: %v", err)
		printer.Blank()
		return
	}
	printer.Heading("Top channels for selected brands (by engagement: views + likes + comments)")
	outputChannelTable(engagement)
	printer.Blank()
}

func outputChannelTable(stats []relatedDomain.ChannelStats) {
	table := output.NewTable([]string{"Brand", "Channel", "Subscribers", "Views", "Likes", "Comments", "Engagement"})
	for _, st := range stats {
		table.AddRow([]string{
			st.Brand,
			st.Channel,
			strconv.Itoa(st.Subscribers),
			strconv.Itoa(st.Views),
			strconv.Itoa(st.Likes),
			strconv.Itoa(st.Comments),
			strconv.Itoa(st.Engagement),
		})
	}
	table.Render()
}

func outputTopOverall(printer *output.Printer, pipeline *app.Pipeline) {
	top := pipeline.Reporter.TopOverall()
	if len(top.Brands) == 0 {
		printer.Info("No brands available to compute the top ranking.")
		return
	}

	printer.Heading("Window totals for top %d brands (ranked over entire dataset)", len(top.Brands))
	table := output.NewTable([]string{"Brand", "Window Mentions"})
	for _, bt := range top.WindowTotals {
		table.AddRow([]string{bt.Brand, strconv.Itoa(bt.Total)})
	}
	table.Render()
	printer.Blank()
}

func outputReportJSON(pipeline *app.Pipeline, selection []string, showTop10 bool) error {
	payload := struct {
		Variant   string              `json:"variant"`
		Window    mention.Window      `json:"window"`
		Selection []string            `json:"selection"`
		Rows      []mention.TidyRow   `json:"rows"`
		Top       *mention.TopOverall `json:"top_overall,omitempty"`
	}{
		Variant:   pipeline.Variant.Name,
		Window:    pipeline.Window,
		Selection: selection,
		Rows:      pipeline.Reporter.Reshape(selection),
	}
	if showTop10 {
		top := pipeline.Reporter.TopOverall()
		payload.Top = &top
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
