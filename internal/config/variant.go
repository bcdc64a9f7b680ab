package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"brandpulse/internal/domain/mention"
	"brandpulse/internal/domain/related"
)

// Related-source modes. A variant either joins the simple weighted-list
// schema (mentions), the weekly multi-metric schema (channels), or no
// secondary file at all.
const (
	RelatedModeNone     = ""
	RelatedModeMentions = "mentions"
	RelatedModeChannels = "channels"
)

// Variant describes one deployed report: which files feed it, the
// display window, and how wide its rankings are. The upstream scripts
// hard-coded these per copy; here they are data.
type Variant struct {
	Name                 string        `yaml:"name"`
	Primary              string        `yaml:"primary"`
	Related              RelatedSource `yaml:"related"`
	Window               WindowBounds  `yaml:"window"`
	DefaultSelectionSize int           `yaml:"default_selection_size"`
	TopOverallSize       int           `yaml:"top_overall_size"`
}

// RelatedSource configures the optional secondary file.
type RelatedSource struct {
	Mode           string `yaml:"mode"`
	Path           string `yaml:"path"`
	WeightColumn   string `yaml:"weight_column"`
	EntityColumn   string `yaml:"entity_column"`
	WindowStrategy string `yaml:"window_strategy"`
	PerBrand       int    `yaml:"per_brand"`
}

// WindowBounds holds the literal calendar dates of the display window.
type WindowBounds struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// LoadVariant reads and validates a report variant from a YAML file.
func LoadVariant(path string) (*Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read variant file %s: %w", path, err)
	}

	var v Variant
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to parse variant file %s: %w", path, err)
	}

	v.applyDefaults()
	if err := v.validate(); err != nil {
		return nil, fmt.Errorf("invalid variant %s: %w", path, err)
	}
	return &v, nil
}

func (v *Variant) applyDefaults() {
	if v.DefaultSelectionSize == 0 {
		v.DefaultSelectionSize = 5
	}
	if v.TopOverallSize == 0 {
		v.TopOverallSize = 10
	}
	if v.Related.PerBrand == 0 {
		v.Related.PerBrand = 3
	}
	if v.Related.WindowStrategy == "" {
		// The two schemas historically disagreed on window semantics;
		// default to each schema's observed behavior but keep the
		// strategy overridable.
		switch v.Related.Mode {
		case RelatedModeMentions:
			v.Related.WindowStrategy = string(related.WindowContain)
		case RelatedModeChannels:
			v.Related.WindowStrategy = string(related.WindowOverlap)
		}
	}
}

func (v *Variant) validate() error {
	if v.Primary == "" {
		return fmt.Errorf("primary file path is required")
	}
	if _, err := v.DisplayWindow(); err != nil {
		return err
	}
	switch v.Related.Mode {
	case RelatedModeNone:
	case RelatedModeMentions:
		if v.Related.WeightColumn == "" || v.Related.EntityColumn == "" {
			return fmt.Errorf("related mode %q requires weight_column and entity_column", v.Related.Mode)
		}
	case RelatedModeChannels:
	default:
		return fmt.Errorf("unknown related mode %q", v.Related.Mode)
	}
	if v.Related.Mode != RelatedModeNone {
		if v.Related.Path == "" {
			return fmt.Errorf("related mode %q requires a path", v.Related.Mode)
		}
		switch related.WindowStrategy(v.Related.WindowStrategy) {
		case related.WindowContain, related.WindowOverlap:
		default:
			return fmt.Errorf("unknown window strategy %q", v.Related.WindowStrategy)
		}
	}
	if v.DefaultSelectionSize < 0 || v.TopOverallSize < 0 || v.Related.PerBrand < 0 {
		return fmt.Errorf("ranking sizes must be positive")
	}
	return nil
}

// DisplayWindow parses the window bounds into an inclusive date range.
func (v *Variant) DisplayWindow() (mention.Window, error) {
	start, err := time.Parse("2006-01-02", v.Window.Start)
	if err != nil {
		return mention.Window{}, fmt.Errorf("invalid window start %q: %w", v.Window.Start, err)
	}
	end, err := time.Parse("2006-01-02", v.Window.End)
	if err != nil {
		return mention.Window{}, fmt.Errorf("invalid window end %q: %w", v.Window.End, err)
	}
	if end.Before(start) {
		return mention.Window{}, fmt.Errorf("window end %s before start %s", v.Window.End, v.Window.Start)
	}
	return mention.Window{Start: start, End: end}, nil
}
