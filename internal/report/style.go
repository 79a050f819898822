package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StylePolicy holds the cosmetic rules applied to every sheet. It is built
// once per run and never mutated after Render starts.
type StylePolicy struct {
	// HeaderColors maps sheet names to header fill colors (RGB hex,
	// no leading #). Sheets without an entry use HeaderColor.
	HeaderColors map[string]string `yaml:"header_colors"`

	// HeaderColor is the fallback header fill.
	HeaderColor string `yaml:"header_color"`

	// BandColor is the fill for every second data row.
	BandColor string `yaml:"band_color"`

	// WidthMargin is added to the measured maximum cell width of a column.
	WidthMargin float64 `yaml:"width_margin"`

	// MaxWidth caps computed column widths. Cell values are never
	// truncated; the cap is purely cosmetic.
	MaxWidth float64 `yaml:"max_width"`

	// FreezeHeader keeps the header row and first column visible.
	FreezeHeader bool `yaml:"freeze_header"`
}

// DefaultStyle returns the standard catalog look: blue header, light gray
// banding, widths capped at 60.
func DefaultStyle() *StylePolicy {
	return &StylePolicy{
		HeaderColor:  "4472C4",
		BandColor:    "F2F2F2",
		WidthMargin:  3,
		MaxWidth:     60,
		FreezeHeader: true,
	}
}

// headerColorFor resolves the header fill for a sheet.
func (p *StylePolicy) headerColorFor(sheet string) string {
	if c, ok := p.HeaderColors[sheet]; ok && c != "" {
		return c
	}
	if p.HeaderColor != "" {
		return p.HeaderColor
	}
	return "4472C4"
}

// LoadStyleFile reads a YAML style file and merges it over base. Only the
// fields present in the file override; base is not modified.
func LoadStyleFile(path string, base *StylePolicy) (*StylePolicy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read style file %s: %w", path, err)
	}

	// FreezeHeader needs a pointer to tell "absent" from "false".
	var over struct {
		HeaderColors map[string]string `yaml:"header_colors"`
		HeaderColor  string            `yaml:"header_color"`
		BandColor    string            `yaml:"band_color"`
		WidthMargin  float64           `yaml:"width_margin"`
		MaxWidth     float64           `yaml:"max_width"`
		FreezeHeader *bool             `yaml:"freeze_header"`
	}
	if err := yaml.Unmarshal(data, &over); err != nil {
		return nil, fmt.Errorf("could not parse style file %s: %w", path, err)
	}

	merged := *base
	if over.HeaderColor != "" {
		merged.HeaderColor = over.HeaderColor
	}
	if over.BandColor != "" {
		merged.BandColor = over.BandColor
	}
	if over.WidthMargin > 0 {
		merged.WidthMargin = over.WidthMargin
	}
	if over.MaxWidth > 0 {
		merged.MaxWidth = over.MaxWidth
	}
	if len(over.HeaderColors) > 0 {
		colors := make(map[string]string, len(base.HeaderColors)+len(over.HeaderColors))
		for k, v := range base.HeaderColors {
			colors[k] = v
		}
		for k, v := range over.HeaderColors {
			colors[k] = v
		}
		merged.HeaderColors = colors
	}
	if over.FreezeHeader != nil {
		merged.FreezeHeader = *over.FreezeHeader
	}

	return &merged, nil
}
