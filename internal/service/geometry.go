package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/guttosm/print-orders/internal/domain/model"
)

// ParseMargins parses a 4-sided margin string ("top right bottom left").
// Each token must be "0" or a millimeter value; anything other than exactly
// four tokens is a ConfigurationError.
func ParseMargins(s string) (model.Margins, error) {
	tokens := strings.Fields(s)
	if len(tokens) != 4 {
		return model.Margins{}, model.NewConfigurationError("margins", s,
			"expected 4 space-separated values, got "+strconv.Itoa(len(tokens)))
	}

	var values [4]float64
	for i, tok := range tokens {
		d, err := model.ParseDimension(tok)
		if err != nil {
			return model.Margins{}, model.NewConfigurationError("margins", s, "invalid value "+strconv.Quote(tok))
		}
		if d.Unit != model.UnitMM {
			return model.Margins{}, model.NewConfigurationError("margins", s, "values must be in mm, got "+strconv.Quote(tok))
		}
		values[i] = d.Value
	}

	return model.Margins{Top: values[0], Right: values[1], Bottom: values[2], Left: values[3]}, nil
}

// ResolveLayout converts a LayoutDefinition into absolute measurements for
// paper. Page margins are always validated, even when no percentage needs them,
// and must leave a printable area on the paper.
// A percentage height becomes pct/100 of the paper height minus the top and
// bottom margins; absolute heights pass through unchanged.
func ResolveLayout(def model.LayoutDefinition, paper model.PaperSize) (model.ResolvedLayout, error) {
	if def.SlotsPerPage < 1 {
		return model.ResolvedLayout{}, model.NewConfigurationError("per_page", strconv.Itoa(def.SlotsPerPage), "must be at least 1")
	}
	if paper.WidthMM <= 0 || paper.HeightMM <= 0 {
		return model.ResolvedLayout{}, model.NewConfigurationError("paper", paper.Name, "dimensions must be positive")
	}

	margins, err := ParseMargins(def.PageMargins)
	if err != nil {
		return model.ResolvedLayout{}, err
	}
	if paper.HeightMM-margins.Top-margins.Bottom <= 0 || paper.WidthMM-margins.Left-margins.Right <= 0 {
		return model.ResolvedLayout{}, model.NewConfigurationError("margins", def.PageMargins,
			"margins leave no printable area on "+paper.Name)
	}

	width, err := parseField("width", def.CellWidth)
	if err != nil {
		return model.ResolvedLayout{}, err
	}
	height, err := parseField("height", def.CellHeight)
	if err != nil {
		return model.ResolvedLayout{}, err
	}

	resolved := model.ResolvedLayout{
		Definition:   def,
		Paper:        paper,
		SlotsPerPage: def.SlotsPerPage,
		PageMargins:  margins,
		CellMargin:   def.CellMargin,
		CellWidth:    width,
		CellHeight:   height,
	}

	switch width.Unit {
	case model.UnitPercent:
		resolved.CellWidthMM = width.Value / 100 * (paper.WidthMM - margins.Left - margins.Right)
	case model.UnitMM:
		resolved.CellWidthMM = width.Value
	}

	if height.IsPercent() {
		resolved.CellHeight = model.MM(height.Value / 100 * (paper.HeightMM - margins.Top - margins.Bottom))
	}

	return resolved, nil
}

// parseField parses a dimension and reports failures against the named layout field.
func parseField(field, value string) (model.Dimension, error) {
	d, err := model.ParseDimension(value)
	if err != nil {
		var cfgErr *model.ConfigurationError
		if errors.As(err, &cfgErr) {
			return model.Dimension{}, model.NewConfigurationError(field, value, cfgErr.Reason)
		}
		return model.Dimension{}, err
	}
	return d, nil
}
