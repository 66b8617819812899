package model

import (
	"math"
	"strconv"
	"strings"
)

// Unit is the unit of a layout Dimension.
type Unit string

const (
	UnitPercent Unit = "%"
	UnitMM      Unit = "mm"
	UnitPX      Unit = "px"
)

// Dimension is a single measurement such as "50%", "100px" or "99.1mm".
type Dimension struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// ParseDimension parses a CSS-like measurement. A bare number (including "0")
// is read as millimeters.
func ParseDimension(s string) (Dimension, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Dimension{}, NewConfigurationError("dimension", s, "empty value")
	}

	unit := UnitMM
	number := raw
	for _, u := range []Unit{UnitPercent, UnitMM, UnitPX} {
		if strings.HasSuffix(raw, string(u)) {
			unit = u
			number = strings.TrimSpace(strings.TrimSuffix(raw, string(u)))
			break
		}
	}

	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Dimension{}, NewConfigurationError("dimension", s, "not a number with unit %, mm or px")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Dimension{}, NewConfigurationError("dimension", s, "must be a finite number")
	}
	if v < 0 {
		return Dimension{}, NewConfigurationError("dimension", s, "must not be negative")
	}
	return Dimension{Value: v, Unit: unit}, nil
}

// MM returns a millimeter Dimension.
func MM(v float64) Dimension {
	return Dimension{Value: v, Unit: UnitMM}
}

// IsPercent reports whether d is relative to the printable area.
func (d Dimension) IsPercent() bool {
	return d.Unit == UnitPercent
}

func (d Dimension) String() string {
	return strconv.FormatFloat(d.Value, 'f', -1, 64) + string(d.Unit)
}

// Margins holds a 4-sided margin in millimeters.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// String renders the margins in CSS shorthand order.
func (m Margins) String() string {
	parts := []float64{m.Top, m.Right, m.Bottom, m.Left}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = strconv.FormatFloat(p, 'f', -1, 64) + "mm"
	}
	return strings.Join(out, " ")
}

// LayoutDefinition is a declarative label layout, before geometry resolution.
//
// @Description Declarative label layout
type LayoutDefinition struct {
	Name         string `json:"name" bson:"name" example:"2x2"`
	Paper        string `json:"paper" bson:"paper" example:"A4"`
	SlotsPerPage int    `json:"per_page" bson:"per_page" example:"4"`
	PageMargins  string `json:"page_margins" bson:"page_margins" example:"10mm 10mm 10mm 10mm"`
	CellWidth    string `json:"width" bson:"width" example:"50%"`
	CellHeight   string `json:"height" bson:"height" example:"50%"`
	CellMargin   string `json:"item_margin" bson:"item_margin" example:"0 0 0 0"`
}

// DefaultLayout holds the values a registered layout inherits for any field it leaves empty.
var DefaultLayout = LayoutDefinition{
	Name:         "custom",
	Paper:        PaperA4.Name,
	SlotsPerPage: 10,
	PageMargins:  "0 0 0 0",
	CellWidth:    "50%",
	CellHeight:   "100px",
	CellMargin:   "0 0 0 0",
}

// WithDefaults fills empty fields from DefaultLayout.
func (d LayoutDefinition) WithDefaults() LayoutDefinition {
	if d.Name == "" {
		d.Name = DefaultLayout.Name
	}
	if d.Paper == "" {
		d.Paper = DefaultLayout.Paper
	}
	if d.SlotsPerPage == 0 {
		d.SlotsPerPage = DefaultLayout.SlotsPerPage
	}
	if d.PageMargins == "" {
		d.PageMargins = DefaultLayout.PageMargins
	}
	if d.CellWidth == "" {
		d.CellWidth = DefaultLayout.CellWidth
	}
	if d.CellHeight == "" {
		d.CellHeight = DefaultLayout.CellHeight
	}
	if d.CellMargin == "" {
		d.CellMargin = DefaultLayout.CellMargin
	}
	return d
}

// LayoutGroup is a named family of layouts, e.g. "Simples" or a sticker brand.
type LayoutGroup struct {
	Slug  string                      `json:"slug"`
	Name  string                      `json:"name"`
	Items map[string]LayoutDefinition `json:"items"`
	// Order keeps item slugs in registration order.
	Order []string `json:"order"`
}

// ResolvedLayout is a LayoutDefinition with its measurements converted to
// millimeters for one paper size.
//
// @Description Layout geometry resolved against a paper size
type ResolvedLayout struct {
	Group        string           `json:"group"`
	Item         string           `json:"item"`
	Definition   LayoutDefinition `json:"definition"`
	Paper        PaperSize        `json:"paper"`
	SlotsPerPage int              `json:"per_page"`
	PageMargins  Margins          `json:"page_margins"`
	CellMargin   string           `json:"item_margin"`
	// CellWidth is kept as declared; CellWidthMM is its millimeter value when
	// it can be derived (percent or mm), zero for pixel widths.
	CellWidth   Dimension `json:"cell_width"`
	CellWidthMM float64   `json:"cell_width_mm"`
	// CellHeight is in millimeters when declared as a percentage, unchanged otherwise.
	CellHeight Dimension `json:"cell_height"`
}

// Columns returns how many cells fit side by side, at least 1.
func (r ResolvedLayout) Columns() int {
	if r.CellWidthMM <= 0 {
		return 1
	}
	printable := r.Paper.WidthMM - r.PageMargins.Left - r.PageMargins.Right
	cols := int(printable/r.CellWidthMM + 1e-9)
	if cols < 1 {
		return 1
	}
	return cols
}
