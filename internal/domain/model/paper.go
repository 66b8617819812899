// Package model defines the core domain entities for the print service.
package model

// PaperSize is a physical sheet size in millimeters.
//
// @Description Physical paper size
type PaperSize struct {
	Name     string  `json:"name" example:"A4"`
	WidthMM  float64 `json:"width_mm" example:"210"`
	HeightMM float64 `json:"height_mm" example:"297"`
}

var (
	// PaperA4 is the ISO A4 sheet.
	PaperA4 = PaperSize{Name: "A4", WidthMM: 210, HeightMM: 297}
	// PaperLetter is the US Letter sheet.
	PaperLetter = PaperSize{Name: "Letter", WidthMM: 216, HeightMM: 279}
)

// DefaultPapers returns the paper catalog keyed by name.
func DefaultPapers() map[string]PaperSize {
	return map[string]PaperSize{
		PaperA4.Name:     PaperA4,
		PaperLetter.Name: PaperLetter,
	}
}
