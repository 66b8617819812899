package service

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strconv"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/guttosm/print-orders/internal/metrics"
	"github.com/guttosm/print-orders/internal/service/cache"
)

// Barcode defaults printed under the recipient postal code.
const (
	DefaultBarcodeWidthFactor = 2
	DefaultBarcodeHeight      = 54
)

// BarcodeRenderer produces a PNG barcode for a postal code.
type BarcodeRenderer interface {
	Generate(postcode string) ([]byte, error)
	GenerateSized(postcode string, widthFactor, height int) ([]byte, error)
}

// BarcodeOption configures a BarcodeGenerator.
type BarcodeOption func(*BarcodeGenerator)

// BarcodeGenerator renders Code128 postal-code barcodes, optionally cached.
type BarcodeGenerator struct {
	widthFactor int
	height      int
	cache       cache.Cache
}

// NewBarcodeGenerator creates a generator with the default module width and height.
func NewBarcodeGenerator(opts ...BarcodeOption) *BarcodeGenerator {
	g := &BarcodeGenerator{
		widthFactor: DefaultBarcodeWidthFactor,
		height:      DefaultBarcodeHeight,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WithBarcodeSize sets the module width factor and bar height in pixels.
func WithBarcodeSize(widthFactor, height int) BarcodeOption {
	return func(g *BarcodeGenerator) {
		if widthFactor > 0 {
			g.widthFactor = widthFactor
		}
		if height > 0 {
			g.height = height
		}
	}
}

// WithBarcodeCache stores generated images in c.
func WithBarcodeCache(c cache.Cache) BarcodeOption {
	return func(g *BarcodeGenerator) {
		g.cache = c
	}
}

// BarcodeCacheKey is the cache key of one rendered barcode.
func BarcodeCacheKey(postcode string, widthFactor, height int) string {
	return postcode + "|" + strconv.Itoa(widthFactor) + "|" + strconv.Itoa(height)
}

// Generate returns the PNG barcode for postcode. An empty postcode yields
// (nil, nil): the label is printed without a barcode.
func (g *BarcodeGenerator) Generate(postcode string) ([]byte, error) {
	return g.GenerateSized(postcode, g.widthFactor, g.height)
}

// GenerateSized is Generate with an explicit module width and height.
// Non-positive values fall back to the generator's size.
func (g *BarcodeGenerator) GenerateSized(postcode string, widthFactor, height int) ([]byte, error) {
	postcode = strings.TrimSpace(postcode)
	if postcode == "" {
		return nil, nil
	}
	if widthFactor <= 0 {
		widthFactor = g.widthFactor
	}
	if height <= 0 {
		height = g.height
	}

	key := BarcodeCacheKey(postcode, widthFactor, height)
	if g.cache != nil {
		if img, ok := g.cache.Get(key); ok {
			return img, nil
		}
	}

	img, err := renderBarcode(postcode, widthFactor, height)
	if err != nil {
		return nil, err
	}

	if g.cache != nil {
		g.cache.Set(key, img)
		if bounded, ok := g.cache.(cache.Bounded); ok {
			u := bounded.Usage()
			metrics.UpdateCacheMetrics(u.Entries, u.Capacity)
		}
	}
	return img, nil
}

func renderBarcode(postcode string, widthFactor, height int) ([]byte, error) {
	code, err := code128.Encode(postcode)
	if err != nil {
		return nil, fmt.Errorf("encode code128 %q: %w", postcode, err)
	}

	scaled, err := barcode.Scale(code, code.Bounds().Dx()*widthFactor, height)
	if err != nil {
		return nil, fmt.Errorf("scale barcode: %w", err)
	}

	// 8-bit gray keeps the PNG embeddable in PDF output.
	gray := image.NewGray(scaled.Bounds())
	draw.Draw(gray, gray.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
