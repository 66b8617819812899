package service

import (
	"strings"

	"github.com/guttosm/print-orders/internal/domain/model"
)

// Output formats of a print request.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

// RenderConfig is the immutable configuration of one print request.
type RenderConfig struct {
	PrintAction           string
	Format                string
	LayoutGroup           string
	LayoutItem            string
	Offset                int
	WeightUnit            model.WeightUnit
	BarcodeWidthFactor    int
	BarcodeHeight         int
	InvoiceGroupItems     bool
	InvoiceGroupName      string
	InvoiceGroupEmptyRows int
	ValidateAddresses     bool
	Store                 model.StoreInfo
}

// DefaultRenderConfig returns the built-in defaults.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		PrintAction:           model.PrintActionLabels,
		Format:                FormatHTML,
		LayoutGroup:           DefaultLayoutGroup,
		LayoutItem:            DefaultLayoutItem,
		WeightUnit:            model.WeightKilograms,
		BarcodeWidthFactor:    DefaultBarcodeWidthFactor,
		BarcodeHeight:         DefaultBarcodeHeight,
		InvoiceGroupName:      "Produtos diversos",
		InvoiceGroupEmptyRows: 5,
	}
}

// PrintRequest carries the per-request parameters. Empty fields and a nil
// Offset keep the configured value.
type PrintRequest struct {
	RequestID   string
	OrderIDs    []int64
	PrintAction string
	Format      string
	LayoutGroup string
	LayoutItem  string
	Offset      *int
}

// BuildRenderConfig layers the configuration of one request in order:
// base, then stored settings, then the runtime hook, then request parameters.
// base is never modified.
func BuildRenderConfig(base RenderConfig, stored *model.PrintSettings, hook func(RenderConfig) RenderConfig, req PrintRequest) RenderConfig {
	cfg := base

	if stored != nil {
		cfg = cfg.withStored(*stored)
	}
	if hook != nil {
		cfg = hook(cfg)
	}
	return cfg.withRequest(req)
}

func (c RenderConfig) withStored(s model.PrintSettings) RenderConfig {
	c.Store = c.Store.Merge(s.Store)

	o := s.Options
	if o.LayoutGroup != "" && o.LayoutItem != "" {
		c.LayoutGroup = o.LayoutGroup
		c.LayoutItem = o.LayoutItem
	}
	if u, err := model.ParseWeightUnit(o.WeightUnit); err == nil {
		c.WeightUnit = u
	}
	if o.InvoiceGroupItems != nil {
		c.InvoiceGroupItems = *o.InvoiceGroupItems
	}
	if o.InvoiceGroupName != "" {
		c.InvoiceGroupName = o.InvoiceGroupName
	}
	if o.InvoiceGroupEmptyRows != nil && *o.InvoiceGroupEmptyRows >= 0 {
		c.InvoiceGroupEmptyRows = *o.InvoiceGroupEmptyRows
	}
	if o.ValidateAddresses != nil {
		c.ValidateAddresses = *o.ValidateAddresses
	}
	if o.BarcodeWidthFactor > 0 {
		c.BarcodeWidthFactor = o.BarcodeWidthFactor
	}
	if o.BarcodeHeight > 0 {
		c.BarcodeHeight = o.BarcodeHeight
	}
	return c
}

func (c RenderConfig) withRequest(r PrintRequest) RenderConfig {
	if r.PrintAction == model.PrintActionLabels || r.PrintAction == model.PrintActionInvoices {
		c.PrintAction = r.PrintAction
	}
	if f := strings.ToLower(r.Format); f == FormatHTML || f == FormatPDF {
		c.Format = f
	}
	if r.LayoutGroup != "" {
		c.LayoutGroup = r.LayoutGroup
	}
	if r.LayoutItem != "" {
		c.LayoutItem = r.LayoutItem
	}
	if r.Offset != nil {
		c.Offset = *r.Offset
	}
	if c.Offset < 0 {
		c.Offset = 0
	}
	return c
}
