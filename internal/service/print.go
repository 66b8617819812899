package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/logger"
	"github.com/guttosm/print-orders/internal/metrics"
	"github.com/guttosm/print-orders/internal/repository"
	"github.com/rs/zerolog"
)

// PrintLogger receives one entry per print request. The async request logger
// satisfies it.
type PrintLogger interface {
	Log(entry *model.LogEntry) bool
}

// PrintResult is the prepared document of one print request. Exactly one of
// Labels and Invoices is set, matching Config.PrintAction.
type PrintResult struct {
	Config   RenderConfig
	Labels   *model.LabelDocument
	Invoices *model.InvoiceDocument
}

// PrintService builds label sheets and content declarations for a batch of orders.
type PrintService interface {
	// Print dispatches on the request's print action.
	Print(ctx context.Context, req PrintRequest) (*PrintResult, error)
	// Labels builds the paginated label sheets.
	Labels(ctx context.Context, req PrintRequest) (*model.LabelDocument, error)
	// Invoices builds one content declaration per order.
	Invoices(ctx context.Context, req PrintRequest) (*model.InvoiceDocument, error)
}

// PrintServiceImpl implements PrintService.
type PrintServiceImpl struct {
	orders   repository.OrderRepositoryInterface
	settings SettingsService
	catalog  *LayoutCatalog
	barcodes BarcodeRenderer
	hooks    Hooks
	base     RenderConfig
	printLog PrintLogger
	now      func() time.Time
}

// PrintOption configures a PrintServiceImpl.
type PrintOption func(*PrintServiceImpl)

// WithSettings layers stored settings over the base configuration.
func WithSettings(s SettingsService) PrintOption {
	return func(p *PrintServiceImpl) {
		p.settings = s
	}
}

// WithCatalog sets the layout catalog. The default holds the built-in layouts.
func WithCatalog(c *LayoutCatalog) PrintOption {
	return func(p *PrintServiceImpl) {
		p.catalog = c
	}
}

// WithBarcodes sets the barcode renderer.
func WithBarcodes(b BarcodeRenderer) PrintOption {
	return func(p *PrintServiceImpl) {
		p.barcodes = b
	}
}

// WithHooks installs runtime extension hooks.
func WithHooks(h Hooks) PrintOption {
	return func(p *PrintServiceImpl) {
		p.hooks = h
	}
}

// WithBaseConfig sets the configuration stored settings are layered onto.
func WithBaseConfig(cfg RenderConfig) PrintOption {
	return func(p *PrintServiceImpl) {
		p.base = cfg
	}
}

// WithPrintLogger records every print request.
func WithPrintLogger(l PrintLogger) PrintOption {
	return func(p *PrintServiceImpl) {
		p.printLog = l
	}
}

// WithClock overrides the clock used for declaration dates and durations.
func WithClock(now func() time.Time) PrintOption {
	return func(p *PrintServiceImpl) {
		p.now = now
	}
}

// NewPrintService creates a print service reading orders from orders.
func NewPrintService(orders repository.OrderRepositoryInterface, opts ...PrintOption) *PrintServiceImpl {
	p := &PrintServiceImpl{
		orders:   orders,
		base:     DefaultRenderConfig(),
		barcodes: NewBarcodeGenerator(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.catalog == nil {
		p.catalog = NewLayoutCatalog()
		p.catalog.Freeze()
	}
	return p
}

// Catalog returns the layout catalog in use.
func (s *PrintServiceImpl) Catalog() *LayoutCatalog {
	return s.catalog
}

// Hooks returns the installed hooks.
func (s *PrintServiceImpl) Hooks() Hooks {
	return s.hooks
}

// Config returns the layered configuration for req.
func (s *PrintServiceImpl) Config(ctx context.Context, req PrintRequest) RenderConfig {
	var stored *model.PrintSettings
	if s.settings != nil {
		var err error
		stored, err = s.settings.Get(ctx)
		if err != nil {
			log := s.log(req)
			log.Warn().Err(err).Msg("Stored print settings unavailable, using configured defaults")
		}
	}
	return BuildRenderConfig(s.base, stored, s.hooks.Config, req)
}

func (s *PrintServiceImpl) Print(ctx context.Context, req PrintRequest) (*PrintResult, error) {
	cfg := s.Config(ctx, req)
	res := &PrintResult{Config: cfg}

	var err error
	if cfg.PrintAction == model.PrintActionInvoices {
		res.Invoices, err = s.invoices(ctx, cfg, req)
	} else {
		res.Labels, err = s.labels(ctx, cfg, req)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *PrintServiceImpl) Labels(ctx context.Context, req PrintRequest) (*model.LabelDocument, error) {
	req.PrintAction = model.PrintActionLabels
	return s.labels(ctx, s.Config(ctx, req), req)
}

func (s *PrintServiceImpl) Invoices(ctx context.Context, req PrintRequest) (*model.InvoiceDocument, error) {
	req.PrintAction = model.PrintActionInvoices
	return s.invoices(ctx, s.Config(ctx, req), req)
}

func (s *PrintServiceImpl) labels(ctx context.Context, cfg RenderConfig, req PrintRequest) (*model.LabelDocument, error) {
	start := s.now()

	layout, err := s.catalog.Resolve(cfg.LayoutGroup, cfg.LayoutItem)
	if err != nil {
		return nil, err
	}

	fetched := s.fetch(ctx, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := &model.LabelDocument{
		Paper:    layout.Paper,
		Layout:   layout,
		Sender:   cfg.Store,
		Failures: fetched.failures,
	}

	kept := s.hooks.orders(fetched.orders)
	queue := make([]model.Slot, 0, len(kept))
	for _, order := range kept {
		label, warnings, failure := s.buildLabel(cfg, req, order)
		doc.Warnings = append(doc.Warnings, warnings...)
		if failure != nil {
			doc.Failures = append(doc.Failures, *failure)
		}
		queue = append(queue, model.FilledSlot(label))
	}

	entries := placeSlots(req.OrderIDs, fetched.failed, queue)
	doc.Offset = ClampOffset(cfg.Offset, layout.SlotsPerPage)
	doc.Pages = Paginate(entries, layout.SlotsPerPage, doc.Offset)

	for _, page := range doc.Pages {
		for _, slot := range page.Slots {
			metrics.RecordSlot(string(slot.Kind))
		}
	}
	metrics.RecordPages(cfg.PrintAction, len(doc.Pages))

	s.record(cfg, req, start, len(doc.Pages), len(doc.Failures), len(doc.Warnings))
	return doc, nil
}

func (s *PrintServiceImpl) invoices(ctx context.Context, cfg RenderConfig, req PrintRequest) (*model.InvoiceDocument, error) {
	start := s.now()

	layout, err := s.catalog.Resolve(cfg.LayoutGroup, cfg.LayoutItem)
	if err != nil {
		return nil, err
	}

	fetched := s.fetch(ctx, req)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := &model.InvoiceDocument{
		Paper:        layout.Paper,
		Declarations: []model.Declaration{},
		Sender:       cfg.Store,
		Date:         s.now(),
		GroupItems:   cfg.InvoiceGroupItems,
		Failures:     fetched.failures,
	}
	if cfg.InvoiceGroupItems {
		doc.GroupName = cfg.InvoiceGroupName
		doc.GroupRows = cfg.InvoiceGroupEmptyRows
	}

	for _, order := range s.hooks.orders(fetched.orders) {
		addr, _, warnings := s.address(cfg, order)
		warnings = append(warnings, SubtotalWarnings(order)...)
		doc.Warnings = append(doc.Warnings, warnings...)
		s.warnMissing(req, warnings)

		rows := Aggregate(order.Items, cfg.WeightUnit).Items
		rows = s.hooks.invoiceItems(order, rows)

		doc.Declarations = append(doc.Declarations, model.Declaration{
			OrderID:        order.ID,
			Recipient:      addr,
			RecipientTaxID: recipientTaxID(order),
			Aggregate:      Totals(rows, cfg.WeightUnit),
		})
	}

	metrics.RecordPages(cfg.PrintAction, len(doc.Declarations))
	s.record(cfg, req, start, len(doc.Declarations), len(doc.Failures), len(doc.Warnings))
	return doc, nil
}

type fetchResult struct {
	orders   []model.Order
	failed   map[int64]struct{}
	failures []model.UpstreamLookupFailure
}

// fetch loads the requested orders in request order. A store error degrades
// every order of the batch; a missing order degrades only itself.
func (s *PrintServiceImpl) fetch(ctx context.Context, req PrintRequest) fetchResult {
	res := fetchResult{failed: make(map[int64]struct{})}
	if len(req.OrderIDs) == 0 {
		return res
	}

	fail := func(id int64, reason string, err error) {
		res.failed[id] = struct{}{}
		res.failures = append(res.failures, model.UpstreamLookupFailure{OrderID: id, Reason: reason, Err: err})
		metrics.RecordUpstreamFailure(reason)
		log := s.log(req)
		log.Warn().Err(err).Int64("order_id", id).Str("reason", reason).Msg("Order unavailable for printing")
	}

	var found map[int64]model.Order
	var err error
	if s.orders == nil {
		err = ErrRepositoryNotConfigured
	} else {
		found, err = s.orders.FindByIDs(ctx, req.OrderIDs)
	}
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res
		}
		for _, id := range req.OrderIDs {
			fail(id, model.ReasonOrderStoreFailed, err)
		}
		return res
	}

	for _, id := range req.OrderIDs {
		order, ok := found[id]
		if !ok {
			fail(id, model.ReasonOrderNotFound, nil)
			continue
		}
		res.orders = append(res.orders, order)
	}
	return res
}

// placeSlots keeps each failed order's slot at its request position and fills
// the remaining positions with labels in the order the Orders hook returned.
func placeSlots(ids []int64, failed map[int64]struct{}, queue []model.Slot) []model.Slot {
	out := make([]model.Slot, 0, len(ids))
	for _, id := range ids {
		if _, ok := failed[id]; ok {
			out = append(out, model.PlaceholderSlot(id))
			continue
		}
		if len(queue) > 0 {
			out = append(out, queue[0])
			queue = queue[1:]
		}
	}
	return append(out, queue...)
}

// address resolves and optionally validates an order's recipient. The raw
// postal code is returned separately so barcodes never encode EMPTY markers.
func (s *PrintServiceImpl) address(cfg RenderConfig, order model.Order) (model.Address, string, []model.MissingDataWarning) {
	addr := s.hooks.address(order, ResolveAddress(order))
	postcode := addr.PostalCode

	var warnings []model.MissingDataWarning
	if cfg.ValidateAddresses {
		addr, warnings = ValidateAddress(order.ID, addr)
	}
	return addr, postcode, warnings
}

func (s *PrintServiceImpl) buildLabel(cfg RenderConfig, req PrintRequest, order model.Order) (model.LabelData, []model.MissingDataWarning, *model.UpstreamLookupFailure) {
	addr, postcode, warnings := s.address(cfg, order)
	subtotals := SubtotalWarnings(order)
	warnings = append(warnings, subtotals...)
	s.warnMissing(req, warnings)

	label := model.LabelData{
		OrderID:            order.ID,
		Address:            addr,
		Shipping:           ClassifyShipping(order.ShippingMethods),
		Items:              Aggregate(order.Items, cfg.WeightUnit).Items,
		CustomerNote:       order.CustomerNote,
		Declared:           DeclaredValue(order.Items),
		DeclaredUnresolved: len(subtotals) > 0,
		Warnings:           warnings,
	}

	img, err := s.barcodes.GenerateSized(postcode, cfg.BarcodeWidthFactor, cfg.BarcodeHeight)
	if err != nil {
		metrics.RecordUpstreamFailure(model.ReasonBarcodeFailed)
		log := s.log(req)
		log.Warn().Err(err).Int64("order_id", order.ID).Str("reason", model.ReasonBarcodeFailed).Msg("Barcode unavailable, printing label without it")
		return label, warnings, &model.UpstreamLookupFailure{OrderID: order.ID, Reason: model.ReasonBarcodeFailed, Err: err}
	}
	label.Barcode = img
	label.HasBarcode = len(img) > 0
	return label, warnings, nil
}

func (s *PrintServiceImpl) warnMissing(req PrintRequest, warnings []model.MissingDataWarning) {
	if len(warnings) == 0 {
		return
	}
	log := s.log(req)
	for _, w := range warnings {
		log.Warn().Int64("order_id", w.OrderID).Str("field", w.Field).Msg("Order field missing")
	}
}

// recipientTaxID returns the CPF, or the CNPJ for companies, from order metadata.
func recipientTaxID(order model.Order) string {
	meta := NewMetaIndex(order.MetaData)
	if cpf := meta.Get("_billing_cpf"); cpf != "" {
		return cpf
	}
	return meta.Get("_billing_cnpj")
}

func (s *PrintServiceImpl) log(req PrintRequest) zerolog.Logger {
	return logger.ForRequest(req.RequestID)
}

func (s *PrintServiceImpl) record(cfg RenderConfig, req PrintRequest, start time.Time, pages, failures, warnings int) {
	duration := s.now().Sub(start)

	log := s.log(req)
	log.Info().
		Str("action", cfg.PrintAction).
		Str("layout", cfg.LayoutGroup+"/"+cfg.LayoutItem).
		Int("orders", len(req.OrderIDs)).
		Int("pages", pages).
		Int("failures", failures).
		Int("warnings", warnings).
		Dur("duration", duration).
		Msg("Print document prepared")

	if s.printLog == nil {
		return
	}

	level := "info"
	if failures > 0 || warnings > 0 {
		level = "warn"
	}
	action := model.ActionPrintLabels
	if cfg.PrintAction == model.PrintActionInvoices {
		action = model.ActionPrintInvoices
	}

	entry := &model.LogEntry{
		Timestamp:  s.now(),
		Level:      level,
		Message:    fmt.Sprintf("%s prepared for %d orders", cfg.PrintAction, len(req.OrderIDs)),
		RequestID:  req.RequestID,
		ActionType: action,
		OrderIDs:   req.OrderIDs,
		Layout:     cfg.LayoutGroup + "/" + cfg.LayoutItem,
		Format:     cfg.Format,
		Pages:      pages,
		Failures:   failures,
		Warnings:   warnings,
		Duration:   duration.Milliseconds(),
	}
	entry.WithField("offset", cfg.Offset)
	s.printLog.Log(entry)
}
