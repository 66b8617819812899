package service

import "github.com/guttosm/print-orders/internal/domain/model"

// Hooks are optional pure transforms applied at fixed points of the pipeline.
// A nil hook is the identity.
type Hooks struct {
	// Orders filters the loaded orders before any label or declaration is built.
	Orders func([]model.Order) []model.Order
	// Address adjusts a resolved address before validation.
	Address func(model.Order, model.Address) model.Address
	// Label adjusts one rendered label fragment.
	Label func(fragment string, label model.LabelData) string
	// Invoice adjusts one rendered declaration fragment.
	Invoice func(fragment string, declaration model.Declaration) string
	// InvoiceItems adjusts the declaration rows of one order.
	InvoiceItems func(model.Order, []model.OrderItemSummary) []model.OrderItemSummary
	// Layouts contributes extra layout groups at startup.
	Layouts func() []model.LayoutGroup
	// Config adjusts the render configuration after stored settings are applied.
	Config func(RenderConfig) RenderConfig
}

func (h Hooks) orders(in []model.Order) []model.Order {
	if h.Orders == nil {
		return in
	}
	return h.Orders(in)
}

func (h Hooks) address(o model.Order, a model.Address) model.Address {
	if h.Address == nil {
		return a
	}
	return h.Address(o, a)
}

func (h Hooks) invoiceItems(o model.Order, items []model.OrderItemSummary) []model.OrderItemSummary {
	if h.InvoiceItems == nil {
		return items
	}
	return h.InvoiceItems(o, items)
}

// LabelFragment applies the Label hook.
func (h Hooks) LabelFragment(fragment string, label model.LabelData) string {
	if h.Label == nil {
		return fragment
	}
	return h.Label(fragment, label)
}

// InvoiceFragment applies the Invoice hook.
func (h Hooks) InvoiceFragment(fragment string, d model.Declaration) string {
	if h.Invoice == nil {
		return fragment
	}
	return h.Invoice(fragment, d)
}

// ExtraLayouts returns the layout groups contributed by the Layouts hook.
func (h Hooks) ExtraLayouts() []model.LayoutGroup {
	if h.Layouts == nil {
		return nil
	}
	return h.Layouts()
}
