package service

import "github.com/guttosm/print-orders/internal/domain/model"

// ClampOffset bounds a requested offset to [0, perPage-1].
func ClampOffset(offset, perPage int) int {
	if offset < 0 || perPage < 1 {
		return 0
	}
	if offset > perPage-1 {
		return perPage - 1
	}
	return offset
}

// TrailingEmpty returns how many filler slots complete the last page after
// offset leading slots and n entries. An exactly full page needs none.
func TrailingEmpty(offset, n, perPage int) int {
	rem := (offset + n) % perPage
	if rem == 0 {
		if offset+n == 0 {
			return perPage
		}
		return 0
	}
	return perPage - rem
}

// Paginate lays entries out on sheets of perPage slots: offset leading empty
// slots, then every entry in order, then trailing empties to fill the last
// sheet. Every page holds exactly perPage slots, and at least one page is
// always returned. perPage must be >= 1 and offset already clamped.
func Paginate(entries []model.Slot, perPage, offset int) []model.Page {
	total := offset + len(entries) + TrailingEmpty(offset, len(entries), perPage)

	slots := make([]model.Slot, 0, total)
	for i := 0; i < offset; i++ {
		slots = append(slots, model.EmptySlot())
	}
	slots = append(slots, entries...)
	for len(slots) < total {
		slots = append(slots, model.EmptySlot())
	}

	pages := make([]model.Page, 0, total/perPage)
	for start := 0; start < total; start += perPage {
		pages = append(pages, model.Page{
			Index: len(pages),
			Slots: slots[start : start+perPage : start+perPage],
		})
	}
	return pages
}
