package service

import (
	"sort"
	"sync"

	"github.com/guttosm/print-orders/internal/domain/model"
)

// Built-in layout group and item.
const (
	DefaultLayoutGroup     = "percentage"
	DefaultLayoutGroupName = "Simples"
	DefaultLayoutItem      = "2x2"
)

// DefaultLayouts returns the built-in layout groups.
func DefaultLayouts() []model.LayoutGroup {
	return []model.LayoutGroup{
		{
			Slug: DefaultLayoutGroup,
			Name: DefaultLayoutGroupName,
			Items: map[string]model.LayoutDefinition{
				DefaultLayoutItem: {
					Name:         DefaultLayoutItem,
					Paper:        model.PaperA4.Name,
					SlotsPerPage: 4,
					PageMargins:  "10mm 10mm 10mm 10mm",
					CellWidth:    "50%",
					CellHeight:   "50%",
					CellMargin:   "0 0 0 0",
				},
			},
			Order: []string{DefaultLayoutItem},
		},
	}
}

// LayoutCatalog holds the paper sizes and layout groups available for printing.
// It accepts registrations until Freeze is called and is read-only afterwards.
type LayoutCatalog struct {
	mu     sync.RWMutex
	papers map[string]model.PaperSize
	groups map[string]*model.LayoutGroup
	order  []string
	frozen bool
}

// NewLayoutCatalog creates a catalog with the default papers and layouts.
func NewLayoutCatalog() *LayoutCatalog {
	c := &LayoutCatalog{
		papers: model.DefaultPapers(),
		groups: make(map[string]*model.LayoutGroup),
	}
	for _, g := range DefaultLayouts() {
		for _, slug := range g.Order {
			c.Register(g.Slug, g.Name, slug, g.Items[slug])
		}
	}
	return c
}

// Register adds a layout item to a group, creating the group if needed.
// Empty fields are filled from model.DefaultLayout. An existing item is never
// overwritten, and a frozen catalog ignores the call. It reports whether the
// item was added.
func (c *LayoutCatalog) Register(group, groupName, slug string, def model.LayoutDefinition) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen || group == "" || slug == "" {
		return false
	}

	g, ok := c.groups[group]
	if !ok {
		if groupName == "" {
			groupName = group
		}
		g = &model.LayoutGroup{Slug: group, Name: groupName, Items: make(map[string]model.LayoutDefinition)}
		c.groups[group] = g
		c.order = append(c.order, group)
	}
	if _, exists := g.Items[slug]; exists {
		return false
	}

	if def.Name == "" {
		def.Name = slug
	}
	g.Items[slug] = def.WithDefaults()
	g.Order = append(g.Order, slug)
	return true
}

// RegisterGroups registers every item of the given groups in order.
func (c *LayoutCatalog) RegisterGroups(groups []model.LayoutGroup) int {
	added := 0
	for _, g := range groups {
		slugs := g.Order
		if len(slugs) == 0 {
			for slug := range g.Items {
				slugs = append(slugs, slug)
			}
			sort.Strings(slugs)
		}
		for _, slug := range slugs {
			def, ok := g.Items[slug]
			if ok && c.Register(g.Slug, g.Name, slug, def) {
				added++
			}
		}
	}
	return added
}

// Freeze stops further registrations.
func (c *LayoutCatalog) Freeze() {
	c.mu.Lock()
	c.frozen = true
	c.mu.Unlock()
}

// Lookup returns the layout definition and its paper size.
func (c *LayoutCatalog) Lookup(group, item string) (model.LayoutDefinition, model.PaperSize, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	g, ok := c.groups[group]
	if !ok {
		return model.LayoutDefinition{}, model.PaperSize{}, model.NewConfigurationError("layout_group", group, "unknown layout group")
	}
	def, ok := g.Items[item]
	if !ok {
		return model.LayoutDefinition{}, model.PaperSize{}, model.NewConfigurationError("layout_item", item, "unknown layout in group "+group)
	}
	paper, ok := c.papers[def.Paper]
	if !ok {
		return model.LayoutDefinition{}, model.PaperSize{}, model.NewConfigurationError("paper", def.Paper, "unknown paper size")
	}
	return def, paper, nil
}

// Resolve looks up a layout and resolves its geometry.
func (c *LayoutCatalog) Resolve(group, item string) (model.ResolvedLayout, error) {
	def, paper, err := c.Lookup(group, item)
	if err != nil {
		return model.ResolvedLayout{}, err
	}
	resolved, err := ResolveLayout(def, paper)
	if err != nil {
		return model.ResolvedLayout{}, err
	}
	resolved.Group = group
	resolved.Item = item
	return resolved, nil
}

// Paper returns a paper size by name.
func (c *LayoutCatalog) Paper(name string) (model.PaperSize, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.papers[name]
	return p, ok
}

// Groups returns a copy of every group in registration order.
func (c *LayoutCatalog) Groups() []model.LayoutGroup {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.LayoutGroup, 0, len(c.order))
	for _, slug := range c.order {
		g := c.groups[slug]
		items := make(map[string]model.LayoutDefinition, len(g.Items))
		for k, v := range g.Items {
			items[k] = v
		}
		out = append(out, model.LayoutGroup{
			Slug:  g.Slug,
			Name:  g.Name,
			Items: items,
			Order: append([]string(nil), g.Order...),
		})
	}
	return out
}
