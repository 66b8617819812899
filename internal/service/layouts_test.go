package service

import (
	"testing"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutCatalog_Defaults(t *testing.T) {
	c := NewLayoutCatalog()

	def, paper, err := c.Lookup(DefaultLayoutGroup, DefaultLayoutItem)
	require.NoError(t, err)
	assert.Equal(t, 4, def.SlotsPerPage)
	assert.Equal(t, model.PaperA4, paper)

	resolved, err := c.Resolve(DefaultLayoutGroup, DefaultLayoutItem)
	require.NoError(t, err)
	assert.Equal(t, DefaultLayoutGroup, resolved.Group)
	assert.Equal(t, DefaultLayoutItem, resolved.Item)
	assert.InDelta(t, 138.5, resolved.CellHeight.Value, 1e-9)
	assert.Equal(t, 2, resolved.Columns())

	groups := c.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, DefaultLayoutGroupName, groups[0].Name)
}

func TestLayoutCatalog_Register(t *testing.T) {
	c := NewLayoutCatalog()

	added := c.Register("pimaco", "Pimaco", "6180", model.LayoutDefinition{
		SlotsPerPage: 30,
		Paper:        "Letter",
		CellWidth:    "66.7mm",
		CellHeight:   "25.4mm",
		PageMargins:  "12.7mm 4.8mm 12.7mm 4.8mm",
	})
	require.True(t, added)

	def, paper, err := c.Lookup("pimaco", "6180")
	require.NoError(t, err)
	assert.Equal(t, "6180", def.Name)
	assert.Equal(t, "0 0 0 0", def.CellMargin, "missing fields come from the default layout")
	assert.Equal(t, model.PaperLetter, paper)

	t.Run("existing item is not overwritten", func(t *testing.T) {
		assert.False(t, c.Register(DefaultLayoutGroup, "", DefaultLayoutItem, model.LayoutDefinition{SlotsPerPage: 99}))
		def, _, err := c.Lookup(DefaultLayoutGroup, DefaultLayoutItem)
		require.NoError(t, err)
		assert.Equal(t, 4, def.SlotsPerPage)
	})

	t.Run("frozen catalog rejects registrations", func(t *testing.T) {
		c.Freeze()
		assert.False(t, c.Register("late", "Late", "x", model.LayoutDefinition{}))
		_, _, err := c.Lookup("late", "x")
		assert.ErrorIs(t, err, model.ErrConfiguration)
	})
}

func TestLayoutCatalog_RegisterGroups(t *testing.T) {
	c := NewLayoutCatalog()

	added := c.RegisterGroups([]model.LayoutGroup{
		{
			Slug: "stickers",
			Name: "Stickers",
			Items: map[string]model.LayoutDefinition{
				"b": {SlotsPerPage: 2},
				"a": {SlotsPerPage: 1},
			},
		},
		{
			Slug:  DefaultLayoutGroup,
			Items: map[string]model.LayoutDefinition{DefaultLayoutItem: {SlotsPerPage: 8}},
		},
	})

	assert.Equal(t, 2, added)
	groups := c.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"a", "b"}, groups[1].Order)
}

func TestLayoutCatalog_LookupErrors(t *testing.T) {
	c := NewLayoutCatalog()
	c.Register("odd", "Odd", "tabloid", model.LayoutDefinition{Paper: "Tabloid"})

	tests := []struct {
		name  string
		group string
		item  string
		field string
	}{
		{name: "unknown group", group: "nope", item: "2x2", field: "layout_group"},
		{name: "unknown item", group: DefaultLayoutGroup, item: "9x9", field: "layout_item"},
		{name: "unknown paper", group: "odd", item: "tabloid", field: "paper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Resolve(tt.group, tt.item)
			var cfgErr *model.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
