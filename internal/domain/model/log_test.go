package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		key    string
		value  interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "allocates fields on nil map",
			entry: &LogEntry{ActionType: ActionPrintLabels},
			key:   "layout_group",
			value: "percentage",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "percentage", e.Fields["layout_group"])
			},
		},
		{
			name: "keeps existing fields",
			entry: &LogEntry{
				Fields: map[string]interface{}{"offset": 1},
			},
			key:   "format",
			value: "pdf",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 1, e.Fields["offset"])
				assert.Equal(t, "pdf", e.Fields["format"])
			},
		},
		{
			name: "overwrites existing field",
			entry: &LogEntry{
				Fields: map[string]interface{}{"offset": 1},
			},
			key:   "offset",
			value: 3,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 3, e.Fields["offset"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField(tt.key, tt.value)
			assert.Same(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	entry := &LogEntry{ActionType: ActionPrintInvoices}

	entry.WithFields(map[string]interface{}{
		"group_items":  true,
		"declarations": 2,
	}).WithFields(map[string]interface{}{})

	assert.Len(t, entry.Fields, 2)
	assert.Equal(t, true, entry.Fields["group_items"])
	assert.Equal(t, 2, entry.Fields["declarations"])
}
