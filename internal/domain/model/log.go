package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action types recorded on print log entries.
const (
	ActionPrintLabels   = "print_labels"
	ActionPrintInvoices = "print_invoices"
	ActionUpdateStore   = "update_store_settings"
	ActionUpdateOptions = "update_print_options"
)

// LogEntry is a persisted record of a print request or settings change.
// Request-scoped context beyond the fixed columns goes into Fields.
type LogEntry struct {
	ID         primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	ActionType string                 `bson:"action_type,omitempty" json:"action_type,omitempty"`
	OrderIDs   []int64                `bson:"order_ids,omitempty" json:"order_ids,omitempty"`
	Layout     string                 `bson:"layout,omitempty" json:"layout,omitempty"`
	Format     string                 `bson:"format,omitempty" json:"format,omitempty"`
	Pages      int                    `bson:"pages,omitempty" json:"pages,omitempty"`
	Failures   int                    `bson:"failures,omitempty" json:"failures,omitempty"`
	Warnings   int                    `bson:"warnings,omitempty" json:"warnings,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField adds a field to the entry's Fields map, allocating it if needed.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into the entry's Fields map.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions filters print log queries.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	Path       string
	ActionType string
	OrderID    int64
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
