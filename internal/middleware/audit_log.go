package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/service"
)

// AuditLog records an administrative action, such as a settings change.
func AuditLog(entries service.PrintLogger, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if entries == nil {
		return
	}
	entries.Log(auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed administrative action.
func AuditLogError(entries service.PrintLogger, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if entries == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	entries.Log(entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
	}
	entry.WithFields(fields)
	if client := GetAPIClient(c); client != "" {
		entry.WithField("api_client", client)
	}
	return entry
}
