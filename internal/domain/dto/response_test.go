package dto

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_WithRequestID(t *testing.T) {
	err := NewError(ErrCodeInternal, "test error").WithRequestID("test-id")

	assert.Equal(t, "test-id", err.RequestID)
	assert.Equal(t, ErrCodeInternal, err.Error)
	assert.Equal(t, "test error", err.Message)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusUnprocessableEntity, ErrCodeInvalidConfiguration},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidRequest, "test message")

	assert.Equal(t, ErrCodeInvalidRequest, err.Error)
	assert.Equal(t, "test message", err.Message)
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)
}

func TestNewFailureResponses(t *testing.T) {
	tests := []struct {
		name     string
		failures []model.UpstreamLookupFailure
		expected []FailureResponse
	}{
		{
			name: "no failures",
		},
		{
			name: "missing order and store error",
			failures: []model.UpstreamLookupFailure{
				{OrderID: 7, Reason: model.ReasonOrderNotFound},
				{OrderID: 9, Reason: model.ReasonOrderStoreFailed, Err: errors.New("connection refused")},
			},
			expected: []FailureResponse{
				{OrderID: 7, Reason: model.ReasonOrderNotFound},
				{OrderID: 9, Reason: model.ReasonOrderStoreFailed, Error: "connection refused"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewFailureResponses(tt.failures))
		})
	}
}
