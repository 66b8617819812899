package middleware

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLoggingService stores every write and can block or fail on demand.
type recordingLoggingService struct {
	mu      sync.Mutex
	batches [][]*model.LogEntry
	err     error
	started chan struct{}
	release chan struct{}
}

func (s *recordingLoggingService) write(entries []*model.LogEntry) error {
	if s.started != nil {
		select {
		case s.started <- struct{}{}:
		default:
		}
	}
	if s.release != nil {
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, append([]*model.LogEntry(nil), entries...))
	return s.err
}

func (s *recordingLoggingService) CreateLog(_ context.Context, entry *model.LogEntry) error {
	return s.write([]*model.LogEntry{entry})
}

func (s *recordingLoggingService) CreateLogs(_ context.Context, entries []*model.LogEntry) error {
	return s.write(entries)
}

func (s *recordingLoggingService) QueryLogs(context.Context, model.LogQueryOptions) ([]model.LogEntry, error) {
	return nil, nil
}

func (s *recordingLoggingService) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

func (s *recordingLoggingService) batchSizes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.batches))
	for i, b := range s.batches {
		out[i] = len(b)
	}
	return out
}

func printEntry(requestID string) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      "info",
		Message:    "Labels printed",
		RequestID:  requestID,
		ActionType: model.ActionPrintLabels,
		OrderIDs:   []int64{1042},
	}
}

func TestDefaultAsyncLoggerConfig(t *testing.T) {
	cfg := DefaultAsyncLoggerConfig()

	assert.Equal(t, 1000, cfg.BufferSize)
	assert.Equal(t, 2, cfg.NumWorkers)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, time.Second, cfg.FlushInterval)
	assert.Equal(t, 5*time.Second, cfg.WriteTimeout)
}

func TestNewAsyncLogger_NilService(t *testing.T) {
	al := NewAsyncLogger(nil, DefaultAsyncLoggerConfig())

	assert.Nil(t, al)
	assert.False(t, al.Log(printEntry("r1")))
	al.Stop()
}

func TestAsyncLogger_WritesFullBatch(t *testing.T) {
	svc := &recordingLoggingService{}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 3, FlushInterval: time.Hour})
	defer al.Stop()

	for _, id := range []string{"r1", "r2", "r3"} {
		require.True(t, al.Log(printEntry(id)))
	}

	assert.Eventually(t, func() bool {
		_, _, written, _ := al.Stats()
		return written == 3
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []int{3}, svc.batchSizes())
}

func TestAsyncLogger_FlushesOnTick(t *testing.T) {
	svc := &recordingLoggingService{}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 50, FlushInterval: 20 * time.Millisecond})
	defer al.Stop()

	require.True(t, al.Log(printEntry("r1")))

	assert.Eventually(t, func() bool {
		return len(svc.batchSizes()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []int{1}, svc.batchSizes())
}

func TestAsyncLogger_StopDrainsPending(t *testing.T) {
	svc := &recordingLoggingService{}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 50, FlushInterval: time.Hour})

	require.True(t, al.Log(printEntry("r1")))
	require.True(t, al.Log(printEntry("r2")))
	al.Stop()

	enqueued, _, written, _ := al.Stats()
	assert.Equal(t, int64(2), enqueued)
	assert.Equal(t, int64(2), written)
	assert.False(t, al.Log(printEntry("r3")), "entries after Stop are rejected")
	al.Stop()
}

func TestAsyncLogger_DropsWhenBufferFull(t *testing.T) {
	svc := &recordingLoggingService{started: make(chan struct{}, 1), release: make(chan struct{})}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 1, NumWorkers: 1, BatchSize: 1, FlushInterval: time.Hour})

	require.True(t, al.Log(printEntry("r1")))
	<-svc.started

	assert.True(t, al.Log(printEntry("r2")))
	assert.False(t, al.Log(printEntry("r3")))

	close(svc.release)
	al.Stop()

	enqueued, dropped, written, _ := al.Stats()
	assert.Equal(t, int64(2), enqueued)
	assert.Equal(t, int64(1), dropped)
	assert.Equal(t, int64(2), written)
}

func TestAsyncLogger_CountsWriteErrors(t *testing.T) {
	svc := &recordingLoggingService{err: errors.New("mongo unavailable")}
	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, BatchSize: 2, FlushInterval: time.Hour})

	al.Log(printEntry("r1"))
	al.Log(printEntry("r2"))
	al.Stop()

	_, _, written, errs := al.Stats()
	assert.Equal(t, int64(0), written)
	assert.Equal(t, int64(2), errs)
}
