package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-orders/internal/domain/dto"
	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/guttosm/print-orders/internal/mocks"
	"github.com/guttosm/print-orders/internal/repository"
	"github.com/guttosm/print-orders/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLogsRouter(repo *mocks.MockLogsRepositoryInterface) *gin.Engine {
	router := gin.New()
	(&LogRoutes{handler: NewLogsHandler(service.NewLoggingService(repo))}).RegisterRoutes(router.Group("/api"), nil)
	return router
}

func TestLogsHandler_ListLogs(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("filters and paginates", func(t *testing.T) {
		want := repository.LogQueryOptions{ActionType: model.ActionPrintLabels, OrderID: 1042, Limit: 10, Skip: 20}
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", mock.Anything, want).Return([]*repository.LogEntryDocument{
			{Timestamp: ts, Level: "info", Message: "Labels printed", ActionType: model.ActionPrintLabels, OrderIDs: []int64{1042}, Pages: 1},
		}, nil)
		repo.On("Count", mock.Anything, want).Return(int64(21), nil)

		w := httptest.NewRecorder()
		newLogsRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/api/logs?action_type=print_labels&order_id=1042&limit=10&skip=20", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data dto.LogListResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(21), resp.Data.Total)
		assert.Equal(t, 10, resp.Data.Limit)
		assert.Equal(t, 20, resp.Data.Skip)
		require.Len(t, resp.Data.Entries, 1)
		assert.Equal(t, []int64{1042}, resp.Data.Entries[0].OrderIDs)
		repo.AssertExpectations(t)
	})

	t.Run("default limit", func(t *testing.T) {
		want := repository.LogQueryOptions{Limit: dto.DefaultLogLimit}
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", mock.Anything, want).Return([]*repository.LogEntryDocument{}, nil)
		repo.On("Count", mock.Anything, want).Return(int64(0), nil)

		w := httptest.NewRecorder()
		newLogsRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs", nil))

		require.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("invalid filter", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)

		w := httptest.NewRecorder()
		newLogsRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs?action_type=delete_everything", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
	})

	t.Run("store unavailable", func(t *testing.T) {
		repo := new(mocks.MockLogsRepositoryInterface)
		repo.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("no reachable servers"))

		w := httptest.NewRecorder()
		newLogsRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/logs", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
