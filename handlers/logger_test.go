package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"decorquote/middleware"
	"decorquote/models"
	"decorquote/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type failingService struct {
	booking.BookingSessionService
}

func (failingService) GetSessionView(context.Context, string) (*models.SessionView, error) {
	return nil, errors.New("redis: connection refused")
}

func TestFail_InternalErrorLogsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	h := NewBookingHandler(failingService{}, zap.NewNop())
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.GET("/api/booking/session/:sessionID", h.GetSession)

	req := httptest.NewRequest(http.MethodGet, "/api/booking/session/s1", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	failed := logs.FilterMessage("GetSession: failed").All()
	require.Len(t, failed, 1)
	require.Equal(t, "req-42", failed[0].ContextMap()["requestID"])
}

func TestGetLogger_FallsBackToHandlerLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	fallback := zap.NewNop()
	require.Same(t, fallback, getLogger(c, fallback))
}
