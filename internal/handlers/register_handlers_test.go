package handlers_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/booking_ledger_engine/internal/core/services"
	"github.com/SscSPs/booking_ledger_engine/internal/handlers"
	"github.com/SscSPs/booking_ledger_engine/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(), logger)
	return r
}

func TestRegisterRoutes_Health(t *testing.T) {
	r := newTestRouter(&config.Config{RateLimit: "100-M"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestRegisterRoutes_SwaggerHiddenInProduction(t *testing.T) {
	r := newTestRouter(&config.Config{RateLimit: "100-M", IsProduction: true})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterRoutes_RateLimitedAPI(t *testing.T) {
	r := newTestRouter(&config.Config{RateLimit: "1-M"})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/financials", nil)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	// The first call reaches the handler and fails on the empty body.
	assert.Equal(t, []int{http.StatusBadRequest, http.StatusTooManyRequests}, codes)
}
