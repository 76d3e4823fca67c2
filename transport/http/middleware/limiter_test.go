package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"barbershop/config"
	otelMocks "barbershop/infras/otel/mocks"
	cacheMocks "barbershop/shared/cache/mocks"
	"barbershop/shared/constant"
	"barbershop/transport/http/middleware"
)

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 3
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name          string
		setupMock     func()
		wantCode      int
		wantRemaining string
	}{
		{
			name: "first request in window",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.7", 60).Return(int64(1), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name: "last allowed request",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.7", 60).Return(int64(3), nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "0",
		},
		{
			name: "limit exceeded",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), "limiter:10.0.0.7", 60).Return(int64(4), nil)
			},
			wantCode:      http.StatusTooManyRequests,
			wantRemaining: "0",
		},
		{
			name: "cache unavailable lets the request through",
			setupMock: func() {
				mockCache.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))
			},
			wantCode: http.StatusOK,
		},
	}

	limiter := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache).RateLimit()
	handler := limiter(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			request := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
			request.Header.Set(constant.RequestHeaderRealIP, "10.0.0.7")

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantRemaining != "" {
				assert.Equal(t, tt.wantRemaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
			}
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}

	limiter := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(ctrl)).RateLimit()
	handler := limiter(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/v1/services", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
