package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/shop-catalog/internal/pkg/version"
	"github.com/darkkaiser/shop-catalog/internal/service/api/constants"
	"github.com/darkkaiser/shop-catalog/internal/service/api/handler/product"
	"github.com/darkkaiser/shop-catalog/internal/service/api/handler/system"
	"github.com/darkkaiser/shop-catalog/internal/service/api/httputil"
	"github.com/darkkaiser/shop-catalog/internal/service/catalog"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg HTTPServerConfig, loader product.PageLoader) *echo.Echo {
	t.Helper()

	e := NewHTTPServer(cfg)
	RegisterRoutes(e, system.NewHandler(version.Info{Version: "v1.0.0"}), product.NewHandler(loader))
	return e
}

func TestNewHTTPServer_Settings(t *testing.T) {
	t.Parallel()

	e := NewHTTPServer(HTTPServerConfig{Debug: true})

	assert.True(t, e.Debug)
	assert.True(t, e.HideBanner)
	assert.Equal(t, constants.DefaultReadTimeout, e.Server.ReadTimeout)
	assert.Equal(t, constants.DefaultReadHeaderTimeout, e.Server.ReadHeaderTimeout)
	assert.Equal(t, constants.DefaultWriteTimeout, e.Server.WriteTimeout)
	assert.Equal(t, constants.DefaultIdleTimeout, e.Server.IdleTimeout)
	assert.NotNil(t, e.HTTPErrorHandler)
}

func TestNewHTTPServer_Middlewares(t *testing.T) {
	t.Parallel()

	t.Run("성공: 공통 응답 헤더", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(t, HTTPServerConfig{}, &stubLoader{})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		assert.Empty(t, rec.Header().Get(echo.HeaderServer))
		assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	})

	t.Run("성공: 등록되지 않은 경로는 404 JSON", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(t, HTTPServerConfig{}, &stubLoader{})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, constants.ErrMsgNotFound, resp.Message)
	})

	t.Run("성공: CORS 허용 Origin", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(t, HTTPServerConfig{AllowOrigins: []string{"https://shop.example.com"}}, &stubLoader{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "https://shop.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("성공: CORS 미설정 시 헤더 없음", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(t, HTTPServerConfig{}, &stubLoader{})

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	})

	t.Run("성공: Rate Limit 초과 시 429", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(t, HTTPServerConfig{RateLimitPerSecond: 0.001, RateLimitBurst: 1}, &stubLoader{})

		first := httptest.NewRecorder()
		e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/health", nil))
		second := httptest.NewRecorder()
		e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})

	t.Run("성공: 요청 제한 시간 초과 시 503", func(t *testing.T) {
		t.Parallel()

		e := newTestServer(t, HTTPServerConfig{RequestTimeout: 20 * time.Millisecond}, &stubLoader{block: true})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/1", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, constants.ErrMsgServiceUnavailable, resp.Message)
	})
}

// stubLoader block이 true면 요청 컨텍스트가 취소될 때까지 기다린 뒤 컨텍스트 에러를 반환합니다.
type stubLoader struct {
	product.PageLoader
	block bool
}

func (s *stubLoader) LoadProductPage(ctx context.Context, id int64) (*catalog.Page, error) {
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return nil, context.Canceled
}
