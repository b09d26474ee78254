package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/shop-catalog/internal/service/api/constants"
	"github.com/darkkaiser/shop-catalog/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/shop-catalog/internal/service/api/middleware"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성 옵션
type HTTPServerConfig struct {
	Debug bool

	// AllowOrigins 비어 있으면 CORS 미들웨어를 등록하지 않습니다.
	AllowOrigins []string

	// RequestTimeout 0이면 constants.DefaultRequestTimeout을 사용합니다.
	RequestTimeout time.Duration

	// RateLimitPerSecond 0이면 요청 수를 제한하지 않습니다.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 등록 순서대로 실행됩니다.
//  1. PanicRecovery: 가장 바깥에서 panic을 복구
//  2. RequestID: 이후 로그에 request_id를 남기기 위해 먼저 발급
//  3. Server 헤더 제거
//  4. HTTPLogger: 거부된 요청까지 기록하기 위해 Rate Limit보다 앞에 위치
//  5. RateLimiting
//  6. BodyLimit
//  7. ContextTimeout: 원격 카탈로그 조회가 제한 시간을 넘으면 요청 컨텍스트를 취소
//  8. CORS (설정된 경우)
//  9. Secure
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.NewEchoLogger(applog.StandardLogger())

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimiting(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	if len(cfg.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.AllowOrigins,
			AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		}))
	}
	e.Use(middleware.Secure())

	return e
}
