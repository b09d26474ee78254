package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/shop-catalog/internal/service/api/constants"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
	"github.com/labstack/echo/v4"
)

const (
	// defaultBytesIn Content-Length 헤더가 없을 때 bytes_in 필드에 기록할 값
	defaultBytesIn = "0"
)

// sensitiveQueryParams 로그에 기록할 때 값을 가려야 하는 쿼리 파라미터 목록입니다.
var sensitiveQueryParams = []string{
	"consumer_key",
	"consumer_secret",
	"api_key",
	"token",
	"password",
}

// HTTPLogger HTTP 요청과 응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
// 핸들러가 반환한 에러는 여기서 Echo 에러 핸들러로 전달되므로 기록되는 status는 실제 응답 코드입니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return httpLoggerHandler(c, next)
		}
	}
}

func httpLoggerHandler(c echo.Context, next echo.HandlerFunc) error {
	req := c.Request()
	res := c.Response()
	start := time.Now()

	defer func() {
		latency := time.Since(start)

		path := req.URL.Path
		if path == "" {
			path = "/"
		}

		bytesIn := req.Header.Get(echo.HeaderContentLength)
		if bytesIn == "" {
			bytesIn = defaultBytesIn
		}

		applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
			"method":   req.Method,
			"path":     path,
			"uri":      maskSensitiveQueryParams(req.RequestURI),
			"host":     req.Host,
			"protocol": req.Proto,

			"remote_ip":  c.RealIP(),
			"user_agent": req.UserAgent(),
			"referer":    req.Referer(),

			"status":    res.Status,
			"bytes_in":  bytesIn,
			"bytes_out": strconv.FormatInt(res.Size, 10),

			"latency":       strconv.FormatInt(latency.Microseconds(), 10),
			"latency_human": latency.String(),

			"request_id": res.Header().Get(echo.HeaderXRequestID),
		}).Info("HTTP 요청")
	}()

	if err := next(c); err != nil {
		c.Error(err)
	}

	return nil
}

// maskSensitiveQueryParams URI에 포함된 민감한 쿼리 파라미터 값을 가립니다.
// 파싱에 실패하면 원본을 그대로 반환합니다.
//
//	"/api/v1/products/1?consumer_key=ck_0123456789abcdef" → "/api/v1/products/1?consumer_key=ck_0%2A%2A%2Acdef"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false

	for _, param := range sensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, applog.MaskSensitiveData(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
