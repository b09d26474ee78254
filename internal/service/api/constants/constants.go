// Package constants API 서버 전반에서 사용하는 컴포넌트 이름, 기본값, 메시지를 정의합니다.
package constants

import "time"

// 로그 컴포넌트 이름
const (
	ComponentService      = "api.service"
	ComponentMiddleware   = "api.middleware"
	ComponentErrorHandler = "api.error_handler"
	ComponentHandler      = "api.handler"
)

// HTTP 서버 기본값
const (
	DefaultReadTimeout       = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultWriteTimeout      = 60 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// DefaultRequestTimeout 요청 처리 제한 시간. 원격 카탈로그 조회가 이 시간을 넘으면 503을 응답합니다.
	DefaultRequestTimeout = 15 * time.Second

	// DefaultMaxBodySize 조회 전용 API이므로 본문은 작게 제한합니다.
	DefaultMaxBodySize = "64K"

	// ShutdownTimeout Graceful Shutdown 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)

// 사용자 응답 메시지
const (
	ErrMsgInternalServer     = "내부 서버 오류가 발생했습니다"
	ErrMsgNotFound           = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgTooManyRequests    = "요청이 너무 많습니다. 잠시 후 다시 시도해주세요"
	ErrMsgServiceUnavailable = "상품 정보를 일시적으로 불러올 수 없습니다. 잠시 후 다시 시도해주세요"
	ErrMsgProductNotFound    = "상품을 찾을 수 없습니다"
	ErrMsgInvalidProductID   = "상품 ID는 1 이상의 정수여야 합니다"
	ErrMsgInvalidQuantity    = "수량(quantity)은 1 이상의 정수여야 합니다"
)

// 서비스 생명주기 로그 메시지
const (
	LogMsgServiceStarting             = "API 서비스 시작중..."
	LogMsgServiceStarted              = "API 서비스 시작됨"
	LogMsgServiceAlreadyStarted       = "API 서비스가 이미 시작됨!!!"
	LogMsgServiceStopping             = "API 서비스 중지중..."
	LogMsgServiceStopped              = "API 서비스 중지됨"
	LogMsgServiceUnexpectedExit       = "HTTP 서버가 예기치 않게 종료되었습니다"
	LogMsgServiceHTTPServerStarting   = "HTTP 서버 시작"
	LogMsgServiceHTTPServerStopped    = "HTTP 서버 중지됨"
	LogMsgServiceHTTPServerFatalError = "HTTP 서버를 구동하는 중에 치명적인 오류가 발생하였습니다"
	LogMsgServiceShutdownError        = "HTTP 서버 종료 중 오류가 발생했습니다"
)

// Health
const (
	HealthStatusOK = "ok"
)
