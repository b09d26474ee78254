package fetcher

import (
	"time"
)

// Config 데코레이터 체인의 동작을 결정하는 설정입니다.
type Config struct {
	Timeout       time.Duration // 요청 하나의 전체 제한 시간 (0이면 30초)
	UserAgent     string
	MaxRetries    int           // 0이면 재시도하지 않음
	MinRetryDelay time.Duration // 재시도 최소 대기 시간 (1초 미만은 1초로 보정)
	MaxRetryDelay time.Duration // 재시도 최대 대기 시간 (0이면 30초)
	MaxBytes      int64         // 응답 본문 최대 크기 (0이면 10MB, NoLimit이면 무제한)
}

// New 설정에 따라 Logging → Retry → StatusCode → MaxBytes → HTTP 순서의 체인을 조립합니다.
func New(cfg Config) Fetcher {
	var f Fetcher = NewHTTPFetcher(cfg.Timeout, cfg.UserAgent)
	f = NewMaxBytesFetcher(f, cfg.MaxBytes)
	f = NewStatusCodeFetcher(f)
	f = NewRetryFetcher(f, cfg.MaxRetries, cfg.MinRetryDelay, cfg.MaxRetryDelay)
	f = NewLoggingFetcher(f)

	return f
}
