package fetcher

import (
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/shop-catalog/internal/pkg/errors"
)

// ErrMaxRetriesExceeded 재시도 횟수를 모두 소진했을 때 체인의 원인으로 포함됩니다.
var ErrMaxRetriesExceeded = apperrors.New(apperrors.Unavailable, "최대 재시도 횟수를 초과했습니다")

// StatusError 200 OK가 아닌 응답을 표현합니다.
// RetryFetcher가 Retry-After 헤더를 참조할 수 있도록 헤더를 함께 보관합니다.
type StatusError struct {
	StatusCode  int
	Status      string
	URL         string // 민감 정보가 마스킹된 URL
	Header      http.Header
	BodySnippet string
}

func (e *StatusError) Error() string {
	if e.BodySnippet != "" {
		return fmt.Sprintf("HTTP %s (%s): %s", e.Status, e.URL, e.BodySnippet)
	}
	return fmt.Sprintf("HTTP %s (%s)", e.Status, e.URL)
}

// statusErrorType 상태 코드를 에러 분류로 변환합니다.
//
//   - 404, 410        : NotFound
//   - 408, 429, 5xx   : Unavailable (재시도 대상)
//   - 그 외 4xx 등     : ExecutionFailed
func statusErrorType(code int) apperrors.ErrorType {
	switch {
	case code == http.StatusNotFound, code == http.StatusGone:
		return apperrors.NotFound
	case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests, code >= 500:
		return apperrors.Unavailable
	default:
		return apperrors.ExecutionFailed
	}
}

func newErrHTTPStatus(se *StatusError) error {
	return apperrors.Wrapf(se, statusErrorType(se.StatusCode), "원격 서버가 요청을 처리하지 못했습니다 (상태 코드: %d)", se.StatusCode)
}

func newErrInvalidRequest(err error, rawURL string) error {
	return apperrors.Wrapf(err, apperrors.InvalidInput, "HTTP 요청을 생성할 수 없습니다 (URL: %s)", redactRawURL(rawURL))
}

func newErrNetwork(err error, u string) error {
	return apperrors.Wrapf(err, apperrors.Unavailable, "원격 서버에 연결할 수 없습니다 (URL: %s)", u)
}

func newErrTimeout(err error, u string) error {
	return apperrors.Wrapf(err, apperrors.Timeout, "원격 서버 응답 대기 시간이 초과되었습니다 (URL: %s)", u)
}

func newErrResponseTooLarge(limit int64) error {
	return apperrors.Newf(apperrors.ExecutionFailed, "응답 본문이 허용된 크기(%d 바이트)를 초과했습니다", limit)
}

func newErrRetryAfterExceeded(retryAfter, maxDelay string) error {
	return apperrors.Newf(apperrors.Unavailable, "서버가 요청한 대기 시간(%s)이 최대 재시도 대기 시간(%s)을 초과합니다", retryAfter, maxDelay)
}

func newErrMaxRetriesExceeded(cause error) error {
	if cause == nil {
		return ErrMaxRetriesExceeded
	}
	return apperrors.Wrap(cause, apperrors.Unavailable, "최대 재시도 횟수를 초과했습니다")
}
