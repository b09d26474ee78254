package fetcher

import (
	"context"
	"crypto/x509"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/darkkaiser/shop-catalog/internal/pkg/errors"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
)

const (
	minAllowedRetries = 0
	maxAllowedRetries = 10

	minAllowedRetryDelay = 1 * time.Second
	defaultMaxRetryDelay = 30 * time.Second
)

// RetryFetcher 일시적인 실패(Unavailable, Timeout)에 대해 지수 백오프로 요청을 재시도합니다.
//
//   - 대기 시간은 minRetryDelay * 2^(n-1) 을 maxRetryDelay로 제한한 뒤 Full Jitter를 적용합니다.
//   - 응답에 Retry-After 헤더가 있으면 해당 값을 우선하며, maxRetryDelay를 넘으면 즉시 실패합니다.
//   - 멱등 메서드(GET, HEAD 등)만 재시도하며 본문을 재생성할 수 없는 요청은 재시도하지 않습니다.
//   - Context가 취소되면 대기를 중단하고 Context 에러를 반환합니다.
type RetryFetcher struct {
	delegate Fetcher

	maxRetries    int
	minRetryDelay time.Duration
	maxRetryDelay time.Duration
}

var _ Fetcher = (*RetryFetcher)(nil)

// NewRetryFetcher maxRetries는 0~10, minRetryDelay는 최소 1초로 보정됩니다.
// maxRetryDelay가 0이면 30초를 사용합니다.
func NewRetryFetcher(delegate Fetcher, maxRetries int, minRetryDelay, maxRetryDelay time.Duration) *RetryFetcher {
	minRetryDelay, maxRetryDelay = normalizeRetryDelays(minRetryDelay, maxRetryDelay)

	return &RetryFetcher{
		delegate:      delegate,
		maxRetries:    normalizeMaxRetries(maxRetries),
		minRetryDelay: minRetryDelay,
		maxRetryDelay: maxRetryDelay,
	}
}

func (f *RetryFetcher) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	retries := f.maxRetries
	if !isIdempotentMethod(req.Method) {
		retries = 0
	}
	if req.Body != nil && req.Body != http.NoBody && req.GetBody == nil {
		retries = 0
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			delay, err := f.delayFor(attempt, lastErr)
			if err != nil {
				return nil, err
			}

			applog.WithComponent(component).
				WithContext(ctx).
				WithFields(applog.Fields{
					"url":         redactURL(req.URL),
					"attempt":     attempt,
					"max_retries": retries,
					"delay":       delay.String(),
					"error":       lastErr.Error(),
				}).
				Warn("일시적인 오류로 요청을 재시도합니다")

			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}

			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, apperrors.Wrap(err, apperrors.Internal, "재시도 요청의 본문을 다시 생성하지 못했습니다")
				}
				req = req.Clone(ctx)
				req.Body = body
			}
		}

		resp, err := f.delegate.Do(req)
		if err == nil {
			return resp, nil
		}
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		if ctx.Err() != nil || !isRetriable(err) {
			return nil, err
		}
		lastErr = err
	}

	if retries == 0 {
		return nil, lastErr
	}
	return nil, newErrMaxRetriesExceeded(lastErr)
}

// delayFor attempt번째 재시도 전 대기 시간을 계산합니다.
func (f *RetryFetcher) delayFor(attempt int, lastErr error) (time.Duration, error) {
	var se *StatusError
	if errors.As(lastErr, &se) {
		if d, ok := parseRetryAfter(se.Header.Get("Retry-After")); ok {
			if d > f.maxRetryDelay {
				return 0, newErrRetryAfterExceeded(d.String(), f.maxRetryDelay.String())
			}
			return d, nil
		}
	}

	backoff := f.minRetryDelay << (attempt - 1)
	if backoff > f.maxRetryDelay || backoff <= 0 {
		backoff = f.maxRetryDelay
	}

	delay := time.Duration(rand.Int64N(int64(backoff) + 1))
	if delay < time.Millisecond {
		delay = f.minRetryDelay
	}
	return delay, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func normalizeMaxRetries(n int) int {
	return min(max(n, minAllowedRetries), maxAllowedRetries)
}

func normalizeRetryDelays(minDelay, maxDelay time.Duration) (time.Duration, time.Duration) {
	if minDelay < minAllowedRetryDelay {
		minDelay = minAllowedRetryDelay
	}
	if maxDelay == 0 {
		maxDelay = defaultMaxRetryDelay
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return minDelay, maxDelay
}

// isRetriable 재시도로 결과가 달라질 수 있는 에러인지 판단합니다.
func isRetriable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var (
		hostnameErr  x509.HostnameError
		authorityErr x509.UnknownAuthorityError
		certErr      x509.CertificateInvalidError
	)
	if errors.As(err, &hostnameErr) || errors.As(err, &authorityErr) || errors.As(err, &certErr) {
		return false
	}

	var se *StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusNotImplemented, http.StatusHTTPVersionNotSupported, http.StatusNetworkAuthenticationRequired:
			return false
		}
	}

	switch {
	case apperrors.Is(err, apperrors.Unavailable), apperrors.Is(err, apperrors.Timeout):
		return true
	case apperrors.Is(err, apperrors.NotFound),
		apperrors.Is(err, apperrors.ExecutionFailed),
		apperrors.Is(err, apperrors.InvalidInput),
		apperrors.Is(err, apperrors.ParsingFailed):
		return false
	}

	return true
}

func isIdempotentMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// parseRetryAfter 초 단위 정수 또는 HTTP-date 형식의 Retry-After 값을 해석합니다.
func parseRetryAfter(v string) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(v); err == nil {
		return max(time.Until(t), 0), true
	}
	return 0, false
}
