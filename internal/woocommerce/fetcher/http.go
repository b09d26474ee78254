package fetcher

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "shop-catalog/1.0 (+https://github.com/darkkaiser/shop-catalog)"
)

// HTTPFetcher 실제 네트워크 요청을 수행하는 체인의 마지막 단계입니다.
// 네트워크 계층의 에러를 Unavailable 또는 Timeout 분류로 변환합니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

var _ Fetcher = (*HTTPFetcher)(nil)

// NewHTTPFetcher timeout이 0 이하면 30초를 사용합니다.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 16
	transport.ResponseHeaderTimeout = timeout

	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		userAgent: userAgent,
	}
}

func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" || req.Header.Get("Accept") == "" {
		req = req.Clone(req.Context())
		if req.Header.Get("User-Agent") == "" {
			req.Header.Set("User-Agent", f.userAgent)
		}
		if req.Header.Get("Accept") == "" {
			req.Header.Set("Accept", "application/json")
		}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}

		// 호출자가 취소한 경우에는 원래 에러를 그대로 돌려주어 errors.Is(err, context.Canceled)가 동작하도록 합니다.
		if ctxErr := req.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, err
		}

		u := redactURL(req.URL)

		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, newErrTimeout(err, u)
		}
		return nil, newErrNetwork(err, u)
	}

	return resp, nil
}
