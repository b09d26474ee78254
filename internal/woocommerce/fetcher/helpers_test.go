package fetcher

import (
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"
)

// fetcherFunc 함수를 Fetcher로 사용하기 위한 어댑터
type fetcherFunc func(*http.Request) (*http.Response, error)

func (f fetcherFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// trackingBody Close 호출 여부를 기록하는 Body
type trackingBody struct {
	io.Reader
	closed atomic.Bool
}

func (b *trackingBody) Close() error {
	b.closed.Store(true)
	return nil
}

func newResponse(code int, body string) (*http.Response, *trackingBody) {
	tb := &trackingBody{Reader: strings.NewReader(body)}
	return &http.Response{
		StatusCode:    code,
		Status:        http.StatusText(code),
		Header:        make(http.Header),
		Body:          tb,
		ContentLength: int64(len(body)),
	}, tb
}

func newFastRetryFetcher(delegate Fetcher, maxRetries int) *RetryFetcher {
	return &RetryFetcher{
		delegate:      delegate,
		maxRetries:    maxRetries,
		minRetryDelay: time.Millisecond,
		maxRetryDelay: 5 * time.Millisecond,
	}
}
