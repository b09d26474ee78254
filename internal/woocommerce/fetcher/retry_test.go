package fetcher

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/shop-catalog/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unavailable() error {
	return newErrHTTPStatus(&StatusError{StatusCode: http.StatusServiceUnavailable, Status: "503 Service Unavailable", Header: http.Header{}})
}

func TestRetryFetcher_Do(t *testing.T) {
	t.Parallel()

	t.Run("성공: 일시적 오류 후 재시도로 성공", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		f := newFastRetryFetcher(fetcherFunc(func(*http.Request) (*http.Response, error) {
			if calls.Add(1) < 3 {
				return nil, unavailable()
			}
			resp, _ := newResponse(http.StatusOK, "[]")
			return resp, nil
		}), 3)

		req, _ := http.NewRequest(http.MethodGet, "https://shop.example.com/products", nil)
		resp, err := f.Do(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("실패: 재시도 횟수 소진", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		f := newFastRetryFetcher(fetcherFunc(func(*http.Request) (*http.Response, error) {
			calls.Add(1)
			return nil, unavailable()
		}), 2)

		req, _ := http.NewRequest(http.MethodGet, "https://shop.example.com/products", nil)
		_, err := f.Do(req)

		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
		assert.Contains(t, err.Error(), "최대 재시도 횟수")
	})

	t.Run("실패: NotFound는 재시도하지 않음", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		notFound := newErrHTTPStatus(&StatusError{StatusCode: http.StatusNotFound, Header: http.Header{}})
		f := newFastRetryFetcher(fetcherFunc(func(*http.Request) (*http.Response, error) {
			calls.Add(1)
			return nil, notFound
		}), 3)

		req, _ := http.NewRequest(http.MethodGet, "https://shop.example.com/products/1", nil)
		_, err := f.Do(req)

		assert.Same(t, notFound, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("실패: 멱등하지 않은 메서드는 재시도하지 않음", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		f := newFastRetryFetcher(fetcherFunc(func(*http.Request) (*http.Response, error) {
			calls.Add(1)
			return nil, unavailable()
		}), 3)

		req, _ := http.NewRequest(http.MethodPost, "https://shop.example.com/products", strings.NewReader("{}"))
		_, err := f.Do(req)

		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("실패: 대기 중 Context 취소", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		f := &RetryFetcher{
			delegate: fetcherFunc(func(*http.Request) (*http.Response, error) {
				cancel()
				return nil, unavailable()
			}),
			maxRetries:    3,
			minRetryDelay: time.Hour,
			maxRetryDelay: time.Hour,
		}

		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "https://shop.example.com/products", nil)
		_, err := f.Do(req)

		assert.True(t, errors.Is(err, context.Canceled) || apperrors.Is(err, apperrors.Unavailable))
	})

	t.Run("실패: Retry-After가 최대 대기 시간을 초과", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		f := newFastRetryFetcher(fetcherFunc(func(*http.Request) (*http.Response, error) {
			calls.Add(1)
			return nil, newErrHTTPStatus(&StatusError{
				StatusCode: http.StatusTooManyRequests,
				Header:     http.Header{"Retry-After": []string{"120"}},
			})
		}), 3)

		req, _ := http.NewRequest(http.MethodGet, "https://shop.example.com/products", nil)
		_, err := f.Do(req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "2m0s")
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestRetryFetcher_ContextCanceledWhileWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	f := &RetryFetcher{
		delegate: fetcherFunc(func(*http.Request) (*http.Response, error) {
			return nil, unavailable()
		}),
		maxRetries:    3,
		minRetryDelay: time.Hour,
		maxRetryDelay: time.Hour,
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "https://shop.example.com/products", nil)
	_, err := f.Do(req)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewRetryFetcher_Normalization(t *testing.T) {
	t.Parallel()

	f := NewRetryFetcher(nil, 99, 0, 0)
	assert.Equal(t, maxAllowedRetries, f.maxRetries)
	assert.Equal(t, time.Second, f.minRetryDelay)
	assert.Equal(t, 30*time.Second, f.maxRetryDelay)

	f = NewRetryFetcher(nil, -1, 5*time.Second, 2*time.Second)
	assert.Equal(t, 0, f.maxRetries)
	assert.Equal(t, 5*time.Second, f.maxRetryDelay)
}

func TestRetryFetcher_DelayFor(t *testing.T) {
	t.Parallel()

	f := &RetryFetcher{minRetryDelay: time.Second, maxRetryDelay: 4 * time.Second}

	for attempt := 1; attempt <= 6; attempt++ {
		d, err := f.delayFor(attempt, errors.New("x"))
		require.NoError(t, err)
		assert.LessOrEqual(t, d, 4*time.Second)
		assert.Greater(t, d, time.Duration(0))
	}

	d, err := f.delayFor(1, newErrHTTPStatus(&StatusError{StatusCode: 503, Header: http.Header{"Retry-After": []string{"2"}}}))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)
}

func TestIsRetriable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"Context 취소", context.Canceled, false},
		{"503", unavailable(), true},
		{"501", newErrHTTPStatus(&StatusError{StatusCode: http.StatusNotImplemented}), false},
		{"404", newErrHTTPStatus(&StatusError{StatusCode: http.StatusNotFound}), false},
		{"400", newErrHTTPStatus(&StatusError{StatusCode: http.StatusBadRequest}), false},
		{"타임아웃", newErrTimeout(errors.New("i/o timeout"), "u"), true},
		{"네트워크", newErrNetwork(errors.New("connection refused"), "u"), true},
		{"파싱 실패", apperrors.New(apperrors.ParsingFailed, "x"), false},
		{"분류되지 않은 에러", errors.New("unexpected EOF"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isRetriable(tt.err))
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	d, ok := parseRetryAfter("3")
	assert.True(t, ok)
	assert.Equal(t, 3*time.Second, d)

	_, ok = parseRetryAfter("")
	assert.False(t, ok)

	_, ok = parseRetryAfter("soon")
	assert.False(t, ok)

	d, ok = parseRetryAfter(time.Now().Add(-time.Minute).UTC().Format(http.TimeFormat))
	assert.True(t, ok)
	assert.Zero(t, d)
}
