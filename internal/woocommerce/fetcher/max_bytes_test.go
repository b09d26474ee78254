package fetcher

import (
	"io"
	"net/http"
	"strings"
	"testing"

	apperrors "github.com/darkkaiser/shop-catalog/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxBytesFetcher(t *testing.T) {
	t.Parallel()

	t.Run("NoLimit은 delegate를 그대로 반환", func(t *testing.T) {
		t.Parallel()

		delegate := fetcherFunc(func(*http.Request) (*http.Response, error) { return nil, nil })
		assert.IsType(t, fetcherFunc(nil), NewMaxBytesFetcher(delegate, NoLimit))
		assert.Equal(t, int64(defaultMaxBytes), NewMaxBytesFetcher(delegate, 0).(*MaxBytesFetcher).limit)
	})

	t.Run("Content-Length 초과 시 즉시 실패", func(t *testing.T) {
		t.Parallel()

		resp, body := newResponse(http.StatusOK, strings.Repeat("a", 100))
		f := NewMaxBytesFetcher(fetcherFunc(func(*http.Request) (*http.Response, error) { return resp, nil }), 10)

		req, _ := http.NewRequest(http.MethodGet, "https://shop.example.com", nil)
		_, err := f.Do(req)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ExecutionFailed))
		assert.True(t, body.closed.Load())
	})

	t.Run("Content-Length 없이 읽는 도중 초과", func(t *testing.T) {
		t.Parallel()

		resp, _ := newResponse(http.StatusOK, strings.Repeat("a", 100))
		resp.ContentLength = -1
		f := NewMaxBytesFetcher(fetcherFunc(func(*http.Request) (*http.Response, error) { return resp, nil }), 10)

		req, _ := http.NewRequest(http.MethodGet, "https://shop.example.com", nil)
		got, err := f.Do(req)
		require.NoError(t, err)
		defer got.Body.Close()

		_, err = io.ReadAll(got.Body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "10 바이트")
	})

	t.Run("한도 이내는 그대로 통과", func(t *testing.T) {
		t.Parallel()

		resp, _ := newResponse(http.StatusOK, `{"id":1}`)
		f := NewMaxBytesFetcher(fetcherFunc(func(*http.Request) (*http.Response, error) { return resp, nil }), 1024)

		req, _ := http.NewRequest(http.MethodGet, "https://shop.example.com", nil)
		got, err := f.Do(req)
		require.NoError(t, err)
		defer got.Body.Close()

		b, err := io.ReadAll(got.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"id":1}`, string(b))
	})
}
