// Package mocks 테스트용 Fetcher 구현체를 제공합니다.
package mocks

import (
	"io"
	"net/http"
	"strings"

	"github.com/darkkaiser/shop-catalog/internal/woocommerce/fetcher"
	"github.com/stretchr/testify/mock"
)

var _ fetcher.Fetcher = (*MockFetcher)(nil)

// MockFetcher testify/mock 기반의 Fetcher 입니다.
type MockFetcher struct {
	mock.Mock
}

func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// NewMockResponse 지정된 본문과 상태 코드를 가진 응답을 만듭니다.
func NewMockResponse(body string, statusCode int) *http.Response {
	return &http.Response{
		StatusCode:    statusCode,
		Status:        http.StatusText(statusCode),
		Header:        make(http.Header),
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
	}
}

// NewMockResponseWithJSON Content-Type이 application/json인 응답을 만듭니다.
func NewMockResponseWithJSON(body string, statusCode int) *http.Response {
	resp := NewMockResponse(body, statusCode)
	resp.Header.Set("Content-Type", "application/json; charset=utf-8")
	return resp
}
