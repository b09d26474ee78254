package fetcher

import (
	"io"
	"net/http"
	"strings"
)

// maxBodySnippet 에러 메시지에 포함할 응답 본문의 최대 크기
const maxBodySnippet = 512

// StatusCodeFetcher 200 OK가 아닌 응답을 StatusError로 변환합니다.
// 변환된 에러의 분류는 statusErrorType 을 따르며, 실패한 응답의 Body는 이 단계에서 정리됩니다.
type StatusCodeFetcher struct {
	delegate Fetcher
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

func NewStatusCodeFetcher(delegate Fetcher) *StatusCodeFetcher {
	return &StatusCodeFetcher{delegate: delegate}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if resp.StatusCode == http.StatusOK {
		return resp, nil
	}

	se := &StatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		URL:        redactURL(req.URL),
		Header:     redactHeaders(resp.Header),
	}
	if se.Status == "" {
		se.Status = http.StatusText(resp.StatusCode)
	}
	if resp.Body != nil {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippet))
		se.BodySnippet = strings.TrimSpace(string(b))
	}
	drainAndCloseBody(resp.Body)

	return nil, newErrHTTPStatus(se)
}
