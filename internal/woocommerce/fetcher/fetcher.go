// Package fetcher WooCommerce REST 호출에 사용하는 HTTP 요청 데코레이터 체인을 제공합니다.
//
// 각 데코레이터는 Fetcher 인터페이스를 구현하며 New 함수가 아래 순서로 조립합니다.
//
//	LoggingFetcher → RetryFetcher → StatusCodeFetcher → MaxBytesFetcher → HTTPFetcher
//
// 응답을 돌려받은 호출자는 반드시 Body를 닫아야 합니다. 에러를 반환하는 경우 각 데코레이터가
// Body를 직접 정리하므로 호출자가 닫을 필요가 없습니다.
package fetcher

import (
	"context"
	"net/http"
)

// component 로깅용 컴포넌트 이름
const component = "woocommerce.fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get GET 요청을 만들어 f로 전송합니다.
func Get(ctx context.Context, f Fetcher, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, newErrInvalidRequest(err, rawURL)
	}

	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	return resp, nil
}
