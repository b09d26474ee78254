package fetcher

import (
	"net/http"
	"time"

	applog "github.com/darkkaiser/shop-catalog/pkg/log"
)

// LoggingFetcher 요청 메서드, 마스킹된 URL, 상태 코드, 소요 시간을 기록합니다.
// 성공은 Debug, 실패는 Warn 레벨로 남깁니다.
type LoggingFetcher struct {
	delegate Fetcher
}

var _ Fetcher = (*LoggingFetcher)(nil)

func NewLoggingFetcher(delegate Fetcher) *LoggingFetcher {
	return &LoggingFetcher{delegate: delegate}
}

func (f *LoggingFetcher) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := f.delegate.Do(req)

	fields := applog.Fields{
		"method":   req.Method,
		"url":      redactURL(req.URL),
		"duration": time.Since(start).String(),
	}
	if resp != nil {
		fields["status_code"] = resp.StatusCode
	}

	entry := applog.WithComponent(component).WithContext(req.Context()).WithFields(fields)
	if err != nil {
		entry.WithField("error", err.Error()).Warn("원격 API 요청이 실패했습니다")
		return resp, err
	}

	entry.Debug("원격 API 요청 완료")

	return resp, nil
}
