// Package log 애플리케이션 전역에서 사용하는 구조화 로깅 헬퍼를 제공합니다.
//
// logrus 표준 로거를 기반으로 하며, 모든 로그에는 발생 위치를 나타내는 component 필드를 붙입니다.
//
//	applog.WithComponent("catalog.variation").
//	    WithFields(applog.Fields{"variation_id": id}).
//	    Warn("옵션 상품 정보를 불러오지 못했습니다")
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// WithComponent component 필드가 설정된 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드가 설정된 Entry를 반환합니다.
// fields에 component 키가 있더라도 인자로 받은 component가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component

	return logrus.WithFields(merged)
}

// SetDebugMode true면 Trace, false면 Info 레벨로 전환합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
		return
	}
	logrus.SetLevel(InfoLevel)
}

// StandardLogger 전역 로거 인스턴스를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 전역 로거의 출력 대상을 변경합니다. 주로 테스트에서 로그를 캡처할 때 사용합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// MaskSensitiveData API 키처럼 로그에 그대로 남기면 안 되는 값을 가립니다.
//
//	""                      → ""
//	"abc"                   → "***"
//	"ck_12345"              → "ck_1***"
//	"ck_0123456789abcdef"   → "ck_0***cdef"
func MaskSensitiveData(s string) string {
	r := []rune(s)
	switch {
	case len(r) == 0:
		return ""
	case len(r) <= 3:
		return "***"
	case len(r) <= 12:
		return string(r[:4]) + "***"
	default:
		return string(r[:4]) + "***" + string(r[len(r)-4:])
	}
}
