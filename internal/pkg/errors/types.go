package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류할 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 설정 파일 접근 등)
	System

	// InvalidInput 잘못된 입력값 (설정값, 요청 파라미터 등)
	InvalidInput

	// NotFound 요청한 상품 등 리소스를 찾을 수 없음
	NotFound

	// ExecutionFailed 원격 호출이 실패했으며 재시도해도 결과가 같은 경우 (4xx 응답 등)
	ExecutionFailed

	// ParsingFailed 원격 응답의 디코딩 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 원격 카탈로그 서버의 일시적 사용 불가 (5xx, 429, 네트워크 장애 등)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	InvalidInput:    "InvalidInput",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

// String ErrorType의 이름을 반환합니다.
func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
