// Package middleware API 서버에서 사용하는 Echo 미들웨어를 제공합니다.
//
// 등록 순서는 http_server.go의 NewHTTPServer를 참고하십시오. PanicRecovery는 가장 바깥에,
// RateLimiting은 로깅 이후에 위치해야 거부된 요청도 접근 로그에 남습니다.
package middleware
