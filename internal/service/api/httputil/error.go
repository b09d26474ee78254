// Package httputil API 응답 형식과 에러 변환을 제공합니다.
package httputil

import (
	"context"
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/shop-catalog/internal/pkg/errors"
	"github.com/darkkaiser/shop-catalog/internal/service/api/constants"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorResponse 모든 에러 응답의 본문 형식입니다.
type ErrorResponse struct {
	ResultCode int    `json:"result_code"`
	Message    string `json:"message"`
}

func newHTTPError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewNotFoundError 404 Not Found
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewServiceUnavailableError 503 Service Unavailable
func NewServiceUnavailableError(message string) error {
	return newHTTPError(http.StatusServiceUnavailable, message)
}

// FromError 서비스 계층의 에러를 HTTP 에러로 변환합니다. 원인 에러는 로그 기록을 위해 Internal에 보존됩니다.
//
//   - NotFound → 404
//   - InvalidInput → 400
//   - Unavailable, Timeout, 요청 시간 초과 → 503
//   - 그 외 → 500
func FromError(err error) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return err
	}

	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		httpErr = newHTTPError(http.StatusServiceUnavailable, constants.ErrMsgServiceUnavailable)
	case apperrors.Is(err, apperrors.NotFound):
		httpErr = newHTTPError(http.StatusNotFound, constants.ErrMsgProductNotFound)
	case apperrors.Is(err, apperrors.InvalidInput):
		httpErr = newHTTPError(http.StatusBadRequest, messageOf(err))
	case apperrors.Is(err, apperrors.Unavailable), apperrors.Is(err, apperrors.Timeout):
		httpErr = newHTTPError(http.StatusServiceUnavailable, constants.ErrMsgServiceUnavailable)
	default:
		httpErr = newHTTPError(http.StatusInternalServerError, constants.ErrMsgInternalServer)
	}

	return httpErr.WithInternal(err)
}

func messageOf(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}
	return err.Error()
}

// ErrorHandler Echo 전역 에러 핸들러입니다. 모든 에러를 ErrorResponse JSON으로 응답합니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he, _ = FromError(err).(*echo.HTTPError)
	}
	if he != nil {
		code = he.Code
		switch m := he.Message.(type) {
		case ErrorResponse:
			message = m.Message
		case string:
			message = localize(code, m)
		}
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error("HTTP 5xx 서버 오류")
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn("HTTP 4xx 클라이언트 오류")
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// localize echo 내장 에러의 영문 메시지(Not Found 등)를 한국어 메시지로 바꿉니다.
func localize(code int, message string) string {
	switch code {
	case http.StatusNotFound:
		return constants.ErrMsgNotFound
	case http.StatusServiceUnavailable:
		return constants.ErrMsgServiceUnavailable
	case http.StatusInternalServerError:
		return constants.ErrMsgInternalServer
	}
	return message
}
