package config

import (
	"fmt"
	"net"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/shop-catalog/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// newValidator 에러 메시지에 JSON 키 이름을 사용하고 커스텀 규칙(cors_origin)을 등록한 Validator를 생성합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

func validateCORSOrigin(fl validator.FieldLevel) bool {
	return isValidOrigin(fl.Field().String())
}

// isValidOrigin Scheme://Host[:Port] 형식(경로, 쿼리, 사용자 정보 없음)이거나 와일드카드(*)인지 검사합니다.
func isValidOrigin(origin string) bool {
	origin = strings.TrimSpace(origin)
	if origin == "*" {
		return true
	}
	if origin == "" || strings.HasSuffix(origin, "/") {
		return false
	}

	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil || u.Hostname() == "" {
		return false
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return false
		}
	}

	host := u.Hostname()
	if host == "localhost" || net.ParseIP(host) != nil {
		return true
	}
	for _, label := range strings.Split(host, ".") {
		if label == "" || strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고 첫 번째 위반 항목을 사용자 친화적인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 설정 검증에 실패했습니다", contextName))
	}

	firstErr := validationErrors[0]

	switch firstErr.StructField() {
	case "BaseURL":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("WooCommerce 주소(base_url)는 http 또는 https 절대 주소여야 합니다: '%v'", firstErr.Value()))
	case "ConsumerKey", "ConsumerSecret":
		return apperrors.New(apperrors.InvalidInput, "WooCommerce 인증 정보(consumer_key, consumer_secret)는 함께 설정해야 합니다")
	case "MaxRetries":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("HTTP 최대 재시도 횟수(max_retries)는 0에서 10 사이의 값이어야 합니다: '%v'", firstErr.Value()))
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "API 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	}

	if firstErr.Tag() == "cors_origin" {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", firstErr.Value()))
	}

	condition := firstErr.Tag()
	if firstErr.Param() != "" {
		condition += "=" + firstErr.Param()
	}
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s 설정이 올바르지 않습니다: %s (조건: %s, 값: '%v')", contextName, firstErr.Field(), condition, firstErr.Value()))
}
