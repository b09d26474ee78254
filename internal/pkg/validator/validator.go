// Package validator 요청 구조체 검증에 사용하는 공용 Validator와 한국어 에러 메시지 변환을 제공합니다.
//
// 필드 이름은 korean 태그 값을 사용하며, 태그가 없으면 Go 필드 이름을 사용합니다.
//
//	type QuoteRequest struct {
//	    Quantity int `query:"quantity" validate:"min=1" korean:"수량"`
//	}
package validator

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	instance *validator.Validate
	once     sync.Once
)

// Get 전역 Validator 인스턴스를 반환합니다.
func Get() *validator.Validate {
	once.Do(func() {
		instance = validator.New()
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("korean"); name != "" {
				return name
			}
			return fld.Name
		})
	})
	return instance
}

// Struct s를 validate 태그 규칙에 따라 검증합니다.
func Struct(s any) error {
	return Get().Struct(s)
}

// FormatValidationError 첫 번째 검증 실패 항목을 한국어 메시지로 변환합니다.
// validator 에러가 아니면 원본 메시지를 그대로 반환합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}

	return formatFieldError(validationErrors[0])
}

func formatFieldError(fe validator.FieldError) string {
	name := fe.Field()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", name)
	case "min", "gte":
		if isString {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", name, fe.Param())
		}
		return fmt.Sprintf("%s는 %s 이상이어야 합니다", name, fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", name, fe.Param())
		}
		return fmt.Sprintf("%s는 %s 이하여야 합니다", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s는 [%s] 중 하나여야 합니다", name, fe.Param())
	default:
		return fmt.Sprintf("%s 검증 실패: %s", name, fe.Tag())
	}
}
