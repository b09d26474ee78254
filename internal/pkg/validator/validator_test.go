package validator_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/darkkaiser/shop-catalog/internal/pkg/validator"
	go_validator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Concurrency(t *testing.T) {
	t.Parallel()

	const routines = 50
	validators := make([]*go_validator.Validate, routines)

	var wg sync.WaitGroup
	wg.Add(routines)
	for i := range routines {
		go func(index int) {
			defer wg.Done()
			validators[index] = validator.Get()
		}(i)
	}
	wg.Wait()

	for i := 1; i < routines; i++ {
		assert.Same(t, validators[0], validators[i])
	}
}

type quoteRequest struct {
	ProductID int64  `validate:"min=1" korean:"상품 ID"`
	Quantity  int    `validate:"min=1,max=999" korean:"수량"`
	Deposit   string `validate:"omitempty,oneof=full deposit" korean:"결제 방식"`
	Option    string `validate:"max=5" korean:"옵션"`
	Note      string `validate:"required"`
	Code      string `validate:"omitempty,alpha" korean:"코드"`
}

func valid() quoteRequest {
	return quoteRequest{ProductID: 1, Quantity: 1, Note: "n"}
}

func TestFormatValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*quoteRequest)
		expected string
	}{
		{"실패: 숫자 최솟값", func(r *quoteRequest) { r.ProductID = 0 }, "상품 ID는 1 이상이어야 합니다"},
		{"실패: 숫자 최댓값", func(r *quoteRequest) { r.Quantity = 1000 }, "수량는 999 이하여야 합니다"},
		{"실패: oneof", func(r *quoteRequest) { r.Deposit = "half" }, "결제 방식는 [full deposit] 중 하나여야 합니다"},
		{"실패: 문자열 최대 길이", func(r *quoteRequest) { r.Option = "123456" }, "옵션는 최대 5자까지 입력 가능합니다"},
		{"실패: korean 태그가 없으면 필드 이름", func(r *quoteRequest) { r.Note = "" }, "Note는 필수입니다"},
		{"실패: 처리하지 않는 태그", func(r *quoteRequest) { r.Code = "a1" }, "코드 검증 실패: alpha"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid()
			tt.mutate(&req)

			err := validator.Struct(req)
			require.Error(t, err)
			assert.Equal(t, tt.expected, validator.FormatValidationError(err))
		})
	}

	t.Run("성공: 유효한 요청", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Struct(valid()))
	})

	t.Run("nil 및 일반 에러", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, validator.FormatValidationError(nil))
		assert.Equal(t, "boom", validator.FormatValidationError(errors.New("boom")))
	})
}
