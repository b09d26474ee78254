package product

import (
	"github.com/darkkaiser/shop-catalog/internal/catalog/viewmodel"
	"github.com/darkkaiser/shop-catalog/internal/service/api/constants"
	"github.com/darkkaiser/shop-catalog/internal/service/catalog"
)

type validatable interface {
	bindErrorMessage() string
}

type pageRequest struct {
	ProductID int64 `param:"id" validate:"min=1" korean:"상품 ID"`
}

func (pageRequest) bindErrorMessage() string { return constants.ErrMsgInvalidProductID }

type quoteRequest struct {
	ProductID int64  `param:"id" validate:"min=1" korean:"상품 ID"`
	Option    string `query:"option" validate:"max=200" korean:"옵션"`
	Quantity  int    `query:"quantity" validate:"min=1,max=9999" korean:"수량"`
	Deposit   string `query:"deposit" validate:"omitempty,oneof=full deposit" korean:"결제 방식"`
}

func (quoteRequest) bindErrorMessage() string { return constants.ErrMsgInvalidQuantity }

// PageResponse 상세 화면 응답. catalog.Page의 필드에 초기 견적의 표시용 금액을 더합니다.
type PageResponse struct {
	*catalog.Page
	Display QuoteDisplay `json:"display"`
}

// QuoteResponse 견적 응답
type QuoteResponse struct {
	viewmodel.Quote
	Display QuoteDisplay `json:"display"`
}
