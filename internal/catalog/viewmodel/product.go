// Package viewmodel 상품 레코드를 화면 표시용 모델로 조립하고, 사용자의 선택(옵션, 수량, 결제 방식)에 따른
// 가격과 예약금 금액을 계산합니다.
//
// 조립된 Product는 변경되지 않으며 모든 조회 메서드는 부수 효과가 없으므로 여러 요청에서 동시에 사용해도 안전합니다.
package viewmodel

import (
	"github.com/darkkaiser/shop-catalog/internal/catalog/deposit"
	"github.com/darkkaiser/shop-catalog/internal/catalog/pricing"
	"github.com/darkkaiser/shop-catalog/internal/catalog/variation"
)

// DeliveryDateLayout 예상 배송일 표기 형식
const DeliveryDateLayout = "2006-01-02"

// Product 상품 상세 화면의 표시용 모델입니다.
type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`

	// Price 기본 판매가, OriginalPrice/Discount 는 정가가 판매가보다 높을 때만 존재합니다.
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Discount      *int     `json:"discount,omitempty"`

	Description string `json:"description"`

	AttributeName string   `json:"attribute_name"`
	Options       []string `json:"options"`

	Images []string `json:"images"`

	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	InStock     bool    `json:"in_stock"`

	IsVariable bool           `json:"is_variable"`
	Variations variation.Maps `json:"variations"`

	Deposit deposit.Settings `json:"deposit"`

	Category     string `json:"category"`
	DeliveryDate string `json:"delivery_date,omitempty"`
}

// CurrentPrice 선택한 옵션의 판매가입니다. 옵션 가격이 없으면 기본 판매가를 반환합니다.
func (p *Product) CurrentPrice(option string) float64 {
	if p.IsVariable {
		if v, ok := p.Variations.Price(option); ok {
			return v
		}
	}
	return p.Price
}

// CurrentOriginalPrice 선택한 옵션의 정가입니다. 현재 판매가보다 높을 때만 두 번째 반환값이 true입니다.
//
// 옵션별 정가가 현재 판매가보다 높으면 그 값을, 아니면 기본 정가를 같은 조건으로 사용합니다.
func (p *Product) CurrentOriginalPrice(option string) (float64, bool) {
	current := p.CurrentPrice(option)

	if p.IsVariable {
		if v, ok := p.Variations.OriginalPrice(option); ok && v > current {
			return v, true
		}
	}

	if p.OriginalPrice != nil && *p.OriginalPrice > current {
		return *p.OriginalPrice, true
	}

	return 0, false
}

// CurrentDiscount 선택한 옵션의 할인율(%)입니다.
// 옵션별 할인율, 현재 정가와 판매가로 다시 계산한 값, 기본 할인율 순서로 사용합니다.
func (p *Product) CurrentDiscount(option string) (int, bool) {
	if p.IsVariable {
		if d, ok := p.Variations.Discount(option); ok {
			return d, true
		}
	}

	if original, ok := p.CurrentOriginalPrice(option); ok {
		if d, ok := pricing.DiscountPercent(original, p.CurrentPrice(option)); ok {
			return d, true
		}
	}

	if p.Discount != nil {
		return *p.Discount, true
	}

	return 0, false
}
