package pricing

import (
	"github.com/darkkaiser/shop-catalog/internal/woocommerce"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Source 가격을 결정한 근거입니다.
type Source int

const (
	// SourceFields sale_price/regular_price/price 필드
	SourceFields Source = iota

	// SourceRange 옵션 상품의 price_html 가격 범위
	SourceRange
)

// Price 상품의 판매가와 정가입니다.
type Price struct {
	Sale    Amount
	Regular Amount
	Source  Source
}

// Discount 판매가와 정가로 계산한 할인율입니다.
func (p Price) Discount() (int, bool) {
	return DiscountPercent(p.Regular.Value, p.Sale.Value)
}

// HasOriginal 정가가 판매가보다 높아 취소선 가격을 보여줄 수 있는지 여부입니다.
func (p Price) HasOriginal() bool {
	return p.Regular.Value > p.Sale.Value
}

// Resolve 상품의 가격을 결정합니다.
// 옵션 상품(variable)은 price_html 의 가격 범위에서 최저가를 판매가로, 최고가를 정가로 사용하며
// 범위를 찾지 못하면 ResolveDefault와 같은 규칙을 따릅니다.
func Resolve(p *woocommerce.Product) Price {
	if p != nil && p.IsVariable() {
		if r, ok := ParseRange(p.PriceHTML); ok {
			return Price{
				Sale:    Amount{Value: r.Min},
				Regular: Amount{Value: r.Max},
				Source:  SourceRange,
			}
		}
	}

	return ResolveDefault(p)
}

// ResolveDefault 판매가는 sale_price, 정가는 regular_price를 사용하고 비어 있으면 price로 대체합니다.
func ResolveDefault(p *woocommerce.Product) Price {
	if p == nil {
		return Price{Sale: Amount{Defaulted: true}, Regular: Amount{Defaulted: true}}
	}

	return Price{
		Sale:    ParseAmount(FirstNonEmpty(p.SalePrice.String(), p.Price.String()), 0),
		Regular: ParseAmount(FirstNonEmpty(p.RegularPrice.String(), p.Price.String()), 0),
		Source:  SourceFields,
	}
}

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR 화면 표시용 루피 금액 문자열을 반환합니다. (예: 1234.5 → ₹1,234.50)
func FormatINR(v float64) string {
	return inrPrinter.Sprintf("₹%.2f", v)
}
