package viewmodel

import "strings"

// Selection 상품 상세 화면에서 사용자가 고른 값입니다.
type Selection struct {
	Option   string      `json:"option"`
	Quantity int         `json:"quantity"`
	Deposit  DepositKind `json:"deposit"`
}

// DefaultSelection 화면 진입 시의 초기 선택입니다.
// 첫 번째 옵션, 수량 1을 고르고 예약금이 강제된 상품이면 예약금 결제를 미리 선택합니다.
func (p *Product) DefaultSelection() Selection {
	sel := Selection{Quantity: 1, Deposit: KindFull}

	if len(p.Options) > 0 {
		sel.Option = p.Options[0]
	}
	if p.Deposit.Active() && p.Deposit.Forced {
		sel.Deposit = KindDeposit
	}

	return sel
}

// ParseDepositKind 알 수 없는 값이면 전액 결제로 취급합니다.
func ParseDepositKind(s string) DepositKind {
	if DepositKind(strings.ToLower(strings.TrimSpace(s))) == KindDeposit {
		return KindDeposit
	}
	return KindFull
}

// Quote 하나의 선택에 대한 가격 계산 결과입니다.
type Quote struct {
	Selection

	UnitPrice     float64  `json:"unit_price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Discount      *int     `json:"discount,omitempty"`

	Total          float64         `json:"total"`
	DepositOptions []DepositOption `json:"deposit_options"`
	PayableAmount  float64         `json:"payable_amount"`
}

// Quote 선택에 대한 모든 가격 정보를 한 번에 계산합니다.
// 수량이 1보다 작으면 1로 보정하고, 알 수 없는 옵션이면 기본 가격을 사용합니다.
func (p *Product) Quote(sel Selection) Quote {
	if sel.Quantity < 1 {
		sel.Quantity = 1
	}
	if sel.Deposit == "" {
		sel.Deposit = KindFull
	}

	unit := p.CurrentPrice(sel.Option)

	q := Quote{
		Selection:      sel,
		UnitPrice:      unit,
		Total:          unit * float64(sel.Quantity),
		DepositOptions: p.DepositOptions(sel.Option, sel.Quantity),
		PayableAmount:  p.SelectedAmount(sel.Option, sel.Quantity, sel.Deposit),
	}
	if v, ok := p.CurrentOriginalPrice(sel.Option); ok {
		q.OriginalPrice = &v
	}
	if d, ok := p.CurrentDiscount(sel.Option); ok {
		q.Discount = &d
	}

	return q
}
