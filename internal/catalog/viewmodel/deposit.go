package viewmodel

import "github.com/darkkaiser/shop-catalog/internal/catalog/deposit"

// DepositKind 결제 방식입니다.
type DepositKind string

const (
	KindFull    DepositKind = "full"    // 전액 결제
	KindDeposit DepositKind = "deposit" // 예약금만 먼저 결제
)

const (
	labelFull    = "Pay Full Amount"
	labelDeposit = "Pay Deposit Amount"
)

// DepositOption 화면에 제시하는 결제 방식 하나입니다.
type DepositOption struct {
	Kind            DepositKind `json:"kind"`
	Label           string      `json:"label"`
	Amount          float64     `json:"amount"`
	RemainingAmount *float64    `json:"remaining_amount,omitempty"` // 예약금 결제 후 남는 금액
}

// DepositOptions 예약금이 활성화되어 있고 금액이 0보다 크면 [전액, 예약금] 두 항목을 반환합니다.
// 그 외에는 빈 목록을 반환합니다.
func (p *Product) DepositOptions(option string, quantity int) []DepositOption {
	if !p.Deposit.Active() {
		return []DepositOption{}
	}

	total := p.CurrentPrice(option) * float64(quantity)

	var amount float64
	if p.Deposit.Type == deposit.TypePercentage {
		amount = total * p.Deposit.Amount / 100
	} else {
		amount = p.Deposit.Amount * float64(quantity)
	}
	remaining := total - amount

	return []DepositOption{
		{Kind: KindFull, Label: labelFull, Amount: total},
		{Kind: KindDeposit, Label: labelDeposit, Amount: amount, RemainingAmount: &remaining},
	}
}

// SelectedAmount 선택한 결제 방식으로 지금 결제할 금액입니다.
// 예약금 선택지가 없거나 kind에 해당하는 항목이 없으면 전액을 반환합니다.
func (p *Product) SelectedAmount(option string, quantity int, kind DepositKind) float64 {
	for _, o := range p.DepositOptions(option, quantity) {
		if o.Kind == kind {
			return o.Amount
		}
	}
	return p.CurrentPrice(option) * float64(quantity)
}
