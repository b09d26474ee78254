// Package deposit 상품 meta_data에 기록된 예약금(선결제) 플러그인 설정을 해석합니다.
//
// 두 종류의 플러그인(Advanced Woo Commerce Deposits, WooCommerce Deposits)이 서로 다른 키를 사용하므로
// 모든 키를 keys 테이블 한 곳에서 관리합니다.
package deposit

import (
	"github.com/darkkaiser/shop-catalog/internal/catalog/pricing"
	"github.com/darkkaiser/shop-catalog/internal/woocommerce"
)

// Type 예약금 계산 방식입니다.
type Type string

const (
	TypeFixed      Type = "fixed"      // 수량당 고정 금액
	TypePercentage Type = "percentage" // 결제 금액의 비율(%)
)

// Settings 상품 하나의 예약금 정책입니다.
type Settings struct {
	Enabled bool    `json:"enabled"`
	Type    Type    `json:"type"`
	Amount  float64 `json:"amount"`
	Forced  bool    `json:"forced"` // 예약금 결제를 기본 선택으로 제시할지 여부
}

const (
	valueYes        = "yes"
	valuePercentage = "percentage"
)

var keys = struct {
	enabled         []string // 둘 중 하나라도 "yes"이면 사용
	typeAWCDP       string
	typeDeposits    string
	amountPrimary   string
	amountSecondary string
	forced          string
}{
	enabled:         []string{"_awcdp_deposit_enabled", "_enable_deposit"},
	typeAWCDP:       "_awcdp_deposit_type",
	typeDeposits:    "_deposits_type",
	amountPrimary:   "_awcdp_deposits_deposit_amount",
	amountSecondary: "_deposits_value",
	forced:          "_mepp_force_deposit",
}

// Default 예약금이 없는 상품의 설정입니다.
func Default() Settings {
	return Settings{Type: TypeFixed}
}

// Extract meta_data를 한 번 순회하여 예약금 설정을 만듭니다.
//
//   - 사용 여부는 두 키 중 어느 항목이든 "yes"이면 true입니다.
//   - 그 밖의 키가 여러 번 나오면 첫 번째 항목만 사용합니다.
//   - "yes", "percentage" 값은 대소문자를 구분하여 비교합니다.
//   - 금액은 _awcdp_deposits_deposit_amount 가 0이 아니면 그 값을, 아니면 _deposits_value 를 사용하며
//     음수는 0으로 취급합니다.
func Extract(meta woocommerce.MetaDataList) Settings {
	s := Default()
	if len(meta) == 0 {
		return s
	}

	seen := make(map[string]bool, 6)
	first := func(key string) bool {
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	}

	var primaryAmount, secondary float64

	for _, m := range meta {
		switch m.Key {
		case keys.enabled[0], keys.enabled[1]:
			if m.String() == valueYes {
				s.Enabled = true
			}
		case keys.typeAWCDP, keys.typeDeposits:
			if first(m.Key) && m.String() == valuePercentage {
				s.Type = TypePercentage
			}
		case keys.amountPrimary:
			if first(m.Key) {
				primaryAmount = pricing.ParseAmount(m.String(), 0).Value
			}
		case keys.amountSecondary:
			if first(m.Key) {
				secondary = pricing.ParseAmount(m.String(), 0).Value
			}
		case keys.forced:
			if first(m.Key) {
				s.Forced = m.String() == valueYes
			}
		}
	}

	switch {
	case primaryAmount != 0:
		s.Amount = primaryAmount
	case secondary != 0:
		s.Amount = secondary
	}
	if s.Amount < 0 {
		s.Amount = 0
	}

	return s
}

// Active 예약금 결제 옵션을 제시할 수 있는지 여부입니다.
func (s Settings) Active() bool {
	return s.Enabled && s.Amount > 0
}
