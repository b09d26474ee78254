// Package pricing 상품 레코드의 가격 문자열을 해석하고 할인율을 계산합니다.
//
// 카탈로그 데이터는 스키마가 엄격하지 않으므로 이 패키지의 함수는 에러를 반환하지 않습니다.
// 해석에 실패하면 기본값을 사용하고, 그 사실을 Amount.Defaulted 로 알려줍니다.
package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// leadingFloatRegexp 문자열 앞부분의 실수 표기 (예: "12.5abc" → "12.5")
var leadingFloatRegexp = regexp.MustCompile(`^[ \t\n\r\f\v]*[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)

// Amount 해석된 금액입니다.
// Defaulted가 true이면 원문을 해석할 수 없어 기본값이 사용된 것으로, 실제 0원과 구분됩니다.
type Amount struct {
	Value     float64
	Defaulted bool
}

// ParseAmount 문자열 앞부분의 실수를 해석합니다. ("12.5abc" → 12.5, "abc" → fallback)
// 천 단위 구분자는 허용하지 않으며 ("1,299" → 1) 무한대나 NaN은 fallback으로 대체합니다.
func ParseAmount(raw string, fallback float64) Amount {
	m := leadingFloatRegexp.FindString(raw)
	if m == "" {
		return Amount{Value: fallback, Defaulted: true}
	}

	v, err := strconv.ParseFloat(strings.TrimLeft(m, " \t\n\r\f\v"), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return Amount{Value: fallback, Defaulted: true}
	}

	return Amount{Value: v}
}

// FirstNonEmpty 비어 있지 않은 첫 번째 값을 반환합니다. 모두 비어 있으면 빈 문자열을 반환합니다.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// DiscountPercent 정가 대비 판매가의 할인율(%)을 반올림하여 반환합니다.
// regular > sale > 0 이고 반올림한 값이 1 이상일 때만 두 번째 반환값이 true입니다.
func DiscountPercent(regular, sale float64) (int, bool) {
	if !(regular > 0 && sale > 0 && regular > sale) {
		return 0, false
	}

	pct := math.Round(100 * (regular - sale) / regular)
	if math.IsInf(pct, 0) || math.IsNaN(pct) || pct <= 0 {
		return 0, false
	}

	return int(pct), true
}
