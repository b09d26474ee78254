// Package strutil 문자열 정규화 헬퍼를 제공합니다.
package strutil

import "strings"

// NormalizeSpaces 앞뒤 공백을 제거하고 내부의 연속된 공백(개행 포함)을 하나로 줄입니다.
// 예: "  ₹1,299 \n –  ₹1,499 " -> "₹1,299 – ₹1,499"
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitAndTrim sep으로 분리한 각 항목의 앞뒤 공백을 제거하고 빈 항목은 버립니다.
// 남은 항목이 없으면 nil을 반환합니다.
func SplitAndTrim(s, sep string) []string {
	var out []string
	for _, tok := range strings.Split(s, sep) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
