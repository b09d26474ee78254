package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"빈 문자열", "", ""},
		{"공백만 존재", " \t\n ", ""},
		{"앞뒤 공백", "  Cotton Saree  ", "Cotton Saree"},
		{"내부 연속 공백", "₹1,299   –   ₹1,499", "₹1,299 – ₹1,499"},
		{"여러 줄", "\n  라인 1\n\n  라인2\n", "라인 1 라인2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeSpaces(tt.in))
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		sep      string
		expected []string
	}{
		{"일반", "12, 34,56", ",", []string{"12", "34", "56"}},
		{"빈 항목 제거", "a, , b,,", ",", []string{"a", "b"}},
		{"빈 문자열", "", ",", nil},
		{"공백만 존재", " , ", ",", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, SplitAndTrim(tt.in, tt.sep))
		})
	}
}
