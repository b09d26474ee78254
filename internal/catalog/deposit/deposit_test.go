package deposit

import (
	"encoding/json"
	"testing"

	"github.com/darkkaiser/shop-catalog/internal/woocommerce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meta(t *testing.T, raw string) woocommerce.MetaDataList {
	t.Helper()

	var l woocommerce.MetaDataList
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	return l
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected Settings
	}{
		{
			name:     "빈 목록",
			raw:      `[]`,
			expected: Settings{Enabled: false, Type: TypeFixed, Amount: 0, Forced: false},
		},
		{
			name:     "배열이 아닌 값",
			raw:      `{"_awcdp_deposit_enabled":"yes"}`,
			expected: Default(),
		},
		{
			name: "AWCDP 비율 예약금",
			raw: `[
				{"key":"_awcdp_deposit_enabled","value":"yes"},
				{"key":"_awcdp_deposit_type","value":"percentage"},
				{"key":"_awcdp_deposits_deposit_amount","value":"10"}
			]`,
			expected: Settings{Enabled: true, Type: TypePercentage, Amount: 10, Forced: false},
		},
		{
			name: "WooCommerce Deposits 고정 예약금 + 강제",
			raw: `[
				{"key":"_enable_deposit","value":"yes"},
				{"key":"_deposits_type","value":"fixed"},
				{"key":"_deposits_value","value":250},
				{"key":"_mepp_force_deposit","value":"yes"}
			]`,
			expected: Settings{Enabled: true, Type: TypeFixed, Amount: 250, Forced: true},
		},
		{
			name: "기본 금액이 0이면 보조 키 사용",
			raw: `[
				{"key":"_awcdp_deposit_enabled","value":"yes"},
				{"key":"_awcdp_deposits_deposit_amount","value":"0"},
				{"key":"_deposits_value","value":"30"}
			]`,
			expected: Settings{Enabled: true, Type: TypeFixed, Amount: 30},
		},
		{
			name: "대소문자 구분",
			raw: `[
				{"key":"_awcdp_deposit_enabled","value":"Yes"},
				{"key":"_awcdp_deposit_type","value":"Percentage"},
				{"key":"_mepp_force_deposit","value":"YES"}
			]`,
			expected: Settings{Type: TypeFixed},
		},
		{
			name: "둘 중 하나라도 percentage",
			raw: `[
				{"key":"_awcdp_deposit_type","value":"fixed"},
				{"key":"_deposits_type","value":"percentage"}
			]`,
			expected: Settings{Type: TypePercentage},
		},
		{
			name: "사용 여부 키 중 하나라도 yes이면 사용",
			raw: `[
				{"key":"_awcdp_deposit_enabled","value":"no"},
				{"key":"_enable_deposit","value":"yes"},
				{"key":"_deposits_value","value":"15"}
			]`,
			expected: Settings{Enabled: true, Type: TypeFixed, Amount: 15},
		},
		{
			name: "사용 여부 키가 모두 yes가 아니면 미사용",
			raw: `[
				{"key":"_enable_deposit","value":"no"},
				{"key":"_awcdp_deposit_enabled","value":""},
				{"key":"_deposits_value","value":"15"}
			]`,
			expected: Settings{Enabled: false, Type: TypeFixed, Amount: 15},
		},
		{
			name: "같은 금액 키는 첫 항목 사용",
			raw: `[
				{"key":"_deposits_value","value":"15"},
				{"key":"_deposits_value","value":"99"},
				{"key":"_mepp_force_deposit","value":"no"},
				{"key":"_mepp_force_deposit","value":"yes"}
			]`,
			expected: Settings{Enabled: false, Type: TypeFixed, Amount: 15, Forced: false},
		},
		{
			name: "해석 불가 금액은 0",
			raw: `[
				{"key":"_awcdp_deposit_enabled","value":"yes"},
				{"key":"_awcdp_deposits_deposit_amount","value":"abc"},
				{"key":"_deposits_value","value":{"x":1}}
			]`,
			expected: Settings{Enabled: true, Type: TypeFixed, Amount: 0},
		},
		{
			name:     "음수 금액은 0",
			raw:      `[{"key":"_deposits_value","value":"-20"}]`,
			expected: Settings{Type: TypeFixed, Amount: 0},
		},
		{
			name:     "관련 없는 키와 잘못된 항목 무시",
			raw:      `["x", 1, {"key":"_sku","value":"A-1"}, {"value":"yes"}]`,
			expected: Default(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Extract(meta(t, tt.raw)))
		})
	}
}

func TestExtract_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Settings{Enabled: false, Type: TypeFixed, Amount: 0, Forced: false}, Extract(nil))
}

func TestSettings_Active(t *testing.T) {
	t.Parallel()

	assert.True(t, Settings{Enabled: true, Amount: 10}.Active())
	assert.False(t, Settings{Enabled: true, Amount: 0}.Active())
	assert.False(t, Settings{Enabled: false, Amount: 10}.Active())
}
