package woocommerce

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want Text
	}{
		{"문자열", `{"price":"12.50"}`, "12.50"},
		{"숫자", `{"price":12.5}`, "12.5"},
		{"빈 문자열", `{"price":""}`, ""},
		{"null", `{"price":null}`, ""},
		{"객체", `{"price":{"amount":1}}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var p Product
			require.NoError(t, json.Unmarshal([]byte(tt.in), &p))
			assert.Equal(t, tt.want, p.Price)
		})
	}
}

func TestMetaDataList_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("배열이 아닌 값은 빈 목록", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{`{"meta_data":{}}`, `{"meta_data":"x"}`, `{"meta_data":null}`, `{}`} {
			var p Product
			require.NoError(t, json.Unmarshal([]byte(raw), &p), raw)
			assert.Empty(t, p.MetaData, raw)
		}
	})

	t.Run("다양한 타입의 value", func(t *testing.T) {
		t.Parallel()

		var p Product
		require.NoError(t, json.Unmarshal([]byte(`{"meta_data":[
			{"id":1,"key":"_awcdp_deposit_enabled","value":"yes"},
			{"id":2,"key":"_deposits_value","value":25},
			{"id":3,"key":"_flag","value":true},
			{"id":4,"key":"_complex","value":{"a":[1,2]}},
			"not-an-object",
			{"id":5,"key":"_empty"}
		]}`), &p))

		require.Len(t, p.MetaData, 5)
		assert.Equal(t, "yes", p.MetaData[0].String())
		assert.Equal(t, "25", p.MetaData[1].String())
		assert.Equal(t, "true", p.MetaData[2].String())
		assert.JSONEq(t, `{"a":[1,2]}`, p.MetaData[3].String())
		assert.Equal(t, "", p.MetaData[4].String())

		m, ok := p.MetaData.Lookup("_deposits_value")
		assert.True(t, ok)
		assert.Equal(t, int64(2), m.ID)

		_, ok = p.MetaData.Lookup("_missing")
		assert.False(t, ok)
	})
}
