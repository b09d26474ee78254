package woocommerce

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Product WooCommerce REST API(/wp-json/wc/v3/products)의 상품 레코드 중 카탈로그에서 사용하는 필드입니다.
// 옵션 상품(variation) 레코드도 같은 구조로 내려옵니다.
type Product struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"` // simple, variable, variation 등
	Status           string `json:"status"`
	Description      string `json:"description"`
	ShortDescription string `json:"short_description"`

	Price        Text   `json:"price"`
	RegularPrice Text   `json:"regular_price"`
	SalePrice    Text   `json:"sale_price"`
	PriceHTML    string `json:"price_html"`

	Images     []Image     `json:"images"`
	Attributes []Attribute `json:"attributes"`
	Categories []Category  `json:"categories"`
	Variations []int64     `json:"variations"`
	RelatedIDs []int64     `json:"related_ids"`

	AverageRating Text   `json:"average_rating"`
	RatingCount   int    `json:"rating_count"`
	StockStatus   string `json:"stock_status"`

	MetaData MetaDataList `json:"meta_data"`
}

// IsVariable 옵션별로 가격이 다른 상품인지 여부를 반환합니다.
func (p *Product) IsVariable() bool {
	return p.Type == TypeVariable
}

// TypeVariable 옵션 상품을 가진 상품의 type 값
const TypeVariable = "variable"

type Image struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Attribute 상품 속성입니다.
// 상위 상품은 Options 목록을, 옵션 상품은 선택된 값 하나를 Option에 담아 내려줍니다.
type Attribute struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Option  string   `json:"option"`
	Options []string `json:"options"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Review /products/reviews 응답 레코드입니다.
type Review struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	Reviewer    string `json:"reviewer"`
	Review      string `json:"review"` // HTML
	Rating      int    `json:"rating"`
	DateCreated string `json:"date_created"` // 사이트 시간대 기준 ISO8601 (예: 2024-03-01T10:20:30)
	Verified    bool   `json:"verified"`
}

// Text 플러그인에 따라 문자열 또는 숫자로 내려오는 값을 문자열로 받습니다.
// null, 객체, 배열은 빈 문자열이 됩니다.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	r := gjson.ParseBytes(b)
	switch r.Type {
	case gjson.String:
		*t = Text(r.Str)
	case gjson.Number, gjson.True, gjson.False:
		*t = Text(r.Raw)
	default:
		*t = ""
	}
	return nil
}

func (t Text) String() string {
	return string(t)
}

// MetaData 플러그인이 상품에 붙이는 key/value 항목입니다. value의 타입은 플러그인마다 다릅니다.
type MetaData struct {
	ID    int64           `json:"id"`
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// String value를 문자열로 반환합니다. 문자열은 따옴표 없이, 그 외 값은 JSON 원문 그대로 반환합니다.
func (m MetaData) String() string {
	r := gjson.ParseBytes(m.Value)
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Null:
		return ""
	default:
		return r.Raw
	}
}

// MetaDataList meta_data 배열입니다.
// 배열이 아닌 값이 내려오면 빈 목록으로, 객체가 아닌 항목은 건너뛰고 디코딩합니다.
type MetaDataList []MetaData

func (l *MetaDataList) UnmarshalJSON(b []byte) error {
	r := gjson.ParseBytes(b)
	if !r.IsArray() {
		*l = nil
		return nil
	}

	list := make(MetaDataList, 0, len(r.Array()))
	r.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}

		md := MetaData{
			ID:  item.Get("id").Int(),
			Key: item.Get("key").String(),
		}
		if v := item.Get("value"); v.Exists() {
			md.Value = json.RawMessage(v.Raw)
		}
		list = append(list, md)

		return true
	})
	*l = list

	return nil
}

// Lookup key가 일치하는 첫 번째 항목을 반환합니다.
func (l MetaDataList) Lookup(key string) (MetaData, bool) {
	for _, m := range l {
		if m.Key == key {
			return m, true
		}
	}
	return MetaData{}, false
}
