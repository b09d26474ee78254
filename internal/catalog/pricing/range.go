package pricing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/shop-catalog/pkg/strutil"
)

// rupeeAmountRegexp 루피 기호(&#8377;, &#x20b9;, ₹) 바로 뒤의 금액 (천 단위 구분자 허용)
var rupeeAmountRegexp = regexp.MustCompile(`(?:&#8377;|&#[xX]20[bB]9;|₹)\s*([0-9][0-9,]*(?:\.[0-9]*)?)`)

// Range price_html 에 표시된 최저가와 최고가입니다.
type Range struct {
	Min float64
	Max float64
}

// ParseRange price_html 에서 루피 금액을 문서 순서대로 모두 찾아 최솟값과 최댓값을 반환합니다.
// 금액이 하나면 Min과 Max가 같고, 하나도 없으면 false를 반환합니다.
//
// WooCommerce는 통화 기호를 별도의 <span>으로 감싸므로 원문에서 찾지 못하면
// 마크업을 파싱하여 텍스트만으로 다시 찾습니다.
func ParseRange(priceHTML string) (Range, bool) {
	if priceHTML == "" {
		return Range{}, false
	}

	amounts := scanAmounts(priceHTML)
	if len(amounts) == 0 && strings.ContainsAny(priceHTML, "<&") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(priceHTML)); err == nil {
			amounts = scanAmounts(strutil.NormalizeSpaces(doc.Text()))
		}
	}
	if len(amounts) == 0 {
		return Range{}, false
	}

	r := Range{Min: amounts[0], Max: amounts[0]}
	for _, v := range amounts[1:] {
		r.Min = min(r.Min, v)
		r.Max = max(r.Max, v)
	}

	return r, true
}

func scanAmounts(s string) []float64 {
	var amounts []float64
	for _, m := range rupeeAmountRegexp.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		amounts = append(amounts, v)
	}
	return amounts
}
