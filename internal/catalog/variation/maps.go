package variation

// Maps 옵션 라벨(첫 번째 속성 값)별 가격 정보입니다.
// OriginalPrices는 정가가 판매가보다 높은 옵션에만, Discounts는 할인율이 있는 옵션에만 값이 있습니다.
type Maps struct {
	Prices         map[string]float64 `json:"prices"`
	OriginalPrices map[string]float64 `json:"original_prices"`
	Discounts      map[string]int     `json:"discounts"`
}

// NewMaps 비어 있는 Maps를 반환합니다.
func NewMaps() Maps {
	return Maps{
		Prices:         map[string]float64{},
		OriginalPrices: map[string]float64{},
		Discounts:      map[string]int{},
	}
}

// Empty 옵션별 가격이 하나도 없으면 true를 반환합니다. 이 경우 호출자는 기본 가격을 사용해야 합니다.
func (m Maps) Empty() bool {
	return len(m.Prices) == 0
}

func (m Maps) Price(option string) (float64, bool) {
	v, ok := m.Prices[option]
	return v, ok
}

func (m Maps) OriginalPrice(option string) (float64, bool) {
	v, ok := m.OriginalPrices[option]
	return v, ok
}

func (m Maps) Discount(option string) (int, bool) {
	v, ok := m.Discounts[option]
	return v, ok
}
