package viewmodel

import (
	"strings"
	"time"

	"github.com/darkkaiser/shop-catalog/internal/catalog/deposit"
	"github.com/darkkaiser/shop-catalog/internal/catalog/pricing"
	"github.com/darkkaiser/shop-catalog/internal/catalog/sanitize"
	"github.com/darkkaiser/shop-catalog/internal/catalog/variation"
	"github.com/darkkaiser/shop-catalog/internal/woocommerce"
)

const (
	defaultName          = "Unnamed Product"
	defaultAttributeName = "Option"
	defaultOption        = "Default"
	defaultStockStatus   = "instock"
)

// preferredAttributes 옵션 선택 상자에 우선 사용하는 속성 이름 (소문자)
var preferredAttributes = []string{"watt", "weight"}

type assembleOptions struct {
	dedupImages  bool
	deliveryDate time.Time
}

// Option Assemble의 선택 동작을 지정합니다.
type Option func(*assembleOptions)

// WithImageDedup 이미지 주소의 중복을 순서를 유지한 채 제거합니다.
func WithImageDedup() Option {
	return func(o *assembleOptions) {
		o.dedupImages = true
	}
}

// WithDeliveryDate 예상 배송일을 설정합니다.
func WithDeliveryDate(t time.Time) Option {
	return func(o *assembleOptions) {
		o.deliveryDate = t
	}
}

// Assemble 상품 레코드와 옵션별 가격표, 예약금 설정을 합쳐 표시용 모델을 만듭니다.
// 옵션 상품(variable)이 아니면 vm은 무시됩니다.
func Assemble(p *woocommerce.Product, vm variation.Maps, dep deposit.Settings, category string, opts ...Option) *Product {
	o := assembleOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if p == nil {
		p = &woocommerce.Product{}
	}

	price := pricing.Resolve(p)
	sale, regular := price.Sale.Value, price.Regular.Value

	attrName, options := selectAttribute(p.Attributes)

	vp := &Product{
		ID:            p.ID,
		Name:          sanitize.SanitizeOr(p.Name, defaultName),
		Price:         sale,
		Description:   sanitize.SanitizeOr(p.Description, sanitize.Sanitize(p.ShortDescription)),
		AttributeName: attrName,
		Options:       options,
		Images:        imageURLs(p.Images, o.dedupImages),
		Rating:        pricing.ParseAmount(p.AverageRating.String(), 0).Value,
		ReviewCount:   p.RatingCount,
		InStock:       isInStock(p.StockStatus),
		IsVariable:    p.IsVariable(),
		Variations:    variation.NewMaps(),
		Deposit:       dep,
		Category:      category,
	}

	if regular > sale {
		vp.OriginalPrice = &regular
	}
	if d, ok := pricing.DiscountPercent(regular, sale); ok {
		vp.Discount = &d
	}
	if vp.IsVariable && vm.Prices != nil {
		vp.Variations = withNonNilMaps(vm)
	}
	if !o.deliveryDate.IsZero() {
		vp.DeliveryDate = o.deliveryDate.Format(DeliveryDateLayout)
	}

	return vp
}

// selectAttribute 옵션 선택 상자에 사용할 속성을 고릅니다.
//
//  1. 이름이 watt 또는 weight 인 속성 (대소문자 무시)
//  2. 옵션이 하나 이상 있는 첫 번째 속성
//  3. 없으면 "Option" 이름에 "Default" 옵션 하나
func selectAttribute(attrs []woocommerce.Attribute) (string, []string) {
	var chosen *woocommerce.Attribute

	for i := range attrs {
		name := strings.ToLower(strings.TrimSpace(attrs[i].Name))
		for _, preferred := range preferredAttributes {
			if name == preferred {
				chosen = &attrs[i]
				break
			}
		}
		if chosen != nil {
			break
		}
	}

	if chosen == nil {
		for i := range attrs {
			if len(attrs[i].Options) > 0 {
				chosen = &attrs[i]
				break
			}
		}
	}

	if chosen == nil {
		return defaultAttributeName, []string{defaultOption}
	}

	name := strings.TrimSpace(chosen.Name)
	if name == "" {
		name = defaultAttributeName
	}

	options := make([]string, 0, len(chosen.Options))
	for _, opt := range chosen.Options {
		if opt = strings.TrimSpace(opt); opt != "" {
			options = append(options, opt)
		}
	}
	if len(options) == 0 {
		options = []string{defaultOption}
	}

	return name, options
}

// imageURLs 이미지 주소를 https로 바꾸고 빈 값을 제거합니다. 순서는 유지됩니다.
func imageURLs(images []woocommerce.Image, dedup bool) []string {
	urls := make([]string, 0, len(images))

	var seen map[string]struct{}
	if dedup {
		seen = make(map[string]struct{}, len(images))
	}

	for _, img := range images {
		u := SecureURL(img.Src)
		if u == "" {
			continue
		}

		if dedup {
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
		}

		urls = append(urls, u)
	}

	return urls
}

// SecureURL 앞뒤 공백을 제거하고 http:// 주소를 https:// 로 바꿉니다. 다른 스킴은 그대로 둡니다.
func SecureURL(raw string) string {
	u := strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(u, "http://"); ok {
		return "https://" + rest
	}
	return u
}

func isInStock(status string) bool {
	if status == "" {
		status = defaultStockStatus
	}
	return strings.ToLower(status) == defaultStockStatus
}

func withNonNilMaps(m variation.Maps) variation.Maps {
	if m.OriginalPrices == nil {
		m.OriginalPrices = map[string]float64{}
	}
	if m.Discounts == nil {
		m.Discounts = map[string]int{}
	}
	return m
}
