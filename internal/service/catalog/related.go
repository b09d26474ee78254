package catalog

import (
	"context"

	"github.com/darkkaiser/shop-catalog/internal/catalog/pricing"
	"github.com/darkkaiser/shop-catalog/internal/catalog/sanitize"
	"github.com/darkkaiser/shop-catalog/internal/catalog/viewmodel"
	"github.com/darkkaiser/shop-catalog/internal/woocommerce"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
)

const (
	placeholderImage = "https://via.placeholder.com/300x300.png?text=Product"
	relatedName      = "Unnamed"

	statusPublish = "publish"
)

// RelatedProduct 상품 상세 화면 하단의 관련 상품 카드입니다.
type RelatedProduct struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
	Rating float64 `json:"rating"`
}

// loadRelated related_ids가 있으면 해당 상품들을, 없으면 같은 카테고리의 최신 상품을 조회합니다.
func (s *Service) loadRelated(ctx context.Context, record *woocommerce.Product) []RelatedProduct {
	q, ok := s.relatedQuery(record)
	if !ok {
		return []RelatedProduct{}
	}

	products, err := s.source.FetchProducts(ctx, q)
	if err != nil {
		applog.WithComponent(component).
			WithContext(ctx).
			WithFields(applog.Fields{
				"product_id": record.ID,
				"error":      err.Error(),
			}).
			Warn("관련 상품을 불러오지 못해 빈 목록으로 대체합니다")

		return []RelatedProduct{}
	}

	related := make([]RelatedProduct, 0, len(products))
	for i := range products {
		// include 조회 결과에도 자기 자신이 섞일 수 있습니다.
		if products[i].ID == record.ID {
			continue
		}
		related = append(related, toRelated(&products[i]))
	}

	return related
}

func (s *Service) relatedQuery(record *woocommerce.Product) (woocommerce.ProductQuery, bool) {
	if len(record.RelatedIDs) > 0 {
		return woocommerce.ProductQuery{
			Include: record.RelatedIDs,
			PerPage: len(record.RelatedIDs),
			Status:  statusPublish,
		}, true
	}

	if len(record.Categories) == 0 || record.Categories[0].ID <= 0 {
		return woocommerce.ProductQuery{}, false
	}

	return woocommerce.ProductQuery{
		Category: record.Categories[0].ID,
		Exclude:  []int64{record.ID},
		PerPage:  s.config.RelatedLimit,
		Page:     1,
		Status:   statusPublish,
		Order:    "desc",
		OrderBy:  "date",
	}, true
}

func toRelated(p *woocommerce.Product) RelatedProduct {
	price := pricing.ParseAmount(pricing.FirstNonEmpty(p.SalePrice.String(), p.Price.String()), 0).Value
	if p.IsVariable() {
		if r, ok := pricing.ParseRange(p.PriceHTML); ok {
			price = r.Min
		}
	}

	image := placeholderImage
	if len(p.Images) > 0 {
		if u := viewmodel.SecureURL(p.Images[0].Src); u != "" {
			image = u
		}
	}

	return RelatedProduct{
		ID:     p.ID,
		Name:   sanitize.SanitizeOr(p.Name, relatedName),
		Price:  price,
		Image:  image,
		Rating: pricing.ParseAmount(p.AverageRating.String(), 0).Value,
	}
}
