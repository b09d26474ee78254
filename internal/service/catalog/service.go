// Package catalog 원격 카탈로그에서 상품을 조회하여 상품 상세 화면에 필요한 데이터를 만듭니다.
package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/darkkaiser/shop-catalog/internal/catalog/deposit"
	"github.com/darkkaiser/shop-catalog/internal/catalog/variation"
	"github.com/darkkaiser/shop-catalog/internal/catalog/viewmodel"
	"github.com/darkkaiser/shop-catalog/internal/woocommerce"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
	"golang.org/x/sync/errgroup"
)

const (
	component = "service.catalog"

	defaultCategory = "Uncategorized"
)

// ProductSource 원격 카탈로그 조회 기능입니다. *woocommerce.Client 가 구현합니다.
type ProductSource interface {
	FetchProductDetail(ctx context.Context, id int64) (*woocommerce.Product, error)
	FetchProducts(ctx context.Context, q woocommerce.ProductQuery) ([]woocommerce.Product, error)
	FetchReviews(ctx context.Context, productID int64, perPage int) ([]woocommerce.Review, error)
}

var _ ProductSource = (*woocommerce.Client)(nil)

// Config 상품 상세 화면 구성 설정입니다. 0 이하의 값은 기본값으로 대체됩니다.
type Config struct {
	VariationConcurrency int  // 옵션 상품 동시 조회 수 (기본 4)
	ReviewLimit          int  // 표시할 리뷰 수 (기본 5)
	RelatedLimit         int  // 같은 카테고리에서 가져올 관련 상품 수 (기본 12)
	DeliveryDays         int  // 예상 배송일 = 오늘 + DeliveryDays (기본 5)
	DedupImages          bool // 상품 이미지 주소 중복 제거
}

const (
	defaultReviewLimit  = 5
	defaultRelatedLimit = 12
	defaultDeliveryDays = 5
)

func (c Config) withDefaults() Config {
	if c.ReviewLimit <= 0 {
		c.ReviewLimit = defaultReviewLimit
	}
	if c.RelatedLimit <= 0 {
		c.RelatedLimit = defaultRelatedLimit
	}
	if c.DeliveryDays <= 0 {
		c.DeliveryDays = defaultDeliveryDays
	}
	return c
}

// Service 상품 상세 화면 데이터를 만드는 서비스입니다.
// 요청마다 처음부터 다시 조회하며 요청 간에 공유하는 캐시는 없습니다.
type Service struct {
	source     ProductSource
	aggregator *variation.Aggregator

	config Config

	now func() time.Time
}

// NewService source가 nil이면 panic이 발생합니다.
func NewService(source ProductSource, cfg Config) *Service {
	if source == nil {
		panic("catalog.NewService: ProductSource는 필수입니다")
	}

	return &Service{
		source:     source,
		aggregator: variation.NewAggregator(source, cfg.VariationConcurrency),

		config: cfg.withDefaults(),

		now: time.Now,
	}
}

// BuildViewModel 상품 레코드로 표시용 모델을 만듭니다.
//
// 옵션 상품(variable)이면 옵션 상품들을 조회하여 옵션별 가격표를 함께 채웁니다.
// 옵션 상품 일부의 조회 실패는 무시되며, Context가 취소된 경우에만 에러를 반환합니다.
func (s *Service) BuildViewModel(ctx context.Context, record *woocommerce.Product) (*viewmodel.Product, error) {
	if record == nil {
		return nil, newErrNilRecord()
	}

	vm := variation.NewMaps()
	if record.IsVariable() && len(record.Variations) > 0 {
		var err error
		if vm, err = s.aggregator.Aggregate(ctx, record.ID, record.Variations); err != nil {
			applog.WithComponent(component).
				WithContext(ctx).
				WithFields(applog.Fields{
					"product_id": record.ID,
					"error":      err.Error(),
				}).
				Debug("옵션 가격 조회가 중단되었습니다")

			return nil, err
		}
	}

	opts := []viewmodel.Option{
		viewmodel.WithDeliveryDate(s.now().AddDate(0, 0, s.config.DeliveryDays)),
	}
	if s.config.DedupImages {
		opts = append(opts, viewmodel.WithImageDedup())
	}

	return viewmodel.Assemble(record, vm, deposit.Extract(record.MetaData), categoryLabel(record.Categories), opts...), nil
}

// categoryLabel 첫 번째 카테고리 이름, 없으면 "Uncategorized"
func categoryLabel(categories []woocommerce.Category) string {
	if len(categories) > 0 {
		if name := strings.TrimSpace(categories[0].Name); name != "" {
			return name
		}
	}
	return defaultCategory
}

// Page 상품 상세 화면 한 장에 필요한 데이터입니다.
type Page struct {
	Product   *viewmodel.Product  `json:"product"`
	Selection viewmodel.Selection `json:"selection"`
	Quote     viewmodel.Quote     `json:"quote"`
	Reviews   []Review            `json:"reviews"`
	Related   []RelatedProduct    `json:"related_products"`
}

// LoadProduct 상품을 조회하여 표시용 모델만 만듭니다.
// 상품이 없거나 조회에 실패하면 NotFound 또는 Unavailable 에러를 반환합니다.
func (s *Service) LoadProduct(ctx context.Context, id int64) (*viewmodel.Product, error) {
	record, err := s.fetchDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.BuildViewModel(ctx, record)
}

// LoadProductPage 상품 상세 정보를 조회한 뒤 표시용 모델, 리뷰, 관련 상품을 동시에 준비합니다.
// 리뷰와 관련 상품 조회 실패는 빈 목록으로 대체됩니다.
func (s *Service) LoadProductPage(ctx context.Context, id int64) (*Page, error) {
	record, err := s.fetchDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Reviews: []Review{},
		Related: []RelatedProduct{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		vp, err := s.BuildViewModel(gctx, record)
		if err != nil {
			return err
		}
		page.Product = vp
		return nil
	})
	g.Go(func() error {
		page.Reviews = s.loadReviews(gctx, record.ID)
		return nil
	})
	g.Go(func() error {
		page.Related = s.loadRelated(gctx, record)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	page.Selection = page.Product.DefaultSelection()
	page.Quote = page.Product.Quote(page.Selection)

	return page, nil
}

func (s *Service) fetchDetail(ctx context.Context, id int64) (*woocommerce.Product, error) {
	record, err := s.source.FetchProductDetail(ctx, id)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, newErrProductUnavailable(err, id)
	}
	if record == nil {
		return nil, newErrProductAbsent(id)
	}
	return record, nil
}
