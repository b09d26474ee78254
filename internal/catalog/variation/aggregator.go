// Package variation 옵션 상품(variation)들의 상세 정보를 조회하여 옵션별 가격표를 만듭니다.
package variation

import (
	"context"
	"strings"

	"github.com/darkkaiser/shop-catalog/internal/catalog/pricing"
	"github.com/darkkaiser/shop-catalog/internal/woocommerce"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
	"golang.org/x/sync/errgroup"
)

const (
	component = "catalog.variation"

	defaultConcurrency = 4
	maxConcurrency     = 32
)

// DetailFetcher 옵션 상품 하나의 상세 정보를 조회합니다.
type DetailFetcher interface {
	FetchProductDetail(ctx context.Context, id int64) (*woocommerce.Product, error)
}

// Aggregator 옵션 상품을 병렬로 조회하여 Maps로 합칩니다.
type Aggregator struct {
	fetcher     DetailFetcher
	concurrency int
}

// NewAggregator concurrency가 1보다 작으면 4를, 32보다 크면 32를 사용합니다.
func NewAggregator(f DetailFetcher, concurrency int) *Aggregator {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	if concurrency > maxConcurrency {
		concurrency = maxConcurrency
	}

	return &Aggregator{
		fetcher:     f,
		concurrency: concurrency,
	}
}

type entry struct {
	key   string
	price pricing.Price
}

// Aggregate ids의 옵션 상품을 최대 concurrency개씩 동시에 조회합니다.
//
// 조회에 실패하거나 옵션 라벨을 알 수 없는 항목은 경고 로그만 남기고 건너뜁니다.
// 결과는 ids 순서대로 합치므로 라벨이 중복되면 뒤에 있는 옵션 상품의 값이 남습니다.
// Context가 취소되면 부분 결과 없이 Context 에러를 반환합니다.
func (a *Aggregator) Aggregate(ctx context.Context, productID int64, ids []int64) (Maps, error) {
	results := make([]*entry, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			p, err := a.fetcher.FetchProductDetail(gctx, id)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}

				applog.WithComponent(component).
					WithContext(ctx).
					WithFields(applog.Fields{
						"product_id":   productID,
						"variation_id": id,
						"error":        err.Error(),
					}).
					Warn("옵션 상품 정보를 불러오지 못해 건너뜁니다")

				return nil
			}

			e, ok := newEntry(p)
			if !ok {
				applog.WithComponent(component).
					WithContext(ctx).
					WithFields(applog.Fields{
						"product_id":   productID,
						"variation_id": id,
					}).
					Warn("옵션 라벨이 없는 옵션 상품을 건너뜁니다")

				return nil
			}
			results[i] = &e

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Maps{}, err
	}
	if err := ctx.Err(); err != nil {
		return Maps{}, err
	}

	return merge(results), nil
}

func newEntry(p *woocommerce.Product) (entry, bool) {
	if p == nil {
		return entry{}, false
	}

	key := optionKey(p.Attributes)
	if key == "" {
		return entry{}, false
	}

	return entry{key: key, price: pricing.ResolveDefault(p)}, true
}

// optionKey 옵션 상품의 첫 번째 속성 값을 라벨로 사용합니다.
func optionKey(attrs []woocommerce.Attribute) string {
	if len(attrs) == 0 {
		return ""
	}

	if key := strings.TrimSpace(attrs[0].Option); key != "" {
		return key
	}
	if len(attrs[0].Options) > 0 {
		return strings.TrimSpace(attrs[0].Options[0])
	}

	return ""
}

func merge(results []*entry) Maps {
	m := NewMaps()

	for _, e := range results {
		if e == nil {
			continue
		}

		sale, regular := e.price.Sale.Value, e.price.Regular.Value

		m.Prices[e.key] = sale

		if regular > sale {
			m.OriginalPrices[e.key] = regular
		} else {
			delete(m.OriginalPrices, e.key)
		}

		if d, ok := pricing.DiscountPercent(regular, sale); ok {
			m.Discounts[e.key] = d
		} else {
			delete(m.Discounts, e.key)
		}
	}

	return m
}
