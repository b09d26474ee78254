package catalog

import (
	"context"

	"github.com/darkkaiser/shop-catalog/internal/woocommerce"
	"github.com/stretchr/testify/mock"
)

type mockSource struct {
	mock.Mock
}

var _ ProductSource = (*mockSource)(nil)

func (m *mockSource) FetchProductDetail(ctx context.Context, id int64) (*woocommerce.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*woocommerce.Product), args.Error(1)
}

func (m *mockSource) FetchProducts(ctx context.Context, q woocommerce.ProductQuery) ([]woocommerce.Product, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]woocommerce.Product), args.Error(1)
}

func (m *mockSource) FetchReviews(ctx context.Context, productID int64, perPage int) ([]woocommerce.Review, error) {
	args := m.Called(ctx, productID, perPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]woocommerce.Review), args.Error(1)
}
