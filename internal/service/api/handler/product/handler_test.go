package product

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/shop-catalog/internal/catalog/deposit"
	"github.com/darkkaiser/shop-catalog/internal/catalog/variation"
	"github.com/darkkaiser/shop-catalog/internal/catalog/viewmodel"
	apperrors "github.com/darkkaiser/shop-catalog/internal/pkg/errors"
	"github.com/darkkaiser/shop-catalog/internal/service/api/constants"
	"github.com/darkkaiser/shop-catalog/internal/service/api/httputil"
	"github.com/darkkaiser/shop-catalog/internal/service/catalog"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

type mockPageLoader struct {
	mock.Mock
}

func (m *mockPageLoader) LoadProductPage(ctx context.Context, id int64) (*catalog.Page, error) {
	args := m.Called(ctx, id)
	page, _ := args.Get(0).(*catalog.Page)
	return page, args.Error(1)
}

func (m *mockPageLoader) LoadProduct(ctx context.Context, id int64) (*viewmodel.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*viewmodel.Product)
	return p, args.Error(1)
}

func newTestProduct() *viewmodel.Product {
	original := 1500.0
	discount := 33

	return &viewmodel.Product{
		ID:            7,
		Name:          "Solar Panel",
		Price:         1000,
		OriginalPrice: &original,
		Discount:      &discount,
		AttributeName: "Watt",
		Options:       []string{"100W", "200W"},
		IsVariable:    true,
		Variations: variation.Maps{
			Prices:         map[string]float64{"100W": 1000, "200W": 1800},
			OriginalPrices: map[string]float64{"200W": 2000},
			Discounts:      map[string]int{"200W": 10},
		},
		Deposit: deposit.Settings{Enabled: true, Type: deposit.TypePercentage, Amount: 20},
	}
}

func setupHandlerTest(t *testing.T) (*mockPageLoader, *echo.Echo) {
	t.Helper()

	loader := &mockPageLoader{}
	t.Cleanup(func() { loader.AssertExpectations(t) })

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	NewHandler(loader).RegisterRoutes(e.Group("/api/v1"))

	return loader, e
}

func serve(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) httputil.ErrorResponse {
	t.Helper()

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// =============================================================================
// Constructor
// =============================================================================

func TestNewHandler(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "PageLoader는 필수입니다", func() { NewHandler(nil) })
	assert.NotNil(t, NewHandler(&mockPageLoader{}))
}

// =============================================================================
// GET /api/v1/products/:id
// =============================================================================

func TestHandler_GetProductPageHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 상세 화면 응답", func(t *testing.T) {
		t.Parallel()

		loader, e := setupHandlerTest(t)

		p := newTestProduct()
		sel := p.DefaultSelection()
		page := &catalog.Page{
			Product:   p,
			Selection: sel,
			Quote:     p.Quote(sel),
			Reviews:   []catalog.Review{{ID: 1, Reviewer: "Asha", Rating: 5, Comment: "Great", Date: "2024-12-01"}},
			Related:   []catalog.RelatedProduct{},
		}
		loader.On("LoadProductPage", mock.Anything, int64(7)).Return(page, nil).Once()

		rec := serve(e, "/api/v1/products/7")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		product := resp["product"].(map[string]any)
		assert.Equal(t, "Solar Panel", product["name"])
		assert.Equal(t, "100W", resp["selection"].(map[string]any)["option"])
		assert.Len(t, resp["reviews"], 1)
		assert.Empty(t, resp["related_products"])

		display := resp["display"].(map[string]any)
		assert.Equal(t, "₹1,000.00", display["unit_price"])
		assert.Equal(t, "₹1,500.00", display["original_price"])
		assert.Equal(t, "₹1,000.00", display["total"])
	})

	tests := []struct {
		name            string
		target          string
		expectedCode    int
		expectedMessage string
	}{
		{"실패: 숫자가 아닌 ID", "/api/v1/products/abc", http.StatusBadRequest, constants.ErrMsgInvalidProductID},
		{"실패: 0 ID", "/api/v1/products/0", http.StatusBadRequest, "상품 ID는 1 이상이어야 합니다"},
		{"실패: 음수 ID", "/api/v1/products/-3", http.StatusBadRequest, "상품 ID는 1 이상이어야 합니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, e := setupHandlerTest(t)

			rec := serve(e, tt.target)
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedMessage, decodeError(t, rec).Message)
		})
	}

	serviceErrors := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"실패: 상품 없음", apperrors.New(apperrors.NotFound, "없음"), http.StatusNotFound},
		{"실패: 카탈로그 장애", apperrors.New(apperrors.Unavailable, "장애"), http.StatusServiceUnavailable},
		{"실패: 요청 시간 초과", context.DeadlineExceeded, http.StatusServiceUnavailable},
	}

	for _, tt := range serviceErrors {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, e := setupHandlerTest(t)
			loader.On("LoadProductPage", mock.Anything, int64(9)).Return(nil, tt.err).Once()

			rec := serve(e, "/api/v1/products/9")
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeError(t, rec).ResultCode)
		})
	}
}

// =============================================================================
// GET /api/v1/products/:id/quote
// =============================================================================

func TestHandler_GetQuoteHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		query           string
		expectedOption  string
		expectedQty     float64
		expectedDeposit string
		expectedTotal   float64
		expectedPayable float64
		expectedDisplay string
	}{
		{"성공: 기본 선택", "", "100W", 1, "full", 1000, 1000, "₹1,000.00"},
		{"성공: 옵션과 수량 지정", "?option=200W&quantity=2", "200W", 2, "full", 3600, 3600, "₹3,600.00"},
		{"성공: 예약금 결제", "?option=200W&quantity=1&deposit=deposit", "200W", 1, "deposit", 1800, 360, "₹360.00"},
		{"성공: 알 수 없는 옵션은 기본 가격", "?option=999W", "999W", 1, "full", 1000, 1000, "₹1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader, e := setupHandlerTest(t)
			loader.On("LoadProduct", mock.Anything, int64(7)).Return(newTestProduct(), nil).Once()

			rec := serve(e, "/api/v1/products/7/quote"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedOption, resp["option"])
			assert.Equal(t, tt.expectedQty, resp["quantity"])
			assert.Equal(t, tt.expectedDeposit, resp["deposit"])
			assert.Equal(t, tt.expectedTotal, resp["total"])
			assert.Equal(t, tt.expectedPayable, resp["payable_amount"])
			assert.Len(t, resp["deposit_options"], 2)
			assert.Equal(t, tt.expectedDisplay, resp["display"].(map[string]any)["payable_amount"])
		})
	}

	invalid := []struct {
		name            string
		query           string
		expectedMessage string
	}{
		{"실패: 숫자가 아닌 수량", "?quantity=many", constants.ErrMsgInvalidQuantity},
		{"실패: 0 수량", "?quantity=0", "수량는 1 이상이어야 합니다"},
		{"실패: 알 수 없는 결제 방식", "?deposit=half", "결제 방식는 [full deposit] 중 하나여야 합니다"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, e := setupHandlerTest(t)

			rec := serve(e, "/api/v1/products/7/quote"+tt.query)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expectedMessage, decodeError(t, rec).Message)
		})
	}

	t.Run("실패: 상품 없음", func(t *testing.T) {
		t.Parallel()

		loader, e := setupHandlerTest(t)
		loader.On("LoadProduct", mock.Anything, int64(7)).Return(nil, apperrors.New(apperrors.NotFound, "없음")).Once()

		rec := serve(e, "/api/v1/products/7/quote")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, constants.ErrMsgProductNotFound, decodeError(t, rec).Message)
	})
}
