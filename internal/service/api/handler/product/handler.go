// Package product 상품 상세 화면용 조회 API를 처리합니다.
//
//   - GET /api/v1/products/:id        상세 화면 전체 (뷰 모델, 기본 선택, 견적, 리뷰, 관련 상품)
//   - GET /api/v1/products/:id/quote  선택(옵션, 수량, 결제 방식)에 대한 견적
package product

import (
	"context"
	"net/http"

	"github.com/darkkaiser/shop-catalog/internal/catalog/pricing"
	"github.com/darkkaiser/shop-catalog/internal/catalog/viewmodel"
	"github.com/darkkaiser/shop-catalog/internal/pkg/validator"
	"github.com/darkkaiser/shop-catalog/internal/service/api/constants"
	"github.com/darkkaiser/shop-catalog/internal/service/api/httputil"
	"github.com/darkkaiser/shop-catalog/internal/service/catalog"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
	"github.com/labstack/echo/v4"
)

// PageLoader 상품 화면 데이터를 조회합니다. catalog.Service가 구현합니다.
type PageLoader interface {
	LoadProductPage(ctx context.Context, id int64) (*catalog.Page, error)
	LoadProduct(ctx context.Context, id int64) (*viewmodel.Product, error)
}

var _ PageLoader = (*catalog.Service)(nil)

// Handler 상품 API 핸들러
type Handler struct {
	loader PageLoader
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(loader PageLoader) *Handler {
	if loader == nil {
		panic("PageLoader는 필수입니다")
	}
	return &Handler{loader: loader}
}

// RegisterRoutes g(/api/v1)에 상품 엔드포인트를 등록합니다.
func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/products/:id", h.GetProductPageHandler)
	g.GET("/products/:id/quote", h.GetQuoteHandler)
}

// GetProductPageHandler godoc
// @Summary 상품 상세 화면 조회
// @Description 상품 뷰 모델과 기본 선택, 초기 견적, 리뷰, 관련 상품을 한 번에 반환합니다.
// @Description 리뷰나 관련 상품 조회가 실패하면 해당 항목만 빈 목록으로 응답합니다.
// @Tags Product
// @Produce json
// @Param id path int true "상품 ID"
// @Success 200 {object} product.PageResponse "상품 상세 화면"
// @Failure 400 {object} httputil.ErrorResponse "잘못된 요청 파라미터"
// @Failure 404 {object} httputil.ErrorResponse "상품 없음"
// @Failure 429 {object} httputil.ErrorResponse "요청 한도 초과"
// @Failure 500 {object} httputil.ErrorResponse "내부 서버 오류"
// @Failure 503 {object} httputil.ErrorResponse "카탈로그 서버 일시 장애"
// @Router /api/v1/products/{id} [get]
func (h *Handler) GetProductPageHandler(c echo.Context) error {
	var req pageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	page, err := h.loader.LoadProductPage(c.Request().Context(), req.ProductID)
	if err != nil {
		return httputil.FromError(err)
	}

	h.log(c).WithFields(applog.Fields{
		"product_id":    req.ProductID,
		"is_variable":   page.Product.IsVariable,
		"review_count":  len(page.Reviews),
		"related_count": len(page.Related),
	}).Debug("상품 상세 화면 조회 완료")

	return c.JSON(http.StatusOK, PageResponse{
		Page:    page,
		Display: newQuoteDisplay(page.Quote),
	})
}

// GetQuoteHandler godoc
// @Summary 상품 견적 계산
// @Description 선택한 옵션, 수량, 결제 방식에 대한 단가, 합계, 결제 금액을 계산합니다.
// @Description option을 생략하면 첫 번째 옵션을, deposit을 생략하면 상품의 기본 결제 방식을 사용합니다.
// @Tags Product
// @Produce json
// @Param id path int true "상품 ID"
// @Param option query string false "옵션 라벨 (예: 200W)" maxlength(200)
// @Param quantity query int false "수량" minimum(1) maximum(9999) default(1)
// @Param deposit query string false "결제 방식" Enums(full, deposit)
// @Success 200 {object} product.QuoteResponse "견적"
// @Failure 400 {object} httputil.ErrorResponse "잘못된 요청 파라미터"
// @Failure 404 {object} httputil.ErrorResponse "상품 없음"
// @Failure 429 {object} httputil.ErrorResponse "요청 한도 초과"
// @Failure 500 {object} httputil.ErrorResponse "내부 서버 오류"
// @Failure 503 {object} httputil.ErrorResponse "카탈로그 서버 일시 장애"
// @Router /api/v1/products/{id}/quote [get]
func (h *Handler) GetQuoteHandler(c echo.Context) error {
	req := quoteRequest{Quantity: 1}
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.loader.LoadProduct(c.Request().Context(), req.ProductID)
	if err != nil {
		return httputil.FromError(err)
	}

	sel := p.DefaultSelection()
	if req.Option != "" {
		sel.Option = req.Option
	}
	if req.Deposit != "" {
		sel.Deposit = viewmodel.ParseDepositKind(req.Deposit)
	}
	sel.Quantity = req.Quantity

	q := p.Quote(sel)

	return c.JSON(http.StatusOK, QuoteResponse{
		Quote:   q,
		Display: newQuoteDisplay(q),
	})
}

func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint": c.Path(),
	})
}

// bindAndValidate 경로/쿼리 파라미터를 바인딩하고 검증합니다.
// 숫자가 아닌 값처럼 바인딩 단계에서 실패한 경우에도 필드별 400 메시지로 응답합니다.
func bindAndValidate(c echo.Context, req validatable) error {
	b := &echo.DefaultBinder{}
	if err := b.BindPathParams(c, req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgInvalidProductID)
	}
	if err := b.BindQueryParams(c, req); err != nil {
		return httputil.NewBadRequestError(req.bindErrorMessage())
	}
	if err := validator.Struct(req); err != nil {
		return httputil.NewBadRequestError(validator.FormatValidationError(err))
	}
	return nil
}

// QuoteDisplay 견적 금액을 화면 표시용(₹1,234.50) 문자열로 변환한 값입니다.
type QuoteDisplay struct {
	UnitPrice     string `json:"unit_price"`
	OriginalPrice string `json:"original_price,omitempty"`
	Total         string `json:"total"`
	PayableAmount string `json:"payable_amount"`
}

func newQuoteDisplay(q viewmodel.Quote) QuoteDisplay {
	d := QuoteDisplay{
		UnitPrice:     pricing.FormatINR(q.UnitPrice),
		Total:         pricing.FormatINR(q.Total),
		PayableAmount: pricing.FormatINR(q.PayableAmount),
	}
	if q.OriginalPrice != nil {
		d.OriginalPrice = pricing.FormatINR(*q.OriginalPrice)
	}
	return d
}
