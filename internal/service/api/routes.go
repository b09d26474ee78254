package api

import (
	"github.com/darkkaiser/shop-catalog/internal/service/api/handler/product"
	"github.com/darkkaiser/shop-catalog/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
//   - 시스템 엔드포인트: /health, /version
//   - 상품 엔드포인트: /api/v1/products/:id, /api/v1/products/:id/quote
//   - API 문서: Swagger UI (/swagger/*)
func RegisterRoutes(e *echo.Echo, systemHandler *system.Handler, productHandler *product.Handler) {
	systemHandler.RegisterRoutes(e)

	v1 := e.Group("/api/v1")
	productHandler.RegisterRoutes(v1)

	registerSwaggerRoutes(e)
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		// 태그 목록만 펼친 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
