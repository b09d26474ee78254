// Package system 헬스체크와 버전 정보처럼 시스템 수준의 엔드포인트를 처리합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/shop-catalog/internal/pkg/version"
	"github.com/darkkaiser/shop-catalog/internal/service/api/constants"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthResponse 헬스체크 응답
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  int64  `json:"uptime"` // 초
	Version string `json:"version"`
}

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	buildInfo version.Info

	startTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(buildInfo version.Info) *Handler {
	return &Handler{
		buildInfo: buildInfo,
		startTime: time.Now(),
	}
}

// RegisterRoutes 시스템 엔드포인트를 등록합니다.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버 가동 상태와 가동 시간, 버전을 반환합니다.
// @Description 인증 없이 호출 가능하며, 모니터링 시스템에서 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug("헬스체크 요청")

	return c.JSON(http.StatusOK, HealthResponse{
		Status:  constants.HealthStatusOK,
		Uptime:  int64(time.Since(h.startTime).Seconds()),
		Version: h.buildInfo.Version,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} version.Info "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.buildInfo)
}
