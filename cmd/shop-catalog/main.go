package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/shop-catalog/internal/config"
	"github.com/darkkaiser/shop-catalog/internal/pkg/version"
	"github.com/darkkaiser/shop-catalog/internal/service/api"
	"github.com/darkkaiser/shop-catalog/internal/service/catalog"
	"github.com/darkkaiser/shop-catalog/internal/service/contract"
	"github.com/darkkaiser/shop-catalog/internal/woocommerce"
	"github.com/darkkaiser/shop-catalog/internal/woocommerce/fetcher"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
)

// @title Shop Catalog API
// @version 1.0.0
// @description WooCommerce 상품 정보를 상품 상세 화면용 뷰 모델로 가공하여 제공하는 서버의 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 상품 상세 화면 조회 (가격, 옵션별 가격표, 예약금 정책, 리뷰, 관련 상품)
// @description - 옵션, 수량, 결제 방식에 따른 견적 계산
// @description
// @description 모든 엔드포인트는 조회 전용(GET)이며 인증이 필요 없습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

const (
	banner = `
  ____   _                      ____        _          _
 / ___| | |__    ___   _ __    / ___| __ _ | |_  __ _ | |  ___    __ _
 \___ \ | '_ \  / _ \ | '_ \  | |    / _' || __|/ _' || | / _ \  / _' |
  ___) || | | || (_) || |_) | | |___| (_| || |_| (_| || || (_) || (_| |
 |____/ |_| |_| \___/ | .__/   \____|\__,_| \__|\__,_||_| \___/  \__, |
                      |_|                                        |___/ %s
--------------------------------------------------------------------------------
`
)

func main() {
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	services, err := newServices(appConfig, buildInfo)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{"error": err}).Error("서비스 구성 실패")
		appLogCloser.Close()
		os.Exit(1)
	}

	serviceStopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serviceStopWG := &sync.WaitGroup{}

	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{"error": err}).Error("서비스 초기화 실패")

			stop()
			serviceStopWG.Done()
			serviceStopWG.Wait()

			appLogCloser.Close()
			os.Exit(1)
		}
	}

	applog.WithComponent("main").Info("서버 가동 완료")

	<-serviceStopCtx.Done()

	applog.WithComponent("main").Info("종료 신호를 수신했습니다")
	serviceStopWG.Wait()
}

// newServices 설정으로 Fetcher 체인, WooCommerce 클라이언트, 카탈로그 서비스를 조립하고
// 실행할 서비스 목록을 반환합니다.
func newServices(appConfig *config.AppConfig, buildInfo version.Info) ([]contract.Service, error) {
	wc := appConfig.WooCommerce
	retry := appConfig.HTTPRetry

	f := fetcher.New(fetcher.Config{
		Timeout:       wc.Timeout,
		UserAgent:     wc.UserAgent,
		MaxRetries:    retry.MaxRetries,
		MinRetryDelay: retry.RetryDelay,
		MaxRetryDelay: retry.MaxRetryDelay,
		MaxBytes:      wc.MaxResponseBytes,
	})

	client, err := woocommerce.NewClient(woocommerce.Config{
		BaseURL:        wc.BaseURL,
		ConsumerKey:    wc.ConsumerKey,
		ConsumerSecret: wc.ConsumerSecret,
	}, f)
	if err != nil {
		return nil, err
	}

	cat := appConfig.Catalog
	catalogService := catalog.NewService(client, catalog.Config{
		VariationConcurrency: cat.VariationConcurrency,
		ReviewLimit:          cat.ReviewLimit,
		RelatedLimit:         cat.RelatedLimit,
		DeliveryDays:         cat.DeliveryDays,
		DedupImages:          cat.DedupImages,
	})

	apiService := api.NewService(appConfig, catalogService, buildInfo)

	return []contract.Service{apiService}, nil
}
