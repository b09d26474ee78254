// Package config 설정 파일, .env 파일, 환경 변수를 읽어 애플리케이션 설정을 구성합니다.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/shop-catalog/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션 식별자
	AppName string = "shop-catalog"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽는 설정 파일
	DefaultFilename = AppName + ".json"

	// DefaultEnvFilename 인증 정보 등 비밀 값을 담는 선택적 .env 파일
	DefaultEnvFilename = ".env"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사 (예: CATALOG_WOOCOMMERCE__BASE_URL)
	EnvPrefix = "CATALOG_"
)

// 기본값
const (
	DefaultTimeout          = "30s"
	DefaultMaxResponseBytes = 10 * 1024 * 1024

	DefaultMaxRetries    = 3
	DefaultRetryDelay    = "1s"
	DefaultMaxRetryDelay = "30s"

	DefaultVariationConcurrency = 4
	DefaultReviewLimit          = 5
	DefaultRelatedLimit         = 12
	DefaultDeliveryDays         = 5

	DefaultListenPort         = 8080
	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40
	DefaultRequestTimeout     = "15s"
)

// AppConfig 애플리케이션 설정의 최상위 구조체
type AppConfig struct {
	Debug       bool              `json:"debug"`
	WooCommerce WooCommerceConfig `json:"woocommerce"`
	HTTPRetry   HTTPRetryConfig   `json:"http_retry"`
	Catalog     CatalogConfig     `json:"catalog"`
	API         APIConfig         `json:"api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.WooCommerce, "WooCommerce"); err != nil {
		return err
	}
	if err := checkStruct(v, c.HTTPRetry, "HTTP 재시도"); err != nil {
		return err
	}
	if c.HTTPRetry.MaxRetryDelay < c.HTTPRetry.RetryDelay {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("HTTP 최대 재시도 대기 시간(max_retry_delay: %s)은 retry_delay(%s)보다 작을 수 없습니다", c.HTTPRetry.MaxRetryDelay, c.HTTPRetry.RetryDelay))
	}
	if err := checkStruct(v, c.Catalog, "카탈로그"); err != nil {
		return err
	}
	if err := c.API.validate(v); err != nil {
		return err
	}
	return nil
}

// VerifyRecommendations 동작에는 문제가 없지만 운영상 주의가 필요한 설정에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if strings.HasPrefix(strings.ToLower(c.WooCommerce.BaseURL), "http://") && c.WooCommerce.ConsumerKey != "" {
		warnings = append(warnings, "WooCommerce 주소가 http:// 입니다. 인증 정보(consumer_key)가 암호화되지 않은 채 전송됩니다")
	}
	if c.API.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.ListenPort))
	}
	if c.API.RateLimitPerSecond == 0 {
		warnings = append(warnings, "API 요청 속도 제한(rate_limit_per_second)이 비활성화되어 있습니다")
	}

	return warnings
}

// WooCommerceConfig 원격 카탈로그(WooCommerce REST API) 접속 설정
type WooCommerceConfig struct {
	BaseURL          string        `json:"base_url" validate:"required,http_url"`
	ConsumerKey      string        `json:"consumer_key" validate:"required_with=ConsumerSecret"`
	ConsumerSecret   string        `json:"consumer_secret" validate:"required_with=ConsumerKey"`
	Timeout          time.Duration `json:"timeout" validate:"gt=0"`
	UserAgent        string        `json:"user_agent"`
	MaxResponseBytes int64         `json:"max_response_bytes" validate:"min=-1"`
}

// HTTPRetryConfig 원격 호출 실패 시 재시도 정책
type HTTPRetryConfig struct {
	MaxRetries    int           `json:"max_retries" validate:"min=0,max=10"`
	RetryDelay    time.Duration `json:"retry_delay" validate:"gt=0"`
	MaxRetryDelay time.Duration `json:"max_retry_delay" validate:"gt=0"`
}

// CatalogConfig 상품 상세 화면 구성 설정
type CatalogConfig struct {
	VariationConcurrency int  `json:"variation_concurrency" validate:"min=1,max=32"`
	ReviewLimit          int  `json:"review_limit" validate:"min=1,max=100"`
	RelatedLimit         int  `json:"related_limit" validate:"min=1,max=100"`
	DeliveryDays         int  `json:"delivery_days" validate:"min=1,max=365"`
	DedupImages          bool `json:"dedup_images"`
}

// APIConfig 상품 조회 REST API 서버 설정
type APIConfig struct {
	ListenPort         int           `json:"listen_port" validate:"min=1,max=65535"`
	RateLimitPerSecond float64       `json:"rate_limit_per_second" validate:"min=0"`
	RateLimitBurst     int           `json:"rate_limit_burst" validate:"min=1"`
	RequestTimeout     time.Duration `json:"request_timeout" validate:"gt=0"`
	CORS               CORSConfig    `json:"cors"`
}

func (c *APIConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, *c, "API 서버"); err != nil {
		return err
	}
	for _, origin := range c.CORS.AllowOrigins {
		if origin == "*" && len(c.CORS.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return nil
}

// CORSConfig 브라우저에서 API를 호출할 수 있는 Origin 목록. 비어 있으면 CORS 헤더를 보내지 않습니다.
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func defaults() map[string]any {
	return map[string]any{
		"woocommerce.timeout":            DefaultTimeout,
		"woocommerce.max_response_bytes": DefaultMaxResponseBytes,

		"http_retry.max_retries":     DefaultMaxRetries,
		"http_retry.retry_delay":     DefaultRetryDelay,
		"http_retry.max_retry_delay": DefaultMaxRetryDelay,

		"catalog.variation_concurrency": DefaultVariationConcurrency,
		"catalog.review_limit":          DefaultReviewLimit,
		"catalog.related_limit":         DefaultRelatedLimit,
		"catalog.delivery_days":         DefaultDeliveryDays,
		"catalog.dedup_images":          false,

		"api.listen_port":           DefaultListenPort,
		"api.rate_limit_per_second": DefaultRateLimitPerSecond,
		"api.rate_limit_burst":      DefaultRateLimitBurst,
		"api.request_timeout":       DefaultRequestTimeout,
	}
}

// Load 기본 설정 파일과 .env 파일을 읽어 설정을 구성합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename, DefaultEnvFilename)
}

// LoadWithFile 아래 순서로 설정을 읽으며 뒤에 읽은 값이 앞의 값을 덮어씁니다.
//
//  1. 기본값
//  2. JSON 설정 파일 (필수)
//  3. .env 파일의 CATALOG_ 변수 (선택, 파일이 없으면 건너뜀). 프로세스 환경 변수는 변경하지 않습니다.
//  4. CATALOG_ 환경 변수 (이중 밑줄 __ 은 계층 구분자, 예: CATALOG_HTTP_RETRY__MAX_RETRIES)
func LoadWithFile(filename, envFilename string) (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	if envFilename != "" {
		dotenv, err := readDotEnv(envFilename)
		if err != nil {
			return nil, err
		}
		if err := k.Load(confmap.Provider(dotenv, "."), nil); err != nil {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf(".env 파일 설정 반영에 실패했습니다: '%s'", envFilename))
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           &appConfig,
			TagName:          "json",
			ErrorUnused:      true, // 구조체에 없는 키가 있으면 오타로 간주
			WeaklyTypedInput: true, // 환경 변수는 모두 문자열
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// readDotEnv .env 파일에서 CATALOG_ 로 시작하는 항목만 설정 키로 변환하여 반환합니다.
func readDotEnv(filename string) (map[string]any, error) {
	values, err := godotenv.Read(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf(".env 파일을 읽을 수 없습니다: '%s'", filename))
	}

	out := make(map[string]any, len(values))
	for key, value := range values {
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		out[normalizeEnvKey(key)] = value
	}
	return out, nil
}

// normalizeEnvKey CATALOG_API__LISTEN_PORT → api.listen_port
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
