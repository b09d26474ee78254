package log

import (
	"fmt"
	"os"
)

const (
	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

// Options 로그 파일의 위치, 로테이션 정책, 출력 채널 구성을 정의합니다.
type Options struct {
	Name  string // 로그 파일명의 접두어 (예: shop-catalog → logs/shop-catalog.log)
	Dir   string // 로그 디렉토리 (빈 값이면 "logs")
	Level Level

	MaxAge     int // 보관 일수 (0이면 삭제하지 않음)
	MaxSizeMB  int // 파일 하나의 최대 크기 (0이면 100MB)
	MaxBackups int // 로테이션 파일 보관 개수 (0이면 20개)

	EnableCriticalLog bool // ERROR 이상을 <name>.critical.log 에 추가로 기록
	EnableVerboseLog  bool // DEBUG 이하를 메인 로그 대신 <name>.verbose.log 에 기록
	EnableConsoleLog  bool // 모든 레벨을 표준 출력에도 기록

	JSONFormat bool // true면 JSON 포맷으로 기록 (로그 수집기 연동용)

	ReportCaller     bool
	CallerPathPrefix string // 호출자 함수 경로에서 잘라낼 접두어 (예: "github.com/darkkaiser/shop-catalog")
}

// Validate 옵션 값의 범위를 검사합니다.
func (o *Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("로그 파일명(Name)이 비어 있습니다")
	}
	if o.Dir != "" {
		if fi, err := os.Stat(o.Dir); err == nil && !fi.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)에 일반 파일이 존재합니다", o.Dir)
		}
	}

	for name, v := range map[string]int{"MaxAge": o.MaxAge, "MaxSizeMB": o.MaxSizeMB, "MaxBackups": o.MaxBackups} {
		if v < 0 {
			return fmt.Errorf("%s 값은 음수일 수 없습니다: %d", name, v)
		}
	}

	return nil
}

func (o *Options) dir() string {
	if o.Dir == "" {
		return defaultDir
	}
	return o.Dir
}

func (o *Options) maxSizeMB() int {
	if o.MaxSizeMB == 0 {
		return defaultMaxSizeMB
	}
	return o.MaxSizeMB
}

func (o *Options) maxBackups() int {
	if o.MaxBackups == 0 {
		return defaultMaxBackups
	}
	return o.MaxBackups
}

// NewProductionOptions 운영 환경용 옵션을 반환합니다.
// 콘솔 출력 없이 파일만 기록하며 에러 로그와 상세 로그를 별도 파일로 분리합니다.
func NewProductionOptions(appName string) Options {
	return Options{
		Name:              appName,
		Level:             InfoLevel,
		MaxAge:            30,
		MaxSizeMB:         100,
		MaxBackups:        20,
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		ReportCaller:      true,
	}
}

// NewDevelopmentOptions 개발 환경용 옵션을 반환합니다.
func NewDevelopmentOptions(appName string) Options {
	return Options{
		Name:             appName,
		Level:            TraceLevel,
		MaxAge:           1,
		MaxSizeMB:        50,
		MaxBackups:       5,
		EnableConsoleLog: true,
		ReportCaller:     true,
	}
}
