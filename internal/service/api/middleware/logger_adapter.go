package middleware

import (
	"io"

	applog "github.com/darkkaiser/shop-catalog/pkg/log"
	"github.com/labstack/gommon/log"
)

// EchoLogger Echo의 Logger 인터페이스(gommon/log)를 애플리케이션 로거로 연결하는 어댑터입니다.
// Echo 내부 로그(서버 시작 실패 등)도 같은 출력과 포맷으로 기록됩니다.
type EchoLogger struct {
	*applog.Logger
}

// NewEchoLogger l을 감싼 어댑터를 반환합니다. l이 nil이면 전역 로거를 사용합니다.
func NewEchoLogger(l *applog.Logger) EchoLogger {
	if l == nil {
		l = applog.StandardLogger()
	}
	return EchoLogger{Logger: l}
}

func (l EchoLogger) Output() io.Writer {
	return l.Logger.Out
}

func (l EchoLogger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

// Prefix, SetPrefix, SetHeader Echo 고유의 출력 형식 기능은 사용하지 않습니다.
func (l EchoLogger) Prefix() string   { return "" }
func (l EchoLogger) SetPrefix(string) {}
func (l EchoLogger) SetHeader(string) {}

// Level 로그 레벨을 Echo의 레벨로 변환합니다. Trace는 Debug로, 대응하지 않는 레벨은 OFF로 간주합니다.
func (l EchoLogger) Level() log.Lvl {
	switch l.Logger.GetLevel() {
	case applog.TraceLevel, applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	}
	return log.OFF
}

// SetLevel Echo 레벨을 로그 레벨로 변환하여 설정합니다. OFF는 무시합니다.
func (l EchoLogger) SetLevel(lvl log.Lvl) {
	switch lvl {
	case log.DEBUG:
		l.Logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.Logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.Logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.Logger.SetLevel(applog.ErrorLevel)
	}
}

func (l EchoLogger) Print(i ...interface{}) { l.Logger.Print(i...) }
func (l EchoLogger) Printf(format string, args ...interface{}) {
	l.Logger.Printf(format, args...)
}
func (l EchoLogger) Printj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Print() }

func (l EchoLogger) Debug(i ...interface{}) { l.Logger.Debug(i...) }
func (l EchoLogger) Debugf(format string, args ...interface{}) {
	l.Logger.Debugf(format, args...)
}
func (l EchoLogger) Debugj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Debug() }

func (l EchoLogger) Info(i ...interface{}) { l.Logger.Info(i...) }
func (l EchoLogger) Infof(format string, args ...interface{}) {
	l.Logger.Infof(format, args...)
}
func (l EchoLogger) Infoj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Info() }

func (l EchoLogger) Warn(i ...interface{}) { l.Logger.Warn(i...) }
func (l EchoLogger) Warnf(format string, args ...interface{}) {
	l.Logger.Warnf(format, args...)
}
func (l EchoLogger) Warnj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Warn() }

func (l EchoLogger) Error(i ...interface{}) { l.Logger.Error(i...) }
func (l EchoLogger) Errorf(format string, args ...interface{}) {
	l.Logger.Errorf(format, args...)
}
func (l EchoLogger) Errorj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Error() }

func (l EchoLogger) Fatal(i ...interface{}) { l.Logger.Fatal(i...) }
func (l EchoLogger) Fatalf(format string, args ...interface{}) {
	l.Logger.Fatalf(format, args...)
}
func (l EchoLogger) Fatalj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Fatal() }

func (l EchoLogger) Panic(i ...interface{}) { l.Logger.Panic(i...) }
func (l EchoLogger) Panicf(format string, args ...interface{}) {
	l.Logger.Panicf(format, args...)
}
func (l EchoLogger) Panicj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Panic() }
