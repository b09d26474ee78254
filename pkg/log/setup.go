package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	setupOnce   sync.Once
	setupCloser io.Closer
	setupErr    error
)

// Setup 표준 로거를 옵션에 맞게 구성합니다.
// 프로세스당 한 번만 적용되며 이후 호출은 최초 호출의 결과를 그대로 반환합니다.
// 반환된 Closer는 종료 시점에 반드시 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		setupCloser, setupErr = configure(logrus.StandardLogger(), opts)
	})

	return setupCloser, setupErr
}

func configure(l *Logger, opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("로그 옵션이 올바르지 않습니다: %w", err)
	}

	dir := opts.dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리(%s)를 생성할 수 없습니다: %w", dir, err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}

	openFile := func(suffix string) *lumberjack.Logger {
		name := opts.Name
		if suffix != "" {
			name += "." + suffix
		}
		return &lumberjack.Logger{
			Filename:   filepath.Join(dir, name+".log"),
			MaxSize:    opts.maxSizeMB(),
			MaxBackups: opts.maxBackups(),
			MaxAge:     opts.MaxAge,
			LocalTime:  true,
		}
	}

	router := &levelRouter{
		formatter: newFormatter(opts),
	}
	files := []io.Closer{}

	mainFile := openFile("")
	router.main = mainFile
	files = append(files, mainFile)

	if opts.EnableCriticalLog {
		f := openFile("critical")
		router.critical = f
		files = append(files, f)
	}
	if opts.EnableVerboseLog {
		f := openFile("verbose")
		router.verbose = f
		files = append(files, f)
	}
	if opts.EnableConsoleLog {
		router.console = os.Stdout
	}

	l.SetLevel(level)
	l.SetReportCaller(opts.ReportCaller)
	l.SetOutput(io.Discard)
	l.SetFormatter(discardFormatter{})
	l.AddHook(router)

	c := &resourceCloser{router: router, files: files}

	// Fatal 로그로 프로세스가 종료되기 직전에도 버퍼를 비웁니다.
	logrus.RegisterExitHandler(func() { _ = c.Close() })

	return c, nil
}

func newFormatter(opts Options) Formatter {
	prettyfier := func(frame *runtime.Frame) (string, string) {
		fn := frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
		if opts.CallerPathPrefix != "" {
			if rest, ok := strings.CutPrefix(fn, opts.CallerPathPrefix); ok {
				fn = "..." + rest
			}
		}
		return fn, ""
	}

	if opts.JSONFormat {
		return &logrus.JSONFormatter{
			TimestampFormat:  time.RFC3339,
			CallerPrettyfier: prettyfier,
		}
	}

	return &logrus.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  time.RFC3339,
		CallerPrettyfier: prettyfier,
	}
}

// discardFormatter 표준 로거 출력은 버려지므로 포맷팅 비용을 없애기 위해 사용합니다.
type discardFormatter struct{}

func (discardFormatter) Format(*Entry) ([]byte, error) { return nil, nil }
