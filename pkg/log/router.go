package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// levelRouter 로그 엔트리를 레벨에 따라 여러 Writer로 분배하는 logrus Hook 입니다.
//
//   - console  : 모든 레벨
//   - critical : ERROR 이상 (main 에도 함께 기록)
//   - verbose  : DEBUG 이하 (main 에는 기록하지 않음)
//   - main     : INFO 이상
//
// 표준 로거의 출력은 io.Discard로 막아두고 실제 기록은 모두 이 Hook이 담당합니다.
type levelRouter struct {
	main     io.Writer
	critical io.Writer
	verbose  io.Writer
	console  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (r *levelRouter) Levels() []Level {
	return logrus.AllLevels
}

func (r *levelRouter) Fire(entry *Entry) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil
	}

	line, err := r.formatter.Format(entry)
	if err != nil {
		return err
	}

	// 콘솔 쓰기 실패는 무시합니다.
	if r.console != nil {
		_, _ = r.console.Write(line)
	}

	var firstErr error
	record := func(w io.Writer, channel string) {
		if w == nil {
			return
		}
		if _, err := w.Write(line); err != nil {
			fmt.Fprintf(os.Stderr, "[log] %s 로그 파일 쓰기 실패: %v\n", channel, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if entry.Level <= ErrorLevel {
		record(r.critical, "critical")
	}

	if entry.Level >= DebugLevel {
		record(r.verbose, "verbose")
		return firstErr
	}

	record(r.main, "main")

	return firstErr
}

// Close 이후의 Fire 호출을 모두 무시하도록 전환합니다.
// 진행 중인 Fire가 끝날 때까지 대기하므로, 반환 후에는 Writer를 닫아도 안전합니다.
func (r *levelRouter) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}
