package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// resourceCloser Setup이 연 로그 파일들을 한 번에 정리합니다.
// 라우터를 먼저 닫아 종료 중인 파일로 쓰기가 들어오지 않도록 한 뒤 파일을 닫으며, 여러 번 호출해도 안전합니다.
type resourceCloser struct {
	router *levelRouter
	files  []io.Closer

	closed atomic.Bool
}

func (c *resourceCloser) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.router != nil {
		c.router.Close()
	}

	var errs []error
	for _, f := range c.files {
		if f == nil {
			continue
		}
		if s, ok := f.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
