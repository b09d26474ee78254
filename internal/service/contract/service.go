// Package contract 서비스 계층이 공유하는 인터페이스를 정의합니다.
package contract

import (
	"context"
	"sync"
)

// Service 백그라운드에서 실행되는 서비스의 생명주기 인터페이스입니다.
//
// Start는 서비스를 별도 고루틴에서 시작하고 즉시 반환합니다. serviceStopCtx가 취소되면
// 서비스는 정리 작업을 마친 뒤 serviceStopWG.Done을 호출해야 합니다.
// 에러를 반환한 경우에는 호출자가 Done을 호출합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
