package middleware

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	constants "github.com/sh5080/satyavadi-go/pkg/types"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

// Prometheus 미들웨어는 HTTP 요청에 대한 메트릭을 수집합니다.
// 서버 상태 게이지는 요청마다가 아니라 일정 주기로만 갱신합니다.
func Prometheus(statusService _interface.ServerStatusService) fiber.Handler {
	var (
		mu               sync.Mutex
		lastMetricUpdate time.Time
	)

	shouldUpdate := func(now time.Time) bool {
		mu.Lock()
		defer mu.Unlock()
		if now.Sub(lastMetricUpdate) < constants.SERVER_METRICS_INTERVAL {
			return false
		}
		lastMetricUpdate = now
		return true
	}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// 오류는 ErrorHandler가 응답을 쓰기 전이므로 상태 코드를 직접 계산
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		utils.RecordRequest(c.Method(), c.Route().Path, status, time.Since(start).Seconds())

		if statusService != nil && shouldUpdate(time.Now()) {
			statusService.GetServerStatus()
		}

		return err
	}
}
