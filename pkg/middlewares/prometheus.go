package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/ocr-proxy/pkg/utils"
)

// Prometheus 미들웨어는 HTTP 요청에 대한 메트릭을 수집합니다
func Prometheus(serverName string) fiber.Handler {
	updater := &serverMetricsUpdater{serverName: serverName, interval: 10 * time.Second}

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// 에러 핸들러가 아직 실행되지 않았으므로 fiber.Error의 코드를 우선 사용
		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		utils.RecordRequest(c.Method(), c.Route().Path, status, time.Since(start).Seconds())
		updater.maybeUpdate(time.Now())

		return err
	}
}

// serverMetricsUpdater는 interval마다 한 번씩만 서버 상태 메트릭을 갱신합니다
type serverMetricsUpdater struct {
	serverName string
	interval   time.Duration

	mu         sync.Mutex
	lastUpdate time.Time
}

func (u *serverMetricsUpdater) maybeUpdate(now time.Time) bool {
	u.mu.Lock()
	if now.Sub(u.lastUpdate) < u.interval {
		u.mu.Unlock()
		return false
	}
	u.lastUpdate = now
	u.mu.Unlock()

	cpuUsage, memoryUsage := utils.GetSystemMetrics()

	// 서버 부하 계산 - CPU와 메모리 사용률의 가중 평균
	load := (cpuUsage * 0.7) + (memoryUsage * 0.3)

	healthValue := 1.0
	if cpuUsage > 0.9 || memoryUsage > 0.95 {
		healthValue = 0.0
	}

	capacity := 1.0 - load
	if capacity < 0 {
		capacity = 0
	}

	utils.UpdateServerMetric(u.serverName, "load", load)
	utils.UpdateServerMetric(u.serverName, "healthy", healthValue)
	utils.UpdateServerMetric(u.serverName, "capacity", capacity)
	return true
}
