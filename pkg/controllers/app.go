package controller

import (
	"errors"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sh5080/ocr-proxy/pkg/configs"
	middleware "github.com/sh5080/ocr-proxy/pkg/middlewares"
	constants "github.com/sh5080/ocr-proxy/pkg/types"
	responseDto "github.com/sh5080/ocr-proxy/pkg/types/dtos/responses"
	"github.com/sh5080/ocr-proxy/pkg/utils"
)

var GoVersion = runtime.Version()
var startTime = time.Now()

func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cpuUsage, memoryUsage := utils.GetSystemMetrics()

		response := responseDto.HealthResponse{
			Status:      "ok",
			Time:        time.Now(),
			Version:     configs.AppVersion,
			Uptime:      time.Since(startTime).String(),
			GoVersion:   GoVersion,
			CpuUsage:    cpuUsage,
			MemoryUsage: memoryUsage,
		}
		return c.JSON(response)
	}
}

// Metrics는 프로메테우스 메트릭을 제공하는 핸들러입니다
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// ErrorHandler는 핸들러 밖에서 발생한 오류(본문 크기 초과, 404, panic 등)를 JSON으로 응답합니다.
// 본문 크기 초과는 미들웨어 체인 전에 처리되므로 CORS 헤더를 여기서 다시 설정합니다.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	if code == fiber.StatusRequestEntityTooLarge {
		message = constants.MSG_IMAGE_TOO_LARGE
	}
	if code >= fiber.StatusInternalServerError {
		utils.Error("app", "요청 처리 실패 (%s %s): %v", c.Method(), c.Path(), err)
	}

	middleware.SetCorsHeaders(c)
	return c.Status(code).JSON(responseDto.ErrorResponse{Error: message})
}
