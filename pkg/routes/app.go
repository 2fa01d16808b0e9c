package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/ocr-proxy/pkg/controllers"
)

// SetupAppRoutes는 애플리케이션 관련 라우트를 설정합니다
func SetupAppRoutes(app *fiber.App, isServerless bool) {
	app.Get("/health", controller.Health())

	if !isServerless {
		app.Get("/metrics", controller.Metrics())
	}
}
