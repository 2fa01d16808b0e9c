package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/ocr-proxy/pkg/configs"
	_interface "github.com/sh5080/ocr-proxy/pkg/interfaces"
)

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다.
// isServerless가 true이면 /metrics를 노출하지 않습니다 (인스턴스별 메트릭은 의미가 없음).
func SetupRoutes(app *fiber.App, config *configs.EnvConfig, services *_interface.ServiceContainer, isServerless bool) {
	SetupOcrRoutes(config.Server.OcrPath, app, services)
	SetupAppRoutes(app, isServerless)
}
