package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/ocr-proxy/pkg/controllers"
	_interface "github.com/sh5080/ocr-proxy/pkg/interfaces"
)

// SetupOcrRoutes는 OCR 프록시 라우트를 설정합니다. 메서드 판별은 컨트롤러에서 합니다.
func SetupOcrRoutes(endpoint string, router fiber.Router, services *_interface.ServiceContainer) {
	router.All(endpoint, controller.Ocr(services.OcrService))
}
