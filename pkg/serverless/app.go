package serverless

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sh5080/ocr-proxy/pkg/configs"
	controller "github.com/sh5080/ocr-proxy/pkg/controllers"
	_interface "github.com/sh5080/ocr-proxy/pkg/interfaces"
	middleware "github.com/sh5080/ocr-proxy/pkg/middlewares"
	route "github.com/sh5080/ocr-proxy/pkg/routes"
	service "github.com/sh5080/ocr-proxy/pkg/services"
	"github.com/sh5080/ocr-proxy/pkg/utils"
)

// NewApp은 설정과 서비스 컨테이너로 Fiber 앱을 구성합니다.
// 온프레미스(isServerless=false)에서만 Prometheus 메트릭을 수집합니다.
func NewApp(config *configs.EnvConfig, services *_interface.ServiceContainer, isServerless bool) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               config.Server.AppName,
		BodyLimit:             config.Server.BodyLimit,
		ErrorHandler:          controller.ErrorHandler,
		DisableStartupMessage: isServerless, // 서버리스 환경에서는 시작 메시지 비활성화
	})

	app.Use(recover.New())
	app.Use(middleware.Cors())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
	}))
	if !isServerless {
		utils.InitMetrics()
		app.Use(middleware.Prometheus(config.Server.AppName))
	}

	route.SetupRoutes(app, config, services, isServerless)
	return app
}

var (
	app     *fiber.App
	appOnce sync.Once
)

// 서버리스 환경에서는 앱 인스턴스를 전역으로 유지하여 콜드 스타트를 최소화합니다.
// GetApp은 AWS Lambda 핸들러 또는 Cloud Run 진입점에서 호출됩니다.
func GetApp() *fiber.App {
	appOnce.Do(func() {
		config := configs.GetConfig()
		app = NewApp(config, service.NewServiceContainer(config, nil), true)
	})
	return app
}
