package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/satyavadi-go/pkg/controllers"
	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
)

// SetupAppRoutes는 애플리케이션 관련 라우트를 설정합니다
func SetupAppRoutes(app *fiber.App, api fiber.Router, services *_interface.ServiceContainer) {
	// 상태 확인 API
	api.Get("/health", controller.Health(services.AnalyzerService))
	api.Get("/status", controller.Status(services.ServerStatusService))

	// 메트릭 API
	app.Get("/metrics", controller.Metrics())
}
