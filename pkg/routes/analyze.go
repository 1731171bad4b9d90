package route

import (
	"github.com/gofiber/fiber/v2"
	controller "github.com/sh5080/satyavadi-go/pkg/controllers"
	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
)

// SetupAnalyzeRoutes는 분석 관련 라우트를 설정합니다
func SetupAnalyzeRoutes(api fiber.Router, services *_interface.ServiceContainer) {
	api.Post("/analyze", controller.Analyze(services))
	api.Post("/chat", controller.Chat(services))
}
