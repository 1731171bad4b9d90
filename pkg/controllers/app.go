package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	responseDto "github.com/sh5080/satyavadi-go/pkg/types/dtos/responses"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

// Health는 상태 확인 요청을 처리하는 핸들러입니다
func Health(analyzerService _interface.AnalyzerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		response := responseDto.HealthResponse{
			Status:    "healthy",
			AIEnabled: analyzerService.AIEnabled(),
			Timestamp: utils.Timestamp(),
		}
		return c.JSON(response)
	}
}

// Status는 버전, 가동 시간, 시스템 사용률을 반환하는 핸들러입니다
func Status(statusService _interface.ServerStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(statusService.GetServerStatus())
	}
}

// Metrics는 프로메테우스 메트릭을 제공하는 핸들러입니다
func Metrics() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
