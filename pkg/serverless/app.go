package serverless

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sh5080/satyavadi-go/pkg/configs"
	controller "github.com/sh5080/satyavadi-go/pkg/controllers"
	middleware "github.com/sh5080/satyavadi-go/pkg/middlewares"
	route "github.com/sh5080/satyavadi-go/pkg/routes"
	service "github.com/sh5080/satyavadi-go/pkg/services"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

// NewApp은 설정으로 서비스와 라우트를 구성한 Fiber 앱을 생성합니다.
// serverless가 true이면 시작 메시지와 Prometheus 미들웨어를 생략합니다.
func NewApp(ctx context.Context, config *configs.EnvConfig, serverless bool) (*fiber.App, error) {
	utils.InitMetrics()

	services, err := service.NewServiceContainer(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("서비스 초기화 실패: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               config.Server.AppName,
		ErrorHandler:          controller.ErrorHandler,
		DisableStartupMessage: serverless, // 서버리스 환경에서는 시작 메시지 비활성화
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	if !serverless {
		app.Use(middleware.Prometheus(services.ServerStatusService))
	}

	route.SetupRoutes(app, services, config.Server.StaticDir)
	return app, nil
}

var (
	app     *fiber.App
	appOnce sync.Once
)

// GetApp은 서버리스 환경에서 재사용할 앱 인스턴스를 반환합니다.
// 전역으로 유지하여 콜드 스타트 이후의 요청에서 초기화를 건너뜁니다.
func GetApp() *fiber.App {
	appOnce.Do(func() {
		config := configs.GetConfig()
		utils.InitLogger(config.IsDebug())

		var err error
		app, err = NewApp(context.Background(), config, true)
		if err != nil {
			utils.Fatal("serverless", "앱 초기화 실패: %v", err)
		}
	})
	return app
}
