package route

import (
	"os"

	"github.com/gofiber/fiber/v2"
	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다
func SetupRoutes(app *fiber.App, services *_interface.ServiceContainer, staticDir string) {
	// API 라우트 그룹
	api := app.Group("/api")

	// 도메인별 라우트 설정
	SetupAnalyzeRoutes(api, services)
	SetupAppRoutes(app, api, services)

	// 정적 프론트엔드 (index.html)
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		app.Static("/", staticDir)
	} else {
		utils.Debug("routes", "정적 파일 디렉터리 없음: %s", staticDir)
	}
}
