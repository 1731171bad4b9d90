package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sh5080/satyavadi-go/pkg/configs"
	"github.com/sh5080/satyavadi-go/pkg/serverless"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

func main() {
	config := configs.GetConfig()
	utils.InitLogger(config.IsDebug())
	defer utils.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := serverless.NewApp(ctx, config, false)
	if err != nil {
		utils.Fatal("server", "앱 초기화 실패: %v", err)
	}

	// 종료 신호를 받으면 진행 중인 요청을 마치고 종료
	go func() {
		<-ctx.Done()
		utils.Info("server", "종료 신호 수신, 서버 종료 중")
		if err := app.Shutdown(); err != nil {
			utils.Error("server", "서버 종료 실패: %v", err)
		}
	}()

	utils.Info("server", "서버 시작 (port=%s, ai_enabled=%t, cache=%s)", config.Server.Port, config.AIEnabled(), config.Cache.Backend)
	if err := app.Listen(":" + config.Server.Port); err != nil {
		utils.Fatal("server", "서버 실행 실패: %v", err)
	}
}
