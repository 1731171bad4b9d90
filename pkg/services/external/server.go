package external

import (
	"runtime"
	"time"

	"github.com/sh5080/satyavadi-go/pkg/configs"
	_interface "github.com/sh5080/satyavadi-go/pkg/interfaces"
	model "github.com/sh5080/satyavadi-go/pkg/types/models"
	"github.com/sh5080/satyavadi-go/pkg/utils"
)

// ServerStatusService는 서버 상태를 관리하는 서비스입니다.
type ServerStatusService struct {
	appName   string
	version   string
	aiEnabled bool
	startTime time.Time
	// 테스트에서 교체
	systemMetrics func() (float64, float64)
}

// 인터페이스 구현 확인
var _ _interface.ServerStatusService = (*ServerStatusService)(nil)

// NewServerStatusService는 새로운 서버 상태 서비스를 생성합니다.
func NewServerStatusService(appName string, aiEnabled bool) *ServerStatusService {
	return &ServerStatusService{
		appName:       appName,
		version:       configs.AppVersion,
		aiEnabled:     aiEnabled,
		startTime:     time.Now(),
		systemMetrics: utils.GetSystemMetrics,
	}
}

// GetServerStatus는 현재 서버의 상태 정보를 반환하고 Prometheus 지표를 갱신합니다.
func (s *ServerStatusService) GetServerStatus() *model.ServerStatus {
	cpuUsage, memoryUsage := s.systemMetrics()
	load, capacity, isHealthy := utils.ServerLoad(cpuUsage, memoryUsage)

	status := &model.ServerStatus{
		// 기본 식별 정보
		AppName:     s.appName,
		Version:     s.version,
		GoVersion:   runtime.Version(),
		Uptime:      time.Since(s.startTime).Round(time.Second).String(),
		LastUpdated: time.Now(),

		// 서버 상태 요약
		AIEnabled: s.aiEnabled,
		Load:      load,
		IsHealthy: isHealthy,
		Capacity:  capacity,

		// 세부 시스템 메트릭
		CpuUsage:    cpuUsage,
		MemoryUsage: memoryUsage,
		Goroutines:  runtime.NumGoroutine(),
	}

	s.publish(status)
	return status
}

// publish는 상태 지표를 Prometheus 게이지에 반영합니다
func (s *ServerStatusService) publish(status *model.ServerStatus) {
	healthValue := 0.0
	if status.IsHealthy {
		healthValue = 1.0
	}
	utils.UpdateServerMetric(s.appName, "load", status.Load)
	utils.UpdateServerMetric(s.appName, "healthy", healthValue)
	utils.UpdateServerMetric(s.appName, "capacity", status.Capacity)
}
