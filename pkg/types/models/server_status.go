package model

import (
	"time"
)

// ServerStatus는 서버의 현재 상태와 성능 지표를 나타냅니다
type ServerStatus struct {
	// =================== 기본 식별 정보 ===================
	AppName     string    `json:"appName"`     // 서버 이름
	Version     string    `json:"version"`     // 서버 소프트웨어 버전
	GoVersion   string    `json:"goVersion"`   // Go 런타임 버전
	Uptime      string    `json:"uptime"`      // 가동 시간
	LastUpdated time.Time `json:"lastUpdated"` // 측정 시각

	// =================== 서버 상태 요약 ===================
	AIEnabled bool    `json:"aiEnabled"` // 생성형 백엔드 사용 여부
	Load      float64 `json:"load"`      // 서버 부하 (0-1) - CPU와 메모리 가중 평균
	IsHealthy bool    `json:"isHealthy"` // 정상 작동 여부
	Capacity  float64 `json:"capacity"`  // 처리 용량 (0-1)

	// =================== 시스템 성능 지표 ===================
	CpuUsage    float64 `json:"cpuUsage"`    // CPU 사용률 (0-1)
	MemoryUsage float64 `json:"memoryUsage"` // 메모리 사용률 (0-1)
	Goroutines  int     `json:"goroutines"`  // 실행 중인 고루틴 수
}
