package utils

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// GetSystemMetrics는 CPU와 메모리 사용률(0-1)을 측정합니다
func GetSystemMetrics() (float64, float64) {
	var cpuUsage, memoryUsage float64

	// interval 0: 직전 호출 이후의 사용률
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		cpuUsage = percents[0] / 100.0
	} else if err != nil {
		Debug("system", "CPU 사용률 조회 실패: %v", err)
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		memoryUsage = vm.UsedPercent / 100.0
	} else {
		Debug("system", "메모리 사용률 조회 실패: %v", err)
	}

	return clampUnit(cpuUsage), clampUnit(memoryUsage)
}

// ServerLoad는 CPU와 메모리 사용률의 가중 평균으로 서버 부하를 계산합니다
func ServerLoad(cpuUsage, memoryUsage float64) (load float64, capacity float64, healthy bool) {
	load = (cpuUsage * 0.7) + (memoryUsage * 0.3)
	healthy = cpuUsage <= 0.9 && memoryUsage <= 0.95
	capacity = clampUnit(1.0 - load)
	return load, capacity, healthy
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
