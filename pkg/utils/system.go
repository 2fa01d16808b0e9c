package utils

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// GetSystemMetrics는 호스트의 CPU/메모리 사용률을 0~1 범위로 반환합니다.
// 측정에 실패한 항목은 0으로 반환합니다.
func GetSystemMetrics() (float64, float64) {
	var cpuUsage, memoryUsage float64

	// interval 0: 직전 호출 이후의 사용률 (블로킹 없음)
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

	return cpuUsage, memoryUsage
}
